// Package access holds the role/action permission table checked at the
// request boundary and inside use cases that guard state transitions.
package access

import (
	"errors"

	"ngo-backoffice/internal/domain/user"
)

var ErrForbidden = errors.New("role is not allowed to perform this action")

type Action string

const (
	ActionRead                Action = "read"
	ActionViewAll             Action = "view:all"
	ActionProjectCreate       Action = "project:create"
	ActionProjectUpdateStatus Action = "project:update-status"
	ActionProjectReconcile    Action = "project:reconcile"
	ActionBudgetCreate        Action = "budget:create"
	ActionExpenseCreate       Action = "expense:create"
	ActionExpenseDecide       Action = "expense:decide"
	ActionDonorCreate         Action = "donor:create"
	ActionReportCreate        Action = "report:create"
	ActionReportVerify        Action = "report:verify"
	ActionUserList            Action = "user:list"
	ActionUserAssignRole      Action = "user:assign-role"
)

type permission struct {
	role   user.Role
	action Action
}

var table = map[permission]struct{}{}

func allow(action Action, roles ...user.Role) {
	for _, r := range roles {
		table[permission{role: r, action: action}] = struct{}{}
	}
}

func init() {
	allow(ActionRead, user.RoleAdmin, user.RoleFinance, user.RoleAgent, user.RoleDonor)
	allow(ActionViewAll, user.RoleAdmin, user.RoleFinance)

	allow(ActionProjectCreate, user.RoleAdmin)
	allow(ActionProjectUpdateStatus, user.RoleAdmin)
	allow(ActionProjectReconcile, user.RoleAdmin, user.RoleFinance)
	allow(ActionBudgetCreate, user.RoleAdmin)
	allow(ActionDonorCreate, user.RoleAdmin)
	allow(ActionUserList, user.RoleAdmin)
	allow(ActionUserAssignRole, user.RoleAdmin)

	allow(ActionExpenseCreate, user.RoleAdmin, user.RoleAgent)
	allow(ActionExpenseDecide, user.RoleAdmin, user.RoleFinance)
	allow(ActionReportCreate, user.RoleAdmin, user.RoleAgent)
	allow(ActionReportVerify, user.RoleAdmin, user.RoleFinance)
}

// Can reports whether role may perform action.
func Can(role user.Role, action Action) bool {
	_, ok := table[permission{role: role, action: action}]
	return ok
}

// Check is Can returning ErrForbidden on denial.
func Check(role user.Role, action Action) error {
	if !Can(role, action) {
		return ErrForbidden
	}
	return nil
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID uint64
	Role   user.Role
}

func (p Principal) Can(action Action) bool { return Can(p.Role, action) }
