package access

import (
	"errors"
	"testing"

	"ngo-backoffice/internal/domain/user"
)

func TestCan_Table(t *testing.T) {
	tests := []struct {
		role   user.Role
		action Action
		want   bool
	}{
		{user.RoleAdmin, ActionExpenseDecide, true},
		{user.RoleFinance, ActionExpenseDecide, true},
		{user.RoleAgent, ActionExpenseDecide, false},
		{user.RoleDonor, ActionExpenseDecide, false},

		{user.RoleAdmin, ActionExpenseCreate, true},
		{user.RoleAgent, ActionExpenseCreate, true},
		{user.RoleFinance, ActionExpenseCreate, false},

		{user.RoleAdmin, ActionProjectCreate, true},
		{user.RoleFinance, ActionProjectCreate, false},
		{user.RoleFinance, ActionProjectReconcile, true},
		{user.RoleAgent, ActionProjectReconcile, false},

		{user.RoleDonor, ActionRead, true},
		{user.RoleDonor, ActionViewAll, false},
		{user.RoleFinance, ActionViewAll, true},

		{user.RoleAgent, ActionReportCreate, true},
		{user.RoleAgent, ActionReportVerify, false},
		{user.RoleFinance, ActionReportVerify, true},

		{user.RoleAdmin, ActionUserList, true},
		{user.RoleFinance, ActionUserList, false},

		{user.Role("ROOT"), ActionRead, false},
	}
	for _, tt := range tests {
		if got := Can(tt.role, tt.action); got != tt.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.want)
		}
	}
}

func TestCheck_ReturnsForbidden(t *testing.T) {
	if err := Check(user.RoleAgent, ActionExpenseDecide); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
	if err := Check(user.RoleFinance, ActionExpenseDecide); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestPrincipal_Can(t *testing.T) {
	p := Principal{UserID: 7, Role: user.RoleFinance}
	if !p.Can(ActionExpenseDecide) {
		t.Fatal("finance principal should decide expenses")
	}
	if p.Can(ActionBudgetCreate) {
		t.Fatal("finance principal should not create budgets")
	}
}
