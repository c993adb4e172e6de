package reconcile

import "github.com/shopspring/decimal"

// Scope names the aggregates an expense contributes to.
type Scope struct {
	ProjectID uint64
	BudgetID  uint64
}

type Totals struct {
	ProjectID    uint64          `json:"project_id"`
	BudgetID     uint64          `json:"budget_id"`
	ProjectSpent decimal.Decimal `json:"project_spent"`
	BudgetSpent  decimal.Decimal `json:"budget_spent"`
}

type BudgetTotal struct {
	BudgetID    uint64          `json:"budget_id"`
	SpentAmount decimal.Decimal `json:"spent_amount"`
}

// ProjectTotals is the outcome of recomputing a whole project.
type ProjectTotals struct {
	ProjectID    uint64          `json:"project_id"`
	ProjectSpent decimal.Decimal `json:"project_spent"`
	Budgets      []BudgetTotal   `json:"budgets"`
}
