package gormstore

import (
	"context"
	"errors"
	"testing"

	"ngo-backoffice/internal/domain/budget"
	"ngo-backoffice/internal/domain/donor"
	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/project"
	"ngo-backoffice/internal/domain/report"
	"ngo-backoffice/internal/domain/user"
	"ngo-backoffice/internal/testutil/sqlitedb"

	"github.com/shopspring/decimal"
)

func TestExpenseRepository_SumsCountApprovedOnly(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()

	p := seedProject(t, db, "Wells", nil)
	b1 := seedBudget(t, db, p.ID, "100")
	b2 := seedBudget(t, db, p.ID, "100")
	seedExpense(t, db, b1, "30.25", expense.StatusApproved)
	seedExpense(t, db, b1, "19.75", expense.StatusApproved)
	seedExpense(t, db, b1, "500", expense.StatusRejected)
	seedExpense(t, db, b1, "7", expense.StatusPending)
	seedExpense(t, db, b2, "40", expense.StatusApproved)

	repo := NewExpenseRepository(db)
	got, err := repo.SumApprovedByBudget(ctx, b1.ID)
	if err != nil {
		t.Fatalf("SumApprovedByBudget: %v", err)
	}
	if !got.Equal(dec("50")) {
		t.Fatalf("budget sum = %s, want 50", got)
	}
	got, err = repo.SumApprovedByProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("SumApprovedByProject: %v", err)
	}
	if !got.Equal(dec("90")) {
		t.Fatalf("project sum = %s, want 90", got)
	}
}

func TestExpenseRepository_SumIsZeroWithoutRows(t *testing.T) {
	db := sqlitedb.Open(t)
	got, err := NewExpenseRepository(db).SumApprovedByBudget(context.Background(), 12345)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("sum = %s, want 0", got)
	}
}

func TestExpenseRepository_GetAndLock(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	p := seedProject(t, db, "Clinic", nil)
	b := seedBudget(t, db, p.ID, "10")
	e := seedExpense(t, db, b, "5", expense.StatusPending)

	repo := NewExpenseRepository(db)
	got, err := repo.GetByIDForUpdate(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if got.Status != expense.StatusPending || !got.Amount.Equal(dec("5")) {
		t.Fatalf("unexpected row: %+v", got)
	}
	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, expense.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestExpenseRepository_ListByManager(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	mgr := seedUser(t, db, "agent@ngo.org", user.RoleAgent)
	mine := seedProject(t, db, "Mine", &mgr.ID)
	other := seedProject(t, db, "Other", nil)
	seedExpense(t, db, seedBudget(t, db, mine.ID, "10"), "1", expense.StatusPending)
	seedExpense(t, db, seedBudget(t, db, other.ID, "10"), "2", expense.StatusPending)

	repo := NewExpenseRepository(db)
	got, err := repo.ListByManager(ctx, mgr.ID)
	if err != nil {
		t.Fatalf("ListByManager: %v", err)
	}
	if len(got) != 1 || got[0].ProjectID != mine.ID {
		t.Fatalf("scoped list = %+v", got)
	}
	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List = %d rows, %v", len(all), err)
	}
}

func TestBudgetAndProject_SetSpent(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	p := seedProject(t, db, "Schools", nil)
	b := seedBudget(t, db, p.ID, "100")

	if err := NewBudgetRepository(db).SetSpent(ctx, b.ID, dec("12.34")); err != nil {
		t.Fatalf("budget SetSpent: %v", err)
	}
	if err := NewProjectRepository(db).SetSpent(ctx, p.ID, dec("56.78")); err != nil {
		t.Fatalf("project SetSpent: %v", err)
	}

	gotB, err := NewBudgetRepository(db).GetByIDForUpdate(ctx, b.ID)
	if err != nil {
		t.Fatalf("get budget: %v", err)
	}
	if !gotB.SpentAmount.Equal(dec("12.34")) || !gotB.Remaining().Equal(dec("87.66")) {
		t.Fatalf("budget spent=%s remaining=%s", gotB.SpentAmount, gotB.Remaining())
	}
	gotP, err := NewProjectRepository(db).GetByIDForUpdate(ctx, p.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if !gotP.BudgetSpent.Equal(dec("56.78")) {
		t.Fatalf("project spent = %s", gotP.BudgetSpent)
	}
}

func TestProjectRepository_CreateWithDonorsAndDetail(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	mgr := seedUser(t, db, "mgr@ngo.org", user.RoleAgent)

	donors := NewDonorRepository(db)
	d1 := &donor.Donor{Name: "A", Email: "a@fund.org", Type: donor.TypeIndividual, Currency: "USD"}
	d2 := &donor.Donor{Name: "B", Email: "b@fund.org", Type: donor.TypeInstitutional, Currency: "EUR", FundedAmount: dec("2500")}
	for _, d := range []*donor.Donor{d1, d2} {
		if err := donors.Create(ctx, d); err != nil {
			t.Fatalf("create donor: %v", err)
		}
	}

	repo := NewProjectRepository(db)
	p := &project.Project{
		Name: "Water", BudgetTotal: dec("5000"), Currency: "USD", Status: project.StatusPlanned,
		ManagerID: &mgr.ID, Donors: []donor.Donor{*d1, *d2},
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create project: %v", err)
	}
	seedBudget(t, db, p.ID, "300")

	got, err := repo.GetDetailed(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetDetailed: %v", err)
	}
	if got.Manager == nil || got.Manager.Email != "mgr@ngo.org" {
		t.Fatalf("manager not preloaded: %+v", got.Manager)
	}
	if len(got.Donors) != 2 || len(got.Budgets) != 1 {
		t.Fatalf("donors=%d budgets=%d", len(got.Donors), len(got.Budgets))
	}

	ids, err := donors.ProjectIDs(ctx, d2.ID)
	if err != nil || len(ids) != 1 || ids[0] != p.ID {
		t.Fatalf("ProjectIDs = %v, %v", ids, err)
	}

	scoped, err := repo.ListByManager(ctx, mgr.ID)
	if err != nil || len(scoped) != 1 {
		t.Fatalf("ListByManager = %d, %v", len(scoped), err)
	}
}

func TestProjectRepository_DuplicateNameAndStatus(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	p := seedProject(t, db, "Dup", nil)

	err := NewProjectRepository(db).Create(ctx, &project.Project{Name: "Dup", Currency: "USD", Status: project.StatusPlanned})
	if !errors.Is(err, project.ErrDuplicateName) {
		t.Fatalf("want ErrDuplicateName, got %v", err)
	}

	repo := NewProjectRepository(db)
	if err := repo.UpdateStatus(ctx, p.ID, project.StatusPaused); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, err := repo.GetByName(ctx, "Dup")
	if err != nil || got.Status != project.StatusPaused {
		t.Fatalf("status = %v, %v", got, err)
	}
	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDonorRepository_DuplicatesAndLookup(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	repo := NewDonorRepository(db)

	d := &donor.Donor{Name: "A", Email: "a@fund.org", Type: donor.TypeIndividual, Currency: "USD"}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := &donor.Donor{Name: "A2", Email: "a@fund.org", Type: donor.TypeIndividual, Currency: "USD"}
	if err := repo.Create(ctx, dup); !errors.Is(err, donor.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}

	if got, err := repo.GetByIDs(ctx, []uint64{d.ID, d.ID}); err != nil || len(got) != 1 {
		t.Fatalf("GetByIDs with repeats = %v, %v", got, err)
	}
	if _, err := repo.GetByIDs(ctx, []uint64{d.ID, 777}); !errors.Is(err, donor.ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown id, got %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@fund.org"); !errors.Is(err, donor.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	p := seedProject(t, db, "Linked", nil)
	if err := repo.LinkProjects(ctx, d.ID, []uint64{p.ID, p.ID}); err != nil {
		t.Fatalf("LinkProjects: %v", err)
	}
	ids, err := repo.ProjectIDs(ctx, d.ID)
	if err != nil || len(ids) != 1 || ids[0] != p.ID {
		t.Fatalf("ProjectIDs = %v, %v", ids, err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	seedUser(t, db, "a@ngo.org", user.RoleAdmin)

	err := NewUserRepository(db).Create(ctx, &user.User{Name: "x", Email: "a@ngo.org", Password: "x", Role: user.RoleAgent})
	if !errors.Is(err, user.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
	got, err := NewUserRepository(db).GetByEmail(ctx, "a@ngo.org")
	if err != nil || got.Role != user.RoleAdmin {
		t.Fatalf("GetByEmail = %+v, %v", got, err)
	}
}

func TestReportRepository_PhotosRoundTripAndScope(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	mgr := seedUser(t, db, "field@ngo.org", user.RoleAgent)
	p := seedProject(t, db, "Reports", &mgr.ID)

	repo := NewReportRepository(db)
	r := &report.ImpactReport{
		ProjectID: p.ID, Title: "Q1", Description: "d", ActivitiesDone: "a",
		BeneficiariesCount: 120, Photos: []string{"/uploads/a.jpg", "/uploads/b.jpg"},
	}
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("create: %v", err)
	}
	r.Verified = true
	if err := repo.Save(ctx, r); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Verified || len(got.Photos) != 2 || got.Photos[1] != "/uploads/b.jpg" {
		t.Fatalf("unexpected report: %+v", got)
	}
	scoped, err := repo.ListByManager(ctx, mgr.ID)
	if err != nil || len(scoped) != 1 {
		t.Fatalf("ListByManager = %d, %v", len(scoped), err)
	}
	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, report.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestBudgetRepository_ListByManager(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	mgr := seedUser(t, db, "agent@ngo.org", user.RoleAgent)
	mine := seedProject(t, db, "Mine", &mgr.ID)
	other := seedProject(t, db, "Other", nil)
	seedBudget(t, db, other.ID, "5")
	b := seedBudget(t, db, mine.ID, "10")

	repo := NewBudgetRepository(db)
	got, err := repo.ListByManager(ctx, mgr.ID)
	if err != nil {
		t.Fatalf("ListByManager: %v", err)
	}
	if len(got) != 1 || got[0].ID != b.ID || !got[0].AllocatedAmount.Equal(dec("10")) {
		t.Fatalf("scoped list = %+v", got)
	}
	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 || all[0].ProjectID != mine.ID {
		t.Fatalf("List = %+v, %v", all, err)
	}
}

func TestBudgetRepository_ListByProject(t *testing.T) {
	db := sqlitedb.Open(t)
	ctx := context.Background()
	p := seedProject(t, db, "Budgets", nil)
	seedBudget(t, db, p.ID, "1")
	seedBudget(t, db, p.ID, "2")

	got, err := NewBudgetRepository(db).ListByProject(ctx, p.ID)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListByProject = %d, %v", len(got), err)
	}
	if !got[0].SpentAmount.Equal(decimal.Zero) || got[0].Category != budget.CategoryTransport {
		t.Fatalf("defaults not applied: %+v", got[0])
	}
	if _, err := NewBudgetRepository(db).GetByID(ctx, 999); !errors.Is(err, budget.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
