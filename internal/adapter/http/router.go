package http

import (
	"github.com/labstack/echo/v4"

	"ngo-backoffice/internal/adapter/middleware"
	"ngo-backoffice/internal/domain/access"
)

// Handlers groups every resource handler mounted by RegisterRoutes.
type Handlers struct {
	Health   *Handler
	Auth     *AuthHandler
	Users    *UserHandler
	Projects *ProjectHandler
	Budgets  *BudgetHandler
	Expenses *ExpenseHandler
	Donors   *DonorHandler
	Reports  *ReportHandler
}

// RegisterRoutes mounts the REST surface. idem may be nil when no redis is
// configured. It runs on mutating routes after authentication and the
// permission check, so keys are scoped per caller and refusals are never
// stored.
func RegisterRoutes(e *echo.Echo, h Handlers, tokens middleware.TokenParser, idem echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	with := func(mw ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
		if idem != nil {
			mw = append(mw, idem)
		}
		return mw
	}
	can := middleware.RequirePermission
	write := func(action access.Action) []echo.MiddlewareFunc { return with(can(action)) }

	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", h.Auth.Register, with(middleware.OptionalAuth(tokens))...)
	authGroup.POST("/login", h.Auth.Login)

	api := e.Group("/api", middleware.Auth(tokens))

	api.GET("/users", h.Users.List, can(access.ActionUserList))

	api.POST("/projects", h.Projects.Create, write(access.ActionProjectCreate)...)
	api.GET("/projects", h.Projects.List, can(access.ActionRead))
	api.GET("/projects/:id", h.Projects.Get, can(access.ActionRead))
	api.PATCH("/projects/:id/status", h.Projects.UpdateStatus, write(access.ActionProjectUpdateStatus)...)
	api.POST("/projects/:id/reconcile", h.Projects.Reconcile, write(access.ActionProjectReconcile)...)

	api.POST("/budgets/:projectId", h.Budgets.Create, write(access.ActionBudgetCreate)...)
	api.GET("/budgets", h.Budgets.List, can(access.ActionRead))
	api.GET("/budgets/project/:projectId", h.Budgets.ListByProject, can(access.ActionRead))
	api.GET("/budgets/:id", h.Budgets.Get, can(access.ActionRead))

	api.POST("/expenses/:projectId/:budgetId", h.Expenses.Create, write(access.ActionExpenseCreate)...)
	api.GET("/expenses", h.Expenses.List, can(access.ActionRead))
	api.GET("/expenses/:id", h.Expenses.Get, can(access.ActionRead))
	api.PATCH("/expenses/:id/approve", h.Expenses.Decide, write(access.ActionExpenseDecide)...)

	api.POST("/donors", h.Donors.Create, write(access.ActionDonorCreate)...)
	api.GET("/donors", h.Donors.List, can(access.ActionRead))
	api.GET("/donors/:id", h.Donors.Get, can(access.ActionRead))

	api.POST("/impact-reports/:projectId", h.Reports.Create, write(access.ActionReportCreate)...)
	api.GET("/impact-reports", h.Reports.List, can(access.ActionRead))
	api.GET("/impact-reports/:id", h.Reports.Get, can(access.ActionRead))
	api.PATCH("/impact-reports/:id/verify", h.Reports.Verify, write(access.ActionReportVerify)...)
}
