package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ngo-backoffice/internal/domain/access"
	"ngo-backoffice/internal/domain/project"
	projectuc "ngo-backoffice/internal/usecase/project"
	"ngo-backoffice/internal/usecase/reconcile"
)

type ProjectHandler struct {
	uc *projectuc.Usecase
	rc *reconcile.Reconciler
}

func NewProjectHandler(uc *projectuc.Usecase, rc *reconcile.Reconciler) *ProjectHandler {
	return &ProjectHandler{uc: uc, rc: rc}
}

type createProjectReq struct {
	Name        string          `json:"name"         validate:"required,min=3,max=200"`
	Description string          `json:"description"  validate:"max=5000"`
	Location    string          `json:"location"     validate:"max=200"`
	StartDate   string          `json:"start_date"   validate:"omitempty,datetime=2006-01-02"`
	EndDate     string          `json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
	BudgetTotal decimal.Decimal `json:"budget_total" validate:"money_nonneg,dec2,money_max"`
	Currency    string          `json:"currency"     validate:"omitempty,len=3,alpha"`
	Status      string          `json:"status"       validate:"omitempty,project_status"`
	ManagerID   uint64          `json:"manager_id"   validate:"required"`
	DonorIDs    []uint64        `json:"donor_ids"`
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required,project_status"`
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), projectuc.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		BudgetTotal: req.BudgetTotal,
		Currency:    req.Currency,
		Status:      project.Status(req.Status),
		ManagerID:   req.ManagerID,
		DonorIDs:    req.DonorIDs,
	}, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProjectHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid project id")
	}
	dto, err := h.uc.Get(c.Request().Context(), id, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProjectHandler) UpdateStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid project id")
	}
	var req updateStatusReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), id, project.Status(req.Status), principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Reconcile recomputes every budget of the project and its total.
func (h *ProjectHandler) Reconcile(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid project id")
	}
	if !principal(c).Can(access.ActionProjectReconcile) {
		return respondError(c, access.ErrForbidden)
	}
	out, err := h.rc.RunProject(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
