package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ngo-backoffice/internal/domain/budget"
	budgetuc "ngo-backoffice/internal/usecase/budget"
)

type BudgetHandler struct{ uc *budgetuc.Usecase }

func NewBudgetHandler(uc *budgetuc.Usecase) *BudgetHandler { return &BudgetHandler{uc: uc} }

type createBudgetReq struct {
	Category        string          `json:"category"         validate:"omitempty,budget_category"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount" validate:"money_nonneg,dec2,money_max"`
	Description     string          `json:"description"      validate:"max=2000"`
}

func (h *BudgetHandler) Create(c echo.Context) error {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return badRequest(c, "invalid project id")
	}
	var req createBudgetReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), projectID, budgetuc.CreateInput{
		Category:        budget.Category(req.Category),
		AllocatedAmount: req.AllocatedAmount,
		Description:     req.Description,
	}, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BudgetHandler) ListByProject(c echo.Context) error {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return badRequest(c, "invalid project id")
	}
	out, err := h.uc.ListByProject(c.Request().Context(), projectID, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BudgetHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BudgetHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid budget id")
	}
	dto, err := h.uc.Get(c.Request().Context(), id, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
