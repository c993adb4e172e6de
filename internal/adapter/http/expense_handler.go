package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ngo-backoffice/internal/domain/expense"
	expenseuc "ngo-backoffice/internal/usecase/expense"
)

type ExpenseHandler struct{ uc *expenseuc.Usecase }

func NewExpenseHandler(uc *expenseuc.Usecase) *ExpenseHandler { return &ExpenseHandler{uc: uc} }

type createExpenseReq struct {
	Amount      decimal.Decimal `json:"amount"      validate:"money_pos,dec2,money_max"`
	Description string          `json:"description" validate:"required,max=2000"`
	Date        string          `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	ReceiptURL  string          `json:"receipt_url" validate:"max=2048"`
	GPSLat      *float64        `json:"gps_lat"     validate:"omitempty,gte=-90,lte=90"`
	GPSLng      *float64        `json:"gps_lng"     validate:"omitempty,gte=-180,lte=180"`
}

type decideExpenseReq struct {
	Status  string `json:"status"  validate:"required,oneof=APPROVED REJECTED"`
	Comment string `json:"comment" validate:"max=2000"`
}

func (h *ExpenseHandler) Create(c echo.Context) error {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return badRequest(c, "invalid project id")
	}
	budgetID, ok := pathID(c, "budgetId")
	if !ok {
		return badRequest(c, "invalid budget id")
	}
	var req createExpenseReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), projectID, budgetID, expenseuc.CreateInput{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        dateOrZero(req.Date),
		ReceiptURL:  req.ReceiptURL,
		GPSLat:      req.GPSLat,
		GPSLng:      req.GPSLng,
	}, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// Decide approves or rejects a pending expense.
func (h *ExpenseHandler) Decide(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid expense id")
	}
	var req decideExpenseReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Decide(c.Request().Context(), id, expenseuc.DecideInput{
		Status:  expense.Status(req.Status),
		Comment: req.Comment,
	}, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ExpenseHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ExpenseHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid expense id")
	}
	dto, err := h.uc.Get(c.Request().Context(), id, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
