package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ngo-backoffice/internal/domain/donor"
	donoruc "ngo-backoffice/internal/usecase/donor"
)

type DonorHandler struct{ uc *donoruc.Usecase }

func NewDonorHandler(uc *donoruc.Usecase) *DonorHandler { return &DonorHandler{uc: uc} }

type createDonorReq struct {
	Name         string          `json:"name"          validate:"required,max=200"`
	Email        string          `json:"email"         validate:"required,email,max=190"`
	Phone        string          `json:"phone"         validate:"max=40"`
	Organization string          `json:"organization"  validate:"max=200"`
	Type         string          `json:"type"          validate:"omitempty,oneof=individual institutional"`
	FundedAmount decimal.Decimal `json:"funded_amount" validate:"money_nonneg,dec2,money_max"`
	Country      string          `json:"country"       validate:"omitempty,len=2,alpha"`
	Currency     string          `json:"currency"      validate:"omitempty,len=3,alpha"`
	ProjectIDs   []uint64        `json:"project_ids"`
}

func (h *DonorHandler) Create(c echo.Context) error {
	var req createDonorReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), donoruc.CreateInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Type:         donor.Type(req.Type),
		FundedAmount: req.FundedAmount,
		Country:      req.Country,
		Currency:     req.Currency,
		ProjectIDs:   req.ProjectIDs,
	}, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DonorHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DonorHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid donor id")
	}
	dto, err := h.uc.Get(c.Request().Context(), id, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
