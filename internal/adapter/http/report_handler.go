package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	reportuc "ngo-backoffice/internal/usecase/report"
)

type ReportHandler struct{ uc *reportuc.Usecase }

func NewReportHandler(uc *reportuc.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

type createReportReq struct {
	Title              string   `json:"title"               validate:"required,max=255"`
	Description        string   `json:"description"         validate:"required"`
	BeneficiariesCount int64    `json:"beneficiaries_count" validate:"gte=0"`
	ActivitiesDone     string   `json:"activities_done"     validate:"required"`
	Photos             []string `json:"photos"              validate:"max=50,dive,max=2048"`
	GPSLat             *float64 `json:"gps_lat"             validate:"omitempty,gte=-90,lte=90"`
	GPSLng             *float64 `json:"gps_lng"             validate:"omitempty,gte=-180,lte=180"`
	Date               string   `json:"date"                validate:"omitempty,datetime=2006-01-02"`
}

type verifyReportReq struct {
	Verified *bool  `json:"verified" validate:"required"`
	Comment  string `json:"comment"  validate:"max=2000"`
}

func (h *ReportHandler) Create(c echo.Context) error {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return badRequest(c, "invalid project id")
	}
	var req createReportReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), projectID, reportuc.CreateInput{
		Title:              req.Title,
		Description:        req.Description,
		BeneficiariesCount: req.BeneficiariesCount,
		ActivitiesDone:     req.ActivitiesDone,
		Photos:             req.Photos,
		GPSLat:             req.GPSLat,
		GPSLng:             req.GPSLng,
		Date:               dateOrZero(req.Date),
	}, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ReportHandler) Verify(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid report id")
	}
	var req verifyReportReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Verify(c.Request().Context(), id, reportuc.VerifyInput{
		Verified: *req.Verified,
		Comment:  req.Comment,
	}, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReportHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid report id")
	}
	dto, err := h.uc.Get(c.Request().Context(), id, principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
