package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ngo-backoffice/internal/domain/access"
	"ngo-backoffice/internal/domain/budget"
	"ngo-backoffice/internal/domain/donor"
	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/project"
	"ngo-backoffice/internal/domain/report"
	"ngo-backoffice/internal/domain/user"
	applog "ngo-backoffice/internal/log"
	"ngo-backoffice/internal/usecase/auth"
	"ngo-backoffice/pkg/money"
)

var statusByError = []struct {
	err  error
	code int
}{
	{project.ErrNotFound, http.StatusNotFound},
	{budget.ErrNotFound, http.StatusNotFound},
	{expense.ErrNotFound, http.StatusNotFound},
	{donor.ErrNotFound, http.StatusNotFound},
	{report.ErrNotFound, http.StatusNotFound},
	{user.ErrNotFound, http.StatusNotFound},

	{project.ErrDuplicateName, http.StatusConflict},
	{donor.ErrDuplicateEmail, http.StatusConflict},
	{user.ErrDuplicateEmail, http.StatusConflict},
	{expense.ErrAlreadyDecided, http.StatusConflict},

	{project.ErrInvalidStatus, http.StatusUnprocessableEntity},
	{project.ErrInvalidName, http.StatusUnprocessableEntity},
	{project.ErrInvalidPeriod, http.StatusUnprocessableEntity},
	{project.ErrNegativeTotal, http.StatusUnprocessableEntity},
	{budget.ErrInvalidCategory, http.StatusUnprocessableEntity},
	{budget.ErrNegativeAmount, http.StatusUnprocessableEntity},
	{donor.ErrInvalidType, http.StatusUnprocessableEntity},
	{donor.ErrNegativeAmount, http.StatusUnprocessableEntity},
	{expense.ErrInvalidDecision, http.StatusUnprocessableEntity},
	{expense.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{expense.ErrBudgetMismatch, http.StatusUnprocessableEntity},
	{report.ErrNegativeBeneficiaries, http.StatusUnprocessableEntity},
	{money.ErrScale, http.StatusUnprocessableEntity},
	{money.ErrTooLarge, http.StatusUnprocessableEntity},
	{auth.ErrWeakPassword, http.StatusUnprocessableEntity},
	{auth.ErrInvalidRole, http.StatusUnprocessableEntity},

	{access.ErrForbidden, http.StatusForbidden},
	{auth.ErrRoleNotAllowed, http.StatusForbidden},

	{auth.ErrInvalidCredentials, http.StatusUnauthorized},
	{auth.ErrInvalidToken, http.StatusUnauthorized},
}

// respondError maps domain errors onto status codes. Anything unknown is
// logged and answered with a generic 500.
func respondError(c echo.Context, err error) error {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return c.JSON(m.code, ErrorResponse{Error: m.err.Error()})
		}
	}
	applog.Component(nil, applog.ComponentHTTP).ErrorContext(c.Request().Context(), "request failed",
		applog.FieldRequestID, c.Response().Header().Get(echo.HeaderXRequestID),
		"method", c.Request().Method,
		"route", c.Path(),
		applog.Err(err),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

// bindAndValidate decodes the body into req and runs the struct validator.
// It has already written the response when it returns false.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, badRequest(c, "invalid body")
	}
	if err := c.Validate(req); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}

func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
