package controller

import (
	"errors"
	"fmt"
	"net/http"

	"protender-api/internal/repo/repo_errors"
	"protender-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	Message string   `json:"message,omitempty"`
}

type domainError struct {
	code    int
	message string
}

var domainErrors = map[error]domainError{
	service.ErrUserAlreadyExists:  {http.StatusConflict, "User already exists"},
	service.ErrInvalidCredentials: {http.StatusBadRequest, "Invalid credentials"},
	service.ErrInvalidToken:       {http.StatusUnauthorized, "Invalid token"},

	service.ErrNoCompanyProfile:     {http.StatusBadRequest, "Company not found"},
	service.ErrCompanyNotFound:      {http.StatusNotFound, "Company not found"},
	service.ErrCompanyNotOwned:      {http.StatusNotFound, "Company not found or unauthorized"},
	service.ErrCompanyAlreadyExists: {http.StatusBadRequest, "User already has a company profile"},

	service.ErrCompanyRequiredForTender:       {http.StatusBadRequest, "You must have a company profile to create tenders"},
	service.ErrCompanyRequiredForApplication:  {http.StatusBadRequest, "You must have a company profile to apply to tenders"},
	service.ErrCompanyRequiredForGoodsService: {http.StatusBadRequest, "You must have a company profile to add goods/services"},

	service.ErrNoFileUploaded:       {http.StatusBadRequest, "No file uploaded"},
	service.ErrUnsupportedMediaType: {http.StatusUnsupportedMediaType, "Only image files are allowed"},
	service.ErrFileTooLarge:         {http.StatusBadRequest, "File too large"},

	service.ErrGoodsServiceNotOwned: {http.StatusNotFound, "Goods/service not found or unauthorized"},

	service.ErrTenderNotFound: {http.StatusNotFound, "Tender not found"},
	service.ErrTenderNotOwned: {http.StatusNotFound, "Tender not found or unauthorized"},
	service.ErrTenderInactive: {http.StatusNotFound, "Tender not found or inactive"},

	service.ErrAlreadyApplied:           {http.StatusBadRequest, "You have already applied to this tender"},
	service.ErrApplicationNotFound:      {http.StatusNotFound, "Application not found"},
	service.ErrApplicationNotOwned:      {http.StatusNotFound, "Application not found or unauthorized"},
	service.ErrApplicationsNotOwned:     {http.StatusNotFound, "Applications not found or unauthorized"},
	service.ErrInvalidApplicationStatus: {http.StatusBadRequest, "Invalid status"},
}

// classify turns any error reaching the boundary into a status and body.
// The returned flag is true for failures the client did not cause.
func classify(err error, production bool) (int, errorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return http.StatusBadRequest, errorResponse{Error: "Validation error", Details: getAllErrorMessages(validationErrors)}, false
	}

	var paramErr *invalidParamError
	if errors.As(err, &paramErr) {
		return http.StatusBadRequest, errorResponse{Error: "Validation error", Details: []string{paramErr.Error()}}, false
	}

	if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return http.StatusBadRequest, errorResponse{Error: "File too large"}, false
	}

	for sentinel, de := range domainErrors {
		if errors.Is(err, sentinel) {
			return de.code, errorResponse{Error: de.message}, false
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, errorResponse{Error: fmt.Sprint(httpErr.Message)}, httpErr.Code >= http.StatusInternalServerError
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return http.StatusBadRequest, errorResponse{Error: "Database error", Message: pqErr.Message}, false
	}
	if errors.Is(err, repo_errors.ErrNotFound) || errors.Is(err, repo_errors.ErrAlreadyExists) {
		return http.StatusBadRequest, errorResponse{Error: "Database error", Message: err.Error()}, false
	}

	message := err.Error()
	if production {
		message = "Something went wrong"
	}

	return http.StatusInternalServerError, errorResponse{Error: "Internal server error", Message: message}, true
}

// NewHTTPErrorHandler writes every handler error as a JSON errorResponse.
func NewHTTPErrorHandler(logger *logrus.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code, body, unexpected := classify(err, production)

		entry := logger.WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
			"status": code,
		}).WithError(err)
		if unexpected {
			entry.Error("request failed")
		} else {
			entry.Debug("request rejected")
		}

		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.WithError(err).Error("write error response")
		}
	}
}
