package controller

import (
	"net/http"

	"protender-api/internal/entity"
	"protender-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

type applicationRoutesHandler struct {
	applicationService service.Application
	validate           *validator.Validate
}

func newApplicationRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, auth echo.MiddlewareFunc) *applicationRoutesHandler {
	h := &applicationRoutesHandler{applicationService: services.Application, validate: v}

	outer.POST("/applications", h.PostApplication, auth)
	outer.GET("/applications/tender/:tenderId", h.GetTenderApplications, auth)
	outer.GET("/applications/company/:companyId", h.GetCompanyApplications, auth)
	outer.PATCH("/applications/:id/status", h.PatchApplicationStatus, auth)

	return h
}

type applicationResponse struct {
	Application *entity.ApplicationOutputModel `json:"application"`
}

type applicationsResponse struct {
	Applications []entity.ApplicationOutputModel `json:"applications"`
}

type applyInput struct {
	TenderId string `json:"tenderId" validate:"required,uuid"`
	Proposal string `json:"proposal" validate:"required"`
}

// /applications
func (h *applicationRoutesHandler) PostApplication(c echo.Context) error {
	var input applyInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.CreateApplicationInput{TenderId: uuid.MustParse(input.TenderId), Proposal: input.Proposal}
	application, err := h.applicationService.Apply(c.Request().Context(), identityFrom(c), model)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, applicationResponse{application})
}

// /applications/tender/:tenderId
func (h *applicationRoutesHandler) GetTenderApplications(c echo.Context) error {
	tenderId, err := parseIdParam(c, "tenderId")
	if err != nil {
		return err
	}

	applications, err := h.applicationService.GetTenderApplications(c.Request().Context(), identityFrom(c), tenderId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, applicationsResponse{applications})
}

// /applications/company/:companyId
func (h *applicationRoutesHandler) GetCompanyApplications(c echo.Context) error {
	companyId, err := parseIdParam(c, "companyId")
	if err != nil {
		return err
	}

	applications, err := h.applicationService.GetCompanyApplications(c.Request().Context(), identityFrom(c), companyId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, applicationsResponse{applications})
}

type statusInput struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

// /applications/:id/status
func (h *applicationRoutesHandler) PatchApplicationStatus(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}
	var input statusInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return err
	}

	application, err := h.applicationService.UpdateApplicationStatus(c.Request().Context(), identityFrom(c), id, input.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, applicationResponse{application})
}
