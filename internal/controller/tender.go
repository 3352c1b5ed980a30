package controller

import (
	"net/http"

	"protender-api/internal/entity"
	"protender-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type tenderRoutesHandler struct {
	tenderService service.Tender
	validate      *validator.Validate
}

func newTenderRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, auth echo.MiddlewareFunc) *tenderRoutesHandler {
	h := &tenderRoutesHandler{tenderService: services.Tender, validate: v}

	outer.GET("/tenders", h.GetTenders)
	outer.GET("/tenders/company/:companyId", h.GetCompanyTenders)
	outer.GET("/tenders/:id", h.GetTender)
	outer.POST("/tenders", h.PostTender, auth)
	outer.PUT("/tenders/:id", h.PutTender, auth)
	outer.DELETE("/tenders/:id", h.DeleteTender, auth)

	return h
}

type tenderResponse struct {
	Tender *entity.TenderOutputModel `json:"tender"`
}

type tendersResponse struct {
	Tenders []entity.TenderOutputModel `json:"tenders"`
}

// /tenders
func (h *tenderRoutesHandler) GetTenders(c echo.Context) error {
	var input listInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	page, err := h.tenderService.GetTenders(c.Request().Context(), input.Search, input.pagination())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

// /tenders/:id
func (h *tenderRoutesHandler) GetTender(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}

	tender, err := h.tenderService.GetTender(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tenderResponse{tender})
}

type tenderInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Deadline    string   `json:"deadline" validate:"required,future"`
	Budget      *float64 `json:"budget" validate:"omitempty,gte=0"`
}

func (i tenderInput) model() (*entity.TenderInput, error) {
	deadline, err := parseDeadline(i.Deadline)
	if err != nil {
		return nil, err
	}

	return &entity.TenderInput{Title: i.Title, Description: i.Description, Deadline: deadline, Budget: i.Budget}, nil
}

func (h *tenderRoutesHandler) bindTender(c echo.Context) (*entity.TenderInput, error) {
	var input tenderInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return nil, err
	}

	return input.model()
}

// /tenders
func (h *tenderRoutesHandler) PostTender(c echo.Context) error {
	model, err := h.bindTender(c)
	if err != nil {
		return err
	}

	tender, err := h.tenderService.CreateTender(c.Request().Context(), identityFrom(c), model)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tenderResponse{tender})
}

// /tenders/:id
func (h *tenderRoutesHandler) PutTender(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}
	model, err := h.bindTender(c)
	if err != nil {
		return err
	}

	tender, err := h.tenderService.UpdateTender(c.Request().Context(), identityFrom(c), id, model)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tenderResponse{tender})
}

// /tenders/:id
func (h *tenderRoutesHandler) DeleteTender(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.tenderService.DeleteTender(c.Request().Context(), identityFrom(c), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{"Tender deleted successfully"})
}

// /tenders/company/:companyId
func (h *tenderRoutesHandler) GetCompanyTenders(c echo.Context) error {
	companyId, err := parseIdParam(c, "companyId")
	if err != nil {
		return err
	}

	tenders, err := h.tenderService.GetCompanyTenders(c.Request().Context(), companyId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tendersResponse{tenders})
}
