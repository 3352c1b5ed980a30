package controller

import (
	"errors"
	"io"
	"net/http"

	"protender-api/internal/entity"
	"protender-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

// logoBodyLimit is common.MaxLogoSize plus 64KiB for the multipart envelope.
// BodyLimit reads "K" and "M" as powers of 1000, hence the binary suffix.
// The file size itself is checked by the company service.
const logoBodyLimit = "5184KiB"

type companyRoutesHandler struct {
	companyService service.Company
	validate       *validator.Validate
}

func newCompanyRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, auth echo.MiddlewareFunc) *companyRoutesHandler {
	h := &companyRoutesHandler{companyService: services.Company, validate: v}

	outer.GET("/companies", h.GetCompanies)
	outer.GET("/companies/:id", h.GetCompany)
	outer.POST("/companies", h.PostCompany, auth)
	outer.PUT("/companies/:id", h.PutCompany, auth)
	outer.POST("/companies/:id/logo", h.PostLogo, auth, middleware.BodyLimit(logoBodyLimit))
	outer.POST("/companies/:id/goods-services", h.PostGoodsService, auth)

	return h
}

type companyResponse struct {
	Company *entity.CompanyOutputModel `json:"company"`
}

type goodsServiceResponse struct {
	GoodsService *entity.GoodsServiceOutputModel `json:"goods_service"`
}

// /companies
func (h *companyRoutesHandler) GetCompanies(c echo.Context) error {
	var input listInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	page, err := h.companyService.GetCompanies(c.Request().Context(), input.Search, input.pagination())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

// /companies/:id
func (h *companyRoutesHandler) GetCompany(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}

	details, err := h.companyService.GetCompany(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, details)
}

type companyInput struct {
	Name        string `json:"name" validate:"required"`
	Industry    string `json:"industry" validate:"required"`
	Description string `json:"description"`
}

func (i companyInput) model() *entity.CompanyInput {
	return &entity.CompanyInput{Name: i.Name, Industry: i.Industry, Description: i.Description}
}

// /companies
func (h *companyRoutesHandler) PostCompany(c echo.Context) error {
	var input companyInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return err
	}

	company, err := h.companyService.CreateCompany(c.Request().Context(), identityFrom(c), input.model())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, companyResponse{company})
}

// /companies/:id
func (h *companyRoutesHandler) PutCompany(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}
	var input companyInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return err
	}

	company, err := h.companyService.UpdateCompany(c.Request().Context(), identityFrom(c), id, input.model())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, companyResponse{company})
}

// /companies/:id/logo
func (h *companyRoutesHandler) PostLogo(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}

	logo, err := readLogo(c)
	if err != nil {
		return err
	}

	out, err := h.companyService.UploadLogo(c.Request().Context(), identityFrom(c), id, logo)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, out)
}

// readLogo returns nil when the request carries no "logo" file.
func readLogo(c echo.Context) (*entity.LogoUpload, error) {
	header, err := c.FormFile("logo")
	if err != nil {
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return nil, err
		}

		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &entity.LogoUpload{
		Data:        data,
		Size:        header.Size,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Filename:    header.Filename,
	}, nil
}

type goodsServiceInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (i goodsServiceInput) model() *entity.GoodsServiceInput {
	return &entity.GoodsServiceInput{Title: i.Title, Description: i.Description}
}

// /companies/:id/goods-services
func (h *companyRoutesHandler) PostGoodsService(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}
	var input goodsServiceInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return err
	}

	goodsService, err := h.companyService.AddGoodsService(c.Request().Context(), identityFrom(c), id, input.model())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, goodsServiceResponse{goodsService})
}
