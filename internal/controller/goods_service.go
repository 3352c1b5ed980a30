package controller

import (
	"net/http"

	"protender-api/internal/entity"
	"protender-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type goodsServiceRoutesHandler struct {
	goodsServiceService service.GoodsService
	validate            *validator.Validate
}

func newGoodsServiceRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, auth echo.MiddlewareFunc) *goodsServiceRoutesHandler {
	h := &goodsServiceRoutesHandler{goodsServiceService: services.GoodsService, validate: v}

	outer.GET("/goods-services/company/:companyId", h.GetCompanyGoodsServices)
	outer.POST("/goods-services", h.PostGoodsService, auth)
	outer.PUT("/goods-services/:id", h.PutGoodsService, auth)
	outer.DELETE("/goods-services/:id", h.DeleteGoodsService, auth)

	return h
}

type goodsServicesResponse struct {
	GoodsServices []entity.GoodsServiceOutputModel `json:"goods_services"`
}

// /goods-services/company/:companyId
func (h *goodsServiceRoutesHandler) GetCompanyGoodsServices(c echo.Context) error {
	companyId, err := parseIdParam(c, "companyId")
	if err != nil {
		return err
	}

	goodsServices, err := h.goodsServiceService.GetGoodsServices(c.Request().Context(), companyId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, goodsServicesResponse{goodsServices})
}

// /goods-services
func (h *goodsServiceRoutesHandler) PostGoodsService(c echo.Context) error {
	var input goodsServiceInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return err
	}

	goodsService, err := h.goodsServiceService.CreateGoodsService(c.Request().Context(), identityFrom(c), input.model())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, goodsServiceResponse{goodsService})
}

// /goods-services/:id
func (h *goodsServiceRoutesHandler) PutGoodsService(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}
	var input goodsServiceInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return err
	}

	goodsService, err := h.goodsServiceService.UpdateGoodsService(c.Request().Context(), identityFrom(c), id, input.model())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, goodsServiceResponse{goodsService})
}

// /goods-services/:id
func (h *goodsServiceRoutesHandler) DeleteGoodsService(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.goodsServiceService.DeleteGoodsService(c.Request().Context(), identityFrom(c), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{"Goods/service deleted successfully"})
}
