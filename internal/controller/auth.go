package controller

import (
	"net/http"

	"protender-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type authRoutesHandler struct {
	authService service.Auth
	validate    *validator.Validate
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, auth echo.MiddlewareFunc) *authRoutesHandler {
	h := &authRoutesHandler{authService: services.Auth, validate: v}

	outer.POST("/auth/register", h.Register)
	outer.POST("/auth/login", h.Login)
	outer.GET("/auth/me", h.Me, auth)

	return h
}

type registerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// /auth/register
func (h *authRoutesHandler) Register(c echo.Context) error {
	var input registerInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return err
	}

	out, err := h.authService.Register(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, out)
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// /auth/login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
	if err := bindAndValidate(c, h.validate, &input); err != nil {
		return err
	}

	out, err := h.authService.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, out)
}

// /auth/me
func (h *authRoutesHandler) Me(c echo.Context) error {
	out, err := h.authService.GetCurrentUser(c.Request().Context(), identityFrom(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, out)
}
