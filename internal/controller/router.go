package controller

import (
	"time"

	"protender-api/internal/service"

	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Logger     *logrus.Logger
	Production bool
	// Clock is used by the deadline validator; defaults to time.Now.
	Clock func() time.Time
}

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, opts Options) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	handler.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger, opts.Production)

	validate := newValidator(opts.Clock)
	auth := authenticate(services.Auth)

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, validate, auth)
	newCompanyRoutesHandler(api, services, validate, auth)
	newGoodsServiceRoutesHandler(api, services, validate, auth)
	newTenderRoutesHandler(api, services, validate, auth)
	newApplicationRoutesHandler(api, services, validate, auth)
}
