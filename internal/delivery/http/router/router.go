// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addresssync/internal/delivery/http/middleware"
	"addresssync/internal/delivery/http/router/handler"
	"addresssync/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler    *handler.AddressHandler
	RetirementHandler *handler.RetirementHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Registry          *prometheus.Registry `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler    *handler.AddressHandler
	retirementHandler *handler.RetirementHandler
	authMiddleware    *middleware.AuthMiddleware
	registry          *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:    params.AddressHandler,
		retirementHandler: params.RetirementHandler,
		authMiddleware:    params.AuthMiddleware,
		registry:          params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
	}

	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.RequireRole(constants.RoleVendor, constants.RoleAdmin))
	{
		vendorGroup.POST("/addresses/sync", r.addressHandler.SyncAddress)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/addresses/retirements/sweep", r.retirementHandler.SweepRetiredAddresses)
	}
}
