package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jnises/bitte/internal/handlers"
	customMiddleware "github.com/jnises/bitte/internal/middleware"
	"github.com/jnises/bitte/internal/renderer"
	"github.com/jnises/bitte/internal/services"
)

// newServer assembles the echo instance: middleware, renderer, error
// handling and the two routes. Split from run so tests can drive it with a
// fake store.
func newServer(lister *services.Lister, delimiter string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				slog.Warn("request", "uri", v.URI, "status", v.Status, "err", v.Error)
			} else {
				slog.Info("request", "uri", v.URI, "status", v.Status)
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(customMiddleware.SecurityHeaders())

	e.Renderer = renderer.New()
	e.HTTPErrorHandler = errorHandler

	browseHandler := handlers.NewBrowseHandler(lister, delimiter)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/*", browseHandler.Browse)

	return e
}

// errorHandler renders every failure as a short plain-text message with the
// status the handler picked. Causes stay in the log.
func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "internal error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	} else {
		slog.Error("unhandled error", "uri", c.Request().RequestURI, "err", err)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.String(code, message)
}
