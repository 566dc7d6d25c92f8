// Package http is the inbound REST adapter: echo routing, request validation
// against the OpenAPI document, and translation between transport and domain types.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Registers the OpenAPI document served under /swagger.
	_ "icecream/internal/generated/docs"
	"icecream/internal/generated/servers"
	"icecream/internal/pkg/metrics"
)

// NewRouter assembles the echo instance serving the order API together with
// /health, /metrics and /swagger/*. m may be nil to skip instrumentation.
func NewRouter(server servers.ServerInterface, doc *openapi3.T, m *metrics.Metrics, logger logrus.FieldLogger) (*echo.Echo, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	if m != nil {
		e.Use(m.EchoMiddleware())
	}
	if doc != nil {
		validator, err := OpenAPIValidator(doc)
		if err != nil {
			return nil, err
		}
		e.Use(validator)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
				return nil
			}
			entry.Debug("request")
			return nil
		},
	})
}

// errorHandler renders every error escaping a handler as servers.Error.
func errorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.WithError(err).Error("unhandled error")
		}

		var renderErr error
		if c.Request().Method == http.MethodHead {
			renderErr = c.NoContent(code)
		} else {
			renderErr = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if renderErr != nil {
			logger.WithError(renderErr).Error("failed to render error response")
		}
	}
}
