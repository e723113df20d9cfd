package router

import (
	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/newsroom/api/handler"
	"github.com/fastygo/newsroom/internal/middleware"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Report *apiHandler.ReportHandler
	Health *apiHandler.HealthHandler
}

type Options struct {
	EnableMetrics bool
	Logger        *zap.Logger
}

// New builds the route table. Everything except health and metrics sits
// behind sessionMiddleware.
func New(handlers Handlers, sessionMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler, opts Options) *router.Router {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := router.New()
	r.SaveMatchedRoutePath = opts.EnableMetrics
	r.PanicHandler = func(ctx *fasthttp.RequestCtx, recovered interface{}) {
		logger.Error("handler panic", zap.Any("panic", recovered), zap.ByteString("path", ctx.Path()))
		ctx.ResetBody()
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}

	r.GET("/health", handlers.Health.Check)
	if opts.EnableMetrics {
		r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))
	}

	// Report page
	r.GET("/reports/videos", sessionMiddleware(handlers.Report.Page))
	r.POST("/reports/videos", sessionMiddleware(handlers.Report.Submit))

	// JSON API
	r.POST("/api/v1/reports/videos", sessionMiddleware(handlers.Report.Generate))
	r.GET("/api/v1/reports/history", sessionMiddleware(handlers.Report.History))
	r.POST("/api/v1/auth/logout", sessionMiddleware(handlers.Auth.Logout))

	return r
}

// Handler wraps the router with request metrics when enabled.
func Handler(r *router.Router, opts Options) fasthttp.RequestHandler {
	if !opts.EnableMetrics {
		return r.Handler
	}
	return middleware.Metrics(r.Handler)
}
