package middleware

import (
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/newsroom/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts and latency labelled by the matched route
// pattern. The router must save matched route paths.
func Metrics(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		started := time.Now()
		next(ctx)

		route, _ := ctx.UserValue(router.MatchedRoutePathParam).(string)
		if route == "" {
			route = unmatchedRoute
		}
		metrics.RecordHTTPRequest(string(ctx.Method()), route, ctx.Response.StatusCode(), time.Since(started))
	}
}
