package httpcontext

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/newsroom/pkg/logger"
)

func TestAttachPropagatesRequestMetadata(t *testing.T) {
	var reqCtx fasthttp.RequestCtx
	reqCtx.Request.Header.Set("X-Request-ID", "req-1")
	reqCtx.Request.Header.Set(HeaderUserID, "editor")
	reqCtx.Request.Header.SetUserAgent("tests")

	ctx, cancel := NewAdapter(time.Second).Attach(&reqCtx)
	defer cancel()

	assert.Equal(t, "req-1", appLogger.RequestID(ctx))
	assert.Equal(t, "editor", UserID(ctx))
	assert.Equal(t, "tests", ctx.Value(KeyUserAgent))
	assert.Equal(t, "req-1", string(reqCtx.Response.Header.Peek("X-Request-ID")))

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
}

func TestAttachGeneratesRequestID(t *testing.T) {
	var reqCtx fasthttp.RequestCtx

	ctx, cancel := NewAdapter(0).Attach(&reqCtx)
	defer cancel()

	_, err := uuid.Parse(appLogger.RequestID(ctx))
	assert.NoError(t, err)
	assert.Empty(t, UserID(ctx))
}
