package handler

import (
	"context"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/newsroom/api/transport"
	"github.com/fastygo/newsroom/domain"
	"github.com/fastygo/newsroom/internal/metrics"
	"github.com/fastygo/newsroom/internal/middleware"
	"github.com/fastygo/newsroom/pkg/httpcontext"
)

// SessionService revokes access tokens.
type SessionService interface {
	Logout(ctx context.Context, principal *domain.Principal) error
}

type AuthHandler struct {
	baseHandler
	sessions   SessionService
	cookieName string
}

func NewAuthHandler(sessions SessionService, cookieName string, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		sessions:    sessions,
		cookieName:  cookieName,
	}
}

// @Summary Revoke the current access token
// @Tags auth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	principal := middleware.PrincipalFrom(ctx)
	if principal == nil {
		h.respondJSON(ctx, http.StatusUnauthorized, transport.NewError(string(domain.ErrCodeUnauthorized), domain.ErrUnauthorized.Error(), nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.sessions.Logout(stdCtx, principal); err != nil {
		h.respondError(ctx, err)
		return
	}
	metrics.TokensRevokedTotal.Inc()

	if h.cookieName != "" {
		ctx.Response.Header.DelClientCookie(h.cookieName)
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"token_id": principal.TokenID})
}
