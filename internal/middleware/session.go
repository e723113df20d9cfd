package middleware

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/newsroom/api/transport"
	"github.com/fastygo/newsroom/domain"
	"github.com/fastygo/newsroom/pkg/httpcontext"
)

const (
	// HeaderTokenID carries the verified token id to downstream handlers.
	HeaderTokenID = "X-Token-ID"

	principalKey         = "session.principal"
	revocationLookupWait = 2 * time.Second
)

// RevocationChecker reports whether a token id was revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionOptions configures SessionAuth.
type SessionOptions struct {
	Secret      string
	Issuer      string
	CookieName  string
	Revocations RevocationChecker
	Logger      *zap.Logger
}

type sessionClaims struct {
	UserID string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

var (
	errMissingToken  = errors.New("missing access token")
	errMissingClaims = errors.New("token lacks subject or id")
	errMissingExpiry = errors.New("token lacks expiry")
	errWrongIssuer   = errors.New("token issuer mismatch")
)

// SessionAuth admits requests that carry a valid, unrevoked HS256 access token
// in the Authorization header or the session cookie.
func SessionAuth(opts SessionOptions) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(opts.Secret), nil
	}

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			// Identity headers are only ever set by this gate.
			ctx.Request.Header.Del(httpcontext.HeaderUserID)
			ctx.Request.Header.Del(HeaderTokenID)

			principal, err := authenticate(ctx, parser, keyFunc, opts)
			if err != nil {
				logger.Warn("session rejected",
					zap.ByteString("path", ctx.Path()),
					zap.Error(err))
				unauthorized(ctx, err)
				return
			}

			if opts.Revocations != nil {
				lookupCtx, cancel := context.WithTimeout(context.Background(), revocationLookupWait)
				revoked, err := opts.Revocations.IsRevoked(lookupCtx, principal.TokenID)
				cancel()
				if err != nil {
					logger.Error("revocation lookup failed", zap.Error(err))
					ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
					return
				}
				if revoked {
					unauthorized(ctx, domain.ErrTokenRevoked)
					return
				}
			}

			ctx.Request.Header.Set(httpcontext.HeaderUserID, principal.UserID)
			ctx.Request.Header.Set(HeaderTokenID, principal.TokenID)
			SetPrincipal(ctx, principal)

			next(ctx)
		}
	}
}

// SetPrincipal attaches an authenticated caller to the request.
func SetPrincipal(ctx *fasthttp.RequestCtx, principal *domain.Principal) {
	ctx.SetUserValue(principalKey, principal)
}

// PrincipalFrom returns the caller admitted by SessionAuth, or nil.
func PrincipalFrom(ctx *fasthttp.RequestCtx) *domain.Principal {
	if ctx == nil {
		return nil
	}
	principal, _ := ctx.UserValue(principalKey).(*domain.Principal)
	return principal
}

func authenticate(ctx *fasthttp.RequestCtx, parser *jwt.Parser, keyFunc jwt.Keyfunc, opts SessionOptions) (*domain.Principal, error) {
	raw := extractToken(ctx, opts.CookieName)
	if raw == "" {
		return nil, errMissingToken
	}

	claims := &sessionClaims{}
	token, err := parser.ParseWithClaims(raw, claims, keyFunc)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.ExpiresAt == nil {
		return nil, errMissingExpiry
	}
	if opts.Issuer != "" && !claims.VerifyIssuer(opts.Issuer, true) {
		return nil, errWrongIssuer
	}

	userID := claims.Subject
	if userID == "" {
		userID = claims.UserID
	}
	if userID == "" || claims.ID == "" {
		return nil, errMissingClaims
	}

	return &domain.Principal{
		UserID:    userID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func extractToken(ctx *fasthttp.RequestCtx, cookieName string) string {
	header := strings.TrimSpace(string(ctx.Request.Header.Peek("Authorization")))
	if header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		return header
	}
	if cookieName == "" {
		return ""
	}
	return string(ctx.Request.Header.Cookie(cookieName))
}

func unauthorized(ctx *fasthttp.RequestCtx, err error) {
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	if !bytes.HasPrefix(ctx.Path(), []byte("/api/")) {
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString("unauthorized")
		return
	}
	message := domain.ErrUnauthorized.Error()
	if errors.Is(err, domain.ErrTokenRevoked) {
		message = domain.ErrTokenRevoked.Error()
	}
	ctx.SetContentType("application/json")
	ctx.SetBodyString(transport.NewError(string(domain.ErrCodeUnauthorized), message, nil).String())
}
