package server

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"
	"ufl-rankings/internal/rpc"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

// NewAdminInterceptor rejects calls to admin procedures that do not carry
// "Authorization: Bearer <secret>". An empty secret locks every admin call.
func NewAdminInterceptor(secret string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient || !rpc.AdminProcedures[req.Spec().Procedure] {
				return next(ctx, req)
			}
			token, ok := strings.CutPrefix(req.Header().Get("Authorization"), "Bearer ")
			if !ok || secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				return nil, rpc.ToConnectError(rpc.ErrUnauthenticated)
			}
			return next(ctx, req)
		}
	}
}

// NewLoggingInterceptor logs every call with its duration and resulting code,
// using the request logger when the request-id middleware installed one.
func NewLoggingInterceptor(fallback zerolog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			logger := zerolog.Ctx(ctx)
			if logger.GetLevel() == zerolog.Disabled {
				logger = &fallback
			}
			start := time.Now()
			res, err := next(ctx, req)

			event := logger.Debug()
			if err != nil {
				code := connect.CodeOf(err)
				switch code {
				case connect.CodeInternal, connect.CodeUnavailable:
					event = logger.Error().Err(err)
				default:
					event = logger.Info().Err(err)
				}
				event = event.Str("code", code.String())
			}
			event.
				Str("procedure", req.Spec().Procedure).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Msg("rpc handled")
			return res, err
		}
	}
}
