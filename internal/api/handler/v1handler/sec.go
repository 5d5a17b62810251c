package v1handler

import (
	"context"
	"errors"
	"fmt"
	"leadgen/internal/account"
	"leadgen/internal/config"
	"leadgen/pkg/controller"
	"leadgen/pkg/domain"
	"leadgen/pkg/logger"
	"leadgen/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const (
	// IdentityKey holds the verified token subject.
	IdentityKey ctxKey = "identity"
	// SessionKey holds the resolved domain.Session.
	SessionKey ctxKey = "session"
)

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
	// Issuer, when set, must match the token's iss claim.
	Issuer string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
		Issuer:    cfg.JWT.Issuer,
	}
}

type SecHandler struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, errors.New("jwt public key is not configured")
	}
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}

	return &SecHandler{
		parser: jwt.NewParser(parserOpts...),
		keyFn: func(*jwt.Token) (any, error) {
			return pub, nil
		},
	}, nil
}

// HandleBearerAuth verifies the token and stores its subject under IdentityKey.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, s.keyFn); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return context.WithValue(ctx, IdentityKey, claims.Subject), nil
}

// Authenticate verifies the bearer token and resolves the caller's account.
// Identities without a linked account pass through with an empty session
// account; operations treat that as a no-op or not found.
func (s SecHandler) Authenticate(resolver account.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				controller.WriteError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			ctx, err := s.HandleBearerAuth(ctx, token)
			if err != nil {
				controller.WriteError(ctx, w, err)

				return
			}

			session, err := resolver.Resolve(ctx, GetIdentityFromContext(ctx))
			if err != nil && !errors.Is(err, serrors.ErrNotFound) {
				controller.WriteError(ctx, w, err)

				return
			}

			ctx = context.WithValue(ctx, SessionKey, session)
			ctx = logger.WithSession(ctx, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetIdentityFromContext(ctx context.Context) string {
	v, _ := ctx.Value(IdentityKey).(string)

	return v
}

func GetSessionFromContext(ctx context.Context) domain.Session {
	v, _ := ctx.Value(SessionKey).(domain.Session)

	return v
}
