package v1handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"dpq/internal/config"
	"dpq/pkg/domain"
	"dpq/pkg/serrors"
)

type contextKey string

// UserIDKey is the context key under which the authenticated user's ID is
// stored after bearer authentication.
const UserIDKey contextKey = "userID"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens must be signed
	// against.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application
// configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates v1 requests using RS256-signed bearer tokens. The
// token's subject claim must be the user's UUID.
type SecHandler struct {
	parser *jwt.Parser
	pubKey any
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse JWT public key")
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		pubKey: pubKey,
	}, nil
}

// HandleBearerAuth verifies the token and returns a context carrying the
// authenticated user's ID.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.pubKey, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(uid)), nil
}

// Middleware wraps next with bearer authentication. Requests without a valid
// Authorization header are rejected with 401.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			Handler{}.writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(ctx, token)
		if err != nil {
			Handler{}.writeError(ctx, w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated user's ID stored by the
// bearer middleware. It returns the zero UserID when authentication has not
// run, which never matches a real user.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	if uid, ok := ctx.Value(UserIDKey).(domain.UserID); ok {
		return uid
	}

	return domain.UserID{}
}
