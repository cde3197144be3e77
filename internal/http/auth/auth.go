// Package auth authenticates requests from a signed session cookie and carries the
// caller's identity through the request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/walkies/internal/http/respond"
)

type Role string

const (
	RoleClient Role = "client"
	RoleWalker Role = "walker"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleWalker || r == RoleAdmin
}

// Identity is the authenticated caller. UserID is the client, walker or admin id
// depending on Role.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

type claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

var (
	ErrNoToken      = errors.New("missing session token")
	ErrInvalidToken = errors.New("invalid session token")
)

type Authenticator struct {
	secret     []byte
	cookieName string
	now        func() time.Time
}

func New(secret, cookieName string) *Authenticator {
	return &Authenticator{secret: []byte(secret), cookieName: cookieName, now: time.Now}
}

// Sign issues a session token for id that expires after ttl.
func (a *Authenticator) Sign(id Identity, ttl time.Duration) (string, error) {
	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (a *Authenticator) Parse(tokenStr string) (Identity, error) {
	var c claims

	_, err := jwt.ParseWithClaims(tokenStr, &c, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil || !c.Role.Valid() {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: userID, Role: c.Role}, nil
}

// Cookie wraps a signed token in the session cookie.
func (a *Authenticator) Cookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     a.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (a *Authenticator) token(r *http.Request) (string, error) {
	if c, err := r.Cookie(a.cookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer "), nil
	}

	return "", ErrNoToken
}

// Middleware rejects requests without a valid session and stores the identity in the
// request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, err := a.token(r)
		if err != nil {
			respond.Message(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		id, err := a.Parse(tok)
		if err != nil {
			respond.Message(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...Role) func(http.Handler) http.Handler {
	allowed := make(map[Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := FromContext(r.Context())
			if !ok {
				respond.Message(w, http.StatusUnauthorized, "unauthenticated")
				return
			}

			if _, ok := allowed[id.Role]; !ok {
				respond.Message(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// MustFromContext is for handlers mounted behind Middleware.
func MustFromContext(ctx context.Context) Identity {
	id, ok := FromContext(ctx)
	if !ok {
		panic("auth: no identity in context")
	}

	return id
}
