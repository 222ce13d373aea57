package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role allowed on the admin operations.
const RoleAdmin = "ADMIN"

type contextKey string

const claimsKey contextKey = "claims"

// Claims is the payload of an admin bearer token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for subject with role, valid for ttl.
func GenerateToken(secret, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateToken parses tokenStr and checks its HMAC signature and expiry.
func ValidateToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RequireAdmin guards the operations that carry bearer-auth scopes.
// Operations without scopes (the gateway-facing ones) pass through untouched.
func RequireAdmin(secret string) api.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, secured := r.Context().Value(api.BearerAuthScopes).([]string); !secured {
				next.ServeHTTP(w, r)
				return
			}
			authorize(secret, bearerToken(r), next, w, r)
		})
	}
}

// RequireAdminStream guards a websocket endpoint. Browsers cannot set headers
// on an upgrade request, so the token may also come in the access_token query
// parameter.
func RequireAdminStream(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				token = r.URL.Query().Get(AccessTokenParam)
			}
			authorize(secret, token, next, w, r)
		})
	}
}

// AccessTokenParam is the query parameter read by RequireAdminStream.
const AccessTokenParam = "access_token"

func bearerToken(r *http.Request) string {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return token
}

func authorize(secret, token string, next http.Handler, w http.ResponseWriter, r *http.Request) {
	if token == "" {
		http.Error(w, "Missing bearer token", http.StatusUnauthorized)
		return
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	if claims.Role != RoleAdmin {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return
	}

	ctx := context.WithValue(r.Context(), claimsKey, claims)
	next.ServeHTTP(w, r.WithContext(ctx))
}

// ClaimsFromContext returns the claims stored by RequireAdmin, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}
