// Package middleware provides the HTTP middleware stack: admin
// authentication and request metadata capture. Session management and token
// issuance belong to the portal's identity provider; this package only
// validates what that provider issued.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"permitgate/internal/platform/secrets"
	dErrors "permitgate/pkg/domain-errors"
	"permitgate/pkg/platform/httputil"
	"permitgate/pkg/requestcontext"
)

const roleAdmin = "admin"

// AdminClaims is the token payload expected on watchlist mutations.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth authenticates watchlist mutation requests. Two credentials are
// accepted:
//   - a Bearer JWT signed with signingKey carrying role=admin
//   - the break-glass API key in X-Admin-Api-Key, verified against
//     apiKeyHash (disabled when the hash is empty)
//
// The authenticated actor id is injected into the request context for audit.
func AdminAuth(signingKey, apiKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKeyHash != "" {
				if key := r.Header.Get("X-Admin-Api-Key"); key != "" {
					if err := secrets.Verify(key, apiKeyHash); err == nil {
						ctx := requestcontext.WithActorID(r.Context(), "admin-api-key")
						next.ServeHTTP(w, r.WithContext(ctx))
						return
					}
					httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid api key"))
					return
				}
			}

			token := bearerToken(r)
			if token == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
				return
			}

			claims, err := parseAdminToken(token, signingKey)
			if err != nil {
				httputil.WriteError(w, err)
				return
			}
			if claims.Role != roleAdmin {
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "admin role required"))
				return
			}

			ctx := requestcontext.WithActorID(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func parseAdminToken(tokenString, signingKey string) (*AdminClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	claims, ok := parsed.Claims.(*AdminClaims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	return claims, nil
}
