package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/alebedev/passvault/internal/logger"
	"github.com/alebedev/passvault/internal/utils"
	"github.com/alebedev/passvault/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The session token is resolved from the "auth-token" cookie first, falling
// back to a bearer token in the "Authorization" header for non-browser
// clients. The token is validated via [service.AuthService.ParseToken] and,
// on success, the authenticated principal is stored in the request context
// under [utils.PrincipalCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when:
//   - Neither the cookie nor the header carries a token ([ErrNoSessionToken]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, forged, or otherwise invalid.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getSessionToken(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated principal in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		principal := models.Principal{UserID: token.UserID, Email: token.Email}
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getSessionToken resolves the raw JWT string from the request, preferring
// the session cookie over the "Authorization" header.
func getSessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(authCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
