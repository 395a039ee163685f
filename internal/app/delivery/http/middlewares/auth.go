package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/exceptions"
	"valoredash-service/internal/pkg/utils"
)

// BearerAuth verifies the Authorization header and puts the token subject
// into the request context.
func (m *Middlewares) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("authorization header is empty")))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("authorization header is not a bearer token")))
			return
		}

		subject, err := m.JWTManager.VerifyToken(tokenString)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_UID, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
