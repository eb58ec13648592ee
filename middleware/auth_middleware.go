package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/hazelhedmine/elememory-backend/auth"
)

// RequireToken rejects requests that do not carry a validly signed bearer
// token whose payload resolves to a user id. The token subject is not
// cross-checked against the requested resource.
func RequireToken(tokens *auth.TokenService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}

			claims, err := tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil || claims.UserID == "" {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": "token missing or invalid"}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
