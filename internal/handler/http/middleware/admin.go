package middleware

import (
	"net/http"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly requires the ADMIN role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Admin access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(employee.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
