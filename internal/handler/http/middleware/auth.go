package middleware

import (
	"net/http"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/auth"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Claims is the authenticated caller, read from the verified token.
type Claims struct {
	UserID     string
	EmployeeID string
	Email      string
	Role       employee.Role
}

// FromContext extracts the caller from the request's verified token.
func FromContext(r *http.Request) (Claims, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Claims{}, auth.ErrInvalidToken
	}

	c := Claims{}
	if v, ok := claims["user_id"].(string); ok {
		c.UserID = v
	}
	if v, ok := claims["employee_id"].(string); ok {
		c.EmployeeID = v
	}
	if v, ok := claims["email"].(string); ok {
		c.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		c.Role = employee.Role(v)
	}
	if c.EmployeeID == "" {
		return Claims{}, auth.ErrInvalidToken
	}
	return c, nil
}
