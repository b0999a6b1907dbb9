package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/deppfellow/person-api/internal/validation"
)

// AuthHandler serves the login route.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// LoginRequest is the urlencoded form body of POST /person/login.
type LoginRequest struct {
	model.LoginForm
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// Login accepts a username/password form and acknowledges it. Only the
// username is echoed back.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (model.LoginResult, error) {
	return h.auth.Login(req.LoginForm), nil
}
