package service

import (
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
)

// AuthService handles the login route. There is no credential
// verification and no session: the service accepts a username/password
// pair and acknowledges it. The password is discarded here and never
// appears in any response or log.
type AuthService struct {
	server *server.Server
}

// NewAuthService constructs an AuthService.
func NewAuthService(s *server.Server) *AuthService {
	return &AuthService{server: s}
}

// Login acknowledges a login form, echoing the username back.
func (s *AuthService) Login(form model.LoginForm) model.LoginResult {
	return model.LoginResult{
		Username: form.Username,
		Message:  "Login successful",
	}
}
