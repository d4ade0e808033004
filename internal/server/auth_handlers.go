package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wichtowski/whobought/internal/auth"
	"github.com/Wichtowski/whobought/internal/middleware"
	"github.com/Wichtowski/whobought/internal/models"
	"github.com/Wichtowski/whobought/internal/responses"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}
}

func tokenPayload(token string) gin.H {
	return gin.H{
		"access_token": token,
		"token_type":   "bearer",
	}
}

// register creates a new user account and issues a token for it.
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid registration payload", err.Error())
		return
	}

	user, err := s.authenticator.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameExists), errors.Is(err, auth.ErrEmailExists):
			responses.Error(c, http.StatusConflict, err.Error())
		case errors.Is(err, auth.ErrWeakPassword):
			responses.BadRequest(c, err.Error())
		default:
			s.logger.Error("Registration failed", "username", req.Username, "error", err)
			responses.Error(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token", "user_id", user.ID, "error", err)
		responses.Error(c, http.StatusInternalServerError, "Could not create access token")
		return
	}

	s.logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	responses.Created(c, gin.H{
		"user":  userPayload(user),
		"token": tokenPayload(token),
	}, "User registered successfully")
}

// login authenticates username/password and issues a token.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid login payload", err.Error())
		return
	}

	s.loginWith(c, req.Username, req.Password, func(user *models.User, token string) gin.H {
		return gin.H{
			"user":  userPayload(user),
			"token": tokenPayload(token),
		}
	})
}

// tokenLogin is the OAuth2-compatible form login: it accepts form-encoded
// username/password and returns only the token payload.
func (s *Server) tokenLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		responses.BadRequest(c, "username and password are required")
		return
	}

	s.loginWith(c, username, password, func(_ *models.User, token string) gin.H {
		return tokenPayload(token)
	})
}

func (s *Server) loginWith(c *gin.Context, username, password string, payload func(*models.User, string) gin.H) {
	user, err := s.authenticator.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Warn("Login failed", "username", username)
			responses.Error(c, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
			return
		}
		s.logger.Error("Login error", "username", username, "error", err)
		responses.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token", "user_id", user.ID, "error", err)
		responses.Error(c, http.StatusInternalServerError, "Could not create access token")
		return
	}

	responses.OK(c, payload(user, token), "Login successful")
}

// me returns the identity resolved from the bearer token.
func (s *Server) me(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	if ident == nil {
		responses.Error(c, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}
	responses.OK(c, ident, "Authenticated")
}
