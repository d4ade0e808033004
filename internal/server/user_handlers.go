package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wichtowski/whobought/internal/auth"
	"github.com/Wichtowski/whobought/internal/responses"
)

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.Users().List(c.Request.Context())
	if err != nil {
		s.storeError(c, "list users", err)
		return
	}
	responses.OK(c, users, "Success")
}

// createUser goes through the authenticator so the password is hashed and
// uniqueness is enforced, same as registration, but returns no token.
func (s *Server) createUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid user payload", err.Error())
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
			s.storeError(c, "create user", err)
		}
		return
	}

	responses.Created(c, user, "User created successfully")
}

func (s *Server) getUser(c *gin.Context) {
	user, err := s.store.Users().Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, "get user", err)
		return
	}
	if user == nil {
		responses.NotFound(c, "User not found")
		return
	}
	responses.OK(c, user, "Success")
}

// storeError logs a storage failure and answers with a 500 envelope. The
// process never crashes on a single request's failure.
func (s *Server) storeError(c *gin.Context, op string, err error) {
	s.logger.Error("Storage operation failed", "op", op, "error", err)
	responses.Error(c, http.StatusInternalServerError, "Database error", err.Error())
}
