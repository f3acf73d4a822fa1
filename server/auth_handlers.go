package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/models"
	"github.com/wayfarehq/wayfare/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := decode(c, &user); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		userResponse, apiErr := s.AuthService.SignupUser(&user)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "user created successfully", http.StatusCreated, userResponse, nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := decode(c, &loginRequest); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		loginResponse, apiErr := s.AuthService.LoginUser(&loginRequest)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "login successful", http.StatusOK, loginResponse, nil)
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, ok := c.Value("access_token").(string)
		if !ok || accessToken == "" {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}
		if apiErr := s.AuthService.LogoutUser(accessToken); apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "logout successful", http.StatusOK, nil, nil)
	}
}

// handleShowAccount returns the token payload user.
func (s *Server) handleShowAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		profile, apiErr := s.AuthService.GetUserProfile(userID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, profile, nil)
	}
}

// handleGetAccountData returns the entirety of the authenticated user's data.
func (s *Server) handleGetAccountData() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		account, apiErr := s.AuthService.GetAccount(userID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, account, nil)
	}
}

func (s *Server) handleEditUserProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		var patch models.UpdateUserRequest
		if err := decode(c, &patch); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		updated, apiErr := s.AuthService.EditUserProfile(userID, &patch)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "profile updated successfully", http.StatusOK, updated, nil)
	}
}

func (s *Server) handleDeleteAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		if apiErr := s.AuthService.DeleteUser(userID); apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
