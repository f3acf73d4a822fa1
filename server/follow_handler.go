package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/server/response"
)

func (s *Server) handleFollowUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}
		targetID, err := uintParam(c, "userId")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		follow, apiErr := s.FollowService.FollowUser(userID, targetID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "user followed successfully", http.StatusCreated, follow, nil)
	}
}

func (s *Server) handleUnfollowUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}
		targetID, err := uintParam(c, "userId")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		if apiErr := s.FollowService.UnfollowUser(userID, targetID); apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "follow deleted successfully", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleGetFollows() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		follows, apiErr := s.FollowService.GetUserFollows(userID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, follows, nil)
	}
}

func (s *Server) handleGetFollowing() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		following, apiErr := s.FollowService.GetFollowing(userID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, following, nil)
	}
}

func (s *Server) handleGetFollowedBy() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		followedBy, apiErr := s.FollowService.GetFollowedBy(userID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, followedBy, nil)
	}
}
