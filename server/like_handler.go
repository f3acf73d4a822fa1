package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/models"
	"github.com/wayfarehq/wayfare/server/response"
)

// handleToggleLike flips the like state for the acting user on a post:
// 201 with action="like" when the like is created, 200 with action="unlike"
// when it is removed.
func (s *Server) handleToggleLike() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}
		postID, err := uintParam(c, "postId")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		result, apiErr := s.LikeService.ToggleLike(userID, postID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}

		if result.Action == models.LikeActionLike {
			response.JSON(c, "post liked successfully", http.StatusCreated, result, nil)
			return
		}
		response.JSON(c, "post unliked successfully", http.StatusOK, result, nil)
	}
}

func (s *Server) handleGetUserLikes() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		likes, apiErr := s.LikeService.GetUserLikes(userID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, likes, nil)
	}
}

func (s *Server) handleDeleteLike() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}
		postID, err := uintParam(c, "postId")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}
		likeID, err := uintParam(c, "likeId")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		if apiErr := s.LikeService.DeleteLike(userID, postID, likeID); apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "like deleted successfully", http.StatusOK, nil, nil)
	}
}
