package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/models"
	"github.com/wayfarehq/wayfare/server/response"
)

func (s *Server) handleCreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		var post models.Post
		if err := decode(c, &post); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		created, apiErr := s.PostService.CreatePost(userID, &post)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "post created successfully", http.StatusCreated, created, nil)
	}
}

func (s *Server) handleGetUserPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		posts, apiErr := s.PostService.GetUserPosts(userID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, posts, nil)
	}
}

// handleGetPostsByDestination serves the public destination feed.
func (s *Server) handleGetPostsByDestination() gin.HandlerFunc {
	return func(c *gin.Context) {
		destinationID, err := uintParam(c, "id")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		posts, apiErr := s.PostService.GetPostsByDestination(destinationID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, posts, nil)
	}
}

func (s *Server) handleUpdatePost() gin.HandlerFunc {
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

		var patch models.UpdatePostRequest
		if err := decode(c, &patch); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		updated, apiErr := s.PostService.UpdatePost(userID, postID, &patch)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "post updated successfully", http.StatusOK, updated, nil)
	}
}

func (s *Server) handleDeletePost() gin.HandlerFunc {
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

		if apiErr := s.PostService.DeletePost(userID, postID); apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "post deleted successfully", http.StatusOK, nil, nil)
	}
}
