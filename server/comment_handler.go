package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/models"
	"github.com/wayfarehq/wayfare/server/response"
)

func (s *Server) handleCreateComment() gin.HandlerFunc {
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

		var comment models.Comment
		if err := decode(c, &comment); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		created, apiErr := s.CommentService.CreateComment(userID, postID, &comment)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "comment created successfully", http.StatusCreated, created, nil)
	}
}

func (s *Server) handleGetUserComments() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		comments, apiErr := s.CommentService.GetUserComments(userID)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, comments, nil)
	}
}

func (s *Server) handleUpdateComment() gin.HandlerFunc {
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
		commentID, err := uintParam(c, "commentId")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		var patch models.UpdateCommentRequest
		if err := decode(c, &patch); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		updated, apiErr := s.CommentService.UpdateComment(userID, postID, commentID, &patch)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "comment updated successfully", http.StatusOK, updated, nil)
	}
}

func (s *Server) handleDeleteComment() gin.HandlerFunc {
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
		commentID, err := uintParam(c, "commentId")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		if apiErr := s.CommentService.DeleteComment(userID, postID, commentID); apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "comment deleted successfully", http.StatusOK, nil, nil)
	}
}
