package services

import (
	"errors"
	"log"
	"net/http"

	"github.com/wayfarehq/wayfare/config"
	"github.com/wayfarehq/wayfare/db"
	apiError "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(userID, postID uint, comment *models.Comment) (*models.Comment, *apiError.Error)
	GetUserComments(userID uint) ([]models.Comment, *apiError.Error)
	UpdateComment(userID, postID, commentID uint, patch *models.UpdateCommentRequest) (*models.Comment, *apiError.Error)
	DeleteComment(userID, postID, commentID uint) *apiError.Error
}

type commentService struct {
	Config      *config.Config
	commentRepo db.CommentRepository
	postRepo    db.PostRepository
}

func NewCommentService(commentRepo db.CommentRepository, postRepo db.PostRepository, conf *config.Config) CommentService {
	return &commentService{
		Config:      conf,
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (c *commentService) CreateComment(userID, postID uint, comment *models.Comment) (*models.Comment, *apiError.Error) {
	if _, err := c.postRepo.FindPostByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("post not found", http.StatusNotFound)
		}
		return nil, apiError.ErrInternalServerError
	}

	comment.PostID = postID
	comment.UserID = userID
	if err := c.commentRepo.CreateComment(comment); err != nil {
		log.Printf("CreateComment error for user %d on post %d: %v", userID, postID, err)
		return nil, apiError.ErrInternalServerError
	}
	return comment, nil
}

func (c *commentService) GetUserComments(userID uint) ([]models.Comment, *apiError.Error) {
	comments, err := c.commentRepo.GetCommentsByUserID(userID)
	if err != nil {
		log.Printf("GetUserComments error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return comments, nil
}

// findOwnedComment resolves a comment under a post, existence before
// ownership.
func (c *commentService) findOwnedComment(userID, postID, commentID uint) (*models.Comment, *apiError.Error) {
	if _, err := c.postRepo.FindPostByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("post not found", http.StatusNotFound)
		}
		return nil, apiError.ErrInternalServerError
	}

	comment, err := c.commentRepo.FindCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("comment not found", http.StatusNotFound)
		}
		return nil, apiError.ErrInternalServerError
	}
	if comment.PostID != postID {
		return nil, apiError.New("comment not found", http.StatusNotFound)
	}

	if !IsOwner(userID, comment.UserID) {
		return nil, apiError.New("unauthorized to modify this comment", http.StatusForbidden)
	}
	return comment, nil
}

func (c *commentService) UpdateComment(userID, postID, commentID uint, patch *models.UpdateCommentRequest) (*models.Comment, *apiError.Error) {
	if _, apiErr := c.findOwnedComment(userID, postID, commentID); apiErr != nil {
		return nil, apiErr
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, apiError.New("at least one field is required for an update", http.StatusBadRequest)
	}

	updated, err := c.commentRepo.UpdateComment(commentID, changes)
	if err != nil {
		log.Printf("UpdateComment error for comment %d: %v", commentID, err)
		return nil, apiError.ErrInternalServerError
	}
	return updated, nil
}

func (c *commentService) DeleteComment(userID, postID, commentID uint) *apiError.Error {
	if _, apiErr := c.findOwnedComment(userID, postID, commentID); apiErr != nil {
		return apiErr
	}

	if err := c.commentRepo.DeleteComment(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("comment not found", http.StatusNotFound)
		}
		log.Printf("DeleteComment error for comment %d: %v", commentID, err)
		return apiError.ErrInternalServerError
	}
	return nil
}
