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

type LikeService interface {
	ToggleLike(userID, postID uint) (*models.LikeToggleResponse, *apiError.Error)
	GetUserLikes(userID uint) ([]models.Like, *apiError.Error)
	DeleteLike(userID, postID, likeID uint) *apiError.Error
}

type likeService struct {
	Config   *config.Config
	likeRepo db.LikeRepository
	postRepo db.PostRepository
}

func NewLikeService(likeRepo db.LikeRepository, postRepo db.PostRepository, conf *config.Config) LikeService {
	return &likeService{
		Config:   conf,
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// ToggleLike flips the like state for (userID, postID): absent row is
// created ("like"), present row is deleted ("unlike").
func (l *likeService) ToggleLike(userID, postID uint) (*models.LikeToggleResponse, *apiError.Error) {
	if _, err := l.postRepo.FindPostByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("post not found", http.StatusNotFound)
		}
		return nil, apiError.ErrInternalServerError
	}

	resp, err := l.likeRepo.ToggleLike(userID, postID)
	if err != nil {
		log.Printf("ToggleLike error for user %d on post %d: %v", userID, postID, err)
		return nil, apiError.ErrInternalServerError
	}
	return resp, nil
}

func (l *likeService) GetUserLikes(userID uint) ([]models.Like, *apiError.Error) {
	likes, err := l.likeRepo.GetLikesByUserID(userID)
	if err != nil {
		log.Printf("GetUserLikes error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return likes, nil
}

func (l *likeService) DeleteLike(userID, postID, likeID uint) *apiError.Error {
	if _, err := l.postRepo.FindPostByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("post not found", http.StatusNotFound)
		}
		return apiError.ErrInternalServerError
	}

	like, err := l.likeRepo.FindLikeByID(likeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("like not found", http.StatusNotFound)
		}
		return apiError.ErrInternalServerError
	}
	if like.PostID != postID {
		return apiError.New("like not found", http.StatusNotFound)
	}

	if !IsOwner(userID, like.UserID) {
		return apiError.New("unauthorized to delete this like", http.StatusForbidden)
	}

	if err := l.likeRepo.DeleteLike(likeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("like not found", http.StatusNotFound)
		}
		log.Printf("DeleteLike error for like %d: %v", likeID, err)
		return apiError.ErrInternalServerError
	}
	return nil
}
