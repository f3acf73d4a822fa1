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

type FollowService interface {
	FollowUser(userID, targetID uint) (*models.Follow, *apiError.Error)
	UnfollowUser(userID, targetID uint) *apiError.Error
	GetUserFollows(userID uint) ([]models.Follow, *apiError.Error)
	GetFollowing(userID uint) ([]models.Follow, *apiError.Error)
	GetFollowedBy(userID uint) ([]models.Follow, *apiError.Error)
}

type followService struct {
	Config     *config.Config
	followRepo db.FollowRepository
	authRepo   db.AuthRepository
}

func NewFollowService(followRepo db.FollowRepository, authRepo db.AuthRepository, conf *config.Config) FollowService {
	return &followService{
		Config:     conf,
		followRepo: followRepo,
		authRepo:   authRepo,
	}
}

func (f *followService) FollowUser(userID, targetID uint) (*models.Follow, *apiError.Error) {
	if userID == targetID {
		return nil, apiError.New("cannot follow yourself", http.StatusBadRequest)
	}

	if _, err := f.authRepo.FindUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("user not found", http.StatusNotFound)
		}
		return nil, apiError.ErrInternalServerError
	}

	follow, err := f.followRepo.CreateFollow(userID, targetID)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateFollow) {
			return nil, apiError.New("already following this user", http.StatusBadRequest)
		}
		log.Printf("FollowUser error for %d -> %d: %v", userID, targetID, err)
		return nil, apiError.ErrInternalServerError
	}
	return follow, nil
}

func (f *followService) UnfollowUser(userID, targetID uint) *apiError.Error {
	if err := f.followRepo.DeleteFollow(userID, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("follow not found", http.StatusNotFound)
		}
		log.Printf("UnfollowUser error for %d -> %d: %v", userID, targetID, err)
		return apiError.ErrInternalServerError
	}
	return nil
}

func (f *followService) GetUserFollows(userID uint) ([]models.Follow, *apiError.Error) {
	follows, err := f.followRepo.GetFollowsByUserID(userID)
	if err != nil {
		log.Printf("GetUserFollows error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return follows, nil
}

func (f *followService) GetFollowing(userID uint) ([]models.Follow, *apiError.Error) {
	follows, err := f.followRepo.GetFollowing(userID)
	if err != nil {
		log.Printf("GetFollowing error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return follows, nil
}

func (f *followService) GetFollowedBy(userID uint) ([]models.Follow, *apiError.Error) {
	follows, err := f.followRepo.GetFollowedBy(userID)
	if err != nil {
		log.Printf("GetFollowedBy error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return follows, nil
}
