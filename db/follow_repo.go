package db

import (
	"errors"

	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
)

// ErrDuplicateFollow is returned when the ordered follow edge already exists.
var ErrDuplicateFollow = errors.New("follow edge already exists")

type FollowRepository interface {
	CreateFollow(followedByID, followingID uint) (*models.Follow, error)
	DeleteFollow(followedByID, followingID uint) error
	GetFollowsByUserID(userID uint) ([]models.Follow, error)
	GetFollowing(userID uint) ([]models.Follow, error)
	GetFollowedBy(userID uint) ([]models.Follow, error)
}

type followRepo struct {
	DB *gorm.DB
}

func NewFollowRepo(db *GormDB) FollowRepository {
	return &followRepo{db.DB}
}

func (r *followRepo) CreateFollow(followedByID, followingID uint) (*models.Follow, error) {
	follow := &models.Follow{FollowedByID: followedByID, FollowingID: followingID}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Follow{}).
			Where("followed_by_id = ? AND following_id = ?", followedByID, followingID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateFollow
		}
		return tx.Create(follow).Error
	})
	if err != nil {
		return nil, err
	}
	return follow, nil
}

func (r *followRepo) DeleteFollow(followedByID, followingID uint) error {
	result := r.DB.
		Where("followed_by_id = ? AND following_id = ?", followedByID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetFollowsByUserID returns every edge the user sits on, either side.
func (r *followRepo) GetFollowsByUserID(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.DB.Where("followed_by_id = ? OR following_id = ?", userID, userID).Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

func (r *followRepo) GetFollowing(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.DB.Where("followed_by_id = ?", userID).Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}

func (r *followRepo) GetFollowedBy(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.DB.Where("following_id = ?", userID).Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}
