package db

import (
	"errors"

	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	ToggleLike(userID, postID uint) (*models.LikeToggleResponse, error)
	GetLikesByUserID(userID uint) ([]models.Like, error)
	GetLikesByPostID(postID uint) ([]models.Like, error)
	FindLikeByID(id uint) (*models.Like, error)
	DeleteLike(id uint) error
}

type likeRepo struct {
	DB *gorm.DB
}

func NewLikeRepo(db *GormDB) LikeRepository {
	return &likeRepo{db.DB}
}

// ToggleLike flips the (userID, postID) pair between liked and not-liked.
// The existence check and the flip run in one transaction with the row
// locked, so two concurrent toggles serialize; the unique index on
// (post_id, user_id) catches anything that still slips through.
func (r *likeRepo) ToggleLike(userID, postID uint) (*models.LikeToggleResponse, error) {
	var resp *models.LikeToggleResponse
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			First(&existing).Error
		if err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			resp = &models.LikeToggleResponse{Action: models.LikeActionUnlike}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.Like{UserID: userID, PostID: postID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		resp = &models.LikeToggleResponse{Action: models.LikeActionLike, Like: &like}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *likeRepo) GetLikesByUserID(userID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.DB.Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepo) GetLikesByPostID(postID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.DB.Where("post_id = ?", postID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepo) FindLikeByID(id uint) (*models.Like, error) {
	like := &models.Like{}
	if err := r.DB.First(like, id).Error; err != nil {
		return nil, err
	}
	return like, nil
}

func (r *likeRepo) DeleteLike(id uint) error {
	result := r.DB.Delete(&models.Like{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
