package db

import (
	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByUserID(userID uint) ([]models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
	FindCommentByID(id uint) (*models.Comment, error)
	UpdateComment(id uint, changes map[string]interface{}) (*models.Comment, error)
	DeleteComment(id uint) error
}

type commentRepo struct {
	DB *gorm.DB
}

func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

func (r *commentRepo) CreateComment(comment *models.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *commentRepo) GetCommentsByUserID(userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.DB.Where("user_id = ?", userID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.DB.Preload("User").Where("post_id = ?", postID).Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) FindCommentByID(id uint) (*models.Comment, error) {
	comment := &models.Comment{}
	if err := r.DB.First(comment, id).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *commentRepo) UpdateComment(id uint, changes map[string]interface{}) (*models.Comment, error) {
	comment := &models.Comment{}
	if err := r.DB.First(comment, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := r.DB.Model(comment).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return comment, nil
}

func (r *commentRepo) DeleteComment(id uint) error {
	result := r.DB.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
