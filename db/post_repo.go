package db

import (
	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
)

type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostsByUserID(userID uint) ([]models.Post, error)
	GetPostsByDestinationID(destinationID uint) ([]models.Post, error)
	FindPostByID(id uint) (*models.Post, error)
	UpdatePost(id uint, changes map[string]interface{}) (*models.Post, error)
	DeletePost(id uint) error
}

type postRepo struct {
	DB *gorm.DB
}

func NewPostRepo(db *GormDB) PostRepository {
	return &postRepo{db.DB}
}

func (r *postRepo) CreatePost(post *models.Post) error {
	return r.DB.Create(post).Error
}

func (r *postRepo) GetPostsByUserID(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.DB.
		Preload("Destination").
		Preload("Comments.User").
		Preload("Likes").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) GetPostsByDestinationID(destinationID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.DB.
		Preload("Comments").
		Preload("Likes").
		Where("destination_id = ?", destinationID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) FindPostByID(id uint) (*models.Post, error) {
	post := &models.Post{}
	if err := r.DB.First(post, id).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *postRepo) UpdatePost(id uint, changes map[string]interface{}) (*models.Post, error) {
	post := &models.Post{}
	if err := r.DB.First(post, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := r.DB.Model(post).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return post, nil
}

// DeletePost removes the post and its comments and likes in one transaction.
// The schema carries ON DELETE CASCADE as well; the explicit deletes keep the
// behavior independent of how the tables were created.
func (r *postRepo) DeletePost(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
