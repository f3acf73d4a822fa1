package db

import (
	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
)

type TripRepository interface {
	CreateTrip(trip *models.Trip) error
	GetTripsByUserID(userID uint) ([]models.Trip, error)
	FindTripByID(id uint) (*models.Trip, error)
	UpdateTrip(id uint, changes map[string]interface{}) (*models.Trip, error)
	DeleteTrip(id uint) error
}

type tripRepo struct {
	DB *gorm.DB
}

func NewTripRepo(db *GormDB) TripRepository {
	return &tripRepo{db.DB}
}

func (r *tripRepo) CreateTrip(trip *models.Trip) error {
	return r.DB.Create(trip).Error
}

func (r *tripRepo) GetTripsByUserID(userID uint) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.DB.Preload("Destination").Where("user_id = ?", userID).Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepo) FindTripByID(id uint) (*models.Trip, error) {
	trip := &models.Trip{}
	if err := r.DB.First(trip, id).Error; err != nil {
		return nil, err
	}
	return trip, nil
}

func (r *tripRepo) UpdateTrip(id uint, changes map[string]interface{}) (*models.Trip, error) {
	trip := &models.Trip{}
	if err := r.DB.First(trip, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := r.DB.Model(trip).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return trip, nil
}

func (r *tripRepo) DeleteTrip(id uint) error {
	result := r.DB.Delete(&models.Trip{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
