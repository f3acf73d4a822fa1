package db

import (
	"github.com/wayfarehq/wayfare/models"
	"gorm.io/gorm"
)

type DestinationRepository interface {
	CreateDestination(destination *models.Destination) error
	GetAllDestinations() ([]models.Destination, error)
	FindDestinationByID(id uint) (*models.Destination, error)
	UpdateDestination(id uint, changes map[string]interface{}) (*models.Destination, error)
	DeleteDestination(id uint) error
}

type destinationRepo struct {
	DB *gorm.DB
}

func NewDestinationRepo(db *GormDB) DestinationRepository {
	return &destinationRepo{db.DB}
}

func (r *destinationRepo) CreateDestination(destination *models.Destination) error {
	return r.DB.Create(destination).Error
}

func (r *destinationRepo) GetAllDestinations() ([]models.Destination, error) {
	var destinations []models.Destination
	if err := r.DB.Order("destination_name").Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepo) FindDestinationByID(id uint) (*models.Destination, error) {
	destination := &models.Destination{}
	if err := r.DB.First(destination, id).Error; err != nil {
		return nil, err
	}
	return destination, nil
}

func (r *destinationRepo) UpdateDestination(id uint, changes map[string]interface{}) (*models.Destination, error) {
	destination := &models.Destination{}
	if err := r.DB.First(destination, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := r.DB.Model(destination).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return destination, nil
}

func (r *destinationRepo) DeleteDestination(id uint) error {
	result := r.DB.Delete(&models.Destination{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
