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

type DestinationService interface {
	CreateDestination(userID uint, destination *models.Destination) (*models.Destination, *apiError.Error)
	GetAllDestinations() ([]models.Destination, *apiError.Error)
	UpdateDestination(userID, destinationID uint, patch *models.UpdateDestinationRequest) (*models.Destination, *apiError.Error)
	DeleteDestination(userID, destinationID uint) *apiError.Error
}

type destinationService struct {
	Config          *config.Config
	destinationRepo db.DestinationRepository
}

func NewDestinationService(destinationRepo db.DestinationRepository, conf *config.Config) DestinationService {
	return &destinationService{
		Config:          conf,
		destinationRepo: destinationRepo,
	}
}

func (d *destinationService) CreateDestination(userID uint, destination *models.Destination) (*models.Destination, *apiError.Error) {
	if !CanMutateDestination(userID) {
		return nil, apiError.ErrForbidden
	}

	if err := d.destinationRepo.CreateDestination(destination); err != nil {
		log.Printf("CreateDestination error: %v", err)
		return nil, apiError.GetUniqueConstraintError(err)
	}
	return destination, nil
}

func (d *destinationService) GetAllDestinations() ([]models.Destination, *apiError.Error) {
	destinations, err := d.destinationRepo.GetAllDestinations()
	if err != nil {
		log.Printf("GetAllDestinations error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return destinations, nil
}

func (d *destinationService) UpdateDestination(userID, destinationID uint, patch *models.UpdateDestinationRequest) (*models.Destination, *apiError.Error) {
	if !CanMutateDestination(userID) {
		return nil, apiError.ErrForbidden
	}

	if _, err := d.destinationRepo.FindDestinationByID(destinationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("destination not found", http.StatusNotFound)
		}
		return nil, apiError.ErrInternalServerError
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, apiError.New("at least one field is required for an update", http.StatusBadRequest)
	}

	updated, err := d.destinationRepo.UpdateDestination(destinationID, changes)
	if err != nil {
		log.Printf("UpdateDestination error for destination %d: %v", destinationID, err)
		return nil, apiError.ErrInternalServerError
	}
	return updated, nil
}

func (d *destinationService) DeleteDestination(userID, destinationID uint) *apiError.Error {
	if !CanMutateDestination(userID) {
		return apiError.ErrForbidden
	}

	if err := d.destinationRepo.DeleteDestination(destinationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("destination not found", http.StatusNotFound)
		}
		log.Printf("DeleteDestination error for destination %d: %v", destinationID, err)
		return apiError.ErrInternalServerError
	}
	return nil
}
