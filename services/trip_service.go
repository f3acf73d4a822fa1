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

type TripService interface {
	CreateTrip(userID uint, trip *models.Trip) (*models.Trip, *apiError.Error)
	GetUserTrips(userID uint) ([]models.Trip, *apiError.Error)
	UpdateTrip(userID, tripID uint, patch *models.UpdateTripRequest) (*models.Trip, *apiError.Error)
	DeleteTrip(userID, tripID uint) *apiError.Error
}

type tripService struct {
	Config          *config.Config
	tripRepo        db.TripRepository
	destinationRepo db.DestinationRepository
}

func NewTripService(tripRepo db.TripRepository, destinationRepo db.DestinationRepository, conf *config.Config) TripService {
	return &tripService{
		Config:          conf,
		tripRepo:        tripRepo,
		destinationRepo: destinationRepo,
	}
}

func (t *tripService) CreateTrip(userID uint, trip *models.Trip) (*models.Trip, *apiError.Error) {
	// A dangling destination id fails before anything is written.
	if _, err := t.destinationRepo.FindDestinationByID(trip.DestinationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("invalid destination", http.StatusBadRequest)
		}
		return nil, apiError.ErrInternalServerError
	}

	if trip.EndDate.Before(trip.StartDate) {
		return nil, apiError.New("end date must not precede start date", http.StatusBadRequest)
	}

	trip.UserID = userID
	if err := t.tripRepo.CreateTrip(trip); err != nil {
		log.Printf("CreateTrip error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return trip, nil
}

func (t *tripService) GetUserTrips(userID uint) ([]models.Trip, *apiError.Error) {
	trips, err := t.tripRepo.GetTripsByUserID(userID)
	if err != nil {
		log.Printf("GetUserTrips error for user %d: %v", userID, err)
		return nil, apiError.ErrInternalServerError
	}
	return trips, nil
}

func (t *tripService) UpdateTrip(userID, tripID uint, patch *models.UpdateTripRequest) (*models.Trip, *apiError.Error) {
	trip, err := t.tripRepo.FindTripByID(tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("trip not found", http.StatusNotFound)
		}
		return nil, apiError.ErrInternalServerError
	}

	if !IsOwner(userID, trip.UserID) {
		return nil, apiError.New("unauthorized to update this trip", http.StatusForbidden)
	}

	if patch.DestinationID != nil {
		if _, err := t.destinationRepo.FindDestinationByID(*patch.DestinationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apiError.New("invalid destination", http.StatusBadRequest)
			}
			return nil, apiError.ErrInternalServerError
		}
	}

	// The merged date range must stay ordered; a partial patch of either
	// end can invert it otherwise.
	startDate, endDate := trip.StartDate, trip.EndDate
	if patch.StartDate != nil {
		startDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		endDate = *patch.EndDate
	}
	if endDate.Before(startDate) {
		return nil, apiError.New("end date must not precede start date", http.StatusBadRequest)
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, apiError.New("at least one field is required for an update", http.StatusBadRequest)
	}

	updated, err := t.tripRepo.UpdateTrip(tripID, changes)
	if err != nil {
		log.Printf("UpdateTrip error for trip %d: %v", tripID, err)
		return nil, apiError.ErrInternalServerError
	}
	return updated, nil
}

func (t *tripService) DeleteTrip(userID, tripID uint) *apiError.Error {
	trip, err := t.tripRepo.FindTripByID(tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("trip not found", http.StatusNotFound)
		}
		return apiError.ErrInternalServerError
	}

	if !IsOwner(userID, trip.UserID) {
		return apiError.New("unauthorized to delete this trip", http.StatusForbidden)
	}

	if err := t.tripRepo.DeleteTrip(tripID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("trip not found", http.StatusNotFound)
		}
		log.Printf("DeleteTrip error for trip %d: %v", tripID, err)
		return apiError.ErrInternalServerError
	}
	return nil
}
