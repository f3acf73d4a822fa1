package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfarehq/wayfare/models"
)

func seedDestination(t *testing.T, repo *fakeDestinationRepo, name string) *models.Destination {
	t.Helper()
	d := &models.Destination{DestinationName: name}
	require.NoError(t, repo.CreateDestination(d))
	return d
}

func TestCreateTripSetsOwner(t *testing.T) {
	destRepo := newFakeDestinationRepo()
	dest := seedDestination(t, destRepo, "Kyoto")
	svc := NewTripService(newFakeTripRepo(), destRepo, testConfig())

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	trip, apiErr := svc.CreateTrip(7, &models.Trip{
		TripName:      "autumn leaves",
		DestinationID: dest.ID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 10),
	})
	require.Nil(t, apiErr)
	assert.Equal(t, uint(7), trip.UserID)
	assert.NotZero(t, trip.ID)
}

func TestCreateTripDanglingDestination(t *testing.T) {
	svc := NewTripService(newFakeTripRepo(), newFakeDestinationRepo(), testConfig())

	start := time.Now()
	_, apiErr := svc.CreateTrip(7, &models.Trip{
		TripName:      "nowhere",
		DestinationID: 99,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 1),
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestCreateTripEndBeforeStart(t *testing.T) {
	destRepo := newFakeDestinationRepo()
	dest := seedDestination(t, destRepo, "Kyoto")
	svc := NewTripService(newFakeTripRepo(), destRepo, testConfig())

	start := time.Now()
	_, apiErr := svc.CreateTrip(7, &models.Trip{
		TripName:      "backwards",
		DestinationID: dest.ID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, -1),
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestUpdateTripNotOwner(t *testing.T) {
	destRepo := newFakeDestinationRepo()
	dest := seedDestination(t, destRepo, "Kyoto")
	tripRepo := newFakeTripRepo()
	svc := NewTripService(tripRepo, destRepo, testConfig())

	start := time.Now()
	trip, apiErr := svc.CreateTrip(7, &models.Trip{
		TripName:      "mine",
		DestinationID: dest.ID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 3),
	})
	require.Nil(t, apiErr)

	name := "stolen"
	_, apiErr = svc.UpdateTrip(8, trip.ID, &models.UpdateTripRequest{TripName: &name})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func TestUpdateTripUnknown(t *testing.T) {
	svc := NewTripService(newFakeTripRepo(), newFakeDestinationRepo(), testConfig())

	name := "ghost"
	_, apiErr := svc.UpdateTrip(7, 99, &models.UpdateTripRequest{TripName: &name})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestUpdateTripEmptyPatch(t *testing.T) {
	destRepo := newFakeDestinationRepo()
	dest := seedDestination(t, destRepo, "Kyoto")
	svc := NewTripService(newFakeTripRepo(), destRepo, testConfig())

	start := time.Now()
	trip, apiErr := svc.CreateTrip(7, &models.Trip{
		TripName:      "mine",
		DestinationID: dest.ID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 3),
	})
	require.Nil(t, apiErr)

	_, apiErr = svc.UpdateTrip(7, trip.ID, &models.UpdateTripRequest{})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestUpdateTripPartialPatchKeepsOtherFields(t *testing.T) {
	destRepo := newFakeDestinationRepo()
	dest := seedDestination(t, destRepo, "Kyoto")
	svc := NewTripService(newFakeTripRepo(), destRepo, testConfig())

	start := time.Now()
	trip, apiErr := svc.CreateTrip(7, &models.Trip{
		TripName:      "original",
		DestinationID: dest.ID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 3),
	})
	require.Nil(t, apiErr)

	name := "renamed"
	updated, apiErr := svc.UpdateTrip(7, trip.ID, &models.UpdateTripRequest{TripName: &name})
	require.Nil(t, apiErr)
	assert.Equal(t, "renamed", updated.TripName)
	assert.Equal(t, dest.ID, updated.DestinationID)
}

func TestUpdateTripDanglingDestination(t *testing.T) {
	destRepo := newFakeDestinationRepo()
	dest := seedDestination(t, destRepo, "Kyoto")
	svc := NewTripService(newFakeTripRepo(), destRepo, testConfig())

	start := time.Now()
	trip, apiErr := svc.CreateTrip(7, &models.Trip{
		TripName:      "mine",
		DestinationID: dest.ID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 3),
	})
	require.Nil(t, apiErr)

	bogus := uint(99)
	_, apiErr = svc.UpdateTrip(7, trip.ID, &models.UpdateTripRequest{DestinationID: &bogus})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestUpdateTripRejectsInvertedDates(t *testing.T) {
	destRepo := newFakeDestinationRepo()
	dest := seedDestination(t, destRepo, "Kyoto")
	svc := NewTripService(newFakeTripRepo(), destRepo, testConfig())

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	trip, apiErr := svc.CreateTrip(7, &models.Trip{
		TripName:      "mine",
		DestinationID: dest.ID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 5),
	})
	require.Nil(t, apiErr)

	// Patching only the end date below the stored start date inverts the
	// merged range and must fail.
	badEnd := start.AddDate(0, 0, -1)
	_, apiErr = svc.UpdateTrip(7, trip.ID, &models.UpdateTripRequest{EndDate: &badEnd})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	// Same for a start date pushed past the stored end date.
	badStart := start.AddDate(0, 0, 10)
	_, apiErr = svc.UpdateTrip(7, trip.ID, &models.UpdateTripRequest{StartDate: &badStart})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	// Moving both ends together stays valid.
	newStart := start.AddDate(0, 1, 0)
	newEnd := newStart.AddDate(0, 0, 3)
	updated, apiErr := svc.UpdateTrip(7, trip.ID, &models.UpdateTripRequest{StartDate: &newStart, EndDate: &newEnd})
	require.Nil(t, apiErr)
	assert.Equal(t, newStart, updated.StartDate)
}

func TestDeleteTripNotFound(t *testing.T) {
	svc := NewTripService(newFakeTripRepo(), newFakeDestinationRepo(), testConfig())

	apiErr := svc.DeleteTrip(7, 99)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestDeleteTripNotOwner(t *testing.T) {
	destRepo := newFakeDestinationRepo()
	dest := seedDestination(t, destRepo, "Kyoto")
	svc := NewTripService(newFakeTripRepo(), destRepo, testConfig())

	start := time.Now()
	trip, apiErr := svc.CreateTrip(7, &models.Trip{
		TripName:      "mine",
		DestinationID: dest.ID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 3),
	})
	require.Nil(t, apiErr)

	apiErr = svc.DeleteTrip(8, trip.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}
