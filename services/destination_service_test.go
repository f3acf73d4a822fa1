package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfarehq/wayfare/models"
)

func TestCreateDestinationRequiresAuthenticatedUser(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo(), testConfig())

	_, apiErr := svc.CreateDestination(0, &models.Destination{DestinationName: "Lisbon"})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func TestCreateDestinationRejectsDuplicateName(t *testing.T) {
	repo := newFakeDestinationRepo()
	seedDestination(t, repo, "Lisbon")
	svc := NewDestinationService(repo, testConfig())

	_, apiErr := svc.CreateDestination(1, &models.Destination{DestinationName: "Lisbon"})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestUpdateDestinationUnknown(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo(), testConfig())

	name := "Porto"
	_, apiErr := svc.UpdateDestination(1, 99, &models.UpdateDestinationRequest{DestinationName: &name})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestUpdateDestinationEmptyPatch(t *testing.T) {
	repo := newFakeDestinationRepo()
	dest := seedDestination(t, repo, "Lisbon")
	svc := NewDestinationService(repo, testConfig())

	_, apiErr := svc.UpdateDestination(1, dest.ID, &models.UpdateDestinationRequest{})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestUpdateDestinationRenames(t *testing.T) {
	repo := newFakeDestinationRepo()
	dest := seedDestination(t, repo, "Lisbon")
	svc := NewDestinationService(repo, testConfig())

	name := "Lisboa"
	updated, apiErr := svc.UpdateDestination(1, dest.ID, &models.UpdateDestinationRequest{DestinationName: &name})
	require.Nil(t, apiErr)
	assert.Equal(t, "Lisboa", updated.DestinationName)
}

func TestDeleteDestinationUnknown(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo(), testConfig())

	apiErr := svc.DeleteDestination(1, 99)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}
