package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/wayfarehq/wayfare/errors"
	"github.com/wayfarehq/wayfare/models"
	"github.com/wayfarehq/wayfare/server/response"
)

func (s *Server) handleGetAllDestinations() gin.HandlerFunc {
	return func(c *gin.Context) {
		destinations, apiErr := s.DestinationService.GetAllDestinations()
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "", http.StatusOK, destinations, nil)
	}
}

func (s *Server) handleCreateDestination() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		var destination models.Destination
		if err := decode(c, &destination); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		created, apiErr := s.DestinationService.CreateDestination(userID, &destination)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "destination created successfully", http.StatusCreated, created, nil)
	}
}

func (s *Server) handleUpdateDestination() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}
		destinationID, err := uintParam(c, "id")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		var patch models.UpdateDestinationRequest
		if err := decode(c, &patch); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		updated, apiErr := s.DestinationService.UpdateDestination(userID, destinationID, &patch)
		if apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		response.JSON(c, "destination updated successfully", http.StatusOK, updated, nil)
	}
}

func (s *Server) handleDeleteDestination() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}
		destinationID, err := uintParam(c, "id")
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		if apiErr := s.DestinationService.DeleteDestination(userID, destinationID); apiErr != nil {
			abortWithAPIError(c, apiErr)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
