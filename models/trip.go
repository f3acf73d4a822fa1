package models

import "time"

// Trip is a planned journey to a destination, owned by its creating user.
type Trip struct {
	Model
	TripName      string       `json:"tripName" gorm:"not null" binding:"required" conform:"trim"`
	DestinationID uint         `json:"destinationId" gorm:"not null" binding:"required"`
	Destination   *Destination `json:"destination,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	StartDate     time.Time    `json:"startDate" gorm:"not null" binding:"required"`
	EndDate       time.Time    `json:"endDate" gorm:"not null" binding:"required"`
	UserID        uint         `json:"userId" gorm:"not null;index"`
}

// UpdateTripRequest carries the merge-patch for a trip; omitted fields keep
// their prior values.
type UpdateTripRequest struct {
	TripName      *string    `json:"tripName" conform:"trim"`
	DestinationID *uint      `json:"destinationId"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
}

func (r *UpdateTripRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.TripName != nil {
		changes["trip_name"] = *r.TripName
	}
	if r.DestinationID != nil {
		changes["destination_id"] = *r.DestinationID
	}
	if r.StartDate != nil {
		changes["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		changes["end_date"] = *r.EndDate
	}
	return changes
}
