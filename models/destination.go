package models

// Destination is a place trips and posts are tied to.
type Destination struct {
	Model
	DestinationName string `json:"destinationName" gorm:"uniqueIndex;not null" binding:"required" conform:"trim"`
}

type UpdateDestinationRequest struct {
	DestinationName *string `json:"destinationName" conform:"trim"`
}

func (r *UpdateDestinationRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.DestinationName != nil {
		changes["destination_name"] = *r.DestinationName
	}
	return changes
}
