package models

// Post is a user's shared content about a destination. Deleting a post
// removes its comments and likes with it.
type Post struct {
	Model
	Text          string       `json:"text" gorm:"type:text;not null" binding:"required"`
	PostImg       string       `json:"postImg"`
	DestinationID uint         `json:"destinationId" gorm:"not null" binding:"required"`
	Destination   *Destination `json:"destination,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	UserID        uint         `json:"userId" gorm:"not null;index"`
	Comments      []Comment    `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Likes         []Like       `json:"likes,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type UpdatePostRequest struct {
	Text          *string `json:"text"`
	PostImg       *string `json:"postImg"`
	DestinationID *uint   `json:"destinationId"`
}

func (r *UpdatePostRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Text != nil {
		changes["text"] = *r.Text
	}
	if r.PostImg != nil {
		changes["post_img"] = *r.PostImg
	}
	if r.DestinationID != nil {
		changes["destination_id"] = *r.DestinationID
	}
	return changes
}
