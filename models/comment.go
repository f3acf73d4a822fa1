package models

// Comment is a user's comment on a post.
type Comment struct {
	Model
	Text   string `json:"text" gorm:"type:text;not null" binding:"required"`
	PostID uint   `json:"postId" gorm:"not null;index"`
	UserID uint   `json:"userId" gorm:"not null;index"`
	User   *User  `json:"user,omitempty"`
}

type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

func (r *UpdateCommentRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Text != nil {
		changes["text"] = *r.Text
	}
	return changes
}
