package models

// Like marks a post as liked by a user. The composite unique index is what
// makes the like toggle safe under concurrent requests: a duplicate create
// loses the race at the store instead of producing a second row.
type Like struct {
	Model
	PostID uint `json:"postId" gorm:"not null;uniqueIndex:idx_likes_post_user"`
	UserID uint `json:"userId" gorm:"not null;uniqueIndex:idx_likes_post_user"`
}

// Like toggle outcomes.
const (
	LikeActionLike   = "like"
	LikeActionUnlike = "unlike"
)

type LikeToggleResponse struct {
	Action string `json:"action"`
	Like   *Like  `json:"like,omitempty"`
}
