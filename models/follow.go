package models

// Follow is a directed edge: FollowedByID follows FollowingID. The unique
// index forbids duplicate edges for the same ordered pair.
type Follow struct {
	Model
	FollowedByID uint `json:"followedById" gorm:"not null;uniqueIndex:idx_follows_edge"`
	FollowingID  uint `json:"followingId" gorm:"not null;uniqueIndex:idx_follows_edge"`
}
