package models

import "time"

// Follow represents a directed follow edge between two users. The composite
// unique index guarantees at most one edge per (follower, followee) pair;
// self-edges are rejected before any write is attempted.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}
