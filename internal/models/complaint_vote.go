package models

import (
	"time"
)

// VoteType is the kind of a complaint vote
type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

// Valid reports whether v is upvote or downvote
func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// NextVote returns the vote a user holds after casting cast while holding current.
// Casting the held kind again withdraws it; casting the other kind replaces it.
func NextVote(current *VoteType, cast VoteType) *VoteType {
	if current != nil && *current == cast {
		return nil
	}
	v := cast
	return &v
}

// ComplaintVote represents the complaint_votes table.
// A user holds at most one vote per complaint.
type ComplaintVote struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ComplaintID uint      `json:"complaint_id" gorm:"column:complaint_id;not null;uniqueIndex:uq_complaint_votes_complaint_user,priority:1"`
	UserID      uint      `json:"user_id" gorm:"column:user_id;not null;uniqueIndex:uq_complaint_votes_complaint_user,priority:2"`
	VoteType    VoteType  `json:"vote_type" gorm:"column:vote_type;size:10;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the insert table name for ComplaintVote
func (ComplaintVote) TableName() string {
	return "complaint_votes"
}

// VoteCounts holds the tally of a complaint
type VoteCounts struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
}

// VoteOutcome is the result of casting a vote
type VoteOutcome struct {
	UserVote *VoteType
	Counts   VoteCounts
}
