package response

import (
	"time"

	"rw-be-svc/internal/models"
)

// ComplaintListItem represents a complaint row with reporter and tallies
type ComplaintListItem struct {
	ID            uint      `json:"id" example:"1"`
	Title         string    `json:"title" example:"Lampu jalan mati"`
	Description   string    `json:"description" example:"Lampu di depan pos ronda mati sejak minggu lalu"`
	Location      string    `json:"location" example:"Jl. Melati No. 3"`
	RTNumber      string    `json:"rt_number" example:"01"`
	PhotoURL      *string   `json:"photo_url" example:"/uploads/complaints/complaint-1f0c.jpg"`
	Status        string    `json:"status" example:"pending"`
	CreatedBy     uint      `json:"created_by" example:"3"`
	CreatedAt     time.Time `json:"created_at"`
	ReporterName  string    `json:"reporter_name" example:"Budi"`
	FormattedDate string    `json:"formatted_date" gorm:"-" example:"2025-01-31 14:05"`
	Upvotes       int64     `json:"upvotes" example:"4"`
	Downvotes     int64     `json:"downvotes" example:"1"`
	CommentCount  int64     `json:"comment_count" example:"2"`
}

// CommentResponse represents a comment joined with its author
type CommentResponse struct {
	ID            uint      `json:"id" example:"1"`
	ComplaintID   uint      `json:"complaint_id" example:"1"`
	UserID        uint      `json:"user_id" example:"3"`
	Content       string    `json:"content" example:"Sudah dilaporkan ke kelurahan"`
	CreatedAt     time.Time `json:"created_at"`
	CommenterName string    `json:"commenter_name" example:"Siti"`
	FormattedDate string    `json:"formatted_date" gorm:"-" example:"2025-01-31 15:10"`
}

// ComplaintDetailResponse is a complaint with its comments and the caller's vote
type ComplaintDetailResponse struct {
	ComplaintListItem
	Comments []CommentResponse `json:"comments"`
	UserVote *models.VoteType  `json:"userVote" swaggertype:"string" example:"upvote"`
}

// VoteResponse is returned after casting a vote
type VoteResponse struct {
	Message   string           `json:"message" example:"Vote recorded successfully"`
	UserVote  *models.VoteType `json:"userVote" swaggertype:"string" example:"upvote"`
	Upvotes   int64            `json:"upvotes" example:"1"`
	Downvotes int64            `json:"downvotes" example:"0"`
}

// FormatComplaintDates fills FormattedDate on every item
func FormatComplaintDates(items []*ComplaintListItem) {
	for _, item := range items {
		item.FormattedDate = item.CreatedAt.Format(models.DateTimeLayout)
	}
}

// FormatCommentDates fills FormattedDate on every comment
func FormatCommentDates(comments []CommentResponse) {
	for i := range comments {
		comments[i].FormattedDate = comments[i].CreatedAt.Format(models.DateTimeLayout)
	}
}
