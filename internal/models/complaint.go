package models

import (
	"time"
)

// DefaultComplaintStatus is assigned to newly filed complaints
const DefaultComplaintStatus = "pending"

// Complaint represents the complaints table
type Complaint struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"column:title;size:255;not null"`
	Description string    `json:"description" gorm:"column:description;type:text;not null"`
	Location    string    `json:"location" gorm:"column:location;size:255"`
	RTNumber    string    `json:"rt_number" gorm:"column:rt_number;size:10;index"`
	PhotoURL    *string   `json:"photo_url" gorm:"column:photo_url;size:512"`
	Status      string    `json:"status" gorm:"column:status;size:50;not null;default:pending"`
	CreatedBy   uint      `json:"created_by" gorm:"column:created_by;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Complaint
func (Complaint) TableName() string {
	return "complaints"
}

// ComplaintFilter narrows a complaint listing
type ComplaintFilter struct {
	CreatedBy *uint
	RTNumber  string
	Status    string
}
