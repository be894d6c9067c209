package models

import (
	"time"
)

// ComplaintComment represents the complaint_comments table
type ComplaintComment struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ComplaintID uint      `json:"complaint_id" gorm:"column:complaint_id;not null;index:idx_complaint_comments_complaint_created,priority:1"`
	UserID      uint      `json:"user_id" gorm:"column:user_id;not null"`
	Content     string    `json:"content" gorm:"column:content;type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_complaint_comments_complaint_created,priority:2"`
}

// TableName sets the insert table name for ComplaintComment
func (ComplaintComment) TableName() string {
	return "complaint_comments"
}
