package models

import (
	"time"
)

// LogScheduler represents the log_schedulers table
type LogScheduler struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	DocumentID    string    `json:"document_id" gorm:"column:document_id;size:64;index"`
	SchedulerCode string    `json:"scheduler_code" gorm:"column:scheduler_code;size:100"`
	Message       string    `json:"message" gorm:"column:message;type:text"`
	Status        string    `json:"status" gorm:"column:status;size:20"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName sets the insert table name for LogScheduler
func (LogScheduler) TableName() string {
	return "log_schedulers"
}
