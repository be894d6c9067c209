package response

import (
	"time"

	"rw-be-svc/internal/models"
)

// TransactionListItem represents a single ledger entry in the list
type TransactionListItem struct {
	ID              uint                   `json:"id" example:"1"`
	Type            models.TransactionType `json:"type" swaggertype:"string" example:"income"`
	Amount          int64                  `json:"amount" example:"150000"`
	Category        string                 `json:"category" example:"Iuran"`
	Description     string                 `json:"description" example:"Iuran kebersihan Januari"`
	TransactionDate time.Time              `json:"transaction_date"`
	RTNumber        *string                `json:"rt_number" example:"01"`
	CreatedBy       uint                   `json:"created_by" example:"1"`
	CreatorName     string                 `json:"creator_name" example:"Bendahara"`
	CreatedAt       time.Time              `json:"created_at"`
	FormattedDate   string                 `json:"formatted_date" gorm:"-" example:"2025-01-31"`
}

// TransactionSummaryResponse represents monthly income and expense totals
type TransactionSummaryResponse struct {
	Year      int    `json:"year" example:"2025"`
	Month     int    `json:"month" example:"1"`
	MonthName string `json:"month_name" example:"Januari"`
	Income    int64  `json:"income" example:"1500000"`
	Expense   int64  `json:"expense" example:"400000"`
	Balance   int64  `json:"balance" example:"1100000"`
}

// TransactionTotal is a SUM(amount) grouped by type
type TransactionTotal struct {
	Type  models.TransactionType `json:"type"`
	Total int64                  `json:"total"`
}

// FormatTransactionDates fills FormattedDate on every item
func FormatTransactionDates(items []*TransactionListItem) {
	for _, item := range items {
		item.FormattedDate = item.TransactionDate.Format(models.DateLayout)
	}
}

// MonthNames maps month numbers to Indonesian month names
var MonthNames = map[int]string{
	1:  "Januari",
	2:  "Februari",
	3:  "Maret",
	4:  "April",
	5:  "Mei",
	6:  "Juni",
	7:  "Juli",
	8:  "Agustus",
	9:  "September",
	10: "Oktober",
	11: "November",
	12: "Desember",
}
