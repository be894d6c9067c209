package models

import (
	"time"
)

// Date layouts used in API payloads
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// TransactionType is the direction of a ledger entry
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is income or expense
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction represents the transactions table. Amount is in rupiah.
type Transaction struct {
	ID              uint            `json:"id" gorm:"primarykey"`
	Type            TransactionType `json:"type" gorm:"column:type;size:10;not null;index"`
	Amount          int64           `json:"amount" gorm:"column:amount;not null"`
	Category        string          `json:"category" gorm:"column:category;size:100;not null"`
	Description     string          `json:"description" gorm:"column:description;type:text"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"column:transaction_date;type:date;not null;index"`
	RTNumber        *string         `json:"rt_number" gorm:"column:rt_number;size:10"`
	CreatedBy       uint            `json:"created_by" gorm:"column:created_by;not null"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TableName sets the insert table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionFilter narrows a ledger listing
type TransactionFilter struct {
	Year     *int
	Search   string
	RTNumber string
}
