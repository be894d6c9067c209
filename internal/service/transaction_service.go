package service

import (
	"context"
	"strings"
	"time"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/repository"
	"rw-be-svc/pkg/logger"
)

// CreateTransactionInput holds a new ledger entry. Date is YYYY-MM-DD and defaults to today.
type CreateTransactionInput struct {
	Type        string
	Amount      int64
	Category    string
	Description string
	Date        string
	RTNumber    string
	CreatedBy   uint
}

// TransactionService interface defines ledger methods
type TransactionService interface {
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter, page, limit int) ([]*response.TransactionListItem, int64, error)
	GetSummary(ctx context.Context, year, month *int, rtNumber string) (*response.TransactionSummaryResponse, error)
}

// transactionService implements TransactionService interface
type transactionService struct {
	transactionRepo repository.TransactionRepository
	logger          *logger.Logger
	now             func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo repository.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateTransaction appends an entry to the ledger
func (s *transactionService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error) {
	txType := models.TransactionType(strings.ToLower(strings.TrimSpace(input.Type)))
	if !txType.Valid() {
		return nil, ErrInvalidTransactionType
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, ErrCategoryRequired
	}

	date := s.now()
	if input.Date != "" {
		parsed, err := time.ParseInLocation(models.DateLayout, input.Date, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	transaction := &models.Transaction{
		Type:            txType,
		Amount:          input.Amount,
		Category:        category,
		Description:     strings.TrimSpace(input.Description),
		TransactionDate: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local),
		CreatedBy:       input.CreatedBy,
	}
	if rt := strings.TrimSpace(input.RTNumber); rt != "" {
		transaction.RTNumber = &rt
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.logger.WithError(err).WithField("created_by", input.CreatedBy).Error("Failed to create transaction")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"transaction_id": transaction.ID,
		"type":           transaction.Type,
		"amount":         transaction.Amount,
	}).Info("Transaction created successfully")

	return transaction, nil
}

// ListTransactions returns ledger entries newest first
func (s *transactionService) ListTransactions(ctx context.Context, filter models.TransactionFilter, page, limit int) ([]*response.TransactionListItem, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	filter.Search = strings.TrimSpace(filter.Search)

	items, total, err := s.transactionRepo.List(ctx, filter, page, limit)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"page":  page,
			"limit": limit,
		}).Error("Failed to list transactions")
		return nil, 0, err
	}
	return items, total, nil
}

// GetSummary totals income and expense for a month, defaulting to the current one
func (s *transactionService) GetSummary(ctx context.Context, year, month *int, rtNumber string) (*response.TransactionSummaryResponse, error) {
	now := s.now()
	y, m := now.Year(), int(now.Month())
	if year != nil {
		y = *year
	}
	if month != nil {
		if *month < 1 || *month > 12 {
			return nil, ErrInvalidMonth
		}
		m = *month
	}

	totals, err := s.transactionRepo.SumByType(ctx, y, m, strings.TrimSpace(rtNumber))
	if err != nil {
		s.logger.WithError(err).WithField("year", y).WithField("month", m).Error("Failed to summarize transactions")
		return nil, err
	}

	summary := &response.TransactionSummaryResponse{
		Year:      y,
		Month:     m,
		MonthName: response.MonthNames[m],
	}
	for _, total := range totals {
		switch total.Type {
		case models.TransactionIncome:
			summary.Income = total.Total
		case models.TransactionExpense:
			summary.Expense = total.Total
		}
	}
	summary.Balance = summary.Income - summary.Expense

	return summary, nil
}
