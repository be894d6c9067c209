package repository

import (
	"context"
	"strings"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"

	"gorm.io/gorm"
)

// likeEscaper makes search terms match literally inside an ILIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// TransactionRepository defines the interface for ledger data operations
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	List(ctx context.Context, filter models.TransactionFilter, page, limit int) ([]*response.TransactionListItem, int64, error)
	SumByType(ctx context.Context, year, month int, rtNumber string) ([]response.TransactionTotal, error)
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts a ledger entry
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

// List retrieves ledger entries with optional year, search and RT filters and pagination
func (r *transactionRepository) List(ctx context.Context, filter models.TransactionFilter, page, limit int) ([]*response.TransactionListItem, int64, error) {
	items := []*response.TransactionListItem{}
	var total int64

	countQuery := `
		SELECT COUNT(*)
		FROM transactions t
		WHERE 1=1
	`

	dataQuery := `
		SELECT t.id, t.type, t.amount, t.category, t.description, t.transaction_date,
			   t.rt_number, t.created_by, t.created_at,
			   COALESCE(u.name, '') AS creator_name
		FROM transactions t
		LEFT JOIN users u ON u.id = t.created_by
		WHERE 1=1
	`

	var args []interface{}

	// Add year filter if provided
	if filter.Year != nil {
		countQuery += " AND EXTRACT(YEAR FROM t.transaction_date) = ?"
		dataQuery += " AND EXTRACT(YEAR FROM t.transaction_date) = ?"
		args = append(args, *filter.Year)
	}

	// Add search filter if provided
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		countQuery += ` AND (t.category ILIKE ? ESCAPE '\' OR t.description ILIKE ? ESCAPE '\')`
		dataQuery += ` AND (t.category ILIKE ? ESCAPE '\' OR t.description ILIKE ? ESCAPE '\')`
		args = append(args, pattern, pattern)
	}

	// Add RT filter if provided
	if filter.RTNumber != "" {
		countQuery += " AND t.rt_number = ?"
		dataQuery += " AND t.rt_number = ?"
		args = append(args, filter.RTNumber)
	}

	dataQuery += `
		ORDER BY t.transaction_date DESC, t.created_at DESC
		LIMIT ? OFFSET ?
	`

	offset := (page - 1) * limit
	dataArgs := append(append([]interface{}{}, args...), limit, offset)

	db := r.db.WithContext(ctx)

	if err := db.Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Raw(dataQuery, dataArgs...).Scan(&items).Error; err != nil {
		return nil, 0, err
	}

	response.FormatTransactionDates(items)
	return items, total, nil
}

// SumByType totals amounts per type for one month
func (r *transactionRepository) SumByType(ctx context.Context, year, month int, rtNumber string) ([]response.TransactionTotal, error) {
	var totals []response.TransactionTotal

	query := `
		SELECT t.type, COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		WHERE EXTRACT(YEAR FROM t.transaction_date) = ?
		  AND EXTRACT(MONTH FROM t.transaction_date) = ?
	`
	args := []interface{}{year, month}

	if rtNumber != "" {
		query += " AND t.rt_number = ?"
		args = append(args, rtNumber)
	}

	query += " GROUP BY t.type"

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&totals).Error; err != nil {
		return nil, err
	}

	return totals, nil
}
