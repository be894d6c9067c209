package repository

import (
	"context"
	"database/sql"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"

	"gorm.io/gorm"
)

// ComplaintRepository defines the interface for complaint data operations
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter models.ComplaintFilter) ([]*response.ComplaintListItem, error)
	GetDetail(ctx context.Context, id uint, callerID *uint) (*response.ComplaintDetailResponse, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	ListPhotoURLs(ctx context.Context) ([]string, error)
}

// complaintRepository implements ComplaintRepository
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new instance of ComplaintRepository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{
		db: db,
	}
}

const complaintSelect = `
	SELECT c.id, c.title, c.description, c.location, c.rt_number, c.photo_url,
		   c.status, c.created_by, c.created_at,
		   COALESCE(u.name, '') AS reporter_name,
		   (SELECT COUNT(*) FROM complaint_votes v WHERE v.complaint_id = c.id AND v.vote_type = 'upvote') AS upvotes,
		   (SELECT COUNT(*) FROM complaint_votes v WHERE v.complaint_id = c.id AND v.vote_type = 'downvote') AS downvotes,
		   (SELECT COUNT(*) FROM complaint_comments cc WHERE cc.complaint_id = c.id) AS comment_count
	FROM complaints c
	LEFT JOIN users u ON u.id = c.created_by
`

// Create inserts a complaint
func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.DefaultComplaintStatus
	}
	return r.db.WithContext(ctx).Create(complaint).Error
}

// Exists checks whether a complaint exists
func (r *complaintRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM complaints WHERE id = ?)`, id).
		Scan(&exists).Error
	return exists, err
}

// List retrieves complaints with reporter name and tallies, newest first
func (r *complaintRepository) List(ctx context.Context, filter models.ComplaintFilter) ([]*response.ComplaintListItem, error) {
	items := []*response.ComplaintListItem{}

	query := complaintSelect + " WHERE 1=1"
	var args []interface{}

	if filter.CreatedBy != nil {
		query += " AND c.created_by = ?"
		args = append(args, *filter.CreatedBy)
	}
	if filter.RTNumber != "" {
		query += " AND c.rt_number = ?"
		args = append(args, filter.RTNumber)
	}
	if filter.Status != "" {
		query += " AND c.status = ?"
		args = append(args, filter.Status)
	}

	query += " ORDER BY c.created_at DESC, c.id DESC"

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&items).Error; err != nil {
		return nil, err
	}

	response.FormatComplaintDates(items)
	return items, nil
}

// GetDetail assembles a complaint, its comments and the caller's vote from one snapshot
func (r *complaintRepository) GetDetail(ctx context.Context, id uint, callerID *uint) (*response.ComplaintDetailResponse, error) {
	var detail response.ComplaintDetailResponse

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item response.ComplaintListItem
		if err := tx.Raw(complaintSelect+" WHERE c.id = ?", id).Scan(&item).Error; err != nil {
			return err
		}
		if item.ID == 0 {
			return ErrNotFound
		}
		item.FormattedDate = item.CreatedAt.Format(models.DateTimeLayout)
		detail.ComplaintListItem = item

		comments, err := listComments(tx, id)
		if err != nil {
			return err
		}
		detail.Comments = comments

		if callerID != nil {
			vote, err := findUserVote(tx, id, *callerID)
			if err != nil {
				return err
			}
			detail.UserVote = vote
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

// UpdateStatus sets the status of a complaint
func (r *complaintRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPhotoURLs returns every photo URL referenced by a complaint
func (r *complaintRepository) ListPhotoURLs(ctx context.Context) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT photo_url FROM complaints WHERE photo_url IS NOT NULL AND photo_url <> ''`).
		Scan(&urls).Error
	return urls, err
}
