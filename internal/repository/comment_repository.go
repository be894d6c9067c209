package repository

import (
	"context"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for complaint comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.ComplaintComment) (*response.CommentResponse, error)
	GetByID(ctx context.Context, id uint) (*models.ComplaintComment, error)
	ListByComplaint(ctx context.Context, complaintID uint) ([]response.CommentResponse, error)
	Delete(ctx context.Context, id uint) error
}

// commentRepository implements CommentRepository
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{
		db: db,
	}
}

const commentSelect = `
	SELECT cc.id, cc.complaint_id, cc.user_id, cc.content, cc.created_at,
		   COALESCE(u.name, '') AS commenter_name
	FROM complaint_comments cc
	LEFT JOIN users u ON u.id = cc.user_id
`

// Create inserts a comment and returns it joined with the commenter name
func (r *commentRepository) Create(ctx context.Context, comment *models.ComplaintComment) (*response.CommentResponse, error) {
	db := r.db.WithContext(ctx)
	if err := db.Create(comment).Error; err != nil {
		return nil, err
	}

	var created response.CommentResponse
	if err := db.Raw(commentSelect+" WHERE cc.id = ?", comment.ID).Scan(&created).Error; err != nil {
		return nil, err
	}
	created.FormattedDate = created.CreatedAt.Format(models.DateTimeLayout)

	return &created, nil
}

// GetByID retrieves a comment by ID
func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.ComplaintComment, error) {
	var comment models.ComplaintComment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &comment, nil
}

// ListByComplaint retrieves the comments of a complaint, oldest first
func (r *commentRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]response.CommentResponse, error) {
	return listComments(r.db.WithContext(ctx), complaintID)
}

// Delete removes a comment
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ComplaintComment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func listComments(db *gorm.DB, complaintID uint) ([]response.CommentResponse, error) {
	comments := []response.CommentResponse{}
	query := commentSelect + " WHERE cc.complaint_id = ? ORDER BY cc.created_at ASC, cc.id ASC"
	if err := db.Raw(query, complaintID).Scan(&comments).Error; err != nil {
		return nil, err
	}
	response.FormatCommentDates(comments)
	return comments, nil
}
