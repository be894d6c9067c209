package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rw-be-svc/internal/models"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/repository"
	"rw-be-svc/internal/repository/mocks"
	"rw-be-svc/internal/service"
	"rw-be-svc/internal/storage"
	"rw-be-svc/pkg/logger"
)

// memoryPhotoStorage keeps photos in a map keyed by URL
type memoryPhotoStorage struct {
	photos map[string][]byte
}

func newMemoryPhotoStorage() *memoryPhotoStorage {
	return &memoryPhotoStorage{photos: make(map[string][]byte)}
}

func (s *memoryPhotoStorage) Save(ctx context.Context, photo *storage.Photo) (string, error) {
	url := "/uploads/" + storage.ComplaintPrefix + "/" + photo.Name
	s.photos[url] = photo.Data
	return url, nil
}

func (s *memoryPhotoStorage) Delete(ctx context.Context, url string) error {
	delete(s.photos, url)
	return nil
}

func (s *memoryPhotoStorage) List(ctx context.Context) ([]storage.StoredObject, error) {
	objects := make([]storage.StoredObject, 0, len(s.photos))
	for url := range s.photos {
		objects = append(objects, storage.StoredObject{URL: url})
	}
	return objects, nil
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestComplaintService_CreateComplaint_WithPhoto(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ComplaintRepository)
	photos := newMemoryPhotoStorage()
	repo.On("Create", ctx, mock.MatchedBy(func(c *models.Complaint) bool {
		return c.Status == models.DefaultComplaintStatus && c.PhotoURL != nil && c.CreatedBy == 3
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Complaint).ID = 12
	}).Return(nil).Once()
	svc := service.NewComplaintService(repo, photos, 0, logger.NewNopLogger())

	complaint, err := svc.CreateComplaint(ctx, service.CreateComplaintInput{
		Title:       "Lampu jalan mati",
		Description: "Sejak minggu lalu",
		RTNumber:    "1",
		CreatedBy:   3,
		Photo:       pngBytes(t, 4, 4),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(12), complaint.ID)
	require.NotNil(t, complaint.PhotoURL)
	assert.Contains(t, photos.photos, *complaint.PhotoURL)
	assert.Regexp(t, `^/uploads/complaints/complaint-[0-9a-f-]+\.png$`, *complaint.PhotoURL)
}

func TestComplaintService_CreateComplaint_RemovesPhotoWhenInsertFails(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ComplaintRepository)
	photos := newMemoryPhotoStorage()
	repo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset")).Once()
	svc := service.NewComplaintService(repo, photos, 0, logger.NewNopLogger())

	_, err := svc.CreateComplaint(ctx, service.CreateComplaintInput{
		Title:       "Got mampet",
		Description: "Air meluap",
		CreatedBy:   3,
		Photo:       pngBytes(t, 2, 2),
	})

	assert.Error(t, err)
	assert.Empty(t, photos.photos)
}

func TestComplaintService_CreateComplaint_Rejections(t *testing.T) {
	ctx := context.Background()
	svc := service.NewComplaintService(new(mocks.ComplaintRepository), newMemoryPhotoStorage(), 0, logger.NewNopLogger())

	_, err := svc.CreateComplaint(ctx, service.CreateComplaintInput{Title: "  ", Description: "x", CreatedBy: 1})
	assert.ErrorIs(t, err, service.ErrComplaintIncomplete)

	_, err = svc.CreateComplaint(ctx, service.CreateComplaintInput{
		Title:       "x",
		Description: "y",
		CreatedBy:   1,
		Photo:       []byte("%PDF-1.4 not an image"),
	})
	assert.ErrorIs(t, err, storage.ErrNotAnImage)
}

func TestComplaintService_ListComplaints(t *testing.T) {
	ctx := context.Background()

	t.Run("mine requires login", func(t *testing.T) {
		svc := service.NewComplaintService(new(mocks.ComplaintRepository), newMemoryPhotoStorage(), 0, logger.NewNopLogger())

		_, err := svc.ListComplaints(ctx, service.ListComplaintsInput{Filter: service.FilterMine})
		assert.ErrorIs(t, err, service.ErrFilterRequiresLogin)
	})

	t.Run("mine filters by caller", func(t *testing.T) {
		repo := new(mocks.ComplaintRepository)
		caller := uint(3)
		repo.On("List", ctx, models.ComplaintFilter{CreatedBy: &caller, Status: "pending"}).
			Return([]*response.ComplaintListItem{{ID: 1, CreatedBy: 3}}, nil).Once()
		svc := service.NewComplaintService(repo, newMemoryPhotoStorage(), 0, logger.NewNopLogger())

		items, err := svc.ListComplaints(ctx, service.ListComplaintsInput{Filter: service.FilterMine, Status: "pending", CallerID: &caller})

		require.NoError(t, err)
		assert.Len(t, items, 1)
		repo.AssertExpectations(t)
	})

	t.Run("anonymous listing ignores unknown filter", func(t *testing.T) {
		repo := new(mocks.ComplaintRepository)
		repo.On("List", ctx, models.ComplaintFilter{}).Return([]*response.ComplaintListItem{}, nil).Once()
		svc := service.NewComplaintService(repo, newMemoryPhotoStorage(), 0, logger.NewNopLogger())

		items, err := svc.ListComplaints(ctx, service.ListComplaintsInput{Filter: "all"})

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestComplaintService_DetailAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ComplaintRepository)
	repo.On("GetDetail", ctx, uint(5), (*uint)(nil)).Return(nil, repository.ErrNotFound).Once()
	repo.On("UpdateStatus", ctx, uint(5), "selesai").Return(repository.ErrNotFound).Once()
	svc := service.NewComplaintService(repo, newMemoryPhotoStorage(), 0, logger.NewNopLogger())

	_, err := svc.GetComplaintDetail(ctx, 5, nil)
	assert.ErrorIs(t, err, service.ErrComplaintNotFound)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, 5, " "), service.ErrStatusRequired)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 5, "selesai"), service.ErrComplaintNotFound)
}
