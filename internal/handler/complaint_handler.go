package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"rw-be-svc/internal/middleware"
	"rw-be-svc/internal/models/response"
	"rw-be-svc/internal/service"
	"rw-be-svc/internal/storage"
	"rw-be-svc/pkg/logger"
	"rw-be-svc/pkg/utils"
)

// ComplaintHandler handles complaint, vote and comment requests
type ComplaintHandler struct {
	complaintService service.ComplaintService
	voteService      service.VoteService
	commentService   service.CommentService
	logger           *logger.Logger
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService service.ComplaintService, voteService service.VoteService, commentService service.CommentService, logger *logger.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		voteService:      voteService,
		commentService:   commentService,
		logger:           logger,
	}
}

// UpdateStatusRequest represents a complaint status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,notblank" example:"in_progress"`
}

// VoteRequest represents a vote cast
type VoteRequest struct {
	VoteType string `json:"voteType" binding:"required" example:"upvote"`
}

// CommentRequest represents a new comment
type CommentRequest struct {
	Content string `json:"content" binding:"required,notblank" example:"Sudah dilaporkan ke kelurahan"`
}

// CreateComplaint handles POST /api/v1/complaints
// @Summary File a complaint
// @Description Create a complaint with an optional photo (max 5 MB, images only)
// @Tags complaints
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param location formData string false "Location"
// @Param rt_number formData string false "RT number"
// @Param photo formData file false "Photo"
// @Success 201 {object} utils.APIResponse{data=models.Complaint} "Complaint created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Please authenticate."
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/complaints [post]
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	input := service.CreateComplaintInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		RTNumber:    c.PostForm("rt_number"),
		CreatedBy:   user.ID,
	}

	file, err := c.FormFile("photo")
	switch {
	case err == nil:
		if file.Size > storage.MaxPhotoSize {
			handleServiceError(c, h.logger, storage.ErrPhotoTooLarge, "")
			return
		}
		opened, err := file.Open()
		if err != nil {
			h.logger.WithError(err).Error("Failed to open uploaded photo")
			utils.InternalServerErrorResponse(c, "Failed to read photo", err)
			return
		}
		defer opened.Close()

		data, err := io.ReadAll(io.LimitReader(opened, storage.MaxPhotoSize+1))
		if err != nil {
			h.logger.WithError(err).Error("Failed to read uploaded photo")
			utils.InternalServerErrorResponse(c, "Failed to read photo", err)
			return
		}
		input.Photo = data
	case errors.Is(err, http.ErrMissingFile):
	default:
		utils.BadRequestResponse(c, "Request must be multipart/form-data", err)
		return
	}

	complaint, err := h.complaintService.CreateComplaint(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to create complaint")
		return
	}

	utils.CreatedResponse(c, "Complaint created successfully", complaint)
}

// ListComplaints handles GET /api/v1/complaints
// @Summary List complaints
// @Description List complaints newest first. filter=me restricts to the caller's own complaints.
// @Tags complaints
// @Produce json
// @Param filter query string false "me"
// @Param rt_number query string false "RT number"
// @Param status query string false "Status"
// @Success 200 {object} utils.APIResponse{data=[]response.ComplaintListItem} "Complaints retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Authentication required to filter by user"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/complaints [get]
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	items, err := h.complaintService.ListComplaints(c.Request.Context(), service.ListComplaintsInput{
		Filter:   c.Query("filter"),
		RTNumber: c.Query("rt_number"),
		Status:   c.Query("status"),
		CallerID: callerID(c),
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get complaints")
		return
	}

	if items == nil {
		items = []*response.ComplaintListItem{}
	}
	utils.SuccessResponse(c, "Complaints retrieved successfully", items)
}

// GetComplaint handles GET /api/v1/complaints/:id
// @Summary Get complaint detail
// @Description Complaint with reporter, vote counts, comments and the caller's own vote
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse{data=response.ComplaintDetailResponse} "Complaint retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid complaint ID"
// @Failure 404 {object} utils.APIResponse "Complaint not found"
// @Router /api/v1/complaints/{id} [get]
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid complaint ID", err)
		return
	}

	detail, err := h.complaintService.GetComplaintDetail(c.Request.Context(), id, callerID(c))
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get complaint")
		return
	}

	utils.SuccessResponse(c, "Complaint retrieved successfully", detail)
}

// UpdateStatus handles PATCH /api/v1/complaints/:id/status
// @Summary Update complaint status
// @Description Set a free-form status. Allowed for admin, rw and rt.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse "Complaint status updated successfully"
// @Failure 400 {object} utils.APIResponse "Status is required"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 404 {object} utils.APIResponse "Complaint not found"
// @Router /api/v1/complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid complaint ID", err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleServiceError(c, h.logger, service.ErrStatusRequired, "")
		return
	}

	if err := h.complaintService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		handleServiceError(c, h.logger, err, "Failed to update complaint status")
		return
	}

	utils.SuccessResponse(c, "Complaint status updated successfully", gin.H{"id": id, "status": req.Status})
}

// Vote handles POST /api/v1/complaints/:id/vote
// @Summary Vote on a complaint
// @Description Casting the same kind again withdraws the vote; the other kind replaces it.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param request body VoteRequest true "upvote or downvote"
// @Success 200 {object} utils.APIResponse{data=response.VoteResponse} "Vote recorded successfully"
// @Failure 400 {object} utils.APIResponse "Invalid vote type"
// @Failure 401 {object} utils.APIResponse "Please authenticate."
// @Failure 404 {object} utils.APIResponse "Complaint not found"
// @Router /api/v1/complaints/{id}/vote [post]
func (h *ComplaintHandler) Vote(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid complaint ID", err)
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleServiceError(c, h.logger, service.ErrInvalidVoteType, "")
		return
	}

	resp, err := h.voteService.CastVote(c.Request.Context(), id, user.ID, req.VoteType)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to cast vote")
		return
	}

	utils.SuccessResponse(c, resp.Message, resp)
}

// AddComment handles POST /api/v1/complaints/:id/comments
// @Summary Comment on a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param request body CommentRequest true "Comment"
// @Success 201 {object} utils.APIResponse{data=response.CommentResponse} "Comment added successfully"
// @Failure 400 {object} utils.APIResponse "Comment content cannot be empty"
// @Failure 404 {object} utils.APIResponse "Complaint not found"
// @Router /api/v1/complaints/{id}/comments [post]
func (h *ComplaintHandler) AddComment(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid complaint ID", err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleServiceError(c, h.logger, service.ErrEmptyComment, "")
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), id, user.ID, req.Content)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to add comment")
		return
	}

	utils.CreatedResponse(c, "Comment added successfully", comment)
}

// ListComments handles GET /api/v1/complaints/:id/comments
// @Summary List comments
// @Description Comments of a complaint, oldest first
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse{data=[]response.CommentResponse} "Comments retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Complaint not found"
// @Router /api/v1/complaints/{id}/comments [get]
func (h *ComplaintHandler) ListComments(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid complaint ID", err)
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get comments")
		return
	}

	if comments == nil {
		comments = []response.CommentResponse{}
	}
	utils.SuccessResponse(c, "Comments retrieved successfully", comments)
}

// DeleteComment handles DELETE /api/v1/complaints/comments/:commentId
// @Summary Delete a comment
// @Description Authors may delete their own comments; admin and rw may delete any.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "Comment ID"
// @Success 200 {object} utils.APIResponse "Comment deleted successfully"
// @Failure 403 {object} utils.APIResponse "You do not have permission to delete this comment"
// @Failure 404 {object} utils.APIResponse "Comment not found"
// @Router /api/v1/complaints/comments/{commentId} [delete]
func (h *ComplaintHandler) DeleteComment(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	commentID, err := utils.GetIDParam(c, "commentId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid comment ID", err)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, user.ID, user.Role); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete comment")
		return
	}

	utils.SuccessResponse(c, "Comment deleted successfully", nil)
}

func callerID(c *gin.Context) *uint {
	return middleware.CurrentUserID(c)
}
