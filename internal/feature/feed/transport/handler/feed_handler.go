// Package handler provides the HTTP handlers for the feed feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"profiles_backend/internal/api"
	"profiles_backend/internal/feature/feed/domain/entity"
	"profiles_backend/internal/feature/feed/usecase"
	"profiles_backend/internal/platform/authmw"
	"profiles_backend/internal/shared/authz"
	"profiles_backend/internal/shared/validation"
)

// FeedUsecase defines the feed operations consumed by this handler.
type FeedUsecase interface {
	Create(ctx context.Context, ownerID uint, statusText string) (*entity.FeedItem, error)
	Get(ctx context.Context, id uint) (*entity.FeedItem, error)
	List(ctx context.Context) ([]*entity.FeedItem, error)
	Update(ctx context.Context, id uint, statusText string) (*entity.FeedItem, error)
	Delete(ctx context.Context, id uint) error
}

// FeedHandler handles HTTP requests for feed items. Every route sits behind
// the auth middleware; reads are open to any authenticated user, mutations
// only to the item's owner.
type FeedHandler struct {
	feed  FeedUsecase
	guard authz.Guard
}

// NewFeedHandler creates a new instance of FeedHandler.
func NewFeedHandler(feed FeedUsecase, guard authz.Guard) *FeedHandler {
	return &FeedHandler{feed: feed, guard: guard}
}

// parseID reads the :id path parameter, answering 404 for non-numeric ids.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return 0, false
	}
	return uint(id), true
}

// toFeedItemResponse maps the entity to its API shape.
func toFeedItemResponse(item *entity.FeedItem) api.FeedItemResponse {
	return api.FeedItemResponse{
		Id:         int(item.ID),
		Owner:      int(item.OwnerID),
		StatusText: item.StatusText,
		CreatedOn:  item.CreatedAt,
	}
}

// List returns all feed items, newest first.
func (h *FeedHandler) List(c *gin.Context) {
	items, err := h.feed.List(c.Request.Context())
	if err != nil {
		slog.Error("feed list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]api.FeedItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toFeedItemResponse(item))
	}
	c.JSON(http.StatusOK, out)
}

// Create stores a new feed item. The owner is always the authenticated user;
// any owner value in the request body is ignored by the binding.
func (h *FeedHandler) Create(c *gin.Context) {
	var req api.CreateFeedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: validation.FieldErrors(err)})
		return
	}

	item, err := h.feed.Create(c.Request.Context(), c.GetUint(authmw.ContextUserID), req.StatusText)
	if err != nil {
		slog.Error("feed create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusCreated, toFeedItemResponse(item))
}

// Get retrieves a single feed item.
func (h *FeedHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.feed.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFeedItemResponse(item))
}

// Update replaces the status text of a feed item. Owner only.
func (h *FeedHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.feed.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !h.guard.CanModify(c.Request.Method, c.GetUint(authmw.ContextUserID), item.OwnerID) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "you can only modify your own status"})
		return
	}

	var req api.UpdateFeedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: validation.FieldErrors(err)})
		return
	}

	updated, err := h.feed.Update(c.Request.Context(), id, req.StatusText)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFeedItemResponse(updated))
}

// Delete removes a feed item. Owner only.
func (h *FeedHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.feed.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !h.guard.CanModify(c.Request.Method, c.GetUint(authmw.ContextUserID), item.OwnerID) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "you can only modify your own status"})
		return
	}

	if err := h.feed.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps usecase errors to HTTP statuses.
func (h *FeedHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrFeedItemNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return
	}
	slog.Error("feed operation failed", "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
}
