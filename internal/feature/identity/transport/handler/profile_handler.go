package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"profiles_backend/internal/api"
	"profiles_backend/internal/feature/identity/domain/entity"
	"profiles_backend/internal/feature/identity/usecase"
	"profiles_backend/internal/platform/authmw"
	"profiles_backend/internal/shared/authz"
	"profiles_backend/internal/shared/validation"
)

// ProfileUsecase defines the profile operations consumed by this handler.
type ProfileUsecase interface {
	Signup(ctx context.Context, email, name, password string) (*entity.User, error)
	GetProfile(ctx context.Context, id uint) (*entity.User, error)
	ListProfiles(ctx context.Context, search string) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, id uint, in usecase.ProfileUpdate) (*entity.User, error)
	DeleteProfile(ctx context.Context, id uint) error
}

// ProfileHandler handles HTTP requests for profile CRUD.
// Mutations are gated by the ownership guard; a profile's owner is itself.
type ProfileHandler struct {
	profiles ProfileUsecase
	guard    authz.Guard
}

// NewProfileHandler creates a new instance of ProfileHandler.
func NewProfileHandler(profiles ProfileUsecase, guard authz.Guard) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, guard: guard}
}

// parseID reads the :id path parameter. Non-numeric ids behave like unknown
// records and yield 404.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return 0, false
	}
	return uint(id), true
}

// toProfileResponse maps the entity to its API shape.
// The password hash is write-only and never serialized.
func toProfileResponse(u *entity.User) api.ProfileResponse {
	return api.ProfileResponse{
		Id:    int(u.ID),
		Email: u.Email,
		Name:  u.Name,
	}
}

// List はプロフィール一覧を返します。searchクエリで名前・メールの部分一致検索ができます。
//
// エンドポイント例:
// GET /profiles?search=alice
func (h *ProfileHandler) List(c *gin.Context) {
	users, err := h.profiles.ListProfiles(c.Request.Context(), c.Query("search"))
	if err != nil {
		slog.Error("profile list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]api.ProfileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toProfileResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

// Create registers a new profile. This is the public signup endpoint; no
// token is required.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req api.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: validation.FieldErrors(err)})
		return
	}

	user, err := h.profiles.Signup(c.Request.Context(), string(req.Email), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup conflict", "email", string(req.Email), "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email already exists"})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toProfileResponse(user))
}

// Get retrieves a single profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(user))
}

// Update replaces a profile (PUT). Only the owner may modify it.
func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	target, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !h.guard.CanModify(c.Request.Method, c.GetUint(authmw.ContextUserID), target.ID) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "you can only modify your own profile"})
		return
	}

	var req api.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: validation.FieldErrors(err)})
		return
	}

	email := string(req.Email)
	user, err := h.profiles.UpdateProfile(c.Request.Context(), id, usecase.ProfileUpdate{
		Email:    &email,
		Name:     &req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(user))
}

// Patch partially updates a profile. Only the owner may modify it.
func (h *ProfileHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	target, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !h.guard.CanModify(c.Request.Method, c.GetUint(authmw.ContextUserID), target.ID) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "you can only modify your own profile"})
		return
	}

	var req api.PatchProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: validation.FieldErrors(err)})
		return
	}

	update := usecase.ProfileUpdate{Name: req.Name, Password: req.Password}
	if req.Email != nil {
		email := string(*req.Email)
		update.Email = &email
	}
	user, err := h.profiles.UpdateProfile(c.Request.Context(), id, update)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(user))
}

// Delete removes a profile. Only the owner may delete it.
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	target, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !h.guard.CanModify(c.Request.Method, c.GetUint(authmw.ContextUserID), target.ID) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "you can only modify your own profile"})
		return
	}

	if err := h.profiles.DeleteProfile(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps usecase errors to HTTP statuses.
func (h *ProfileHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "email already exists"})
	case errors.Is(err, usecase.ErrEmailRequired):
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: map[string]string{"email": "this field is required"}})
	default:
		slog.Error("profile operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}
