package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/authz"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/imaging"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/avatar"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

type UserHandler struct {
	users   UserStore
	avatars avatar.Store
	audit   *audit.Dispatcher
}

func NewUserHandler(users UserStore, avatars avatar.Store, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{users: users, avatars: avatars, audit: audit}
}

// --------- Requests ---------

type UpdateMeRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// --------- Handlers ---------

func (h *UserHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.users.ListByRole(c.Request.Context(), models.RoleBarber)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_barbers")
		return
	}
	c.JSON(http.StatusOK, dto.Users(barbers))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.writeUser(c, id)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	h.writeUser(c, middleware.Actor(c).UserID)
}

func (h *UserHandler) writeUser(c *gin.Context, id uint) {
	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "user_not_found", httperr.Message("user_not_found"))
			return
		}
		httperr.Respond(c, err, "failed_to_get_user")
		return
	}
	c.JSON(http.StatusOK, dto.User(user))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	actor := middleware.Actor(c)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), actor.UserID)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "user_not_found", httperr.Message("user_not_found"))
			return
		}
		httperr.Respond(c, err, "failed_to_get_user")
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := validators.NormalizeEmail(*req.Email)
		if !validators.IsEmailSyntaxValid(email) {
			httperr.BadRequest(c, "invalid_email", httperr.Message("invalid_email"))
			return
		}
		user.Email = email
	}
	if req.Phone != nil {
		if !validators.IsPhoneValid(*req.Phone) {
			httperr.BadRequest(c, "invalid_phone", httperr.Message("invalid_phone"))
			return
		}
		user.Phone = validators.NormalizePhone(*req.Phone)
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			httperr.Respond(c, err, "failed_to_hash_password")
			return
		}
		user.PasswordHash = hashed
	}

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_exists", httperr.Message("email_already_exists"))
			return
		}
		httperr.Respond(c, err, "failed_to_update_user")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, dto.User(user))
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	actor := middleware.Actor(c)

	if err := h.users.Delete(c.Request.Context(), actor.UserID); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "user_not_found", httperr.Message("user_not_found"))
			return
		}
		httperr.Respond(c, err, "failed_to_delete_user")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &actor.UserID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Usuário deletado com sucesso."})
}

// UploadAvatar recebe multipart "avatar", normaliza para WebP e grava no store.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	actor := middleware.Actor(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, imaging.MaxUploadBytes+1<<16)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			httperr.BadRequest(c, "file_too_large", httperr.Message("file_too_large"))
			return
		}
		httperr.BadRequest(c, "invalid_file", httperr.Message("invalid_file"))
		return
	}
	defer file.Close()

	if header.Size > imaging.MaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", httperr.Message("file_too_large"))
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
	if err != nil {
		httperr.BadRequest(c, "invalid_file", httperr.Message("invalid_file"))
		return
	}

	img, err := imaging.NormalizeAvatar(raw, imaging.AvatarMaxSide)
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		httperr.BadRequest(c, "file_too_large", httperr.Message("file_too_large"))
		return
	case errors.Is(err, imaging.ErrUnsupported):
		httperr.BadRequest(c, "unsupported_image", httperr.Message("unsupported_image"))
		return
	case err != nil:
		httperr.Respond(c, err, "failed_to_process_image")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), actor.UserID)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "user_not_found", httperr.Message("user_not_found"))
			return
		}
		httperr.Respond(c, err, "failed_to_get_user")
		return
	}

	url, err := h.avatars.Put(c.Request.Context(), avatar.NewKey(user.ID), img, "image/webp")
	if err != nil {
		httperr.Respond(c, err, "failed_to_store_avatar")
		return
	}

	user.Avatar = url
	if err := h.users.Update(c.Request.Context(), user); err != nil {
		httperr.Respond(c, err, "failed_to_update_user")
		return
	}

	c.JSON(http.StatusOK, dto.User(user))
}

// SetRole é exclusivo do admin.
func (h *UserHandler) SetRole(c *gin.Context) {
	actor := middleware.Actor(c)
	if err := authz.CanManageUsers(actor); err != nil {
		httperr.Respond(c, err, "forbidden")
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}
	if !models.ValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", httperr.Message("invalid_role"))
		return
	}

	user, err := h.users.SetRole(c.Request.Context(), id, req.Role)
	if err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "user_not_found", httperr.Message("user_not_found"))
			return
		}
		httperr.Respond(c, err, "failed_to_set_role")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "user_role_changed",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]string{"role": req.Role},
	})

	c.JSON(http.StatusOK, dto.User(user))
}
