package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/session"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

type AuthHandler struct {
	users     UserStore
	issuer    *auth.Issuer
	blacklist session.Blacklist
	audit     *audit.Dispatcher

	// DNS lookup, trocado nos testes
	EmailDomainOK func(email string) bool
}

func NewAuthHandler(
	users UserStore,
	issuer *auth.Issuer,
	blacklist session.Blacklist,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		users:         users,
		issuer:        issuer,
		blacklist:     blacklist,
		audit:         audit,
		EmailDomainOK: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailSyntaxValid(email) {
		httperr.BadRequest(c, "invalid_email", httperr.Message("invalid_email"))
		return
	}
	if !h.EmailDomainOK(email) {
		httperr.BadRequest(c, "invalid_email_domain", httperr.Message("invalid_email_domain"))
		return
	}
	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", httperr.Message("invalid_phone"))
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Respond(c, err, "failed_to_hash_password")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
		Phone:        validators.NormalizePhone(req.Phone),
		Role:         models.RoleClient,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_exists", httperr.Message("email_already_exists"))
			return
		}
		httperr.Respond(c, err, "failed_to_create_user")
		return
	}

	token, _, err := h.issuer.Issue(&user)
	if err != nil {
		httperr.Respond(c, err, "failed_to_generate_token")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"user":  dto.User(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), validators.NormalizeEmail(req.Email))
	if err != nil {
		if isNotFound(err) {
			httperr.Unauthorized(c, "invalid_credentials", httperr.Message("invalid_credentials"))
			return
		}
		httperr.Respond(c, err, "internal_error")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", httperr.Message("invalid_credentials"))
		return
	}

	token, exp, err := h.issuer.Issue(user)
	if err != nil {
		httperr.Respond(c, err, "failed_to_generate_token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       dto.User(user),
		"token":      token,
		"expires_at": exp.UTC().Format(time.RFC3339),
	})
}

// Logout revoga o token atual até ele expirar.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	claims, ok := c.MustGet(middleware.ContextClaims).(*auth.Claims)
	if !ok || token == "" {
		httperr.Unauthorized(c, "invalid_token", "Não autenticado.")
		return
	}

	if err := h.blacklist.Revoke(c.Request.Context(), token, claims.ExpiresAt.Time); err != nil {
		httperr.Respond(c, err, "logout_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada."})
}
