package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberpro-api/internal/audit"
	"github.com/BruksfildServices01/barberpro-api/internal/auth"
	domain "github.com/BruksfildServices01/barberpro-api/internal/domain/account"
	"github.com/BruksfildServices01/barberpro-api/internal/httperr"
	"github.com/BruksfildServices01/barberpro-api/internal/models"
)

type AuthHandler struct {
	repo   domain.Repository
	tokens *auth.TokenService
	audit  *audit.Dispatcher
}

func NewAuthHandler(
	repo domain.Repository,
	tokens *auth.TokenService,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		repo:   repo,
		tokens: tokens,
		audit:  audit,
	}
}

// --------- Requests ---------

type RegisterProfessionalRequest struct {
	Name        string `json:"name" binding:"required"`
	Profession  string `json:"profession" binding:"required"`
	Specialties string `json:"specialties" binding:"required"`
	Whatsapp    string `json:"whatsapp" binding:"required"`
	Instagram   string `json:"instagram"`
	Address     string `json:"address"`
	Bio         string `json:"bio"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
}

type RegisterClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Whatsapp string `json:"whatsapp" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Register ---------

func (h *AuthHandler) RegisterProfessional(c *gin.Context) {
	var req RegisterProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Campos obrigatórios faltando.")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar profissional.")
		return
	}

	prof := models.Professional{
		Name:         req.Name,
		Profession:   req.Profession,
		Specialties:  req.Specialties,
		Whatsapp:     req.Whatsapp,
		Instagram:    req.Instagram,
		Address:      req.Address,
		Bio:          req.Bio,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashed,
	}

	if err := h.repo.CreateProfessional(c.Request.Context(), &prof); err != nil {
		if httperr.IsBusiness(err, "email_already_registered") {
			httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado. Faça login ou use outro e-mail.")
			return
		}
		log.Println("register professional error:", err)
		httperr.Internal(c, "internal_error", "Erro ao criar profissional.")
		return
	}

	token, err := h.tokens.Issue(auth.Identity{ID: prof.ID, Kind: domain.KindProfessional})
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao criar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AccountKind: domain.KindProfessional,
		AccountID:   prof.ID,
		Action:      "professional_registered",
		Entity:      "professional",
		EntityID:    &prof.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"profissional": prof,
		"token":        token,
	})
}

func (h *AuthHandler) RegisterClient(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Campos obrigatórios faltando.")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao cadastrar cliente.")
		return
	}

	client := models.Client{
		Name:         req.Name,
		Whatsapp:     req.Whatsapp,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashed,
	}

	if err := h.repo.CreateClient(c.Request.Context(), &client); err != nil {
		if httperr.IsBusiness(err, "email_already_registered") {
			httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado. Faça login ou use outro e-mail.")
			return
		}
		log.Println("register client error:", err)
		httperr.Internal(c, "internal_error", "Erro ao cadastrar cliente.")
		return
	}

	token, err := h.tokens.Issue(auth.Identity{ID: client.ID, Kind: domain.KindClient})
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao cadastrar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AccountKind: domain.KindClient,
		AccountID:   client.ID,
		Action:      "client_registered",
		Entity:      "client",
		EntityID:    &client.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"cliente": client,
		"token":   token,
	})
}

// --------- Login ---------

func (h *AuthHandler) LoginProfessional(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Campos obrigatórios faltando.")
		return
	}

	prof, err := h.repo.FindProfessionalByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		// e-mail desconhecido e senha errada respondem igual
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
			return
		}
		log.Println("login professional error:", err)
		httperr.Internal(c, "internal_error", "Erro ao efetuar login.")
		return
	}

	if !auth.CheckPassword(req.Password, prof.PasswordHash) {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
		return
	}

	token, err := h.tokens.Issue(auth.Identity{ID: prof.ID, Kind: domain.KindProfessional})
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao efetuar login.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profissional": prof,
		"token":        token,
	})
}

func (h *AuthHandler) LoginClient(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Campos obrigatórios faltando.")
		return
	}

	client, err := h.repo.FindClientByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
			return
		}
		log.Println("login client error:", err)
		httperr.Internal(c, "internal_error", "Erro ao efetuar login.")
		return
	}

	if !auth.CheckPassword(req.Password, client.PasswordHash) {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
		return
	}

	token, err := h.tokens.Issue(auth.Identity{ID: client.ID, Kind: domain.KindClient})
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao efetuar login.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cliente": client,
		"token":   token,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
