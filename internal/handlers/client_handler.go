package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberpro-api/internal/domain/account"
	"github.com/BruksfildServices01/barberpro-api/internal/httperr"
	"github.com/BruksfildServices01/barberpro-api/internal/httpresp"
	ucUpload "github.com/BruksfildServices01/barberpro-api/internal/usecase/upload"
)

type ClientHandler struct {
	repo        domain.Repository
	bindProfile *ucUpload.BindProfilePhoto
}

func NewClientHandler(
	repo domain.Repository,
	bindProfile *ucUpload.BindProfilePhoto,
) *ClientHandler {
	return &ClientHandler{
		repo:        repo,
		bindProfile: bindProfile,
	}
}

// ======================================================
// DETAIL
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	client, err := h.repo.GetClientByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		log.Println("get client error:", err)
		httperr.Internal(c, "internal_error", "Erro ao buscar cliente.")
		return
	}

	// nunca devolve o hash de senha
	httpresp.OK(c, gin.H{
		"id":           client.ID,
		"name":         client.Name,
		"whatsapp":     client.Whatsapp,
		"email":        client.Email,
		"profilePhoto": client.ProfilePhoto,
	})
}

// ======================================================
// UPLOAD FOTO DE PERFIL
// ======================================================

func (h *ClientHandler) UploadProfilePhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	fh, err := c.FormFile("profilePhoto")
	if err != nil {
		httperr.BadRequest(c, "no_file_provided", "Nenhuma foto enviada.")
		return
	}
	if fh.Size > MaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo excede o limite de 10MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		log.Println("open upload error:", err)
		httperr.Internal(c, "internal_error", "Erro ao fazer upload da foto.")
		return
	}
	defer f.Close()

	url, err := h.bindProfile.Execute(c.Request.Context(), ucUpload.BindProfilePhotoInput{
		Kind:      domain.KindClient,
		AccountID: id,
		FileName:  fh.Filename,
		File:      f,
	})
	if err != nil {
		if httperr.IsBusiness(err, "no_file_provided") {
			httperr.BadRequest(c, "no_file_provided", "Nenhuma foto enviada.")
			return
		}
		log.Println("bind profile photo error:", err)
		httperr.Internal(c, "internal_error", "Erro ao fazer upload da foto.")
		return
	}

	c.JSON(200, gin.H{"profilePhoto": url})
}
