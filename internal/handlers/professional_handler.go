package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberpro-api/internal/domain/account"
	"github.com/BruksfildServices01/barberpro-api/internal/httperr"
	"github.com/BruksfildServices01/barberpro-api/internal/httpresp"
	"github.com/BruksfildServices01/barberpro-api/internal/models"
	ucUpload "github.com/BruksfildServices01/barberpro-api/internal/usecase/upload"
)

// MaxUploadBytes é o teto por arquivo enviado (10 MB).
const MaxUploadBytes = 10 << 20

type ProfessionalHandler struct {
	repo        domain.Repository
	bindProfile *ucUpload.BindProfilePhoto
	bindGallery *ucUpload.BindGalleryPhotos
}

func NewProfessionalHandler(
	repo domain.Repository,
	bindProfile *ucUpload.BindProfilePhoto,
	bindGallery *ucUpload.BindGalleryPhotos,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		repo:        repo,
		bindProfile: bindProfile,
		bindGallery: bindGallery,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ProfessionalHandler) List(c *gin.Context) {
	list, err := h.repo.ListProfessionals(c.Request.Context())
	if err != nil {
		log.Println("list professionals error:", err)
		httperr.Internal(c, "internal_error", "Erro ao buscar profissionais.")
		return
	}

	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, professionalJSON(&list[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// DETAIL
// ======================================================

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado")
		return
	}

	prof, err := h.repo.GetProfessionalByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado")
			return
		}
		log.Println("get professional error:", err)
		httperr.Internal(c, "internal_error", "Erro ao buscar profissional.")
		return
	}

	httpresp.OK(c, professionalJSON(prof))
}

// ======================================================
// UPLOAD FOTO DE PERFIL
// ======================================================

func (h *ProfessionalHandler) UploadProfilePhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado")
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
		Kind:      domain.KindProfessional,
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

// ======================================================
// UPLOAD GALERIA (até 6 fotos)
// ======================================================

func (h *ProfessionalHandler) UploadGalleryPhotos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var headers []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		headers = form.File["photos"]
	}

	files := make([]ucUpload.GalleryFile, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > MaxUploadBytes {
			httperr.BadRequest(c, "file_too_large", "Arquivo excede o limite de 10MB.")
			return
		}
		f, err := fh.Open()
		if err != nil {
			log.Println("open upload error:", err)
			httperr.Internal(c, "internal_error", "Erro ao fazer upload das fotos.")
			return
		}
		defer f.Close()
		files = append(files, ucUpload.GalleryFile{Name: fh.Filename, File: f})
	}

	urls, err := h.bindGallery.Execute(c.Request.Context(), ucUpload.BindGalleryPhotosInput{
		ProfessionalID: id,
		Files:          files,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "professional_not_found"):
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		case httperr.IsBusiness(err, "no_file_provided"):
			httperr.BadRequest(c, "no_file_provided", "Nenhuma foto enviada.")
		case httperr.IsBusiness(err, "gallery_full"):
			httperr.BadRequest(c, "gallery_full", "Máximo de 6 fotos por profissional.")
		default:
			log.Println("bind gallery photos error:", err)
			httperr.Internal(c, "internal_error", "Erro ao fazer upload das fotos.")
		}
		return
	}

	c.JSON(200, gin.H{"photoUrls": urls})
}

// --------- helpers ---------

// Shape da API pública: sem e-mail, fotos como [{url}].
func professionalJSON(p *models.Professional) gin.H {
	photos := make([]gin.H, 0, len(p.Photos))
	for _, ph := range p.Photos {
		photos = append(photos, gin.H{"url": ph.URL})
	}

	return gin.H{
		"id":           p.ID,
		"name":         p.Name,
		"profession":   p.Profession,
		"specialties":  p.Specialties,
		"whatsapp":     p.Whatsapp,
		"instagram":    p.Instagram,
		"address":      p.Address,
		"bio":          p.Bio,
		"profilePhoto": p.ProfilePhoto,
		"photos":       photos,
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
