package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberpro-api/internal/audit"
	"github.com/BruksfildServices01/barberpro-api/internal/auth"
	"github.com/BruksfildServices01/barberpro-api/internal/config"
	"github.com/BruksfildServices01/barberpro-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barberpro-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro-api/internal/middleware"
	"github.com/BruksfildServices01/barberpro-api/internal/storage"
	ucUpload "github.com/BruksfildServices01/barberpro-api/internal/usecase/upload"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	tokens := auth.NewTokenService(cfg)
	store := storage.NewDiskStorage(cfg.UploadDir)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — UPLOADS
	// ======================================================
	bindProfilePhotoUC := ucUpload.NewBindProfilePhoto(
		accountRepo,
		store,
		auditDispatcher,
	)

	bindGalleryPhotosUC := ucUpload.NewBindGalleryPhotos(
		accountRepo,
		store,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accountRepo, tokens, auditDispatcher)

	professionalHandler := handlers.NewProfessionalHandler(
		accountRepo,
		bindProfilePhotoUC,
		bindGalleryPhotosUC,
	)

	clientHandler := handlers.NewClientHandler(accountRepo, bindProfilePhotoUC)

	// ======================================================
	// AUTH (público)
	// ======================================================
	r.POST("/auth/register-professional", authHandler.RegisterProfessional)
	r.POST("/auth/login-professional", authHandler.LoginProfessional)
	r.POST("/auth/register-client", authHandler.RegisterClient)
	r.POST("/auth/login-client", authHandler.LoginClient)

	// ======================================================
	// ROTAS PROTEGIDAS
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens))
	{
		secured.GET("/professionals", professionalHandler.List)
		secured.GET("/professionals/:id", professionalHandler.Get)
		secured.POST("/professionals/:id/profile-photo", professionalHandler.UploadProfilePhoto)
		secured.POST("/professionals/:id/photos", professionalHandler.UploadGalleryPhotos)

		secured.GET("/clients/:id", clientHandler.Get)
		secured.POST("/clients/:id/profile-photo", clientHandler.UploadProfilePhoto)
	}

	// ======================================================
	// ARQUIVOS DE UPLOAD (estático)
	// ======================================================
	r.Static("/uploads", cfg.UploadDir)
}
