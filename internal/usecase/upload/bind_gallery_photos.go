package upload

import (
	"context"
	"errors"
	"io"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberpro-api/internal/audit"
	domain "github.com/BruksfildServices01/barberpro-api/internal/domain/account"
	"github.com/BruksfildServices01/barberpro-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type GalleryFile struct {
	Name string
	File io.Reader
}

type BindGalleryPhotosInput struct {
	ProfessionalID uint
	Files          []GalleryFile
}

// ======================================================
// USE CASE
// ======================================================

type BindGalleryPhotos struct {
	repo  domain.Repository
	store Storage
	audit *audit.Dispatcher
}

func NewBindGalleryPhotos(
	repo domain.Repository,
	store Storage,
	audit *audit.Dispatcher,
) *BindGalleryPhotos {
	return &BindGalleryPhotos{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

// Execute grava cada arquivo e registra as fotos na galeria do
// profissional. Retorna a sequência completa de URLs (todas as fotos,
// não só as novas). Se o teto estourar, nenhum registro é criado, mas
// bytes já gravados ficam órfãos em disco (limitação aceita).
func (uc *BindGalleryPhotos) Execute(
	ctx context.Context,
	in BindGalleryPhotosInput,
) ([]string, error) {

	// --------------------------------------------------
	// 1. Profissional existe?
	// --------------------------------------------------
	if _, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Tem arquivo?
	// --------------------------------------------------
	if len(in.Files) == 0 {
		return nil, httperr.ErrBusiness("no_file_provided")
	}

	// --------------------------------------------------
	// 3. Grava os bytes
	// --------------------------------------------------
	urls := make([]string, 0, len(in.Files))
	for _, f := range in.Files {
		url, err := uc.store.Save(domain.KindProfessional, in.ProfessionalID, f.Name, f.File)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	// --------------------------------------------------
	// 4. Registra na galeria (teto conferido em transação)
	// --------------------------------------------------
	all, err := uc.repo.AddPhotos(ctx, in.ProfessionalID, urls)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountKind: domain.KindProfessional,
		AccountID:   in.ProfessionalID,
		Action:      "gallery_photos_added",
		Entity:      "photo",
		Metadata:    map[string]any{"added": len(urls), "total": len(all)},
	})

	return all, nil
}
