package upload

import (
	"context"
	"io"

	"github.com/BruksfildServices01/barberpro-api/internal/audit"
	domain "github.com/BruksfildServices01/barberpro-api/internal/domain/account"
	"github.com/BruksfildServices01/barberpro-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type BindProfilePhotoInput struct {
	Kind      domain.Kind
	AccountID uint

	FileName string
	File     io.Reader
}

// ======================================================
// USE CASE
// ======================================================

type BindProfilePhoto struct {
	repo  domain.Repository
	store Storage
	audit *audit.Dispatcher
}

func NewBindProfilePhoto(
	repo domain.Repository,
	store Storage,
	audit *audit.Dispatcher,
) *BindProfilePhoto {
	return &BindProfilePhoto{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

// Execute grava o arquivo e sobrescreve a foto de perfil da conta.
// Mantém o comportamento original: não confere se a conta existe —
// o update em conta inexistente é um no-op.
func (uc *BindProfilePhoto) Execute(
	ctx context.Context,
	in BindProfilePhotoInput,
) (string, error) {

	if in.File == nil || in.FileName == "" {
		return "", httperr.ErrBusiness("no_file_provided")
	}

	url, err := uc.store.Save(in.Kind, in.AccountID, in.FileName, in.File)
	if err != nil {
		return "", err
	}

	if err := uc.repo.SetProfilePhoto(ctx, in.Kind, in.AccountID, url); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		AccountKind: in.Kind,
		AccountID:   in.AccountID,
		Action:      "profile_photo_updated",
		Entity:      "account",
		EntityID:    &in.AccountID,
	})

	return url, nil
}
