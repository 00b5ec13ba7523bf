package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberpro-api/internal/domain/account"
	"github.com/BruksfildServices01/barberpro-api/internal/httperr"
	"github.com/BruksfildServices01/barberpro-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// banco em memória: uma conexão só, senão cada conexão vê um banco vazio
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Professional{},
		&models.Photo{},
		&models.Client{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProfessional(t *testing.T, repo *AccountGormRepository, email string) *models.Professional {
	t.Helper()

	p := &models.Professional{
		Name:         "Ana",
		Profession:   "Barber",
		Specialties:  "fade",
		Whatsapp:     "+551199999999",
		Email:        email,
		PasswordHash: "hash",
	}
	if err := repo.CreateProfessional(context.Background(), p); err != nil {
		t.Fatalf("seed professional: %v", err)
	}
	return p
}

func TestCreateProfessionalDuplicateEmail(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))
	ctx := context.Background()

	seedProfessional(t, repo, "ana@x.com")

	dup := &models.Professional{
		Name:         "Outra Ana",
		Profession:   "Stylist",
		Specialties:  "color",
		Whatsapp:     "+551188888888",
		Email:        "ana@x.com",
		PasswordHash: "hash",
	}
	err := repo.CreateProfessional(ctx, dup)
	if !httperr.IsBusiness(err, "email_already_registered") {
		t.Fatalf("esperado email_already_registered, veio %v", err)
	}
}

func TestEmailUniquePerKindOnly(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))
	ctx := context.Background()

	seedProfessional(t, repo, "ana@x.com")

	// mesmo e-mail em outro tipo de conta é permitido
	cl := &models.Client{
		Name:         "Ana Cliente",
		Whatsapp:     "+551177777777",
		Email:        "ana@x.com",
		PasswordHash: "hash",
	}
	if err := repo.CreateClient(ctx, cl); err != nil {
		t.Fatalf("mesmo e-mail entre tipos deveria ser aceito: %v", err)
	}
}

func TestFindProfessionalByEmail(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))
	ctx := context.Background()

	seeded := seedProfessional(t, repo, "ana@x.com")

	found, err := repo.FindProfessionalByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("FindProfessionalByEmail: %v", err)
	}
	if found.ID != seeded.ID {
		t.Errorf("ID = %d, esperado %d", found.ID, seeded.ID)
	}

	if _, err := repo.FindProfessionalByEmail(ctx, "ninguem@x.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("e-mail desconhecido: esperado ErrRecordNotFound, veio %v", err)
	}
}

func TestGetProfessionalByIDPreloadsPhotos(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))
	ctx := context.Background()

	p := seedProfessional(t, repo, "ana@x.com")

	if _, err := repo.AddPhotos(ctx, p.ID, []string{"/uploads/1/a.jpg", "/uploads/1/b.jpg"}); err != nil {
		t.Fatalf("AddPhotos: %v", err)
	}

	got, err := repo.GetProfessionalByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProfessionalByID: %v", err)
	}
	if len(got.Photos) != 2 {
		t.Errorf("fotos carregadas = %d, esperado 2", len(got.Photos))
	}
}

func TestAddPhotosEnforcesGalleryCap(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))
	ctx := context.Background()

	p := seedProfessional(t, repo, "ana@x.com")

	first := make([]string, 4)
	for i := range first {
		first[i] = fmt.Sprintf("/uploads/%d/foto%d.jpg", p.ID, i)
	}
	all, err := repo.AddPhotos(ctx, p.ID, first)
	if err != nil {
		t.Fatalf("AddPhotos(4): %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("URLs retornadas = %d, esperado 4", len(all))
	}

	// 4 + 3 > 6: a chamada inteira falha, nada é gravado
	second := []string{"/u/5.jpg", "/u/6.jpg", "/u/7.jpg"}
	if _, err := repo.AddPhotos(ctx, p.ID, second); !httperr.IsBusiness(err, "gallery_full") {
		t.Fatalf("esperado gallery_full, veio %v", err)
	}

	count, err := repo.CountPhotos(ctx, p.ID)
	if err != nil {
		t.Fatalf("CountPhotos: %v", err)
	}
	if count != 4 {
		t.Errorf("fotos após falha = %d, esperado as 4 originais intactas", count)
	}
}

func TestAddPhotosUpToCapExactly(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))
	ctx := context.Background()

	p := seedProfessional(t, repo, "ana@x.com")

	urls := make([]string, domain.MaxGalleryPhotos)
	for i := range urls {
		urls[i] = fmt.Sprintf("/u/%d.jpg", i)
	}
	all, err := repo.AddPhotos(ctx, p.ID, urls)
	if err != nil {
		t.Fatalf("AddPhotos(6): %v", err)
	}
	if len(all) != domain.MaxGalleryPhotos {
		t.Fatalf("URLs = %d, esperado %d", len(all), domain.MaxGalleryPhotos)
	}

	if _, err := repo.AddPhotos(ctx, p.ID, []string{"/u/extra.jpg"}); !httperr.IsBusiness(err, "gallery_full") {
		t.Errorf("galeria cheia: esperado gallery_full, veio %v", err)
	}
}

func TestAddPhotosUnknownProfessional(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))

	_, err := repo.AddPhotos(context.Background(), 999, []string{"/u/a.jpg"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("esperado ErrRecordNotFound, veio %v", err)
	}
}

func TestSetProfilePhoto(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))
	ctx := context.Background()

	p := seedProfessional(t, repo, "ana@x.com")

	if err := repo.SetProfilePhoto(ctx, domain.KindProfessional, p.ID, "/uploads/1/perfil.jpg"); err != nil {
		t.Fatalf("SetProfilePhoto: %v", err)
	}

	got, err := repo.GetProfessionalByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProfessionalByID: %v", err)
	}
	if got.ProfilePhoto != "/uploads/1/perfil.jpg" {
		t.Errorf("ProfilePhoto = %q", got.ProfilePhoto)
	}

	// sobrescreve incondicionalmente
	if err := repo.SetProfilePhoto(ctx, domain.KindProfessional, p.ID, "/uploads/1/nova.jpg"); err != nil {
		t.Fatalf("SetProfilePhoto: %v", err)
	}
	got, _ = repo.GetProfessionalByID(ctx, p.ID)
	if got.ProfilePhoto != "/uploads/1/nova.jpg" {
		t.Errorf("ProfilePhoto = %q, esperado a nova URL", got.ProfilePhoto)
	}
}

func TestSetProfilePhotoClient(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))
	ctx := context.Background()

	cl := &models.Client{
		Name:         "Bia",
		Whatsapp:     "+551166666666",
		Email:        "bia@x.com",
		PasswordHash: "hash",
	}
	if err := repo.CreateClient(ctx, cl); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	if err := repo.SetProfilePhoto(ctx, domain.KindClient, cl.ID, "/uploads/clients/1/p.jpg"); err != nil {
		t.Fatalf("SetProfilePhoto: %v", err)
	}

	got, err := repo.GetClientByID(ctx, cl.ID)
	if err != nil {
		t.Fatalf("GetClientByID: %v", err)
	}
	if got.ProfilePhoto != "/uploads/clients/1/p.jpg" {
		t.Errorf("ProfilePhoto = %q", got.ProfilePhoto)
	}
}

func TestListProfessionals(t *testing.T) {
	repo := NewAccountGormRepository(newTestDB(t))
	ctx := context.Background()

	seedProfessional(t, repo, "ana@x.com")
	seedProfessional(t, repo, "bia@x.com")

	list, err := repo.ListProfessionals(ctx)
	if err != nil {
		t.Fatalf("ListProfessionals: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("profissionais = %d, esperado 2", len(list))
	}
}
