package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barberpro-api/internal/domain/account"
	"github.com/BruksfildServices01/barberpro-api/internal/httperr"
	"github.com/BruksfildServices01/barberpro-api/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Criação
// --------------------------------------------------

func (r *AccountGormRepository) CreateProfessional(
	ctx context.Context,
	p *models.Professional,
) error {

	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("email_already_registered")
		}
		return err
	}
	return nil
}

func (r *AccountGormRepository) CreateClient(
	ctx context.Context,
	cl *models.Client,
) error {

	if err := r.db.WithContext(ctx).Create(cl).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("email_already_registered")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Consulta
// --------------------------------------------------

func (r *AccountGormRepository) FindProfessionalByEmail(
	ctx context.Context,
	email string,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AccountGormRepository) FindClientByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var cl models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&cl).Error; err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *AccountGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AccountGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var cl models.Client
	if err := r.db.WithContext(ctx).First(&cl, id).Error; err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *AccountGormRepository) ListProfessionals(
	ctx context.Context,
) ([]models.Professional, error) {

	var list []models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Fotos
// --------------------------------------------------

func (r *AccountGormRepository) SetProfilePhoto(
	ctx context.Context,
	kind domain.Kind,
	id uint,
	url string,
) error {

	q := r.db.WithContext(ctx)
	if kind == domain.KindClient {
		return q.Model(&models.Client{}).
			Where("id = ?", id).
			Update("profile_photo", url).Error
	}
	return q.Model(&models.Professional{}).
		Where("id = ?", id).
		Update("profile_photo", url).Error
}

// AddPhotos fecha a corrida check-then-act do teto de fotos: contagem e
// inserção acontecem na mesma transação, com a linha do profissional
// travada no Postgres.
func (r *AccountGormRepository) AddPhotos(
	ctx context.Context,
	professionalID uint,
	urls []string,
) ([]string, error) {

	var all []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			// SQLite (usado nos testes) não aceita FOR UPDATE
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var prof models.Professional
		if err := q.First(&prof, professionalID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Photo{}).
			Where("professional_id = ?", professionalID).
			Count(&count).Error; err != nil {
			return err
		}

		if count+int64(len(urls)) > domain.MaxGalleryPhotos {
			return httperr.ErrBusiness("gallery_full")
		}

		photos := make([]models.Photo, 0, len(urls))
		for _, u := range urls {
			photos = append(photos, models.Photo{
				ProfessionalID: professionalID,
				URL:            u,
			})
		}
		if err := tx.Create(&photos).Error; err != nil {
			return err
		}

		return tx.Model(&models.Photo{}).
			Where("professional_id = ?", professionalID).
			Order("id ASC").
			Pluck("url", &all).Error
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

func (r *AccountGormRepository) CountPhotos(
	ctx context.Context,
	professionalID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Photo{}).
		Where("professional_id = ?", professionalID).
		Count(&count).Error
	return count, err
}
