package account

import (
	"context"

	"github.com/BruksfildServices01/barberpro-api/internal/models"
)

// Repository é a fronteira de persistência das contas e suas fotos.
type Repository interface {

	// --------------------------------------------------
	// Criação
	// --------------------------------------------------

	// CreateProfessional persiste o profissional. E-mail duplicado
	// retorna o erro de negócio "email_already_registered".
	CreateProfessional(ctx context.Context, p *models.Professional) error

	// CreateClient persiste o cliente, com a mesma regra de e-mail.
	CreateClient(ctx context.Context, cl *models.Client) error

	// --------------------------------------------------
	// Consulta
	// --------------------------------------------------

	FindProfessionalByEmail(ctx context.Context, email string) (*models.Professional, error)
	FindClientByEmail(ctx context.Context, email string) (*models.Client, error)

	// GetProfessionalByID carrega o profissional com suas fotos.
	GetProfessionalByID(ctx context.Context, id uint) (*models.Professional, error)
	GetClientByID(ctx context.Context, id uint) (*models.Client, error)

	// ListProfessionals retorna todos os profissionais com fotos.
	// Sem paginação: limite conhecido na escala atual.
	ListProfessionals(ctx context.Context) ([]models.Professional, error)

	// --------------------------------------------------
	// Fotos
	// --------------------------------------------------

	// SetProfilePhoto sobrescreve a foto de perfil incondicionalmente.
	SetProfilePhoto(ctx context.Context, kind Kind, id uint, url string) error

	// AddPhotos insere as fotos de galeria numa única transação,
	// reconferindo o teto de MaxGalleryPhotos antes de gravar.
	// Retorna a sequência completa de URLs após a inserção.
	// Estourar o teto retorna o erro de negócio "gallery_full".
	AddPhotos(ctx context.Context, professionalID uint, urls []string) ([]string, error)

	CountPhotos(ctx context.Context, professionalID uint) (int64, error)
}
