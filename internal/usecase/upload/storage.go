package upload

import (
	"io"

	"github.com/BruksfildServices01/barberpro-api/internal/domain/account"
)

// Storage persiste os bytes do upload e devolve a URL pública do
// arquivo, já no escopo (tipo de conta, id).
type Storage interface {
	Save(kind account.Kind, id uint, originalName string, src io.Reader) (string, error)
}
