package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BruksfildServices01/barberpro-api/internal/domain/account"
)

// DiskStorage grava uploads em disco e devolve a URL pública que
// espelha o caminho gravado (servida estaticamente em /uploads).
//
// Layout herdado do backend original:
//
//	uploads/<id>/...          profissionais
//	uploads/clients/<id>/...  clientes
type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) *DiskStorage {
	return &DiskStorage{root: root}
}

// Save garante o diretório da conta, grava o arquivo como
// "<unix-millis>-<nome-original>" e retorna a URL resultante.
// Colisão no mesmo milissegundo é um risco aceito.
func (s *DiskStorage) Save(kind account.Kind, id uint, originalName string, src io.Reader) (string, error) {
	rel := accountDir(kind, id)

	dir := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure upload dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return "/uploads/" + rel + "/" + name, nil
}

func accountDir(kind account.Kind, id uint) string {
	idStr := strconv.FormatUint(uint64(id), 10)
	if kind == account.KindClient {
		return "clients/" + idStr
	}
	return idStr
}
