package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// AdminPasswordFile is the fixed storage key for the teacher password
// hash. Only the bcrypt hash is persisted, never the cleartext.
const AdminPasswordFile = "admin_password.hash"

type AdminAuthRepository interface {
	// PasswordHash returns the stored bcrypt hash, or "" when no
	// password has been configured yet.
	PasswordHash() (string, error)
	SavePasswordHash(hash string) error
}

type adminAuthRepository struct {
	path string
}

func NewAdminAuthRepository(dataDir string) AdminAuthRepository {
	return &adminAuthRepository{path: filepath.Join(dataDir, AdminPasswordFile)}
}

func (r *adminAuthRepository) PasswordHash() (string, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (r *adminAuthRepository) SavePasswordHash(hash string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path, []byte(hash+"\n"), 0o600)
}
