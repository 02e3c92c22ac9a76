// Package storage implementa el almacenamiento local de archivos: actas PDF
// generadas y actas firmadas subidas, servidas después bajo el prefijo público.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	appcustody "github.com/velatec/activos-api/internal/application/custody"
)

var _ appcustody.FileStore = (*LocalStore)(nil)

// LocalStore guarda archivos bajo un directorio raíz, particionados por
// subdirectorio y fecha, con nombres únicos.
type LocalStore struct {
	basePath   string
	publicBase string
}

// NewLocalStore construye el almacén local, creando el directorio raíz si no existe.
func NewLocalStore(basePath, publicBase string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{basePath: basePath, publicBase: strings.TrimSuffix(publicBase, "/")}, nil
}

// SaveBytes guarda data bajo subdir con un nombre único y devuelve la ruta local.
func (s *LocalStore) SaveBytes(subdir, ext string, data []byte) (string, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	nombre := fmt.Sprintf("%s-%s%s", time.Now().Format("2006-01-02"), uuid.New().String(), ext)
	dir := filepath.Join(s.basePath, subdir, time.Now().Format("2006/01"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear subdirectorio %s: %w", subdir, err)
	}
	ruta := filepath.Join(dir, nombre)
	if err := os.WriteFile(ruta, data, 0o644); err != nil {
		return "", fmt.Errorf("guardar archivo: %w", err)
	}
	return ruta, nil
}

// PublicURL traduce una ruta local a la URL pública servida bajo el prefijo de uploads.
func (s *LocalStore) PublicURL(path string) string {
	rel, err := filepath.Rel(s.basePath, path)
	if err != nil {
		rel = path
	}
	return s.publicBase + "/" + filepath.ToSlash(rel)
}

// BasePath devuelve el directorio raíz (para montar el fileserver estático).
func (s *LocalStore) BasePath() string {
	return s.basePath
}
