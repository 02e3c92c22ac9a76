package repository

import "github.com/velatec/activos-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para usuarios del sistema.
// Las implementaciones devuelven (nil, nil) cuando el registro no existe.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
	Update(u *entity.Usuario) error
	UpdateActivo(id string, activo bool) error
	UpdatePassword(id, passwordHash string) error
}
