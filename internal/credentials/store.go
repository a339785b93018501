package credentials

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dbpkg "github.com/barberia-jordan/barberia-api/internal/db"
	"github.com/barberia-jordan/barberia-api/internal/models"
)

// ErrEmailRegistrado indica que ya existe un usuario con ese email.
var ErrEmailRegistrado = errors.New("el email ya está registrado")

// Store guarda las identidades. Nunca expone ni persiste contraseñas en claro.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, email, rawPassword, nombre, rol string) (*models.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if rol == "" {
		rol = models.RolBarbero
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := models.Usuario{
		Email:        email,
		PasswordHash: string(hashed),
		Nombre:       nombre,
		Rol:          rol,
		Estado:       models.EstadoActivo,
	}

	if err := s.db.WithContext(ctx).Create(&usuario).Error; err != nil {
		if dbpkg.IsDuplicate(err) {
			return nil, ErrEmailRegistrado
		}
		return nil, err
	}

	return &usuario, nil
}

// VerifyPassword recalcula el hash bcrypt; la comparación es de tiempo constante.
func (s *Store) VerifyPassword(u *models.Usuario, rawPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(rawPassword)) == nil
}

// FindByEmail devuelve (nil, nil) cuando no existe; el caller decide.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var usuario models.Usuario
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&usuario).Error
	if err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

func (s *Store) FindByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.db.WithContext(ctx).First(&usuario, id).Error
	if err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}
