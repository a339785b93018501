package models

import "time"

const (
	RolAdmin   = "admin"
	RolBarbero = "barbero"

	EstadoActivo = "activo"
)

type Usuario struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"size:255;not null" json:"-"`
	Nombre        string    `gorm:"size:100;not null" json:"nombre"`
	Rol           string    `gorm:"size:20;default:'barbero'" json:"rol"`
	Estado        string    `gorm:"size:20;default:'activo'" json:"estado"`
	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) EsAdmin() bool { return u.Rol == RolAdmin }
