package models

import "time"

type Barbero struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Nombre        string    `gorm:"size:100;not null" json:"nombre"`
	Email         *string   `gorm:"size:100;uniqueIndex" json:"email"`
	Telefono      *string   `gorm:"size:20" json:"telefono"`
	Comision      float64   `gorm:"default:20" json:"comision"`
	Estado        string    `gorm:"size:20;default:'activo'" json:"estado"`
	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}

func (Barbero) TableName() string { return "barberos" }
