package models

import "time"

type Cliente struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Nombre        string    `gorm:"size:100;not null" json:"nombre"`
	Email         *string   `gorm:"size:100;uniqueIndex" json:"email"`
	Telefono      *string   `gorm:"size:20" json:"telefono"`
	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}

func (Cliente) TableName() string { return "clientes" }
