package models

import "time"

type Servicio struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Nombre        string    `gorm:"size:100;not null" json:"nombre"`
	Precio        float64   `gorm:"not null" json:"precio"`
	Descripcion   string    `gorm:"size:255" json:"descripcion"`
	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}

func (Servicio) TableName() string { return "servicios" }
