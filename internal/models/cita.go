package models

import "time"

type Cita struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID *uint    `json:"cliente_id"`
	Cliente   *Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente"`

	BarberoID uint    `gorm:"not null" json:"barbero_id"`
	Barbero   Barbero `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbero"`

	ServicioID uint     `gorm:"not null" json:"servicio_id"`
	Servicio   Servicio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servicio"`

	Precio float64   `gorm:"not null" json:"precio"`
	Fecha  time.Time `json:"fecha"`
	Notas  string    `gorm:"size:255" json:"notas"`
}

func (Cita) TableName() string { return "citas" }
