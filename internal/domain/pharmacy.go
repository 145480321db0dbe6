// File: internal/domain/pharmacy.go
package domain

import "time"

// Pharmacy is one directory row. The whole table is rewritten on every
// refresh; rows have no identity across refreshes beyond LocalID.
type Pharmacy struct {
	ID           uint     `gorm:"primarykey" json:"id"`
	LocalID      int      `gorm:"not null;index" json:"local_id"`
	Name         string   `json:"local_nombre"`
	Commune      string   `gorm:"index" json:"comuna_nombre"`
	Locality     string   `json:"localidad_nombre"`
	Address      string   `json:"local_direccion"`
	MapURL       string   `json:"url_direccion"`
	OpensAt      string   `json:"funcionamiento_hora_apertura"`
	ClosesAt     string   `json:"funcionamiento_hora_cierre"`
	Phone        string   `json:"local_telefono"`
	Lat          *float64 `json:"local_lat"`
	Lng          *float64 `json:"local_lng"`
	Weekday      string   `json:"funcionamiento_dia"`
	Date         string   `json:"fecha"`
	OnDuty       bool     `gorm:"default:false;index" json:"de_turno"`
	RegionCode   *int     `json:"fk_region"`
	CommuneCode  *int     `json:"fk_comuna"`
	LocalityCode *int     `json:"fk_localidad"`
	RegionName   string   `gorm:"index" json:"nombre_region"`

	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

func (Pharmacy) TableName() string { return "farmacias" }

// HasCoordinates reports whether the feed supplied a usable position.
func (p *Pharmacy) HasCoordinates() bool {
	return p.Lat != nil && p.Lng != nil
}
