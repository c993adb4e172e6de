package report

import (
	"errors"
	"time"
)

var (
	ErrNotFound              = errors.New("impact report not found")
	ErrNegativeBeneficiaries = errors.New("beneficiaries count must not be negative")
)

// Table: impact_reports
type ImpactReport struct {
	ID                  uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectID           uint64     `gorm:"column:project_id;not null;index" json:"project_id"`
	Title               string     `gorm:"column:title;size:255;not null" json:"title"`
	Description         string     `gorm:"column:description;type:text;not null" json:"description"`
	BeneficiariesCount  int64      `gorm:"column:beneficiaries_count;not null;default:0" json:"beneficiaries_count"`
	ActivitiesDone      string     `gorm:"column:activities_done;type:text;not null" json:"activities_done"`
	Photos              []string   `gorm:"column:photos;type:text;serializer:json" json:"photos"`
	GPSLat              *float64   `gorm:"column:gps_lat;type:decimal(10,6)" json:"gps_lat,omitempty"`
	GPSLng              *float64   `gorm:"column:gps_lng;type:decimal(10,6)" json:"gps_lng,omitempty"`
	Date                time.Time  `gorm:"column:date;type:date;not null" json:"date"`
	Verified            bool       `gorm:"column:verified;not null;default:false" json:"verified"`
	VerifiedByID        *uint64    `gorm:"column:verified_by_id" json:"verified_by_id,omitempty"`
	VerifiedAt          *time.Time `gorm:"column:verified_at" json:"verified_at,omitempty"`
	VerificationComment string     `gorm:"column:verification_comment;type:text" json:"verification_comment,omitempty"`
	CreatedByID         *uint64    `gorm:"column:created_by_id" json:"created_by_id,omitempty"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ImpactReport) TableName() string { return "impact_reports" }
