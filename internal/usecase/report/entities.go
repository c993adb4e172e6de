package report

import (
	"time"
)

type CreateInput struct {
	Title              string
	Description        string
	BeneficiariesCount int64
	ActivitiesDone     string
	Photos             []string
	GPSLat             *float64
	GPSLng             *float64
	Date               time.Time // zero means today (UTC)
}

type VerifyInput struct {
	Verified bool
	Comment  string
}

type ReportDTO struct {
	ID                  uint64     `json:"id"`
	ProjectID           uint64     `json:"project_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	BeneficiariesCount  int64      `json:"beneficiaries_count"`
	ActivitiesDone      string     `json:"activities_done"`
	Photos              []string   `json:"photos"`
	GPSLat              *float64   `json:"gps_lat,omitempty"`
	GPSLng              *float64   `json:"gps_lng,omitempty"`
	Date                string     `json:"date"`
	Verified            bool       `json:"verified"`
	VerifiedByID        *uint64    `json:"verified_by_id,omitempty"`
	VerifiedAt          *time.Time `json:"verified_at,omitempty"`
	VerificationComment string     `json:"verification_comment,omitempty"`
	CreatedByID         *uint64    `json:"created_by_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}
