// Package application exposes read access to permit application records.
// The screening engine only interprets these records; their lifecycle is
// owned by the submission workflow.
package application

import (
	"time"

	"permitgate/pkg/domain"
)

// Record is a permit application as the screening engine sees it.
type Record struct {
	ID              domain.ApplicationID     `json:"id"`
	NationalID      domain.NationalID        `json:"national_id"`
	PhoneNumber     string                   `json:"phone_number"`
	ReferenceNumber string                   `json:"reference_number"`
	Status          domain.ApplicationStatus `json:"status"`
	CreatedAt       time.Time                `json:"created_at"`
	RejectionDate   *time.Time               `json:"rejection_date,omitempty"`
	OverstayDays    int                      `json:"overstay_days,omitempty"`
}

// PhoneUse records one identity's use of a phone number, for the
// shared-phone correlation signal.
type PhoneUse struct {
	NationalID  domain.NationalID `json:"national_id"`
	PhoneNumber string            `json:"phone_number"`
}
