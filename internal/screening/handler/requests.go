package handler

import (
	"permitgate/internal/screening"
	"permitgate/pkg/domain"
)

// RunRequest is the wire shape of a screening request.
type RunRequest struct {
	NationalID  string `json:"national_id"`
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
	// CurrentApplicationID, when present, excludes the application being
	// screened from the duplicate lookup.
	CurrentApplicationID string `json:"current_application_id,omitempty"`
}

// Parse validates the request and builds the domain request.
func (r RunRequest) Parse() (screening.Request, error) {
	nationalID, err := domain.ParseNationalID(r.NationalID)
	if err != nil {
		return screening.Request{}, err
	}

	req := screening.Request{
		NationalID:  nationalID,
		PhoneNumber: r.PhoneNumber,
		FullName:    r.FullName,
	}
	if r.CurrentApplicationID != "" {
		appID, err := domain.ParseApplicationID(r.CurrentApplicationID)
		if err != nil {
			return screening.Request{}, err
		}
		req.CurrentApplicationID = appID
	}
	return req, nil
}
