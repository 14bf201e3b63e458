// Package dto defines data transfer objects for the directory feature's
// HTTP transport layer.
package dto

import "carebridge_backend/internal/feature/directory/usecase"

// DoctorsResponse is the 200 body for GET /doctors. The full annotated list
// is returned with its count; the directory never paginates.
type DoctorsResponse struct {
	Doctors    []usecase.DoctorSummary `json:"doctors"`
	TotalFound int                     `json:"totalFound"`
}
