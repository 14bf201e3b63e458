// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role discriminates the two user classes. Only a doctor may own a
// DoctorProfile.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// User represents a registered patient or doctor.
// ProfileLevel is the 0-3 vetting tier; it starts at 0 and only the
// external verification workflow raises it.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:255;not null" json:"name"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash. Never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	Role Role `gorm:"size:16;not null" json:"role"`

	ProfileLevel int `gorm:"not null;default:0" json:"profileLevel"`

	// DoctorProfile is present only for doctors, and may be absent while
	// the profile is incomplete.
	DoctorProfile *DoctorProfile `json:"doctorProfile,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DoctorProfile holds the practice details a doctor fills in during
// verification. Qualifications keeps its original order; the directory's
// degree extraction depends on it.
type DoctorProfile struct {
	ID                uint     `gorm:"primaryKey" json:"-"`
	UserID            uint     `gorm:"uniqueIndex;not null" json:"-"`
	Specialization    string   `gorm:"size:255" json:"specialization"`
	ExperienceYears   int      `json:"experienceYears"`
	ConditionsTreated []string `gorm:"serializer:json" json:"conditionsTreated"`
	ConsultationMode  string   `gorm:"size:64" json:"consultationMode"`
	Availability      string   `gorm:"size:255" json:"availability"`
	Qualifications    []string `gorm:"serializer:json" json:"qualifications"`
	ClinicName        string   `gorm:"size:255" json:"clinicName"`
	ConsultationFee   float64  `json:"consultationFee"`
	Bio               string   `gorm:"type:text" json:"bio"`
}
