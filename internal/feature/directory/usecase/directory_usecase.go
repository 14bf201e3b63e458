// Package usecase implements the doctor directory listing and ranking.
package usecase

import (
	"context"
	"sort"

	"carebridge_backend/internal/feature/auth/domain/entity"
	"carebridge_backend/internal/platform/apperr"
	"carebridge_backend/internal/platform/token"
)

// VettedProfileLevel is the completeness tier a doctor must reach before
// the directory lists them. Partial profiles are never shown.
const VettedProfileLevel = 3

// matchReason is constant: the directory lists every vetted doctor rather
// than matching on the patient's condition.
const matchReason = "Available for consultation"

// ErrPatientRoleRequired is returned when a non-patient asks for the directory.
var ErrPatientRoleRequired = apperr.E(apperr.Forbidden, "access denied, patient role required")

// DoctorRepository returns vetted doctor users with profiles preloaded.
type DoctorRepository interface {
	FindVetted(ctx context.Context) ([]entity.User, error)
}

// AssignmentRegistry provides the caller's assignment set in bulk.
type AssignmentRegistry interface {
	ListDoctorIDsForPatient(ctx context.Context, patientID uint) ([]uint, error)
}

// DoctorSummary is the annotated directory entry returned to patients.
// Absent profile fields are omitted rather than defaulted to nulls.
type DoctorSummary struct {
	DoctorID            uint   `json:"doctorId"`
	Name                string `json:"name"`
	Degree              string `json:"degree,omitempty"`
	Specialization      string `json:"specialization"`
	YearsOfExperience   int    `json:"yearsOfExperience"`
	Hospital            string `json:"hospital,omitempty"`
	ConsultationMode    string `json:"consultationMode,omitempty"`
	Availability        string `json:"availability,omitempty"`
	IsCurrentlyAssigned bool   `json:"isCurrentlyAssigned"`
	MatchReason         string `json:"matchReason"`
}

type directoryUsecase struct {
	doctors     DoctorRepository
	assignments AssignmentRegistry
}

// NewDirectoryUsecase creates a new directoryUsecase instance.
func NewDirectoryUsecase(doctors DoctorRepository, assignments AssignmentRegistry) *directoryUsecase {
	return &directoryUsecase{doctors: doctors, assignments: assignments}
}

// ListDoctors returns every vetted doctor ranked by (profile level desc,
// experience desc), annotated with the caller's assignment status, an
// extracted degree and profile defaults. Only patients may list.
func (u *directoryUsecase) ListDoctors(ctx context.Context, p token.Principal) ([]DoctorSummary, error) {
	if p.Role != string(entity.RolePatient) {
		return nil, ErrPatientRoleRequired
	}

	doctors, err := u.doctors.FindVetted(ctx)
	if err != nil {
		return nil, err
	}

	// All vetted doctors share the top tier today, so the ranking
	// degenerates to an experience sort; ties keep retrieval order.
	sort.SliceStable(doctors, func(i, j int) bool {
		if doctors[i].ProfileLevel != doctors[j].ProfileLevel {
			return doctors[i].ProfileLevel > doctors[j].ProfileLevel
		}
		return experienceOf(&doctors[i]) > experienceOf(&doctors[j])
	})

	ids, err := u.assignments.ListDoctorIDsForPatient(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	assigned := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		assigned[id] = struct{}{}
	}

	summaries := make([]DoctorSummary, 0, len(doctors))
	for i := range doctors {
		summaries = append(summaries, summarize(&doctors[i], assigned))
	}
	return summaries, nil
}

func experienceOf(u *entity.User) int {
	if u.DoctorProfile == nil {
		return 0
	}
	return u.DoctorProfile.ExperienceYears
}

func summarize(d *entity.User, assigned map[uint]struct{}) DoctorSummary {
	s := DoctorSummary{
		DoctorID:       d.ID,
		Name:           d.Name,
		Specialization: "General Practice",
		MatchReason:    matchReason,
	}
	if _, ok := assigned[d.ID]; ok {
		s.IsCurrentlyAssigned = true
	}
	profile := d.DoctorProfile
	if profile == nil {
		return s
	}
	s.Degree = ExtractDegree(profile.Qualifications)
	if profile.Specialization != "" {
		s.Specialization = profile.Specialization
	}
	s.YearsOfExperience = profile.ExperienceYears
	s.Hospital = profile.ClinicName
	s.ConsultationMode = profile.ConsultationMode
	s.Availability = profile.Availability
	return s
}
