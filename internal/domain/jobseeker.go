package domain

import (
	"context"
	"strings"
)

// JobSeekerProfile is the owner's broader profile; resumes can be auto-populated from it.
type JobSeekerProfile struct {
	UserID         string           `json:"user_id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Address        Address          `json:"address"`
	LinkedIn       string           `json:"linkedin"`
	GitHub         string           `json:"github"`
	Website        string           `json:"website"`
	Bio            string           `json:"bio"`
	Education      []Education      `json:"education"`
	Experience     []WorkExperience `json:"experience"`
	Skills         []Skill          `json:"skills"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	Projects       []Project        `json:"projects"`
	ResumeIDs      []string         `json:"resume_ids"`
}

// FullName joins first and last name, skipping whichever is empty.
func (p *JobSeekerProfile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// JobSeekerRepository reads owner profiles and maintains their index of resume ids.
type JobSeekerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*JobSeekerProfile, error)
	AddResume(ctx context.Context, userID, resumeID string) error
	RemoveResume(ctx context.Context, userID, resumeID string) error
}
