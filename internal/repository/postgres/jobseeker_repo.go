package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"lifemate-backend/internal/domain"
)

type jobSeekerRepo struct {
	db *pgxpool.Pool
}

func NewJobSeekerRepository(db *pgxpool.Pool) domain.JobSeekerRepository {
	return &jobSeekerRepo{db: db}
}

func (r *jobSeekerRepo) GetByUserID(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	query := `SELECT user_id, first_name, last_name, email, phone, address, linkedin, github, website, bio,
		education, experience, skills, certifications, languages, projects, resume_ids
		FROM job_seekers WHERE user_id = $1`

	var (
		p                                      domain.JobSeekerProfile
		address, education, experience, skills []byte
		certifications, languages, projects    []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &address, &p.LinkedIn, &p.GitHub,
		&p.Website, &p.Bio, &education, &experience, &skills, &certifications, &languages, &projects,
		pq.Array(&p.ResumeIDs),
	)
	if err != nil {
		return nil, mapNotFound(err)
	}

	docs := []struct {
		src []byte
		dst any
	}{
		{address, &p.Address},
		{education, &p.Education},
		{experience, &p.Experience},
		{skills, &p.Skills},
		{certifications, &p.Certifications},
		{languages, &p.Languages},
		{projects, &p.Projects},
	}
	for _, d := range docs {
		if len(d.src) == 0 {
			continue
		}
		if err := json.Unmarshal(d.src, d.dst); err != nil {
			return nil, fmt.Errorf("decode job seeker %s: %w", userID, err)
		}
	}
	return &p, nil
}

// AddResume appends the id once; repeated calls keep a single entry.
func (r *jobSeekerRepo) AddResume(ctx context.Context, userID, resumeID string) error {
	query := `UPDATE job_seekers
		SET resume_ids = array_append(array_remove(resume_ids, $2::uuid), $2::uuid), updated_at = NOW()
		WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query, userID, resumeID)
	if err != nil {
		return mapNotFound(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobSeekerRepo) RemoveResume(ctx context.Context, userID, resumeID string) error {
	query := `UPDATE job_seekers SET resume_ids = array_remove(resume_ids, $2::uuid), updated_at = NOW()
		WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID, resumeID)
	return mapNotFound(err)
}
