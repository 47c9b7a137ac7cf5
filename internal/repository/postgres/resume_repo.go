package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"lifemate-backend/internal/domain"
	"lifemate-backend/pkg/apperror"
)

const resumeColumns = `id, user_id, title, personal_info, summary, education, work_experience, skills,
	certifications, projects, languages, custom_sections, section_order, styling, artifact,
	is_default, is_public, views, downloads, times_used_in_applications, created_at, updated_at`

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

// resumeDocs holds the JSONB-encoded parts of a resume as query arguments.
type resumeDocs struct {
	personalInfo, education, experience, skills, certifications string
	projects, languages, custom, styling                        string
}

func encodeDocs(r *domain.Resume) (*resumeDocs, error) {
	var d resumeDocs
	fields := []struct {
		dst *string
		src any
	}{
		{&d.personalInfo, r.PersonalInfo},
		{&d.education, nonNil(r.Education)},
		{&d.experience, nonNil(r.WorkExperience)},
		{&d.skills, nonNil(r.Skills)},
		{&d.certifications, nonNil(r.Certifications)},
		{&d.projects, nonNil(r.Projects)},
		{&d.languages, nonNil(r.Languages)},
		{&d.custom, nonNil(r.CustomSections)},
		{&d.styling, r.Styling},
	}
	for _, f := range fields {
		b, err := json.Marshal(f.src)
		if err != nil {
			return nil, fmt.Errorf("encode resume document: %w", err)
		}
		*f.dst = string(b)
	}
	return &d, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	docs, err := encodeDocs(resume)
	if err != nil {
		return err
	}

	query := `INSERT INTO resumes (id, user_id, title, personal_info, summary, education, work_experience,
		skills, certifications, projects, languages, custom_sections, section_order, styling,
		is_default, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.db.Exec(ctx, query,
		resume.ID, resume.UserID, resume.Title, docs.personalInfo, resume.Summary,
		docs.education, docs.experience, docs.skills, docs.certifications, docs.projects,
		docs.languages, docs.custom, pq.Array(nonNil(resume.SectionOrder)), docs.styling,
		resume.IsDefault, resume.IsPublic, resume.CreatedAt, resume.UpdatedAt,
	)
	if err != nil {
		if isPgCode(err, pgUniqueViolation) {
			return apperror.Conflict("Resume already exists")
		}
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

func (r *resumeRepo) GetByID(ctx context.Context, userID, id string) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 AND user_id = $2`
	resume, err := scanResume(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return resume, nil
}

func (r *resumeRepo) ListByUser(ctx context.Context, userID string) ([]domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1
		ORDER BY is_default DESC, updated_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	defer rows.Close()

	resumes := []domain.Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *resume)
	}
	return resumes, rows.Err()
}

func (r *resumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	docs, err := encodeDocs(resume)
	if err != nil {
		return err
	}

	query := `UPDATE resumes SET title = $3, personal_info = $4, summary = $5, education = $6,
		work_experience = $7, skills = $8, certifications = $9, projects = $10, languages = $11,
		custom_sections = $12, section_order = $13, styling = $14, is_public = $15, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`
	err = r.db.QueryRow(ctx, query,
		resume.ID, resume.UserID, resume.Title, docs.personalInfo, resume.Summary,
		docs.education, docs.experience, docs.skills, docs.certifications, docs.projects,
		docs.languages, docs.custom, pq.Array(nonNil(resume.SectionOrder)), docs.styling, resume.IsPublic,
	).Scan(&resume.UpdatedAt)
	return mapNotFound(err)
}

func (r *resumeRepo) SetArtifact(ctx context.Context, userID, id string, artifact *domain.Artifact) error {
	var payload *string
	if artifact != nil {
		b, err := json.Marshal(artifact)
		if err != nil {
			return fmt.Errorf("encode artifact: %w", err)
		}
		s := string(b)
		payload = &s
	}

	result, err := r.db.Exec(ctx, `UPDATE resumes SET artifact = $3 WHERE id = $1 AND user_id = $2`, id, userID, payload)
	if err != nil {
		return mapNotFound(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetDefault locks the owner's rows, clears the current default and sets the target,
// all in one transaction.
func (r *resumeRepo) SetDefault(ctx context.Context, userID, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `SELECT id FROM resumes WHERE user_id = $1 FOR UPDATE`, userID)
	if err != nil {
		return mapNotFound(err)
	}
	found := false
	for rows.Next() {
		var rid string
		if err := rows.Scan(&rid); err != nil {
			rows.Close()
			return err
		}
		if rid == id {
			found = true
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx,
		`UPDATE resumes SET is_default = FALSE WHERE user_id = $1 AND is_default AND id <> $2`,
		userID, id,
	); err != nil {
		return fmt.Errorf("clear default: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE resumes SET is_default = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID,
	); err != nil {
		return fmt.Errorf("set default: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *resumeRepo) ClearDefault(ctx context.Context, userID, id string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE resumes SET is_default = FALSE, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return mapNotFound(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) IncrementViews(ctx context.Context, userID, id string) error {
	result, err := r.db.Exec(ctx, `UPDATE resumes SET views = views + 1 WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapNotFound(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) IncrementDownloads(ctx context.Context, userID, id string) (int64, error) {
	var downloads int64
	err := r.db.QueryRow(ctx,
		`UPDATE resumes SET downloads = downloads + 1 WHERE id = $1 AND user_id = $2 RETURNING downloads`,
		id, userID,
	).Scan(&downloads)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return downloads, nil
}

func (r *resumeRepo) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapNotFound(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var (
		res                                                       domain.Resume
		personalInfo, education, experience, skills, certs, projs []byte
		langs, custom, styling, artifact                          []byte
		sectionOrder                                              []string
	)
	err := row.Scan(
		&res.ID, &res.UserID, &res.Title, &personalInfo, &res.Summary, &education, &experience, &skills,
		&certs, &projs, &langs, &custom, pq.Array(&sectionOrder), &styling, &artifact,
		&res.IsDefault, &res.IsPublic, &res.Stats.Views, &res.Stats.Downloads,
		&res.Stats.TimesUsedInApplications, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	docs := []struct {
		src []byte
		dst any
	}{
		{personalInfo, &res.PersonalInfo},
		{education, &res.Education},
		{experience, &res.WorkExperience},
		{skills, &res.Skills},
		{certs, &res.Certifications},
		{projs, &res.Projects},
		{langs, &res.Languages},
		{custom, &res.CustomSections},
		{styling, &res.Styling},
	}
	for _, d := range docs {
		if len(d.src) == 0 {
			continue
		}
		if err := json.Unmarshal(d.src, d.dst); err != nil {
			return nil, fmt.Errorf("decode resume %s: %w", res.ID, err)
		}
	}
	if len(artifact) > 0 {
		res.Artifact = &domain.Artifact{}
		if err := json.Unmarshal(artifact, res.Artifact); err != nil {
			return nil, fmt.Errorf("decode artifact %s: %w", res.ID, err)
		}
	}
	res.SectionOrder = sectionOrder
	res.Normalize()
	return &res, nil
}
