package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"lifemate-backend/internal/domain"
	"lifemate-backend/pkg/apperror"
	"lifemate-backend/pkg/logger"
	"lifemate-backend/pkg/validation"
)

const pdfMimeType = "application/pdf"

type resumeUsecase struct {
	repo          domain.ResumeRepository
	jobSeekers    domain.JobSeekerRepository
	renderer      domain.ResumeRenderer
	store         domain.ArtifactStore
	validate      *validator.Validate
	renderTimeout time.Duration
	now           func() time.Time
}

func NewResumeUsecase(
	repo domain.ResumeRepository,
	jobSeekers domain.JobSeekerRepository,
	renderer domain.ResumeRenderer,
	store domain.ArtifactStore,
	validate *validator.Validate,
	renderTimeout time.Duration,
) domain.ResumeUsecase {
	return &resumeUsecase{
		repo:          repo,
		jobSeekers:    jobSeekers,
		renderer:      renderer,
		store:         store,
		validate:      validate,
		renderTimeout: renderTimeout,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *resumeUsecase) ListTemplates() []domain.ResumeTemplate {
	return append([]domain.ResumeTemplate(nil), domain.ResumeTemplates...)
}

func (u *resumeUsecase) Create(ctx context.Context, userID string, input *domain.CreateResumeInput) (*domain.Resume, error) {
	profile, err := u.jobSeekers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job seeker profile not found")
		}
		return nil, apperror.Internal(err)
	}

	if input.AutoPopulate {
		input = mergeProfile(input, profile)
	}

	now := u.now()
	resume := &domain.Resume{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          input.Title,
		Summary:        input.Summary,
		Education:      input.Education,
		WorkExperience: input.WorkExperience,
		Skills:         input.Skills,
		Certifications: input.Certifications,
		Projects:       input.Projects,
		Languages:      input.Languages,
		CustomSections: input.CustomSections,
		SectionOrder:   input.SectionOrder,
		IsPublic:       input.IsPublic,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.PersonalInfo != nil {
		resume.PersonalInfo = *input.PersonalInfo
	}
	if input.Styling != nil {
		resume.Styling = *input.Styling
	}
	resume.Normalize()

	if err := u.validate.Struct(resume); err != nil {
		return nil, apperror.Validation(validation.FieldErrors(err))
	}

	if err := u.repo.Create(ctx, resume); err != nil {
		return nil, toAppError(err)
	}

	if err := u.jobSeekers.AddResume(ctx, userID, resume.ID); err != nil {
		logger.Log.Warn("failed to link resume to job seeker",
			"resume_id", resume.ID, "user_id", userID, "error", err)
	}

	if input.IsDefault {
		if err := u.repo.SetDefault(ctx, userID, resume.ID); err != nil {
			logger.Log.Warn("failed to mark new resume as default",
				"resume_id", resume.ID, "user_id", userID, "error", err)
		} else {
			resume.IsDefault = true
		}
	}

	// The resume exists even if the first render fails; it can be generated later.
	if _, err := u.generate(ctx, resume); err != nil {
		logger.Log.Error("initial resume render failed",
			"resume_id", resume.ID, "user_id", userID, "error", err)
	}
	return resume, nil
}

func (u *resumeUsecase) List(ctx context.Context, userID string) ([]domain.Resume, error) {
	resumes, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, toAppError(err)
	}
	return resumes, nil
}

func (u *resumeUsecase) Get(ctx context.Context, userID, id string) (*domain.Resume, error) {
	resume, err := u.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := u.repo.IncrementViews(ctx, userID, id); err != nil {
		logger.Log.Warn("failed to increment resume views",
			"resume_id", id, "user_id", userID, "error", err)
		return resume, nil
	}
	resume.Stats.Views++
	return resume, nil
}

func (u *resumeUsecase) Preview(ctx context.Context, userID, id string) (*domain.Resume, error) {
	return u.load(ctx, userID, id)
}

func (u *resumeUsecase) Update(ctx context.Context, userID, id string, input *domain.UpdateResumeInput) (*domain.Resume, error) {
	resume, err := u.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(resume, input)
	resume.Normalize()
	if err := u.validate.Struct(resume); err != nil {
		return nil, apperror.Validation(validation.FieldErrors(err))
	}

	if err := u.repo.Update(ctx, resume); err != nil {
		return nil, toAppError(err)
	}

	if input.IsDefault != nil {
		switch {
		case *input.IsDefault && !resume.IsDefault:
			err = u.repo.SetDefault(ctx, userID, id)
		case !*input.IsDefault && resume.IsDefault:
			err = u.repo.ClearDefault(ctx, userID, id)
		}
		if err != nil {
			return nil, toAppError(err)
		}
		resume.IsDefault = *input.IsDefault
	}

	if input.RegeneratePDF {
		// Non-fatal: the previous artifact stays in place when regeneration fails.
		if _, err := u.generate(ctx, resume); err != nil {
			logger.Log.Error("resume regeneration failed",
				"resume_id", id, "user_id", userID, "error", err)
		}
	}
	return resume, nil
}

func applyUpdate(resume *domain.Resume, in *domain.UpdateResumeInput) {
	if in.Title != nil {
		resume.Title = *in.Title
	}
	if in.PersonalInfo != nil {
		resume.PersonalInfo = *in.PersonalInfo
	}
	if in.Summary != nil {
		resume.Summary = *in.Summary
	}
	if in.Education != nil {
		resume.Education = *in.Education
	}
	if in.WorkExperience != nil {
		resume.WorkExperience = *in.WorkExperience
	}
	if in.Skills != nil {
		resume.Skills = *in.Skills
	}
	if in.Certifications != nil {
		resume.Certifications = *in.Certifications
	}
	if in.Projects != nil {
		resume.Projects = *in.Projects
	}
	if in.Languages != nil {
		resume.Languages = *in.Languages
	}
	if in.CustomSections != nil {
		resume.CustomSections = *in.CustomSections
	}
	if in.SectionOrder != nil {
		resume.SectionOrder = *in.SectionOrder
	}
	if in.Styling != nil {
		resume.Styling = *in.Styling
	}
	if in.IsPublic != nil {
		resume.IsPublic = *in.IsPublic
	}
}

func (u *resumeUsecase) Delete(ctx context.Context, userID, id string) error {
	resume, err := u.load(ctx, userID, id)
	if err != nil {
		return err
	}

	if resume.Artifact != nil && resume.Artifact.StorageID != "" {
		u.discardArtifact(ctx, resume, resume.Artifact.StorageID)
	}

	if err := u.repo.Delete(ctx, userID, id); err != nil {
		return toAppError(err)
	}

	if err := u.jobSeekers.RemoveResume(ctx, userID, id); err != nil {
		logger.Log.Warn("failed to unlink resume from job seeker",
			"resume_id", id, "user_id", userID, "error", err)
	}
	return nil
}

func (u *resumeUsecase) GeneratePDF(ctx context.Context, userID, id string) (*domain.Artifact, error) {
	resume, err := u.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	artifact, err := u.generate(ctx, resume)
	if err != nil {
		return nil, generationError(err)
	}
	return artifact, nil
}

func (u *resumeUsecase) Download(ctx context.Context, userID, id string) (*domain.DownloadResult, error) {
	resume, err := u.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if resume.Artifact == nil {
		if _, err := u.generate(ctx, resume); err != nil {
			if errors.Is(err, domain.ErrUnsupportedText) {
				return nil, generationError(err)
			}
			return nil, apperror.New(http.StatusInternalServerError, "Resume PDF is not available",
				fmt.Errorf("%w: %w", domain.ErrArtifactMissing, err))
		}
	}

	downloads := resume.Stats.Downloads
	if n, err := u.repo.IncrementDownloads(ctx, userID, id); err != nil {
		logger.Log.Warn("failed to increment resume downloads",
			"resume_id", id, "user_id", userID, "error", err)
	} else {
		downloads = n
	}

	return &domain.DownloadResult{
		URL:       resume.Artifact.URL,
		Filename:  resume.Artifact.Filename,
		Downloads: downloads,
	}, nil
}

func (u *resumeUsecase) SetDefault(ctx context.Context, userID, id string) (*domain.Resume, error) {
	if err := u.repo.SetDefault(ctx, userID, id); err != nil {
		return nil, toAppError(err)
	}
	return u.load(ctx, userID, id)
}

func (u *resumeUsecase) load(ctx context.Context, userID, id string) (*domain.Resume, error) {
	resume, err := u.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, toAppError(err)
	}
	return resume, nil
}

// generate renders and uploads the resume, then swaps the stored artifact reference.
// The previous artifact is only deleted after the new reference is persisted.
func (u *resumeUsecase) generate(ctx context.Context, resume *domain.Resume) (*domain.Artifact, error) {
	opCtx := ctx
	if u.renderTimeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, u.renderTimeout)
		defer cancel()
	}

	doc, err := u.render(opCtx, resume)
	if err != nil {
		return nil, err
	}

	fileName := artifactFileName(resume)
	obj, err := u.store.Store(opCtx, doc.Data, resume.UserID, fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	artifact := &domain.Artifact{
		URL:         obj.URL,
		Filename:    fileName,
		StorageID:   obj.StorageID,
		ByteSize:    obj.ByteSize,
		PageCount:   doc.PageCount,
		MimeType:    pdfMimeType,
		GeneratedAt: u.now(),
	}
	if err := u.repo.SetArtifact(ctx, resume.UserID, resume.ID, artifact); err != nil {
		// The new object is orphaned; the old reference is still the stored one.
		u.discardArtifact(ctx, resume, obj.StorageID)
		return nil, err
	}

	previous := resume.Artifact
	resume.Artifact = artifact
	if previous != nil && previous.StorageID != "" && previous.StorageID != artifact.StorageID {
		u.discardArtifact(ctx, resume, previous.StorageID)
	}
	return artifact, nil
}

// render runs the renderer under ctx so a stuck render cannot hold the request forever.
func (u *resumeUsecase) render(ctx context.Context, resume *domain.Resume) (*domain.RenderedDocument, error) {
	type result struct {
		doc *domain.RenderedDocument
		err error
	}
	snapshot := *resume
	done := make(chan result, 1)
	go func() {
		doc, err := u.renderer.Render(&snapshot)
		done <- result{doc: doc, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			if errors.Is(res.err, domain.ErrRenderFailure) {
				return nil, res.err
			}
			return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, res.err)
		}
		return res.doc, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, ctx.Err())
	}
}

// discardArtifact deletes a stored object, logging instead of failing.
func (u *resumeUsecase) discardArtifact(ctx context.Context, resume *domain.Resume, storageID string) {
	err := u.store.Delete(ctx, storageID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrArtifactNotFound):
		logger.Log.Info("resume artifact already gone",
			"resume_id", resume.ID, "user_id", resume.UserID, "storage_id", storageID)
	default:
		logger.Log.Warn("failed to delete resume artifact",
			"resume_id", resume.ID, "user_id", resume.UserID, "storage_id", storageID, "error", err)
	}
}

// artifactFileName builds e.g. "Jane_Doe_Resume.pdf" from the name, falling back to the title.
func artifactFileName(resume *domain.Resume) string {
	base := strings.TrimSpace(resume.PersonalInfo.FullName)
	if base == "" {
		base = strings.TrimSpace(resume.Title)
	}
	var b strings.Builder
	lastUnderscore := true
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	name := strings.TrimSuffix(b.String(), "_")
	if name == "" {
		return "Resume.pdf"
	}
	return name + "_Resume.pdf"
}

func generationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnsupportedText):
		return apperror.New(http.StatusBadRequest, "Resume contains characters that cannot be rendered", err)
	case errors.Is(err, domain.ErrRenderFailure):
		return apperror.New(http.StatusInternalServerError, "Failed to render resume PDF", err)
	case errors.Is(err, domain.ErrStoreFailure):
		return apperror.New(http.StatusInternalServerError, "Failed to store resume PDF", err)
	}
	return toAppError(err)
}

func toAppError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Resume not found")
	}
	return apperror.Internal(err)
}
