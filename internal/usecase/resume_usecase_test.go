package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lifemate-backend/internal/domain"
	"lifemate-backend/internal/usecase"
	"lifemate-backend/pkg/apperror"
	"lifemate-backend/pkg/validation"
)

const owner = "11111111-1111-1111-1111-111111111111"

type harness struct {
	repo       *fakeResumeRepo
	jobSeekers *fakeJobSeekerRepo
	renderer   *MockRenderer
	store      *MockStore
	uc         domain.ResumeUsecase
}

func newHarness(t *testing.T, timeout time.Duration) *harness {
	t.Helper()
	h := &harness{
		repo: newFakeResumeRepo(),
		jobSeekers: newFakeJobSeekerRepo(&domain.JobSeekerProfile{
			UserID:    owner,
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Education: []domain.Education{
				{Degree: "BSc", Institution: "London"},
				{Degree: "MSc", Institution: "Cambridge"},
			},
			Skills: []domain.Skill{{Name: "Mathematics"}},
		}),
		renderer: new(MockRenderer),
		store:    new(MockStore),
	}
	h.uc = usecase.NewResumeUsecase(h.repo, h.jobSeekers, h.renderer, h.store, validation.New(), timeout)
	return h
}

func (h *harness) renderOK() {
	h.renderer.On("Render", mock.Anything).
		Return(&domain.RenderedDocument{Data: []byte("%PDF-1.3"), PageCount: 1}, nil)
}

func (h *harness) storeOK(storageID string) {
	h.store.On("Store", mock.Anything, mock.Anything, owner, mock.Anything).
		Return(&domain.StoredObject{URL: "https://cdn/" + storageID, StorageID: storageID, ByteSize: 8}, nil).Once()
}

func existingResume(id string) domain.Resume {
	r := domain.Resume{
		ID:     id,
		UserID: owner,
		Title:  "Original",
		WorkExperience: []domain.WorkExperience{
			{Position: "Engineer", Company: "Acme", StartDate: domain.NewDate(2020, time.January, 1), IsCurrent: true},
		},
		Stats: domain.ResumeStats{Views: 7, Downloads: 3},
	}
	r.Normalize()
	return r
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestCreate_AutoPopulateFromProfile(t *testing.T) {
	h := newHarness(t, time.Second)
	h.renderOK()
	h.storeOK("s-1")

	resume, err := h.uc.Create(context.Background(), owner, &domain.CreateResumeInput{AutoPopulate: true})
	require.NoError(t, err)

	assert.Len(t, resume.Education, 2)
	assert.Len(t, resume.Skills, 1)
	assert.Equal(t, "Ada Lovelace", resume.PersonalInfo.FullName)
	assert.Equal(t, domain.DefaultResumeTitle, resume.Title)
	require.NotNil(t, resume.Artifact)
	assert.Equal(t, "Ada_Lovelace_Resume.pdf", resume.Artifact.Filename)

	stored := h.repo.snapshot(resume.ID)
	require.NotNil(t, stored.Artifact)
	assert.Equal(t, "s-1", stored.Artifact.StorageID)

	profile, _ := h.jobSeekers.GetByUserID(context.Background(), owner)
	assert.Contains(t, profile.ResumeIDs, resume.ID)
}

func TestCreate_LocalFieldsWinOverProfile(t *testing.T) {
	h := newHarness(t, time.Second)
	h.renderOK()
	h.storeOK("s-1")

	resume, err := h.uc.Create(context.Background(), owner, &domain.CreateResumeInput{
		AutoPopulate: true,
		PersonalInfo: &domain.PersonalInfo{FullName: "A. King"},
		Skills:       []domain.Skill{{Name: "Go"}, {Name: "SQL"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "A. King", resume.PersonalInfo.FullName)
	assert.Equal(t, "ada@example.com", resume.PersonalInfo.Email)
	assert.Len(t, resume.Skills, 2)
	assert.Len(t, resume.Education, 2)
}

func TestCreate_RenderFailureStillCreatesResume(t *testing.T) {
	h := newHarness(t, time.Second)
	h.renderer.On("Render", mock.Anything).Return(nil, domain.ErrRenderFailure)

	resume, err := h.uc.Create(context.Background(), owner, &domain.CreateResumeInput{Title: "CV"})
	require.NoError(t, err)

	assert.Nil(t, resume.Artifact)
	assert.Nil(t, h.repo.snapshot(resume.ID).Artifact)
	h.store.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_StoreFailureStillCreatesResume(t *testing.T) {
	h := newHarness(t, time.Second)
	h.renderOK()
	h.store.On("Store", mock.Anything, mock.Anything, owner, mock.Anything).Return(nil, errors.New("bucket unreachable"))

	resume, err := h.uc.Create(context.Background(), owner, &domain.CreateResumeInput{Title: "CV"})
	require.NoError(t, err)
	assert.Nil(t, resume.Artifact)
}

func TestCreate_RequiresJobSeekerProfile(t *testing.T) {
	h := newHarness(t, time.Second)

	_, err := h.uc.Create(context.Background(), "someone-else", &domain.CreateResumeInput{Title: "CV"})
	requireAppError(t, err, http.StatusNotFound)
}

func TestCreate_ValidationFailureListsFields(t *testing.T) {
	h := newHarness(t, time.Second)

	_, err := h.uc.Create(context.Background(), owner, &domain.CreateResumeInput{
		Title:        strings.Repeat("x", 101),
		SectionOrder: []string{"summary", "hobbies"},
		Education:    []domain.Education{{Degree: "BSc"}},
	})
	appErr := requireAppError(t, err, http.StatusBadRequest)

	fields := map[string]bool{}
	for _, f := range appErr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["section_order[1]"])
	assert.True(t, fields["education[0].institution"])
}

func TestCreate_AsDefaultClearsSiblings(t *testing.T) {
	h := newHarness(t, time.Second)
	h.renderer.On("Render", mock.Anything).Return(nil, domain.ErrRenderFailure)
	prev := existingResume("a")
	prev.IsDefault = true
	h.repo.seed(prev)

	resume, err := h.uc.Create(context.Background(), owner, &domain.CreateResumeInput{Title: "New", IsDefault: true})
	require.NoError(t, err)

	assert.True(t, resume.IsDefault)
	assert.False(t, h.repo.snapshot("a").IsDefault)
	assert.Equal(t, 1, h.repo.defaults(owner))
}

func TestCreate_DefaultFailureStillCreatesResume(t *testing.T) {
	h := newHarness(t, time.Second)
	h.renderOK()
	h.storeOK("s-1")
	h.repo.setDefaultErr = errors.New("connection reset")
	prev := existingResume("a")
	prev.IsDefault = true
	h.repo.seed(prev)

	resume, err := h.uc.Create(context.Background(), owner, &domain.CreateResumeInput{Title: "New", IsDefault: true})
	require.NoError(t, err)

	assert.False(t, resume.IsDefault)
	assert.True(t, h.repo.snapshot("a").IsDefault)
	assert.Equal(t, "New", h.repo.snapshot(resume.ID).Title)
	require.NotNil(t, resume.Artifact)
}

func TestSetDefault_MovesFlagFromAToB(t *testing.T) {
	h := newHarness(t, time.Second)
	a := existingResume("a")
	a.IsDefault = true
	h.repo.seed(a)
	h.repo.seed(existingResume("b"))

	resume, err := h.uc.SetDefault(context.Background(), owner, "b")
	require.NoError(t, err)

	assert.True(t, resume.IsDefault)
	assert.False(t, h.repo.snapshot("a").IsDefault)
	assert.True(t, h.repo.snapshot("b").IsDefault)
	assert.Equal(t, 1, h.repo.defaults(owner))

	_, err = h.uc.SetDefault(context.Background(), owner, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, h.repo.defaults(owner))
}

func TestGet_IncrementsViewsEachTime(t *testing.T) {
	h := newHarness(t, time.Second)
	h.repo.seed(existingResume("a"))

	first, err := h.uc.Get(context.Background(), owner, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(8), first.Stats.Views)

	second, err := h.uc.Get(context.Background(), owner, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(9), second.Stats.Views)
	assert.Equal(t, int64(9), h.repo.snapshot("a").Stats.Views)
}

func TestPreview_DoesNotTouchCounters(t *testing.T) {
	h := newHarness(t, time.Second)
	h.repo.seed(existingResume("a"))

	resume, err := h.uc.Preview(context.Background(), owner, "a")
	require.NoError(t, err)

	assert.Equal(t, int64(7), resume.Stats.Views)
	assert.Equal(t, int64(7), h.repo.snapshot("a").Stats.Views)
}

func TestOtherOwnersResumeIsNotFound(t *testing.T) {
	h := newHarness(t, time.Second)
	r := existingResume("a")
	r.UserID = "22222222-2222-2222-2222-222222222222"
	h.repo.seed(r)

	_, err := h.uc.Get(context.Background(), owner, "a")
	requireAppError(t, err, http.StatusNotFound)
	_, err = h.uc.Preview(context.Background(), owner, "a")
	requireAppError(t, err, http.StatusNotFound)
	requireAppError(t, h.uc.Delete(context.Background(), owner, "a"), http.StatusNotFound)
	_, err = h.uc.SetDefault(context.Background(), owner, "a")
	requireAppError(t, err, http.StatusNotFound)
}

func TestUpdate_TitleOnlyLeavesEverythingElse(t *testing.T) {
	h := newHarness(t, time.Second)
	h.repo.seed(existingResume("a"))
	before := h.repo.snapshot("a")

	title := "X"
	resume, err := h.uc.Update(context.Background(), owner, "a", &domain.UpdateResumeInput{Title: &title})
	require.NoError(t, err)

	after := h.repo.snapshot("a")
	assert.Equal(t, "X", resume.Title)
	assert.Equal(t, "X", after.Title)
	assert.Equal(t, before.WorkExperience, after.WorkExperience)
	assert.Equal(t, before.Stats, after.Stats)
	assert.Equal(t, before.Styling, after.Styling)
	h.renderer.AssertNotCalled(t, "Render", mock.Anything)
}

func TestUpdate_RegenerateRenderFailureKeepsOldArtifact(t *testing.T) {
	h := newHarness(t, time.Second)
	r := existingResume("a")
	r.Artifact = &domain.Artifact{URL: "https://cdn/old", StorageID: "old", Filename: "old.pdf"}
	h.repo.seed(r)
	h.renderer.On("Render", mock.Anything).Return(nil, errors.New("font table corrupt"))

	title := "Renamed"
	resume, err := h.uc.Update(context.Background(), owner, "a", &domain.UpdateResumeInput{Title: &title, RegeneratePDF: true})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", resume.Title)
	require.NotNil(t, resume.Artifact)
	assert.Equal(t, "old", resume.Artifact.StorageID)
	assert.Equal(t, "old", h.repo.snapshot("a").Artifact.StorageID)
	h.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdate_RegenerateReplacesThenDeletesOldArtifact(t *testing.T) {
	h := newHarness(t, time.Second)
	r := existingResume("a")
	r.Artifact = &domain.Artifact{StorageID: "old"}
	h.repo.seed(r)
	h.renderOK()
	h.storeOK("new")
	h.store.On("Delete", mock.Anything, "old").Return(errors.New("timeout"))

	_, err := h.uc.Update(context.Background(), owner, "a", &domain.UpdateResumeInput{RegeneratePDF: true})
	require.NoError(t, err)

	assert.Equal(t, "new", h.repo.snapshot("a").Artifact.StorageID)
	h.store.AssertCalled(t, "Delete", mock.Anything, "old")
}

func TestUpdate_UnsetDefault(t *testing.T) {
	h := newHarness(t, time.Second)
	r := existingResume("a")
	r.IsDefault = true
	h.repo.seed(r)

	off := false
	resume, err := h.uc.Update(context.Background(), owner, "a", &domain.UpdateResumeInput{IsDefault: &off})
	require.NoError(t, err)

	assert.False(t, resume.IsDefault)
	assert.Equal(t, 0, h.repo.defaults(owner))
}

func TestUpdate_InvalidStylingRejected(t *testing.T) {
	h := newHarness(t, time.Second)
	h.repo.seed(existingResume("a"))

	_, err := h.uc.Update(context.Background(), owner, "a", &domain.UpdateResumeInput{
		Styling: &domain.Styling{FontFamily: "Comic Sans", FontSize: 40},
	})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.NotEmpty(t, appErr.Fields)
	assert.Equal(t, domain.DefaultFontFamily, h.repo.snapshot("a").Styling.FontFamily)
}

func TestDownload_GeneratesWhenArtifactMissing(t *testing.T) {
	h := newHarness(t, time.Second)
	r := existingResume("a")
	r.Stats.Downloads = 0
	h.repo.seed(r)
	h.renderOK()
	h.storeOK("s-1")

	result, err := h.uc.Download(context.Background(), owner, "a")
	require.NoError(t, err)

	assert.NotEmpty(t, result.URL)
	assert.Equal(t, "Original_Resume.pdf", result.Filename)
	assert.Equal(t, int64(1), result.Downloads)
	assert.Equal(t, int64(1), h.repo.snapshot("a").Stats.Downloads)
}

func TestDownload_ExistingArtifactSkipsRender(t *testing.T) {
	h := newHarness(t, time.Second)
	r := existingResume("a")
	r.Artifact = &domain.Artifact{URL: "https://cdn/a.pdf", Filename: "a.pdf", StorageID: "a"}
	h.repo.seed(r)

	result, err := h.uc.Download(context.Background(), owner, "a")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn/a.pdf", result.URL)
	assert.Equal(t, int64(4), result.Downloads)
	h.renderer.AssertNotCalled(t, "Render", mock.Anything)
}

func TestDownload_GenerationFailureIsArtifactMissing(t *testing.T) {
	h := newHarness(t, time.Second)
	h.repo.seed(existingResume("a"))
	h.renderer.On("Render", mock.Anything).Return(nil, domain.ErrRenderFailure)

	_, err := h.uc.Download(context.Background(), owner, "a")
	requireAppError(t, err, http.StatusInternalServerError)
	assert.ErrorIs(t, err, domain.ErrArtifactMissing)
	assert.Equal(t, int64(3), h.repo.snapshot("a").Stats.Downloads)
}

func TestGeneratePDF_UnsupportedTextIsBadRequest(t *testing.T) {
	h := newHarness(t, time.Second)
	h.repo.seed(existingResume("a"))
	h.renderer.On("Render", mock.Anything).
		Return(nil, fmt.Errorf("%w: %w: U+1F680", domain.ErrRenderFailure, domain.ErrUnsupportedText))

	_, err := h.uc.GeneratePDF(context.Background(), owner, "a")
	requireAppError(t, err, http.StatusBadRequest)
	assert.ErrorIs(t, err, domain.ErrUnsupportedText)

	_, err = h.uc.Download(context.Background(), owner, "a")
	requireAppError(t, err, http.StatusBadRequest)
	h.store.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGeneratePDF_StoreFailurePropagates(t *testing.T) {
	h := newHarness(t, time.Second)
	h.repo.seed(existingResume("a"))
	h.renderOK()
	h.store.On("Store", mock.Anything, mock.Anything, owner, mock.Anything).Return(nil, errors.New("403 from bucket"))

	_, err := h.uc.GeneratePDF(context.Background(), owner, "a")
	requireAppError(t, err, http.StatusInternalServerError)
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.Nil(t, h.repo.snapshot("a").Artifact)
}

func TestGeneratePDF_RenderTimeout(t *testing.T) {
	h := newHarness(t, 20*time.Millisecond)
	h.repo.seed(existingResume("a"))
	block := make(chan time.Time)
	defer close(block)
	h.renderer.On("Render", mock.Anything).WaitUntil(block).
		Return(&domain.RenderedDocument{Data: []byte("late")}, nil)

	_, err := h.uc.GeneratePDF(context.Background(), owner, "a")
	requireAppError(t, err, http.StatusInternalServerError)
	assert.ErrorIs(t, err, domain.ErrRenderFailure)
}

func TestGeneratePDF_Success(t *testing.T) {
	h := newHarness(t, time.Second)
	h.repo.seed(existingResume("a"))
	h.renderOK()
	h.storeOK("s-9")

	artifact, err := h.uc.GeneratePDF(context.Background(), owner, "a")
	require.NoError(t, err)

	assert.Equal(t, "s-9", artifact.StorageID)
	assert.Equal(t, "application/pdf", artifact.MimeType)
	assert.Equal(t, 1, artifact.PageCount)
	assert.False(t, artifact.GeneratedAt.IsZero())
}

func TestDelete_StoreFailureDoesNotBlockDeletion(t *testing.T) {
	h := newHarness(t, time.Second)
	r := existingResume("a")
	r.Artifact = &domain.Artifact{StorageID: "s-1"}
	h.repo.seed(r)
	_ = h.jobSeekers.AddResume(context.Background(), owner, "a")
	h.store.On("Delete", mock.Anything, "s-1").Return(errors.New("connection refused"))

	require.NoError(t, h.uc.Delete(context.Background(), owner, "a"))

	_, err := h.uc.Preview(context.Background(), owner, "a")
	requireAppError(t, err, http.StatusNotFound)
	profile, _ := h.jobSeekers.GetByUserID(context.Background(), owner)
	assert.NotContains(t, profile.ResumeIDs, "a")
}

func TestListTemplates(t *testing.T) {
	h := newHarness(t, time.Second)
	templates := h.uc.ListTemplates()
	require.NotEmpty(t, templates)
	for _, tpl := range templates {
		assert.NotEmpty(t, tpl.ID)
		assert.NotEmpty(t, tpl.PreviewPath)
	}
}
