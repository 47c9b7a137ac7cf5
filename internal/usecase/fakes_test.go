package usecase_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"lifemate-backend/internal/domain"
)

// fakeResumeRepo is an in-memory ResumeRepository scoped by owner like the real one.
type fakeResumeRepo struct {
	mu      sync.Mutex
	resumes map[string]domain.Resume
	// setDefaultErr, when set, fails every SetDefault call.
	setDefaultErr error
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: map[string]domain.Resume{}}
}

func clone(r domain.Resume) *domain.Resume {
	if r.Artifact != nil {
		a := *r.Artifact
		r.Artifact = &a
	}
	return &r
}

func (f *fakeResumeRepo) seed(r domain.Resume) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumes[r.ID] = r
}

func (f *fakeResumeRepo) snapshot(id string) domain.Resume {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *clone(f.resumes[id])
}

func (f *fakeResumeRepo) defaults(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.resumes {
		if r.UserID == userID && r.IsDefault {
			n++
		}
	}
	return n
}

func (f *fakeResumeRepo) owned(userID, id string) (domain.Resume, bool) {
	r, ok := f.resumes[id]
	if !ok || r.UserID != userID {
		return domain.Resume{}, false
	}
	return r, true
}

func (f *fakeResumeRepo) Create(_ context.Context, r *domain.Resume) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumes[r.ID] = *clone(*r)
	return nil
}

func (f *fakeResumeRepo) GetByID(_ context.Context, userID, id string) (*domain.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.owned(userID, id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(r), nil
}

func (f *fakeResumeRepo) ListByUser(_ context.Context, userID string) ([]domain.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Resume{}
	for _, r := range f.resumes {
		if r.UserID == userID {
			out = append(out, *clone(r))
		}
	}
	return out, nil
}

func (f *fakeResumeRepo) Update(_ context.Context, r *domain.Resume) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.owned(r.UserID, r.ID)
	if !ok {
		return domain.ErrNotFound
	}
	// Only content fields are written, mirroring the SQL update.
	stored.Title = r.Title
	stored.PersonalInfo = r.PersonalInfo
	stored.Summary = r.Summary
	stored.Education = r.Education
	stored.WorkExperience = r.WorkExperience
	stored.Skills = r.Skills
	stored.Certifications = r.Certifications
	stored.Projects = r.Projects
	stored.Languages = r.Languages
	stored.CustomSections = r.CustomSections
	stored.SectionOrder = r.SectionOrder
	stored.Styling = r.Styling
	stored.IsPublic = r.IsPublic
	f.resumes[r.ID] = stored
	return nil
}

func (f *fakeResumeRepo) SetArtifact(_ context.Context, userID, id string, a *domain.Artifact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.owned(userID, id)
	if !ok {
		return domain.ErrNotFound
	}
	cp := *a
	stored.Artifact = &cp
	f.resumes[id] = stored
	return nil
}

func (f *fakeResumeRepo) SetDefault(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setDefaultErr != nil {
		return f.setDefaultErr
	}
	if _, ok := f.owned(userID, id); !ok {
		return domain.ErrNotFound
	}
	for rid, r := range f.resumes {
		if r.UserID == userID {
			r.IsDefault = rid == id
			f.resumes[rid] = r
		}
	}
	return nil
}

func (f *fakeResumeRepo) ClearDefault(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.owned(userID, id)
	if !ok {
		return domain.ErrNotFound
	}
	stored.IsDefault = false
	f.resumes[id] = stored
	return nil
}

func (f *fakeResumeRepo) IncrementViews(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.owned(userID, id)
	if !ok {
		return domain.ErrNotFound
	}
	stored.Stats.Views++
	f.resumes[id] = stored
	return nil
}

func (f *fakeResumeRepo) IncrementDownloads(_ context.Context, userID, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.owned(userID, id)
	if !ok {
		return 0, domain.ErrNotFound
	}
	stored.Stats.Downloads++
	f.resumes[id] = stored
	return stored.Stats.Downloads, nil
}

func (f *fakeResumeRepo) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.owned(userID, id); !ok {
		return domain.ErrNotFound
	}
	delete(f.resumes, id)
	return nil
}

type fakeJobSeekerRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.JobSeekerProfile
}

func newFakeJobSeekerRepo(profiles ...*domain.JobSeekerProfile) *fakeJobSeekerRepo {
	f := &fakeJobSeekerRepo{profiles: map[string]*domain.JobSeekerProfile{}}
	for _, p := range profiles {
		f.profiles[p.UserID] = p
	}
	return f
}

func (f *fakeJobSeekerRepo) GetByUserID(_ context.Context, userID string) (*domain.JobSeekerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeJobSeekerRepo) AddResume(_ context.Context, userID, resumeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return domain.ErrNotFound
	}
	p.ResumeIDs = append(p.ResumeIDs, resumeID)
	return nil
}

func (f *fakeJobSeekerRepo) RemoveResume(_ context.Context, userID, resumeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil
	}
	kept := p.ResumeIDs[:0]
	for _, id := range p.ResumeIDs {
		if id != resumeID {
			kept = append(kept, id)
		}
	}
	p.ResumeIDs = kept
	return nil
}

// Mock adapters

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(resume *domain.Resume) (*domain.RenderedDocument, error) {
	args := m.Called(resume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenderedDocument), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Store(ctx context.Context, data []byte, folderKey, fileName string) (*domain.StoredObject, error) {
	args := m.Called(ctx, data, folderKey, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredObject), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, storageID string) error {
	return m.Called(ctx, storageID).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
