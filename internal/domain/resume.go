package domain

import (
	"context"
	"time"
)

// Section keys accepted in Resume.SectionOrder.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionLanguages      = "languages"
	SectionCustom         = "custom"
)

// DefaultSectionOrder is rendered when a resume has no explicit section order.
var DefaultSectionOrder = []string{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
	SectionProjects,
	SectionLanguages,
	SectionCustom,
}

// Skill levels
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
	SkillAdvanced     = "Advanced"
	SkillExpert       = "Expert"
)

// Language proficiencies
const (
	ProficiencyBasic        = "Basic"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyFluent       = "Fluent"
	ProficiencyNative       = "Native"
)

// Styling defaults
const (
	DefaultResumeTitle  = "My Resume"
	DefaultFontFamily   = "Helvetica"
	DefaultFontSize     = 11
	DefaultPrimaryColor = "#1F2937"
	DefaultAccentColor  = "#2563EB"
	SpacingCompact      = "compact"
	SpacingNormal       = "normal"
	SpacingRelaxed      = "relaxed"
)

type Address struct {
	Street  string `json:"street,omitempty" validate:"max=200"`
	City    string `json:"city,omitempty" validate:"max=100"`
	State   string `json:"state,omitempty" validate:"max=100"`
	Country string `json:"country,omitempty" validate:"max=100"`
	ZipCode string `json:"zip_code,omitempty" validate:"max=20"`
}

type PersonalInfo struct {
	FullName string  `json:"full_name" validate:"max=100"`
	Email    string  `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Phone    string  `json:"phone,omitempty" validate:"omitempty,valid_phone"`
	Address  Address `json:"address"`
	LinkedIn string  `json:"linkedin,omitempty" validate:"omitempty,url,max=300"`
	GitHub   string  `json:"github,omitempty" validate:"omitempty,url,max=300"`
	Website  string  `json:"website,omitempty" validate:"omitempty,url,max=300"`
}

type Education struct {
	Degree         string `json:"degree" validate:"required,max=100"`
	Field          string `json:"field,omitempty" validate:"max=100"`
	Institution    string `json:"institution" validate:"required,max=150"`
	CompletionYear int    `json:"completion_year,omitempty" validate:"omitempty,min=1950,max=2100"`
	Grade          string `json:"grade,omitempty" validate:"max=50"`
	Visible        *bool  `json:"visible,omitempty"`
}

type WorkExperience struct {
	Position     string   `json:"position" validate:"required,max=100"`
	Company      string   `json:"company" validate:"required,max=150"`
	Location     string   `json:"location,omitempty" validate:"max=100"`
	StartDate    Date     `json:"start_date"`
	EndDate      *Date    `json:"end_date,omitempty"`
	IsCurrent    bool     `json:"is_current"`
	Description  string   `json:"description,omitempty" validate:"max=2000"`
	Achievements []string `json:"achievements,omitempty" validate:"max=20,dive,max=300"`
	Visible      *bool    `json:"visible,omitempty"`
}

type Skill struct {
	Name    string `json:"name" validate:"required,max=60"`
	Level   string `json:"level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Visible *bool  `json:"visible,omitempty"`
}

type Certification struct {
	Name          string `json:"name" validate:"required,max=150"`
	Issuer        string `json:"issuer,omitempty" validate:"max=150"`
	IssueDate     *Date  `json:"issue_date,omitempty"`
	ExpiryDate    *Date  `json:"expiry_date,omitempty"`
	CredentialID  string `json:"credential_id,omitempty" validate:"max=100"`
	CredentialURL string `json:"credential_url,omitempty" validate:"omitempty,url,max=300"`
	Visible       *bool  `json:"visible,omitempty"`
}

type Project struct {
	Title        string   `json:"title" validate:"required,max=150"`
	Description  string   `json:"description,omitempty" validate:"max=2000"`
	Technologies []string `json:"technologies,omitempty" validate:"max=30,dive,max=60"`
	StartDate    *Date    `json:"start_date,omitempty"`
	EndDate      *Date    `json:"end_date,omitempty"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url,max=300"`
	Visible      *bool    `json:"visible,omitempty"`
}

type Language struct {
	Name        string `json:"name" validate:"required,max=60"`
	Proficiency string `json:"proficiency,omitempty" validate:"omitempty,oneof=Basic Intermediate Fluent Native"`
	Visible     *bool  `json:"visible,omitempty"`
}

// CustomSection is free-form: either a content paragraph, a list of items, or both.
type CustomSection struct {
	Title   string   `json:"title" validate:"required,max=100"`
	Content *string  `json:"content,omitempty" validate:"omitempty,max=2000"`
	Items   []string `json:"items,omitempty" validate:"max=50,dive,max=300"`
	Visible *bool    `json:"visible,omitempty"`
}

type Styling struct {
	FontFamily   string `json:"font_family" validate:"omitempty,oneof=Helvetica Times Courier"`
	FontSize     int    `json:"font_size" validate:"omitempty,min=8,max=16"`
	PrimaryColor string `json:"primary_color" validate:"omitempty,hexcolor"`
	AccentColor  string `json:"accent_color" validate:"omitempty,hexcolor"`
	Spacing      string `json:"spacing" validate:"omitempty,oneof=compact normal relaxed"`
}

// Artifact references the rendered PDF held by the artifact store.
type Artifact struct {
	URL         string    `json:"url"`
	Filename    string    `json:"filename"`
	StorageID   string    `json:"storage_id"`
	ByteSize    int64     `json:"byte_size"`
	PageCount   int       `json:"page_count,omitempty"`
	MimeType    string    `json:"mime_type"`
	GeneratedAt time.Time `json:"generated_at"`
}

type ResumeStats struct {
	Views                   int64 `json:"views"`
	Downloads               int64 `json:"downloads"`
	TimesUsedInApplications int64 `json:"times_used_in_applications"`
}

type Resume struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	Title          string           `json:"title" validate:"required,max=100"`
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	Summary        string           `json:"summary,omitempty" validate:"max=2000"`
	Education      []Education      `json:"education" validate:"max=50,dive"`
	WorkExperience []WorkExperience `json:"work_experience" validate:"max=50,dive"`
	Skills         []Skill          `json:"skills" validate:"max=100,dive"`
	Certifications []Certification  `json:"certifications" validate:"max=50,dive"`
	Projects       []Project        `json:"projects" validate:"max=50,dive"`
	Languages      []Language       `json:"languages" validate:"max=30,dive"`
	CustomSections []CustomSection  `json:"custom_sections" validate:"max=20,dive"`
	SectionOrder   []string         `json:"section_order" validate:"max=8,unique,dive,oneof=summary experience education skills certifications projects languages custom"`
	Styling        Styling          `json:"styling"`
	Artifact       *Artifact        `json:"artifact,omitempty"`
	IsDefault      bool             `json:"is_default"`
	IsPublic       bool             `json:"is_public"`
	Stats          ResumeStats      `json:"stats"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ResumeTemplate is one entry of the static template catalogue.
type ResumeTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PreviewPath string `json:"preview_path"`
}

// ResumeTemplates is served as-is by GET /resume/templates.
var ResumeTemplates = []ResumeTemplate{
	{ID: "classic", Name: "Classic", Description: "Single column layout with ruled section headings", PreviewPath: "/templates/classic.png"},
	{ID: "modern", Name: "Modern", Description: "Accent colored headings with compact spacing", PreviewPath: "/templates/modern.png"},
	{ID: "minimal", Name: "Minimal", Description: "Monochrome layout with relaxed spacing", PreviewPath: "/templates/minimal.png"},
}

// IsVisible treats an unset visibility flag as visible.
func IsVisible(v *bool) bool {
	return v == nil || *v
}

// Normalize fills server-side defaults: title, styling and unset visibility flags.
func (r *Resume) Normalize() {
	if r.Title == "" {
		r.Title = DefaultResumeTitle
	}
	if r.Styling.FontFamily == "" {
		r.Styling.FontFamily = DefaultFontFamily
	}
	if r.Styling.FontSize == 0 {
		r.Styling.FontSize = DefaultFontSize
	}
	if r.Styling.PrimaryColor == "" {
		r.Styling.PrimaryColor = DefaultPrimaryColor
	}
	if r.Styling.AccentColor == "" {
		r.Styling.AccentColor = DefaultAccentColor
	}
	if r.Styling.Spacing == "" {
		r.Styling.Spacing = SpacingNormal
	}
	for i := range r.Education {
		r.Education[i].Visible = visibleOrDefault(r.Education[i].Visible)
	}
	for i := range r.WorkExperience {
		r.WorkExperience[i].Visible = visibleOrDefault(r.WorkExperience[i].Visible)
	}
	for i := range r.Skills {
		r.Skills[i].Visible = visibleOrDefault(r.Skills[i].Visible)
	}
	for i := range r.Certifications {
		r.Certifications[i].Visible = visibleOrDefault(r.Certifications[i].Visible)
	}
	for i := range r.Projects {
		r.Projects[i].Visible = visibleOrDefault(r.Projects[i].Visible)
	}
	for i := range r.Languages {
		r.Languages[i].Visible = visibleOrDefault(r.Languages[i].Visible)
	}
	for i := range r.CustomSections {
		r.CustomSections[i].Visible = visibleOrDefault(r.CustomSections[i].Visible)
	}
}

// EffectiveSectionOrder returns the section order to render, falling back to the default.
func (r *Resume) EffectiveSectionOrder() []string {
	if len(r.SectionOrder) == 0 {
		return DefaultSectionOrder
	}
	return r.SectionOrder
}

func visibleOrDefault(v *bool) *bool {
	if v != nil {
		return v
	}
	t := true
	return &t
}

// ResumeRepository persists resumes. Every lookup is scoped by owner, so a resume owned by
// someone else is indistinguishable from a missing one (ErrNotFound).
type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, userID, id string) (*Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	// Update writes the user-editable content fields and bumps updated_at.
	Update(ctx context.Context, resume *Resume) error
	SetArtifact(ctx context.Context, userID, id string, artifact *Artifact) error
	// SetDefault marks id as the owner's default and clears every sibling in one statement.
	SetDefault(ctx context.Context, userID, id string) error
	ClearDefault(ctx context.Context, userID, id string) error
	IncrementViews(ctx context.Context, userID, id string) error
	IncrementDownloads(ctx context.Context, userID, id string) (int64, error)
	Delete(ctx context.Context, userID, id string) error
}

// ResumeRenderer turns a resume into a complete PDF document.
type ResumeRenderer interface {
	Render(resume *Resume) (*RenderedDocument, error)
}

// RenderedDocument is the output of a successful render.
type RenderedDocument struct {
	Data      []byte
	PageCount int
}

// StoredObject is what the artifact store reports after a successful upload.
type StoredObject struct {
	URL       string
	StorageID string
	ByteSize  int64
}

// ArtifactStore uploads and deletes rendered PDFs. Delete returns ErrArtifactNotFound
// when the object is already gone.
type ArtifactStore interface {
	Store(ctx context.Context, data []byte, folderKey, fileName string) (*StoredObject, error)
	Delete(ctx context.Context, storageID string) error
}

// CreateResumeInput carries a build request. Nil slices mean "not supplied".
type CreateResumeInput struct {
	Title          string
	PersonalInfo   *PersonalInfo
	Summary        string
	Education      []Education
	WorkExperience []WorkExperience
	Skills         []Skill
	Certifications []Certification
	Projects       []Project
	Languages      []Language
	CustomSections []CustomSection
	SectionOrder   []string
	Styling        *Styling
	IsPublic       bool
	IsDefault      bool
	AutoPopulate   bool
}

// UpdateResumeInput is a partial update: only non-nil fields replace stored values.
type UpdateResumeInput struct {
	Title          *string
	PersonalInfo   *PersonalInfo
	Summary        *string
	Education      *[]Education
	WorkExperience *[]WorkExperience
	Skills         *[]Skill
	Certifications *[]Certification
	Projects       *[]Project
	Languages      *[]Language
	CustomSections *[]CustomSection
	SectionOrder   *[]string
	Styling        *Styling
	IsPublic       *bool
	IsDefault      *bool
	RegeneratePDF  bool
}

// DownloadResult is returned by the download operation.
type DownloadResult struct {
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	Downloads int64  `json:"downloads"`
}

type ResumeUsecase interface {
	ListTemplates() []ResumeTemplate
	Create(ctx context.Context, userID string, input *CreateResumeInput) (*Resume, error)
	List(ctx context.Context, userID string) ([]Resume, error)
	Get(ctx context.Context, userID, id string) (*Resume, error)
	Preview(ctx context.Context, userID, id string) (*Resume, error)
	Update(ctx context.Context, userID, id string, input *UpdateResumeInput) (*Resume, error)
	Delete(ctx context.Context, userID, id string) error
	GeneratePDF(ctx context.Context, userID, id string) (*Artifact, error)
	Download(ctx context.Context, userID, id string) (*DownloadResult, error)
	SetDefault(ctx context.Context, userID, id string) (*Resume, error)
}
