package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"lifemate-backend/internal/delivery/http/response"
	"lifemate-backend/internal/domain"
	"lifemate-backend/pkg/apperror"
)

const maxResumeBodyBytes = 1 << 20

// serverManagedKeys may appear in responses but never in update requests.
var serverManagedKeys = []string{"id", "user_id", "created_at", "updated_at", "stats", "artifact"}

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

// BuildResumeRequest is the body of POST /resume/build.
type BuildResumeRequest struct {
	Title          string                  `json:"title"`
	PersonalInfo   *domain.PersonalInfo    `json:"personal_info"`
	Summary        string                  `json:"summary"`
	Education      []domain.Education      `json:"education"`
	WorkExperience []domain.WorkExperience `json:"work_experience"`
	Skills         []domain.Skill          `json:"skills"`
	Certifications []domain.Certification  `json:"certifications"`
	Projects       []domain.Project        `json:"projects"`
	Languages      []domain.Language       `json:"languages"`
	CustomSections []domain.CustomSection  `json:"custom_sections"`
	SectionOrder   []string                `json:"section_order"`
	Styling        *domain.Styling         `json:"styling"`
	IsPublic       bool                    `json:"is_public"`
	IsDefault      bool                    `json:"is_default"`
	AutoPopulate   bool                    `json:"auto_populate"`
}

// UpdateResumeRequest is the body of PUT /resume/:id. Absent fields are left unchanged.
type UpdateResumeRequest struct {
	Title          *string                  `json:"title"`
	PersonalInfo   *domain.PersonalInfo     `json:"personal_info"`
	Summary        *string                  `json:"summary"`
	Education      *[]domain.Education      `json:"education"`
	WorkExperience *[]domain.WorkExperience `json:"work_experience"`
	Skills         *[]domain.Skill          `json:"skills"`
	Certifications *[]domain.Certification  `json:"certifications"`
	Projects       *[]domain.Project        `json:"projects"`
	Languages      *[]domain.Language       `json:"languages"`
	CustomSections *[]domain.CustomSection  `json:"custom_sections"`
	SectionOrder   *[]string                `json:"section_order"`
	Styling        *domain.Styling          `json:"styling"`
	IsPublic       *bool                    `json:"is_public"`
	IsDefault      *bool                    `json:"is_default"`
	RegeneratePDF  bool                     `json:"regenerate_pdf"`
}

// NewResumeHandler registers the resume routes. renderLimit guards the endpoints that
// render PDFs and may be nil.
func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase, renderLimit gin.HandlerFunc) {
	handler := &ResumeHandler{resumeUC: resumeUC}
	if renderLimit == nil {
		renderLimit = func(c *gin.Context) { c.Next() }
	}

	resumes := r.Group("/resume")
	{
		resumes.GET("/templates", handler.ListTemplates)
		resumes.POST("/build", handler.Build)
		resumes.GET("/list", handler.List)
		resumes.GET("/:id", handler.Get)
		resumes.GET("/:id/preview", handler.Preview)
		resumes.PUT("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)
		resumes.POST("/:id/generate-pdf", renderLimit, handler.GeneratePDF)
		resumes.POST("/:id/download", renderLimit, handler.Download)
		resumes.POST("/:id/set-default", handler.SetDefault)
	}
}

// ListTemplates godoc
// @Summary      List resume templates
// @Tags         resume
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ResumeTemplate}
// @Router       /resume/templates [get]
// @Security     BearerAuth
func (h *ResumeHandler) ListTemplates(c *gin.Context) {
	response.Success(c, http.StatusOK, "Resume templates", h.resumeUC.ListTemplates())
}

// Build godoc
// @Summary      Create a resume
// @Description  Creates a resume, optionally filled from the job seeker profile, and renders its first PDF
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        request  body      BuildResumeRequest  true  "Resume content"
// @Success      201      {object}  response.Response{data=domain.Resume}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /resume/build [post]
// @Security     BearerAuth
func (h *ResumeHandler) Build(c *gin.Context) {
	var req BuildResumeRequest
	if _, err := readJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	resume, err := h.resumeUC.Create(c.Request.Context(), currentUserID(c), &domain.CreateResumeInput{
		Title:          req.Title,
		PersonalInfo:   req.PersonalInfo,
		Summary:        req.Summary,
		Education:      req.Education,
		WorkExperience: req.WorkExperience,
		Skills:         req.Skills,
		Certifications: req.Certifications,
		Projects:       req.Projects,
		Languages:      req.Languages,
		CustomSections: req.CustomSections,
		SectionOrder:   req.SectionOrder,
		Styling:        req.Styling,
		IsPublic:       req.IsPublic,
		IsDefault:      req.IsDefault,
		AutoPopulate:   req.AutoPopulate,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created successfully", resume)
}

// List godoc
// @Summary      List my resumes
// @Description  Default resume first, then most recently updated
// @Tags         resume
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Resume}
// @Router       /resume/list [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	resumes, err := h.resumeUC.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resumes retrieved", resumes)
}

// Get godoc
// @Summary      Get a resume
// @Description  Returns the resume and counts a view
// @Tags         resume
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      404  {object}  response.Response
// @Router       /resume/{id} [get]
// @Security     BearerAuth
func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.resumeUC.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume retrieved", resume)
}

// Preview godoc
// @Summary      Preview a resume
// @Description  Returns the resume without counting a view
// @Tags         resume
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      404  {object}  response.Response
// @Router       /resume/{id}/preview [get]
// @Security     BearerAuth
func (h *ResumeHandler) Preview(c *gin.Context) {
	resume, err := h.resumeUC.Preview(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume preview", resume)
}

// Update godoc
// @Summary      Update a resume
// @Description  Partial update; only supplied fields change. Set regenerate_pdf to re-render the PDF.
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Resume ID"
// @Param        request  body      UpdateResumeRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=domain.Resume}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /resume/{id} [put]
// @Security     BearerAuth
func (h *ResumeHandler) Update(c *gin.Context) {
	var req UpdateResumeRequest
	raw, err := readJSON(c, &req)
	if err != nil {
		c.Error(err)
		return
	}
	if fields := managedFieldErrors(raw); len(fields) > 0 {
		c.Error(apperror.Validation(fields))
		return
	}

	resume, err := h.resumeUC.Update(c.Request.Context(), currentUserID(c), c.Param("id"), &domain.UpdateResumeInput{
		Title:          req.Title,
		PersonalInfo:   req.PersonalInfo,
		Summary:        req.Summary,
		Education:      req.Education,
		WorkExperience: req.WorkExperience,
		Skills:         req.Skills,
		Certifications: req.Certifications,
		Projects:       req.Projects,
		Languages:      req.Languages,
		CustomSections: req.CustomSections,
		SectionOrder:   req.SectionOrder,
		Styling:        req.Styling,
		IsPublic:       req.IsPublic,
		IsDefault:      req.IsDefault,
		RegeneratePDF:  req.RegeneratePDF,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume updated successfully", resume)
}

// Delete godoc
// @Summary      Delete a resume
// @Tags         resume
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resume/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.resumeUC.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted successfully", gin.H{"id": id})
}

// GeneratePDF godoc
// @Summary      Generate the resume PDF
// @Tags         resume
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.Artifact}
// @Failure      404  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /resume/{id}/generate-pdf [post]
// @Security     BearerAuth
func (h *ResumeHandler) GeneratePDF(c *gin.Context) {
	artifact, err := h.resumeUC.GeneratePDF(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume PDF generated", artifact)
}

// Download godoc
// @Summary      Download the resume PDF
// @Description  Returns the PDF URL, generating it first when missing, and counts a download
// @Tags         resume
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.DownloadResult}
// @Failure      404  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /resume/{id}/download [post]
// @Security     BearerAuth
func (h *ResumeHandler) Download(c *gin.Context) {
	result, err := h.resumeUC.Download(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume download ready", result)
}

// SetDefault godoc
// @Summary      Make a resume the default
// @Tags         resume
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      404  {object}  response.Response
// @Router       /resume/{id}/set-default [post]
// @Security     BearerAuth
func (h *ResumeHandler) SetDefault(c *gin.Context) {
	resume, err := h.resumeUC.SetDefault(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Default resume updated", resume)
}

func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// readJSON decodes the body into dst and also returns its top-level keys.
// An empty body is treated as an empty object.
func readJSON(c *gin.Context, dst interface{}) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err)
		}
		return nil, apperror.BadRequest("Invalid request body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperror.BadRequest("Invalid request body: expected a JSON object")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, apperror.New(http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
	}
	return raw, nil
}

func managedFieldErrors(raw map[string]json.RawMessage) []apperror.FieldError {
	var fields []apperror.FieldError
	for _, key := range serverManagedKeys {
		if _, ok := raw[key]; ok {
			fields = append(fields, apperror.FieldError{Field: key, Message: key + " is managed by the server and cannot be updated"})
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return fields
}
