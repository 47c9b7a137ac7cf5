package renderer

import (
	"strconv"
	"strings"

	"lifemate-backend/internal/domain"
)

// section is one entry of the render registry. has reports whether the section has
// anything visible to draw; sections that report false are skipped entirely.
type section struct {
	key   string
	title string
	has   func(r *domain.Resume) bool
	draw  func(l *layout, r *domain.Resume)
}

var registry = map[string]section{
	domain.SectionSummary: {
		key:   domain.SectionSummary,
		title: "Professional Summary",
		has:   func(r *domain.Resume) bool { return strings.TrimSpace(r.Summary) != "" },
		draw:  drawSummary,
	},
	domain.SectionExperience: {
		key:   domain.SectionExperience,
		title: "Work Experience",
		has:   func(r *domain.Resume) bool { return len(visibleExperience(r)) > 0 },
		draw:  drawExperience,
	},
	domain.SectionEducation: {
		key:   domain.SectionEducation,
		title: "Education",
		has:   func(r *domain.Resume) bool { return len(visibleEducation(r)) > 0 },
		draw:  drawEducation,
	},
	domain.SectionSkills: {
		key:   domain.SectionSkills,
		title: "Skills",
		has:   func(r *domain.Resume) bool { return len(visibleSkills(r)) > 0 },
		draw:  drawSkills,
	},
	domain.SectionCertifications: {
		key:   domain.SectionCertifications,
		title: "Certifications",
		has:   func(r *domain.Resume) bool { return len(visibleCertifications(r)) > 0 },
		draw:  drawCertifications,
	},
	domain.SectionProjects: {
		key:   domain.SectionProjects,
		title: "Projects",
		has:   func(r *domain.Resume) bool { return len(visibleProjects(r)) > 0 },
		draw:  drawProjects,
	},
	domain.SectionLanguages: {
		key:   domain.SectionLanguages,
		title: "Languages",
		has:   func(r *domain.Resume) bool { return len(visibleLanguages(r)) > 0 },
		draw:  drawLanguages,
	},
	domain.SectionCustom: {
		key: domain.SectionCustom,
		has: func(r *domain.Resume) bool { return len(visibleCustom(r)) > 0 },
		// Each custom section carries its own heading.
		draw: drawCustom,
	},
}

func drawHeader(l *layout, r *domain.Resume) {
	p := r.PersonalInfo
	l.centered(orPlaceholder(p.FullName), "B", l.style.size+11, l.style.primary)

	if loc := joinNonEmpty(", ", p.Address.City, p.Address.State, p.Address.Country); loc != "" {
		l.centered(loc, "", l.style.size, mutedText)
	}
	if contact := joinNonEmpty(inlineSeparator, p.Phone, p.Email, p.LinkedIn, p.GitHub, p.Website); contact != "" {
		l.centered(contact, "", l.style.size-1, mutedText)
	}
	l.gap(0.4)
}

func drawSummary(l *layout, r *domain.Resume) {
	l.paragraph(strings.TrimSpace(r.Summary))
}

func drawExperience(l *layout, r *domain.Resume) {
	for _, e := range visibleExperience(r) {
		dates := dateRange(formatDate(e.StartDate), formatDatePtr(e.EndDate), e.IsCurrent)
		l.entryTitle(orPlaceholder(e.Position), dates)
		l.subtitle(joinNonEmpty(inlineSeparator, e.Company, e.Location))
		if d := strings.TrimSpace(e.Description); d != "" {
			l.paragraph(d)
		}
		l.bullets(e.Achievements)
		l.entryEnd()
	}
}

func drawEducation(l *layout, r *domain.Resume) {
	for _, e := range visibleEducation(r) {
		year := ""
		if e.CompletionYear > 0 {
			year = strconv.Itoa(e.CompletionYear)
		}
		degree := orPlaceholder(e.Degree)
		if e.Field != "" {
			degree += " in " + e.Field
		}
		l.entryTitle(degree, year)
		l.subtitle(e.Institution)
		if e.Grade != "" {
			l.labelValue("Grade", e.Grade)
		}
		l.entryEnd()
	}
}

func drawSkills(l *layout, r *domain.Resume) {
	skills := visibleSkills(r)
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if s.Level != "" {
			parts = append(parts, s.Name+" ("+s.Level+")")
			continue
		}
		parts = append(parts, s.Name)
	}
	l.paragraph(strings.Join(parts, ", "))
}

func drawCertifications(l *layout, r *domain.Resume) {
	for _, c := range visibleCertifications(r) {
		l.entryTitle(orPlaceholder(c.Name), formatDatePtr(c.IssueDate))
		l.subtitle(c.Issuer)
		if exp := formatDatePtr(c.ExpiryDate); exp != "" {
			l.labelValue("Expires", exp)
		}
		if c.CredentialID != "" {
			l.labelValue("Credential ID", c.CredentialID)
		}
		if c.CredentialURL != "" {
			l.labelValue("Verify", c.CredentialURL)
		}
		l.entryEnd()
	}
}

func drawProjects(l *layout, r *domain.Resume) {
	for _, p := range visibleProjects(r) {
		dates := dateRange(formatDatePtr(p.StartDate), formatDatePtr(p.EndDate), false)
		l.entryTitle(orPlaceholder(p.Title), dates)
		if d := strings.TrimSpace(p.Description); d != "" {
			l.paragraph(d)
		}
		if len(p.Technologies) > 0 {
			l.labelValue("Technologies", strings.Join(p.Technologies, ", "))
		}
		if p.URL != "" {
			l.labelValue("Link", p.URL)
		}
		l.entryEnd()
	}
}

func drawLanguages(l *layout, r *domain.Resume) {
	langs := visibleLanguages(r)
	parts := make([]string, 0, len(langs))
	for _, lang := range langs {
		parts = append(parts, joinNonEmpty(" - ", lang.Name, lang.Proficiency))
	}
	l.paragraph(strings.Join(parts, ", "))
}

func drawCustom(l *layout, r *domain.Resume) {
	for _, c := range visibleCustom(r) {
		l.heading(orPlaceholder(c.Title))
		if c.Content != nil && strings.TrimSpace(*c.Content) != "" {
			l.paragraph(strings.TrimSpace(*c.Content))
		}
		l.bullets(c.Items)
	}
}

func visibleExperience(r *domain.Resume) []domain.WorkExperience {
	out := make([]domain.WorkExperience, 0, len(r.WorkExperience))
	for _, e := range r.WorkExperience {
		if domain.IsVisible(e.Visible) {
			out = append(out, e)
		}
	}
	return out
}

func visibleEducation(r *domain.Resume) []domain.Education {
	out := make([]domain.Education, 0, len(r.Education))
	for _, e := range r.Education {
		if domain.IsVisible(e.Visible) {
			out = append(out, e)
		}
	}
	return out
}

func visibleSkills(r *domain.Resume) []domain.Skill {
	out := make([]domain.Skill, 0, len(r.Skills))
	for _, s := range r.Skills {
		if domain.IsVisible(s.Visible) && strings.TrimSpace(s.Name) != "" {
			out = append(out, s)
		}
	}
	return out
}

func visibleCertifications(r *domain.Resume) []domain.Certification {
	out := make([]domain.Certification, 0, len(r.Certifications))
	for _, c := range r.Certifications {
		if domain.IsVisible(c.Visible) {
			out = append(out, c)
		}
	}
	return out
}

func visibleProjects(r *domain.Resume) []domain.Project {
	out := make([]domain.Project, 0, len(r.Projects))
	for _, p := range r.Projects {
		if domain.IsVisible(p.Visible) {
			out = append(out, p)
		}
	}
	return out
}

func visibleLanguages(r *domain.Resume) []domain.Language {
	out := make([]domain.Language, 0, len(r.Languages))
	for _, lang := range r.Languages {
		if domain.IsVisible(lang.Visible) && strings.TrimSpace(lang.Name) != "" {
			out = append(out, lang)
		}
	}
	return out
}

func visibleCustom(r *domain.Resume) []domain.CustomSection {
	out := make([]domain.CustomSection, 0, len(r.CustomSections))
	for _, c := range r.CustomSections {
		if !domain.IsVisible(c.Visible) {
			continue
		}
		hasContent := c.Content != nil && strings.TrimSpace(*c.Content) != ""
		if hasContent || hasItem(c.Items) {
			out = append(out, c)
		}
	}
	return out
}

func hasItem(items []string) bool {
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			return true
		}
	}
	return false
}
