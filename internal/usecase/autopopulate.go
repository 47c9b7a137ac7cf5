package usecase

import (
	"strings"

	"lifemate-backend/internal/domain"
)

// mergeProfile fills a build request from the owner's profile. Values supplied on the
// request always win; profile data only fills what was left out.
func mergeProfile(input *domain.CreateResumeInput, profile *domain.JobSeekerProfile) *domain.CreateResumeInput {
	merged := *input

	info := domain.PersonalInfo{
		FullName: profile.FullName(),
		Email:    profile.Email,
		Phone:    profile.Phone,
		Address:  profile.Address,
		LinkedIn: profile.LinkedIn,
		GitHub:   profile.GitHub,
		Website:  profile.Website,
	}
	if input.PersonalInfo != nil {
		local := input.PersonalInfo
		info.FullName = prefer(local.FullName, info.FullName)
		info.Email = prefer(local.Email, info.Email)
		info.Phone = prefer(local.Phone, info.Phone)
		info.LinkedIn = prefer(local.LinkedIn, info.LinkedIn)
		info.GitHub = prefer(local.GitHub, info.GitHub)
		info.Website = prefer(local.Website, info.Website)
		info.Address = domain.Address{
			Street:  prefer(local.Address.Street, info.Address.Street),
			City:    prefer(local.Address.City, info.Address.City),
			State:   prefer(local.Address.State, info.Address.State),
			Country: prefer(local.Address.Country, info.Address.Country),
			ZipCode: prefer(local.Address.ZipCode, info.Address.ZipCode),
		}
	}
	merged.PersonalInfo = &info

	merged.Summary = prefer(input.Summary, profile.Bio)
	merged.Education = preferSlice(input.Education, profile.Education)
	merged.WorkExperience = preferSlice(input.WorkExperience, profile.Experience)
	merged.Skills = preferSlice(input.Skills, profile.Skills)
	merged.Certifications = preferSlice(input.Certifications, profile.Certifications)
	merged.Languages = preferSlice(input.Languages, profile.Languages)
	merged.Projects = preferSlice(input.Projects, profile.Projects)
	return &merged
}

func prefer(local, fallback string) string {
	if strings.TrimSpace(local) != "" {
		return local
	}
	return fallback
}

// preferSlice keeps a supplied slice (even an empty one) and otherwise copies the fallback.
func preferSlice[T any](local, fallback []T) []T {
	if local != nil {
		return local
	}
	if fallback == nil {
		return nil
	}
	return append([]T(nil), fallback...)
}
