package aggregator

import (
	"strings"

	"github.com/careerforge/jobradar/internal/model"
)

const (
	maxProfileSkills = 3 // user skills appended to the derived keywords
	maxKeywords      = 5 // total terms joined into the query
)

// interestKeywords maps a declared career interest to concrete search terms.
var interestKeywords = map[string][]string{
	"Software Development":         {"software engineer", "developer", "programmer", "frontend", "backend"},
	"Data Science":                 {"data scientist", "data analyst", "machine learning", "data engineer"},
	"UI/UX Design":                 {"ux designer", "ui designer", "product designer", "graphic designer"},
	"Digital Marketing":            {"digital marketing", "marketing manager", "seo specialist", "content marketing"},
	"Product Management":           {"product manager", "product owner", "project manager"},
	"Sales & Business Development": {"sales manager", "business development", "account manager"},
}

// defaultKeywords is the query when a profile yields no terms at all.
var defaultKeywords = []string{"software", "marketing", "manager", "analyst"}

// BuildSearchParams derives the provider query from a profile: interest
// keywords first, then up to three of the user's own skills, at most five
// terms total, OR-joined.
func BuildSearchParams(profile *model.UserProfile) model.SearchParams {
	var keywords []string
	location := "remote"
	experience := model.ExperienceMid
	remote := false

	if profile != nil {
		for _, interest := range profile.CareerInterests {
			keywords = append(keywords, interestKeywords[interest]...)
		}
		skills := profile.Skills
		if len(skills) > maxProfileSkills {
			skills = skills[:maxProfileSkills]
		}
		keywords = append(keywords, skills...)

		if profile.Location != "" {
			location = profile.Location
		}
		if profile.ExperienceLevel != "" {
			experience = profile.ExperienceLevel
		}
		remote = profile.RemotePreference
	}

	if len(keywords) == 0 {
		keywords = defaultKeywords
	}
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return model.SearchParams{
		Keywords:   strings.Join(keywords, " OR "),
		Location:   location,
		Experience: experience,
		Remote:     remote,
	}
}
