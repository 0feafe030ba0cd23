// Package score computes how well a job listing matches a user profile.
// Scoring is deterministic: the same job and profile always produce the same
// 0-100 value.
package score

import (
	"sort"
	"strings"

	"github.com/careerforge/jobradar/internal/model"
)

// DefaultScore is assigned when no profile is available to match against.
const DefaultScore = 75

const (
	baseScore       = 50
	skillBonus      = 10
	skillCap        = 90 // running total after skill bonuses never exceeds this
	experienceBonus = 15
	partialExpBonus = 10 // mid-level user looking at a junior title
	remoteBonus     = 5
	maxScore        = 100
)

// Score rates job against profile on a 0-100 scale.
//
// The skill bonus is capped at 90 before the experience, remote, and source
// bonuses are added, and the final sum is capped again at 100. The later
// bonuses can lift a skill-capped score above 90.
func Score(job model.JobRecord, profile *model.UserProfile) int {
	if profile == nil {
		return DefaultScore
	}

	total := baseScore
	jobText := strings.ToLower(job.Title + " " + job.Description)

	for _, userSkill := range profile.Skills {
		skillLower := strings.ToLower(userSkill)
		if strings.Contains(jobText, skillLower) || matchesTag(job.Skills, skillLower) {
			total += skillBonus
		}
	}
	if total > skillCap {
		total = skillCap
	}

	total += experienceMatch(profile.ExperienceLevel, job.Title)

	if profile.RemotePreference && mentionsRemote(job) {
		total += remoteBonus
	}

	switch job.Source {
	case "adzuna":
		total += 2
	case "jooble":
		total += 1
	}

	if total > maxScore {
		total = maxScore
	}
	return total
}

func matchesTag(tags []string, skillLower string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), skillLower) {
			return true
		}
	}
	return false
}

func experienceMatch(level, title string) int {
	if level == "" {
		level = model.ExperienceMid
	}
	titleLower := strings.ToLower(title)
	junior := strings.Contains(titleLower, "junior") || strings.Contains(titleLower, "entry")
	senior := strings.Contains(titleLower, "senior")

	switch level {
	case model.ExperienceEntry:
		if junior {
			return experienceBonus
		}
	case model.ExperienceSenior:
		if senior {
			return experienceBonus
		}
	case model.ExperienceMid:
		if !senior && !strings.Contains(titleLower, "junior") {
			return experienceBonus
		}
		if strings.Contains(titleLower, "junior") {
			return partialExpBonus
		}
	}
	return 0
}

func mentionsRemote(job model.JobRecord) bool {
	return strings.Contains(strings.ToLower(job.Location), "remote") ||
		strings.Contains(strings.ToLower(job.Description), "remote")
}

// Rank scores every job against profile, sorts by score descending (stable
// on ties), and returns at most n records.
func Rank(jobs []model.JobRecord, profile *model.UserProfile, n int) []model.JobRecord {
	ranked := make([]model.JobRecord, len(jobs))
	copy(ranked, jobs)

	for i := range ranked {
		ranked[i].Match = Score(ranked[i], profile)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Match > ranked[j].Match
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
