package fallback

import (
	"testing"

	"github.com/careerforge/jobradar/internal/model"
)

func TestJobsForFiltersByExperience(t *testing.T) {
	c := NewStaticCatalog(10)

	entry := &model.UserProfile{
		CareerInterests: []string{"Software Development"},
		ExperienceLevel: model.ExperienceEntry,
	}
	for _, job := range c.JobsFor(entry) {
		if job.Title == "Senior React Native Developer" {
			t.Error("entry user should not see senior listings")
		}
	}

	senior := &model.UserProfile{
		CareerInterests: []string{"Software Development"},
		ExperienceLevel: model.ExperienceSenior,
	}
	for _, job := range c.JobsFor(senior) {
		if job.Title == "Junior Software Developer" {
			t.Error("senior user should not see entry listings")
		}
	}
}

func TestJobsForCombinesInterests(t *testing.T) {
	c := NewStaticCatalog(10)
	p := &model.UserProfile{
		CareerInterests: []string{"Data Science", "UI/UX Design"},
		ExperienceLevel: model.ExperienceMid,
	}

	jobs := c.JobsFor(p)
	sources := map[string]bool{}
	for _, job := range jobs {
		sources[job.Company] = true
	}
	if !sources["Spotify"] || !sources["Slack"] {
		t.Errorf("expected jobs from both interests, got companies %v", sources)
	}
}

func TestJobsForAllRecordsMarkedFallbackAndScored(t *testing.T) {
	c := NewStaticCatalog(10)
	p := &model.UserProfile{
		CareerInterests: []string{"Product Management"},
		ExperienceLevel: model.ExperienceMid,
	}

	jobs := c.JobsFor(p)
	if len(jobs) == 0 {
		t.Fatal("expected some fallback jobs")
	}
	for _, job := range jobs {
		if job.Source != model.SourceFallback {
			t.Errorf("expected source fallback, got %s", job.Source)
		}
		if job.Match == 0 {
			t.Errorf("expected %s to carry a match score", job.ID)
		}
	}
}

func TestJobsForUnknownInterestFallsBackToSoftware(t *testing.T) {
	c := NewStaticCatalog(10)
	p := &model.UserProfile{
		CareerInterests: []string{"Underwater Basket Weaving"},
		ExperienceLevel: model.ExperienceMid,
	}

	jobs := c.JobsFor(p)
	if len(jobs) == 0 {
		t.Fatal("expected the generic set for an unknown interest")
	}
}

func TestJobsForNilProfile(t *testing.T) {
	c := NewStaticCatalog(10)

	jobs := c.JobsFor(nil)
	if len(jobs) == 0 {
		t.Fatal("expected the generic set for a nil profile")
	}
	for _, job := range jobs {
		if job.Match != 75 {
			t.Errorf("expected default score 75 without a profile, got %d", job.Match)
		}
	}
}

func TestJobsForRespectsTopN(t *testing.T) {
	c := NewStaticCatalog(2)
	p := &model.UserProfile{
		CareerInterests: []string{"Software Development", "Data Science"},
		ExperienceLevel: model.ExperienceMid,
	}

	if jobs := c.JobsFor(p); len(jobs) > 2 {
		t.Errorf("expected at most 2 jobs, got %d", len(jobs))
	}
}
