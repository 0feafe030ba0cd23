package aggregator

import (
	"strings"
	"testing"

	"github.com/careerforge/jobradar/internal/model"
)

func TestBuildSearchParamsFromInterests(t *testing.T) {
	p := &model.UserProfile{
		CareerInterests: []string{"Software Development"},
		ExperienceLevel: model.ExperienceSenior,
		Location:        "Berlin",
	}

	params := BuildSearchParams(p)

	if !strings.HasPrefix(params.Keywords, "software engineer OR developer") {
		t.Errorf("expected interest keywords first, got %q", params.Keywords)
	}
	if params.Location != "Berlin" {
		t.Errorf("expected location Berlin, got %s", params.Location)
	}
	if params.Experience != model.ExperienceSenior {
		t.Errorf("expected experience senior, got %s", params.Experience)
	}
}

func TestBuildSearchParamsCapsAtFiveTerms(t *testing.T) {
	p := &model.UserProfile{
		CareerInterests: []string{"Software Development", "Data Science"},
		Skills:          []string{"React", "Go", "SQL", "Rust"},
	}

	params := BuildSearchParams(p)

	if got := len(strings.Split(params.Keywords, " OR ")); got != 5 {
		t.Errorf("expected 5 OR-joined terms, got %d: %q", got, params.Keywords)
	}
}

func TestBuildSearchParamsAppendsUpToThreeSkills(t *testing.T) {
	p := &model.UserProfile{
		Skills: []string{"React", "Go", "SQL", "Rust"},
	}

	params := BuildSearchParams(p)

	if params.Keywords != "React OR Go OR SQL" {
		t.Errorf("expected first three skills, got %q", params.Keywords)
	}
}

func TestBuildSearchParamsDefaults(t *testing.T) {
	params := BuildSearchParams(nil)

	if params.Keywords != "software OR marketing OR manager OR analyst" {
		t.Errorf("expected generic keywords, got %q", params.Keywords)
	}
	if params.Location != "remote" {
		t.Errorf("expected default location remote, got %s", params.Location)
	}
	if params.Experience != model.ExperienceMid {
		t.Errorf("expected default experience mid, got %s", params.Experience)
	}
}

func TestBuildSearchParamsUnknownInterestUsesDefaults(t *testing.T) {
	p := &model.UserProfile{CareerInterests: []string{"Astronaut"}}

	params := BuildSearchParams(p)

	if params.Keywords != "software OR marketing OR manager OR analyst" {
		t.Errorf("expected generic keywords for unknown interest, got %q", params.Keywords)
	}
}
