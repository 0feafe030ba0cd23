package provider

import (
	"fmt"
	"math"
	"time"
)

// Defaults for fields a provider payload may omit.
const (
	defaultCompany  = "Company Name"
	defaultLocation = "Location not specified"
	defaultSalary   = "Salary not specified"
	defaultPosted   = "Recently posted"
	defaultType     = "Full-time"
)

const userAgent = "CareerForge-JobRadar/1.0"

// Timestamp layouts seen across provider payloads. Adzuna uses RFC 3339,
// Jooble emits fractional seconds without a zone, Careerjet a bare date.
var postedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatSalary renders a min/max salary pair as a display string: both
// bounds as "$Xk - $Yk", min only as "$Xk+", max only as "Up to $Yk".
// Values are divided by 1000 and rounded to the nearest integer.
func FormatSalary(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("$%dk - $%dk", roundK(*min), roundK(*max))
	case min != nil:
		return fmt.Sprintf("$%dk+", roundK(*min))
	case max != nil:
		return fmt.Sprintf("Up to $%dk", roundK(*max))
	default:
		return defaultSalary
	}
}

func roundK(v float64) int {
	return int(math.Round(v / 1000))
}

// FormatPostedAt converts an absolute timestamp string into a relative
// display string ("2 days ago", "3 weeks ago"). Absent or unparsable input
// renders as "Recently posted".
func FormatPostedAt(raw string, now time.Time) string {
	if raw == "" {
		return defaultPosted
	}

	var posted time.Time
	parsed := false
	for _, layout := range postedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			posted = t
			parsed = true
			break
		}
	}
	if !parsed {
		return defaultPosted
	}

	elapsed := now.Sub(posted)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	days := int(math.Ceil(elapsed.Hours() / 24))

	switch {
	case days <= 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 14:
		return "1 week ago"
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}

// orDefault returns value, or fallback when value is empty.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// locationOrDefault prefers the provider's location, then the search
// location, then the generic default.
func locationOrDefault(value, searchLocation string) string {
	if value != "" {
		return value
	}
	if searchLocation != "" {
		return searchLocation
	}
	return defaultLocation
}
