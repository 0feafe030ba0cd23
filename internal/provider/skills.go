package provider

import "strings"

const maxExtractedSkills = 5

// commonSkills is the fixed vocabulary scanned for in job descriptions,
// covering engineering, design, marketing, and analytics roles.
var commonSkills = []string{
	"JavaScript", "Python", "Java", "React", "Node.js", "SQL", "AWS", "Docker",
	"TypeScript", "Angular", "Vue.js", "MongoDB", "PostgreSQL", "Redis",
	"Kubernetes", "Git", "HTML", "CSS", "Figma", "Sketch", "Adobe XD",
	"Photoshop", "Illustrator", "SEO", "Google Analytics", "Facebook Ads",
	"Content Marketing", "Social Media", "Email Marketing", "Salesforce",
	"HubSpot", "Tableau", "Power BI", "Excel", "R", "TensorFlow", "PyTorch",
}

// ExtractSkills scans a free-text job description for known skill keywords
// (case-insensitive substring match) and returns at most five, in vocabulary
// order.
func ExtractSkills(description string) []string {
	if description == "" {
		return nil
	}
	descLower := strings.ToLower(description)

	var found []string
	for _, skill := range commonSkills {
		if strings.Contains(descLower, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) == maxExtractedSkills {
				break
			}
		}
	}
	return found
}
