// Package fallback serves a static, curated job catalog when no live
// provider can. Personalization is rule-based: entries are grouped by career
// interest and filtered by experience level, then scored like live results.
package fallback

import (
	"github.com/careerforge/jobradar/internal/model"
	"github.com/careerforge/jobradar/internal/score"
)

// catalogJob is a static listing plus the experience level it targets.
type catalogJob struct {
	record model.JobRecord
	level  string
}

// StaticCatalog implements model.FallbackCatalog from a fixed in-memory data
// set.
type StaticCatalog struct {
	topN int
}

// NewStaticCatalog returns a catalog serving at most topN records per call.
func NewStaticCatalog(topN int) *StaticCatalog {
	return &StaticCatalog{topN: topN}
}

// JobsFor returns scored, ranked static records for the profile's career
// interests. Jobs two experience levels away from the user are dropped:
// entry users don't see senior roles and senior users don't see entry roles.
// A profile with no usable interests gets the software development set.
func (c *StaticCatalog) JobsFor(profile *model.UserProfile) []model.JobRecord {
	var interests []string
	if profile != nil {
		interests = profile.CareerInterests
	}

	var picked []model.JobRecord
	for _, interest := range interests {
		for _, j := range catalog[interest] {
			if skipByExperience(profile, j.level) {
				continue
			}
			picked = append(picked, j.record)
		}
	}

	if len(picked) == 0 {
		for _, j := range catalog["Software Development"] {
			if skipByExperience(profile, j.level) {
				continue
			}
			picked = append(picked, j.record)
		}
	}

	return score.Rank(picked, profile, c.topN)
}

func skipByExperience(profile *model.UserProfile, jobLevel string) bool {
	if profile == nil {
		return false
	}
	switch profile.ExperienceLevel {
	case model.ExperienceEntry:
		return jobLevel == model.ExperienceSenior
	case model.ExperienceSenior:
		return jobLevel == model.ExperienceEntry
	}
	return false
}

// catalog holds the static listings by career interest. Salaries and posted
// times are pre-rendered display strings, matching what normalization
// produces for live records.
var catalog = map[string][]catalogJob{
	"Software Development": {
		{level: model.ExperienceSenior, record: model.JobRecord{
			ID: "fallback_sd1", Title: "Senior React Native Developer", Company: "Meta",
			Location: "Remote", Salary: "$140k - $180k", Type: "Full-time",
			Description: "Build next-generation mobile experiences for billions of users. Work with React Native, JavaScript, and cutting-edge mobile technologies.",
			ApplyURL:    "https://www.metacareers.com/jobs/", Posted: "2 days ago",
			Skills: []string{"React Native", "JavaScript", "TypeScript", "Redux"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceMid, record: model.JobRecord{
			ID: "fallback_sd2", Title: "Full Stack Software Engineer", Company: "Google",
			Location: "Mountain View, CA", Salary: "$130k - $170k", Type: "Full-time",
			Description: "Design and implement scalable web applications using React, Node.js, and Google Cloud Platform.",
			ApplyURL:    "https://careers.google.com/jobs/", Posted: "3 days ago",
			Skills: []string{"React", "Node.js", "JavaScript", "GCP"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceMid, record: model.JobRecord{
			ID: "fallback_sd3", Title: "Frontend Developer", Company: "Netflix",
			Location: "Los Gatos, CA", Salary: "$110k - $150k", Type: "Full-time",
			Description: "Create engaging user experiences for our global streaming platform using React and TypeScript.",
			ApplyURL:    "https://jobs.netflix.com/", Posted: "1 week ago",
			Skills: []string{"React", "TypeScript", "CSS", "JavaScript"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceEntry, record: model.JobRecord{
			ID: "fallback_sd4", Title: "Junior Software Developer", Company: "Shopify",
			Location: "Remote", Salary: "$75k - $95k", Type: "Full-time",
			Description: "Join our team to build e-commerce solutions that power millions of businesses worldwide.",
			ApplyURL:    "https://www.shopify.com/careers", Posted: "1 day ago",
			Skills: []string{"JavaScript", "Ruby", "React", "Git"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceMid, record: model.JobRecord{
			ID: "fallback_sd5", Title: "Cloud Software Engineer", Company: "Amazon",
			Location: "Seattle, WA", Salary: "$125k - $165k", Type: "Full-time",
			Description: "Build scalable cloud solutions using AWS services and microservices architecture.",
			ApplyURL:    "https://amazon.jobs/", Posted: "4 days ago",
			Skills: []string{"AWS", "Python", "Java", "Docker"}, Source: model.SourceFallback,
		}},
	},
	"Data Science": {
		{level: model.ExperienceSenior, record: model.JobRecord{
			ID: "fallback_ds1", Title: "Senior Data Scientist", Company: "Microsoft",
			Location: "Redmond, WA", Salary: "$140k - $180k", Type: "Full-time",
			Description: "Lead AI and machine learning projects using Python, R, and Azure ML to drive business insights.",
			ApplyURL:    "https://careers.microsoft.com/", Posted: "2 days ago",
			Skills: []string{"Python", "Machine Learning", "R", "Azure ML"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceMid, record: model.JobRecord{
			ID: "fallback_ds2", Title: "Data Analyst", Company: "Spotify",
			Location: "New York, NY", Salary: "$85k - $115k", Type: "Full-time",
			Description: "Analyze user behavior and music streaming patterns to improve our recommendation algorithms.",
			ApplyURL:    "https://www.lifeatspotify.com/jobs", Posted: "5 days ago",
			Skills: []string{"SQL", "Python", "Tableau", "Statistics"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceMid, record: model.JobRecord{
			ID: "fallback_ds3", Title: "Machine Learning Engineer", Company: "Tesla",
			Location: "Palo Alto, CA", Salary: "$130k - $170k", Type: "Full-time",
			Description: "Develop ML models for autonomous driving and energy systems.",
			ApplyURL:    "https://www.tesla.com/careers", Posted: "1 week ago",
			Skills: []string{"TensorFlow", "Python", "PyTorch", "Computer Vision"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceEntry, record: model.JobRecord{
			ID: "fallback_ds4", Title: "Junior Data Scientist", Company: "Airbnb",
			Location: "San Francisco, CA", Salary: "$95k - $125k", Type: "Full-time",
			Description: "Support data-driven decision making for our global marketplace platform.",
			ApplyURL:    "https://careers.airbnb.com/", Posted: "3 days ago",
			Skills: []string{"Python", "SQL", "Pandas", "Jupyter"}, Source: model.SourceFallback,
		}},
	},
	"UI/UX Design": {
		{level: model.ExperienceSenior, record: model.JobRecord{
			ID: "fallback_ux1", Title: "Senior UX Designer", Company: "Apple",
			Location: "Cupertino, CA", Salary: "$130k - $170k", Type: "Full-time",
			Description: "Design intuitive user experiences for iOS and macOS applications used by millions worldwide.",
			ApplyURL:    "https://jobs.apple.com/", Posted: "2 days ago",
			Skills: []string{"Figma", "Sketch", "User Research", "Prototyping"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceMid, record: model.JobRecord{
			ID: "fallback_ux2", Title: "Product Designer", Company: "Slack",
			Location: "San Francisco, CA", Salary: "$110k - $145k", Type: "Full-time",
			Description: "Create seamless collaboration experiences for teams worldwide.",
			ApplyURL:    "https://slack.com/careers", Posted: "6 days ago",
			Skills: []string{"Figma", "Design Systems", "User Testing", "Wireframing"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceMid, record: model.JobRecord{
			ID: "fallback_ux3", Title: "UI Designer", Company: "Adobe",
			Location: "Remote", Salary: "$85k - $115k", Type: "Full-time",
			Description: "Design beautiful interfaces for creative software used by millions of artists and designers.",
			ApplyURL:    "https://adobe.wd5.myworkdayjobs.com/external_experienced", Posted: "1 week ago",
			Skills: []string{"Adobe XD", "Photoshop", "Illustrator", "UI Design"}, Source: model.SourceFallback,
		}},
	},
	"Digital Marketing": {
		{level: model.ExperienceMid, record: model.JobRecord{
			ID: "fallback_dm1", Title: "Digital Marketing Manager", Company: "HubSpot",
			Location: "Boston, MA", Salary: "$85k - $115k", Type: "Full-time",
			Description: "Lead digital marketing campaigns and growth strategies for our marketing platform.",
			ApplyURL:    "https://www.hubspot.com/careers", Posted: "3 days ago",
			Skills: []string{"SEO", "Google Analytics", "Content Marketing", "PPC"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceEntry, record: model.JobRecord{
			ID: "fallback_dm2", Title: "Social Media Specialist", Company: "Buffer",
			Location: "Remote", Salary: "$55k - $75k", Type: "Full-time",
			Description: "Manage social media presence and create engaging content for our social media management platform.",
			ApplyURL:    "https://buffer.com/journey", Posted: "2 days ago",
			Skills: []string{"Social Media", "Content Creation", "Analytics", "Copywriting"}, Source: model.SourceFallback,
		}},
	},
	"Product Management": {
		{level: model.ExperienceSenior, record: model.JobRecord{
			ID: "fallback_pm1", Title: "Senior Product Manager", Company: "Airbnb",
			Location: "San Francisco, CA", Salary: "$150k - $190k", Type: "Full-time",
			Description: "Drive product strategy and execution for our global marketplace platform.",
			ApplyURL:    "https://careers.airbnb.com/", Posted: "4 days ago",
			Skills: []string{"Product Strategy", "Analytics", "User Research", "Roadmapping"}, Source: model.SourceFallback,
		}},
		{level: model.ExperienceMid, record: model.JobRecord{
			ID: "fallback_pm2", Title: "Product Manager", Company: "Zoom",
			Location: "San Jose, CA", Salary: "$120k - $155k", Type: "Full-time",
			Description: "Shape the future of video communications and collaboration tools.",
			ApplyURL:    "https://zoom.wd5.myworkdayjobs.com/Zoom", Posted: "1 week ago",
			Skills: []string{"Product Management", "Agile", "Data Analysis", "User Stories"}, Source: model.SourceFallback,
		}},
	},
}
