package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/careerforge/jobradar/internal/model"
)

const adzunaName = "adzuna"

// adzunaResult is a single job in the Adzuna search response.
type adzunaResult struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Company      adzunaCompany  `json:"company"`
	Location     adzunaLocation `json:"location"`
	SalaryMin    *float64       `json:"salary_min"`
	SalaryMax    *float64       `json:"salary_max"`
	ContractType string         `json:"contract_type"`
	RedirectURL  string         `json:"redirect_url"`
	Created      string         `json:"created"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// adzunaResponse is the top-level Adzuna search response.
type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

// Adzuna queries the Adzuna job search API.
type Adzuna struct {
	appID   string
	appKey  string
	country string
	baseURL string
	client  *http.Client
}

// NewAdzuna creates an Adzuna client for the given country endpoint.
func NewAdzuna(appID, appKey, country, baseURL string, client *http.Client) *Adzuna {
	return &Adzuna{
		appID:   appID,
		appKey:  appKey,
		country: country,
		baseURL: baseURL,
		client:  client,
	}
}

func (a *Adzuna) Name() string { return adzunaName }

// Fetch runs one search against page 1 of the Adzuna API and normalizes the
// results.
func (a *Adzuna) Fetch(ctx context.Context, params model.SearchParams) ([]model.JobRecord, error) {
	query := url.Values{}
	query.Set("app_id", a.appID)
	query.Set("app_key", a.appKey)
	query.Set("what", params.Keywords)
	query.Set("where", params.Location)
	query.Set("results_per_page", "20")
	query.Set("sort_by", "relevance")

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", a.baseURL, a.country, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &model.ProviderError{Provider: adzunaName, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &model.ProviderError{Provider: adzunaName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.ProviderError{Provider: adzunaName, StatusCode: resp.StatusCode}
	}

	var payload adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &model.ProviderError{Provider: adzunaName, Err: fmt.Errorf("decoding response: %w", err)}
	}

	now := time.Now()
	jobs := make([]model.JobRecord, 0, len(payload.Results))
	for _, r := range payload.Results {
		jobs = append(jobs, model.JobRecord{
			ID:          adzunaName + "_" + r.ID,
			Title:       r.Title,
			Company:     orDefault(r.Company.DisplayName, defaultCompany),
			Location:    locationOrDefault(r.Location.DisplayName, params.Location),
			Salary:      FormatSalary(r.SalaryMin, r.SalaryMax),
			Type:        orDefault(r.ContractType, defaultType),
			Description: r.Description,
			ApplyURL:    r.RedirectURL,
			Posted:      FormatPostedAt(r.Created, now),
			Skills:      ExtractSkills(r.Description),
			Source:      adzunaName,
		})
	}

	return jobs, nil
}
