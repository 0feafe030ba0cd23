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

const careerjetName = "careerjet"

// careerjetJob is a single job in the Careerjet response.
type careerjetJob struct {
	JobID        string `json:"jobid"`
	Title        string `json:"jobtitle"`
	Company      string `json:"company"`
	Locations    string `json:"locations"`
	Salary       string `json:"salary"`
	ContractType string `json:"contracttype"`
	Description  string `json:"jobdescription"`
	URL          string `json:"url"`
	Date         string `json:"date"`
}

// careerjetResponse is the top-level Careerjet search response.
type careerjetResponse struct {
	Jobs []careerjetJob `json:"jobs"`
}

// Careerjet queries the Careerjet public search API.
type Careerjet struct {
	affiliateID string
	baseURL     string
	client      *http.Client
}

// NewCareerjet creates a Careerjet client for the given affiliate ID.
func NewCareerjet(affiliateID, baseURL string, client *http.Client) *Careerjet {
	return &Careerjet{affiliateID: affiliateID, baseURL: baseURL, client: client}
}

func (c *Careerjet) Name() string { return careerjetName }

// Fetch runs one search against page 1 of the Careerjet API and normalizes
// the results.
func (c *Careerjet) Fetch(ctx context.Context, params model.SearchParams) ([]model.JobRecord, error) {
	query := url.Values{}
	query.Set("affid", c.affiliateID)
	query.Set("keywords", params.Keywords)
	query.Set("location", params.Location)
	query.Set("pagesize", "20")
	query.Set("page", "1")
	query.Set("sort", "relevance")
	query.Set("contracttype", "p")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &model.ProviderError{Provider: careerjetName, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &model.ProviderError{Provider: careerjetName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.ProviderError{Provider: careerjetName, StatusCode: resp.StatusCode}
	}

	var payload careerjetResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &model.ProviderError{Provider: careerjetName, Err: fmt.Errorf("decoding response: %w", err)}
	}

	now := time.Now()
	jobs := make([]model.JobRecord, 0, len(payload.Jobs))
	for _, job := range payload.Jobs {
		jobs = append(jobs, model.JobRecord{
			ID:          careerjetName + "_" + job.JobID,
			Title:       job.Title,
			Company:     orDefault(job.Company, defaultCompany),
			Location:    locationOrDefault(job.Locations, params.Location),
			Salary:      orDefault(job.Salary, defaultSalary),
			Type:        orDefault(job.ContractType, defaultType),
			Description: job.Description,
			ApplyURL:    job.URL,
			Posted:      FormatPostedAt(job.Date, now),
			Skills:      ExtractSkills(job.Description),
			Source:      careerjetName,
		})
	}

	return jobs, nil
}
