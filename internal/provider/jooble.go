package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/careerforge/jobradar/internal/model"
)

const joobleName = "jooble"

// joobleRequest is the search request body; Jooble takes POST with JSON.
type joobleRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
	Page     int    `json:"page"`
}

// joobleJob is a single job in the Jooble response.
type joobleJob struct {
	ID       json.Number `json:"id"`
	Title    string      `json:"title"`
	Company  string      `json:"company"`
	Location string      `json:"location"`
	Salary   string      `json:"salary"`
	Type     string      `json:"type"`
	Snippet  string      `json:"snippet"`
	Link     string      `json:"link"`
	Updated  string      `json:"updated"`
}

// joobleResponse is the top-level Jooble search response.
type joobleResponse struct {
	Jobs []joobleJob `json:"jobs"`
}

// Jooble queries the Jooble job search API.
type Jooble struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewJooble creates a Jooble client. The API key is part of the request URL.
func NewJooble(apiKey, baseURL string, client *http.Client) *Jooble {
	return &Jooble{apiKey: apiKey, baseURL: baseURL, client: client}
}

func (j *Jooble) Name() string { return joobleName }

// Fetch posts one search to the Jooble API and normalizes the results.
func (j *Jooble) Fetch(ctx context.Context, params model.SearchParams) ([]model.JobRecord, error) {
	body, err := json.Marshal(joobleRequest{
		Keywords: params.Keywords,
		Location: params.Location,
		Page:     1,
	})
	if err != nil {
		return nil, &model.ProviderError{Provider: joobleName, Err: err}
	}

	endpoint := j.baseURL + "/" + j.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &model.ProviderError{Provider: joobleName, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, &model.ProviderError{Provider: joobleName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.ProviderError{Provider: joobleName, StatusCode: resp.StatusCode}
	}

	var payload joobleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &model.ProviderError{Provider: joobleName, Err: fmt.Errorf("decoding response: %w", err)}
	}

	now := time.Now()
	jobs := make([]model.JobRecord, 0, len(payload.Jobs))
	for i, job := range payload.Jobs {
		id := job.ID.String()
		if id == "" {
			// Some listings arrive without an ID; fall back to the
			// position in this response.
			id = strconv.Itoa(i)
		}
		jobs = append(jobs, model.JobRecord{
			ID:          joobleName + "_" + id,
			Title:       job.Title,
			Company:     orDefault(job.Company, defaultCompany),
			Location:    locationOrDefault(job.Location, params.Location),
			Salary:      orDefault(job.Salary, defaultSalary),
			Type:        orDefault(job.Type, defaultType),
			Description: job.Snippet,
			ApplyURL:    job.Link,
			Posted:      FormatPostedAt(job.Updated, now),
			Skills:      ExtractSkills(job.Snippet),
			Source:      joobleName,
		})
	}

	return jobs, nil
}
