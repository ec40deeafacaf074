package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ishu9bansal/mcp-job-portal/internal/filter"
	"github.com/ishu9bansal/mcp-job-portal/internal/types"
)

// profileFilters binds each profile query parameter to its comparison
// strategy. The company and role parameters reach into the experience
// entries.
var profileFilters = filter.Schema[types.Profile]{
	"name":   filter.Text(func(p types.Profile) string { return p.Name }),
	"email":  filter.Text(func(p types.Profile) string { return p.Email }),
	"phone":  filter.Text(func(p types.Profile) string { return p.Phone }),
	"skills": filter.List(func(p types.Profile) []string { return p.Skills }),
	"company": func(p types.Profile, query string) bool {
		for _, e := range p.Experience {
			if filter.ContainsFold(e.Company, query) {
				return true
			}
		}
		return false
	},
	"role": func(p types.Profile, query string) bool {
		for _, e := range p.Experience {
			if filter.ContainsFold(e.Role, query) {
				return true
			}
		}
		return false
	},
}

// jobFilters binds each job query parameter to its comparison strategy.
var jobFilters = filter.Schema[types.Job]{
	"title":    filter.Text(func(j types.Job) string { return j.Title }),
	"company":  filter.Text(func(j types.Job) string { return j.Company }),
	"location": filter.Text(func(j types.Job) string { return j.Location }),
	"experience": filter.OptionalText(func(j types.Job) (string, bool) {
		return j.Experience, j.Experience != ""
	}),
	"salary": filter.Number(func(j types.Job) (float64, bool) {
		if j.Salary == nil {
			return 0, false
		}
		return *j.Salary, true
	}),
	"description":    filter.Text(func(j types.Job) string { return j.Description }),
	"skillsRequired": filter.List(func(j types.Job) []string { return j.SkillsRequired }),
}

func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		Name:        "list_profiles",
		URI:         "list://profiles",
		Description: "Returns all profile entries from the in-memory database.",
		MIMEType:    "application/json",
	}, s.listProfiles)

	s.mcp.AddResource(&mcp.Resource{
		Name:        "list_jobs",
		URI:         "list://jobs",
		Description: "Returns an array of all jobs in the system.",
		MIMEType:    "application/json",
	}, s.listJobs)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "filter_profiles",
		URITemplate: "profiles://filter{?name,email,phone,skills,company,role}",
		Description: "Filter candidate profiles by field. Text fields match on partial, case-insensitive text; skills matches any listed skill; company and role match within experience entries.",
		MIMEType:    "application/json",
	}, s.filterProfiles)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "filter_jobs",
		URITemplate: "jobs://filter{?title,company,location,experience,salary,description,skillsRequired}",
		Description: "Filter job postings by field. Text fields match on partial, case-insensitive text; skillsRequired matches any required skill; salary matches exactly.",
		MIMEType:    "application/json",
	}, s.filterJobs)
}

func (s *Server) listProfiles(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return resourceList(req.Params.URI, s.profiles.List())
}

func (s *Server) listJobs(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return resourceList(req.Params.URI, s.jobs.List())
}

func (s *Server) filterProfiles(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	params, err := queryParams(req.Params.URI)
	if err != nil {
		return nil, err
	}
	return resourceList(req.Params.URI, filter.Apply(s.profiles.List(), profileFilters, params))
}

func (s *Server) filterJobs(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	params, err := queryParams(req.Params.URI)
	if err != nil {
		return nil, err
	}
	return resourceList(req.Params.URI, filter.Apply(s.jobs.List(), jobFilters, params))
}

// queryParams extracts the query string of a resource URI.
func queryParams(uri string) (url.Values, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid resource URI %q: %w", uri, err)
	}
	return u.Query(), nil
}

// resourceList wraps records as the {items: [...]} shape resources return.
// Resources never use the tool envelope.
func resourceList[T any](uri string, items []T) (*mcp.ReadResourceResult, error) {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(struct {
		Items []T `json:"items"`
	}{Items: items})
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource %q: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(payload),
		}},
	}, nil
}
