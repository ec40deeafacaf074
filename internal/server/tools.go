package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ishu9bansal/mcp-job-portal/internal/matching"
	"github.com/ishu9bansal/mcp-job-portal/internal/types"
	"github.com/ishu9bansal/mcp-job-portal/internal/validation"
)

// toolHandler runs the tool-specific logic and always yields an envelope.
type toolHandler[In any] func(ctx context.Context, in In) types.ToolResponse

// guard adapts a toolHandler for the MCP SDK and converts any escaped panic
// into an INTERNAL_ERROR envelope, so no fault crosses the tool boundary.
func guard[In any](h toolHandler[In]) mcp.ToolHandlerFor[In, types.ToolResponse] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in In) (_ *mcp.CallToolResult, out types.ToolResponse, err error) {
		defer func() {
			if r := recover(); r != nil {
				out = types.Failure(types.CodeInternalError, "unexpected internal error", fmt.Sprint(r))
			}
		}()
		return nil, h(ctx, in), nil
	}
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "create_profile",
		Description: "Create a user profile with name, email, phone, skills, and work experience.",
	}, guard(s.createProfile))

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "create_job",
		Description: "Create a job posting with title, company, location, description, and required skills.",
	}, guard(s.createJob))

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "delete_profile",
		Description: "Delete a user profile by ID.",
	}, guard(s.deleteProfile))

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "delete_job",
		Description: "Delete a job posting by ID.",
	}, guard(s.deleteJob))

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "match_jobs_for_profile",
		Description: "Match job postings to a user profile.",
	}, guard(s.matchJobsForProfile))

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "match_profiles_for_job",
		Description: "Match user profiles to a job posting.",
	}, guard(s.matchProfilesForJob))
}

func (s *Server) createProfile(_ context.Context, in types.CreateProfileInput) types.ToolResponse {
	if verr := validation.Check(&in); verr != nil {
		return types.Failure(types.CodeValidationError, "invalid profile", verr.Fields)
	}
	resp := s.insertProfile(in)
	if !resp.Success {
		return types.Failure(types.CodeCreateProfileFailed, "failed to create profile")
	}
	return resp
}

// insertProfile appends the validated profile, converting any fault in the
// store layer into a DATABASE_ERROR envelope.
func (s *Server) insertProfile(in types.CreateProfileInput) (resp types.ToolResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = types.Failure(types.CodeDatabaseError, "failed to create profile", fmt.Sprint(r))
		}
	}()
	created := s.profiles.Create(func(id int) types.Profile {
		return types.Profile{
			ID:         id,
			Name:       in.Name,
			Email:      in.Email,
			Phone:      in.Phone,
			Skills:     in.Skills,
			Experience: in.Experience,
		}
	})
	return types.Success(created)
}

func (s *Server) createJob(_ context.Context, in types.CreateJobInput) types.ToolResponse {
	if verr := validation.Check(&in); verr != nil {
		return types.Failure(types.CodeValidationError, "invalid job posting", verr.Fields)
	}
	resp := s.insertJob(in)
	if !resp.Success {
		return types.Failure(types.CodeCreateJobFailed, "failed to create job posting")
	}
	return resp
}

func (s *Server) insertJob(in types.CreateJobInput) (resp types.ToolResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = types.Failure(types.CodeDatabaseError, "failed to create job posting", fmt.Sprint(r))
		}
	}()
	created := s.jobs.Create(func(id int) types.Job {
		return types.Job{
			ID:             id,
			Title:          in.Title,
			Company:        in.Company,
			Location:       in.Location,
			Experience:     in.Experience,
			Salary:         in.Salary,
			Description:    in.Description,
			SkillsRequired: in.SkillsRequired,
		}
	})
	return types.Success(created)
}

func (s *Server) deleteProfile(_ context.Context, in types.DeleteProfileInput) types.ToolResponse {
	if verr := validation.Check(&in); verr != nil {
		return types.Failure(types.CodeValidationError, "invalid profile id", verr.Fields)
	}
	if !s.profiles.Delete(in.ID) {
		return types.Failure(types.CodeProfileNotFound, "Profile not found")
	}
	return types.Success(types.DeleteResult{Message: "Profile deleted successfully"})
}

func (s *Server) deleteJob(_ context.Context, in types.DeleteJobInput) types.ToolResponse {
	if verr := validation.Check(&in); verr != nil {
		return types.Failure(types.CodeValidationError, "invalid job id", verr.Fields)
	}
	if !s.jobs.Delete(in.ID) {
		return types.Failure(types.CodeJobNotFound, "Job not found")
	}
	return types.Success(types.DeleteResult{Message: "Job deleted successfully"})
}

func (s *Server) matchJobsForProfile(_ context.Context, in types.MatchJobsForProfileInput) types.ToolResponse {
	if verr := validation.Check(&in); verr != nil {
		return types.Failure(types.CodeValidationError, "invalid match request", verr.Fields)
	}
	if _, ok := s.profiles.Get(in.ProfileID); !ok {
		return types.Failure(types.CodeProfileNotFound, "Profile not found")
	}
	matched := matching.Sample(s.jobs.List(), matchLimit(in.Options))
	return types.Success(types.MatchJobsResult{Message: "Matching jobs found", Jobs: matched})
}

func (s *Server) matchProfilesForJob(_ context.Context, in types.MatchProfilesForJobInput) types.ToolResponse {
	if verr := validation.Check(&in); verr != nil {
		return types.Failure(types.CodeValidationError, "invalid match request", verr.Fields)
	}
	if _, ok := s.jobs.Get(in.JobID); !ok {
		return types.Failure(types.CodeJobNotFound, "Job not found")
	}
	matched := matching.Sample(s.profiles.List(), matchLimit(in.Options))
	return types.Success(types.MatchProfilesResult{Message: "Matching profiles found", Profiles: matched})
}

func matchLimit(opts *types.MatchOptions) int {
	if opts != nil && opts.Limit > 0 {
		return opts.Limit
	}
	return matching.DefaultLimit
}
