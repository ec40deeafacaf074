package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishu9bansal/mcp-job-portal/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Port: 3000})
}

func validProfile() types.CreateProfileInput {
	return types.CreateProfileInput{
		Name:   "A",
		Email:  "a@x.com",
		Phone:  "1234567890",
		Skills: []string{"Go"},
	}
}

func validJob() types.CreateJobInput {
	return types.CreateJobInput{
		Title:          "Backend Developer",
		Company:        "AppSquadz",
		Location:       "Remote Bangalore",
		Description:    "Responsible for developing backend services",
		SkillsRequired: []string{"Go", "React"},
	}
}

func TestCreateProfileAssignsFirstID(t *testing.T) {
	s := newTestServer(t)

	resp := s.createProfile(context.Background(), validProfile())

	require.True(t, resp.Success)
	require.Nil(t, resp.Error)
	created, ok := resp.Data.(types.Profile)
	require.True(t, ok)
	assert.Equal(t, 1, created.ID)

	// Immediately retrievable.
	got, found := s.profiles.Get(created.ID)
	require.True(t, found)
	assert.Equal(t, created, got)
}

func TestCreateProfileIDIsMaxPlusOneAfterDelete(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	first := s.createProfile(ctx, validProfile())
	second := s.createProfile(ctx, validProfile())
	require.Equal(t, 1, first.Data.(types.Profile).ID)
	require.Equal(t, 2, second.Data.(types.Profile).ID)

	del := s.deleteProfile(ctx, types.DeleteProfileInput{ID: 1})
	require.True(t, del.Success)

	// Remaining IDs are {2}; the next must be 3, not 2.
	third := s.createProfile(ctx, validProfile())
	require.True(t, third.Success)
	assert.Equal(t, 3, third.Data.(types.Profile).ID)
}

func TestCreateProfileMissingEmailFailsValidation(t *testing.T) {
	s := newTestServer(t)
	in := validProfile()
	in.Email = ""

	resp := s.createProfile(context.Background(), in)

	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, types.CodeValidationError, resp.Error.Code)
	assert.NotNil(t, resp.Error.Details)
	// A failed validation must leave the store untouched.
	assert.Equal(t, 0, s.profiles.Len())
}

func TestCreateProfileValidatesNestedExperience(t *testing.T) {
	s := newTestServer(t)
	in := validProfile()
	in.Experience = []types.Experience{{Company: "", Role: "Dev", Duration: "1 year"}}

	resp := s.createProfile(context.Background(), in)

	require.False(t, resp.Success)
	assert.Equal(t, types.CodeValidationError, resp.Error.Code)
	assert.Equal(t, 0, s.profiles.Len())
}

func TestCreateJobValidatesDescriptionLength(t *testing.T) {
	s := newTestServer(t)
	in := validJob()
	in.Description = "too short"

	resp := s.createJob(context.Background(), in)

	require.False(t, resp.Success)
	assert.Equal(t, types.CodeValidationError, resp.Error.Code)
	assert.Equal(t, 0, s.jobs.Len())
}

func TestCreateJobSuccess(t *testing.T) {
	s := newTestServer(t)

	resp := s.createJob(context.Background(), validJob())

	require.True(t, resp.Success)
	created, ok := resp.Data.(types.Job)
	require.True(t, ok)
	assert.Equal(t, 1, created.ID)
	assert.Nil(t, created.Salary)
}

func TestDeleteProfileNotFound(t *testing.T) {
	s := newTestServer(t)
	s.createProfile(context.Background(), validProfile())

	resp := s.deleteProfile(context.Background(), types.DeleteProfileInput{ID: 42})

	require.False(t, resp.Success)
	assert.Equal(t, types.CodeProfileNotFound, resp.Error.Code)
	assert.Equal(t, 1, s.profiles.Len())
}

func TestDeleteJobNotFound(t *testing.T) {
	s := newTestServer(t)

	resp := s.deleteJob(context.Background(), types.DeleteJobInput{ID: 1})

	require.False(t, resp.Success)
	assert.Equal(t, types.CodeJobNotFound, resp.Error.Code)
}

func TestDeleteJobRemovesRecord(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	created := s.createJob(ctx, validJob())
	id := created.Data.(types.Job).ID

	resp := s.deleteJob(ctx, types.DeleteJobInput{ID: id})

	require.True(t, resp.Success)
	assert.Equal(t, types.DeleteResult{Message: "Job deleted successfully"}, resp.Data)
	assert.Equal(t, 0, s.jobs.Len())

	// Deleting again reports not found.
	again := s.deleteJob(ctx, types.DeleteJobInput{ID: id})
	assert.Equal(t, types.CodeJobNotFound, again.Error.Code)
}

func TestMatchJobsForUnknownProfile(t *testing.T) {
	s := newTestServer(t)
	s.createJob(context.Background(), validJob())
	jobsBefore := s.jobs.Len()

	resp := s.matchJobsForProfile(context.Background(), types.MatchJobsForProfileInput{ProfileID: 7})

	require.False(t, resp.Success)
	assert.Equal(t, types.CodeProfileNotFound, resp.Error.Code)
	// The job collection is never touched on this path.
	assert.Equal(t, jobsBefore, s.jobs.Len())
}

func TestMatchJobsForProfileRespectsLimit(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	s.createProfile(ctx, validProfile())
	for i := 0; i < 5; i++ {
		s.createJob(ctx, validJob())
	}

	resp := s.matchJobsForProfile(ctx, types.MatchJobsForProfileInput{
		ProfileID: 1,
		Options:   &types.MatchOptions{Limit: 2},
	})

	require.True(t, resp.Success)
	result, ok := resp.Data.(types.MatchJobsResult)
	require.True(t, ok)
	assert.Equal(t, "Matching jobs found", result.Message)
	assert.Len(t, result.Jobs, 2)
}

func TestMatchJobsForProfileDefaultLimit(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	s.createProfile(ctx, validProfile())
	for i := 0; i < 5; i++ {
		s.createJob(ctx, validJob())
	}

	resp := s.matchJobsForProfile(ctx, types.MatchJobsForProfileInput{ProfileID: 1})

	require.True(t, resp.Success)
	assert.Len(t, resp.Data.(types.MatchJobsResult).Jobs, 3)
}

func TestMatchProfilesForJob(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	s.createJob(ctx, validJob())
	s.createProfile(ctx, validProfile())
	s.createProfile(ctx, validProfile())

	resp := s.matchProfilesForJob(ctx, types.MatchProfilesForJobInput{JobID: 1})

	require.True(t, resp.Success)
	result, ok := resp.Data.(types.MatchProfilesResult)
	require.True(t, ok)
	assert.Equal(t, "Matching profiles found", result.Message)
	assert.Len(t, result.Profiles, 2)
}

func TestMatchProfilesForUnknownJob(t *testing.T) {
	s := newTestServer(t)

	resp := s.matchProfilesForJob(context.Background(), types.MatchProfilesForJobInput{JobID: 3})

	require.False(t, resp.Success)
	assert.Equal(t, types.CodeJobNotFound, resp.Error.Code)
}

func TestGuardConvertsPanicToFailureEnvelope(t *testing.T) {
	handler := guard(func(context.Context, struct{}) types.ToolResponse {
		panic("boom")
	})

	_, out, err := handler(context.Background(), nil, struct{}{})

	require.NoError(t, err)
	require.False(t, out.Success)
	require.NotNil(t, out.Error)
	assert.Equal(t, types.CodeInternalError, out.Error.Code)
	assert.Equal(t, "boom", out.Error.Details)
}
