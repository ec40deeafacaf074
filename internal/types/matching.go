package types

// MatchOptions tunes how many records a match tool returns.
type MatchOptions struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1"`
}

// MatchJobsForProfileInput is the payload for the match_jobs_for_profile tool.
type MatchJobsForProfileInput struct {
	ProfileID int           `json:"profileId" validate:"min=1"`
	Options   *MatchOptions `json:"options,omitempty"`
}

// MatchProfilesForJobInput is the payload for the match_profiles_for_job tool.
type MatchProfilesForJobInput struct {
	JobID   int           `json:"jobId" validate:"min=1"`
	Options *MatchOptions `json:"options,omitempty"`
}

// MatchJobsResult is the success payload of match_jobs_for_profile.
type MatchJobsResult struct {
	Message string `json:"message"`
	Jobs    []Job  `json:"jobs"`
}

// MatchProfilesResult is the success payload of match_profiles_for_job.
type MatchProfilesResult struct {
	Message  string    `json:"message"`
	Profiles []Profile `json:"profiles"`
}

// DeleteResult is the success payload of the delete tools.
type DeleteResult struct {
	Message string `json:"message"`
}
