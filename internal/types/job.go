package types

// Job is a stored job posting. The ID is assigned by the store at creation
// and never changes afterwards.
type Job struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Experience     string   `json:"experience,omitempty"`
	Salary         *float64 `json:"salary,omitempty"`
	Description    string   `json:"description"`
	SkillsRequired []string `json:"skillsRequired,omitempty"`
}

// RecordID implements store.Record.
func (j Job) RecordID() int { return j.ID }

// CreateJobInput is the payload for the create_job tool. Experience, salary
// and skillsRequired are optional; absent is distinct from empty.
type CreateJobInput struct {
	Title          string   `json:"title" validate:"required,min=1"`
	Company        string   `json:"company" validate:"required,min=1"`
	Location       string   `json:"location" validate:"required,min=1"`
	Experience     string   `json:"experience,omitempty" validate:"omitempty,min=1"`
	Salary         *float64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Description    string   `json:"description" validate:"required,min=10"`
	SkillsRequired []string `json:"skillsRequired,omitempty"`
}

// DeleteJobInput is the payload for the delete_job tool.
type DeleteJobInput struct {
	ID int `json:"id" validate:"min=1"`
}
