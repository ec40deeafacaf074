package types

// Experience is one entry in a candidate's work history.
type Experience struct {
	Company  string `json:"company" validate:"required,min=1"`
	Role     string `json:"role" validate:"required,min=1"`
	Duration string `json:"duration" validate:"required,min=1"`
}

// Profile is a stored candidate profile. The ID is assigned by the store at
// creation and never changes afterwards.
type Profile struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience,omitempty"`
}

// RecordID implements store.Record.
func (p Profile) RecordID() int { return p.ID }

// CreateProfileInput is the payload for the create_profile tool.
type CreateProfileInput struct {
	Name       string       `json:"name" validate:"required,min=1"`
	Email      string       `json:"email" validate:"required,email"`
	Phone      string       `json:"phone" validate:"required,min=10"`
	Skills     []string     `json:"skills" validate:"required"`
	Experience []Experience `json:"experience,omitempty" validate:"omitempty,dive"`
}

// DeleteProfileInput is the payload for the delete_profile tool.
type DeleteProfileInput struct {
	ID int `json:"id" validate:"min=1"`
}
