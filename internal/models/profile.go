package models

// Profile holds the user's own details. All fields are optional.
type Profile struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	BirthDate string `json:"birth_date,omitempty"` // YYYY-MM-DD
	ImagePath string `json:"image_path,omitempty"` // local file path
}
