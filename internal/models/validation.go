package models

// ValidationError is raised client-side before any network call. It
// never reaches the remote API; views render Message next to Field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
