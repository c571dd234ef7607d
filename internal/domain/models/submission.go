package models

// PhoneNotProvided is the value stored and emailed when a submitter
// leaves the phone field empty.
const PhoneNotProvided = "Not provided"

// Submission is one contact-form payload after normalization: the
// phone default applied and the timestamp rendered for display.
//
// A submission has no identity and no lifecycle. Once appended it is
// immutable, and submitting the same payload twice produces two rows.
type Submission struct {
	Timestamp string // display-formatted, e.g. "January 1, 2024, 12:00 PM UTC"
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Comment   string // free text, may contain line breaks
}

// Columns returns the stored row in its fixed order. The row store
// contract depends on this order; do not reorder fields.
func (s Submission) Columns() []string {
	return []string{s.Timestamp, s.FirstName, s.LastName, s.Email, s.Phone, s.Comment}
}
