package types

// JobRecord represents a normalized job posting from any source.
// PostedDate is free text as published by the board; it is never parsed
// into a date type.
type JobRecord struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Salary         string   `json:"salary,omitempty"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	PostedDate     string   `json:"posted_date"`
	Source         string   `json:"source"`
}

// Key returns the identity key of the record. Two records with the same
// key refer to the same posting regardless of their other fields; the
// comparison is exact and case-sensitive.
func (j *JobRecord) Key() JobKey {
	return JobKey{Title: j.Title, Company: j.Company}
}

// JobKey is the (title, company) identity key used for deduplication at
// the storage boundary.
type JobKey struct {
	Title   string
	Company string
}
