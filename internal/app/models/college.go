package models

import "time"

// College is the root of the org hierarchy
type College struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Abbreviation  string    `json:"abbreviation"`
	Website       string    `json:"website,omitempty"`
	Address       string    `json:"address,omitempty"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	IsDeleted     bool      `json:"isDeleted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AcademicYear belongs to a college. At most one year per college is active;
// the service enforces this transactionally on activation.
type AcademicYear struct {
	ID        string    `json:"id"`
	CollegeID string    `json:"collegeId"`
	Year      string    `json:"year"`
	IsActive  bool      `json:"isActive"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	College *College `json:"college,omitempty"`
}

// Department belongs to a college; name and abbreviation are unique within it
type Department struct {
	ID           string    `json:"id"`
	CollegeID    string    `json:"collegeId"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	IsDeleted    bool      `json:"isDeleted"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	College *College `json:"college,omitempty"`
}
