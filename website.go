package docscout

import (
	"context"
	"strconv"
	"time"
)

// WebsiteResult holds everything discovered for a single input website.
// It is created per input URL, populated incrementally as pages are
// visited, finalized after role assignment, and then flattened to output
// rows. The People slice preserves first-appearance order because the role
// scoring model weighs listing order.
type WebsiteResult struct {
	ID           string    `json:"id"`
	Website      string    `json:"website"`
	PracticeName string    `json:"practiceName"`
	People       []Person  `json:"people"`
	ErrNote      string    `json:"errNote"`
	ScrapedAt    time.Time `json:"scrapedAt"`
}

// Validate returns an error if the result contains invalid fields.
func (r *WebsiteResult) Validate() error {
	if r.Website == "" {
		return Errorf(EINVALID, "result website URL required")
	}
	return nil
}

// Columns is the fixed output column set, one row per discovered person.
var Columns = []string{
	"website", "practice_name", "doctor_name", "bio",
	"age", "hometown", "education", "photo_url", "role",
}

// Row is one output record matching Columns.
type Row [9]string

// Rows flattens the result to output rows. A website with no people (or a
// failed scrape) yields exactly one placeholder row with the person fields
// empty; scrape failures carry an "ERROR: ..." marker in the role column.
func (r *WebsiteResult) Rows() []Row {
	if len(r.People) == 0 {
		role := ""
		if r.ErrNote != "" {
			role = "ERROR: " + r.ErrNote
		}
		return []Row{{r.Website, r.PracticeName, "", "", "", "", "", "", role}}
	}

	rows := make([]Row, 0, len(r.People))
	for _, p := range r.People {
		age := ""
		if p.Age != nil {
			age = strconv.Itoa(*p.Age)
		}
		rows = append(rows, Row{
			r.Website, r.PracticeName, p.Name, p.Bio,
			age, p.Hometown, p.Education, p.PhotoURL, string(p.Role),
		})
	}
	return rows
}

// ResultService persists finalized website results.
type ResultService interface {
	// CreateResult stores a finalized result and its people.
	CreateResult(ctx context.Context, result *WebsiteResult) error

	// FindResultByID retrieves a result by ID.
	// Returns ENOTFOUND if the result does not exist.
	FindResultByID(ctx context.Context, id string) (*WebsiteResult, error)

	// FindResults retrieves results matching the filter, people included.
	FindResults(ctx context.Context, filter ResultFilter) ([]*WebsiteResult, error)

	// DeleteResult permanently removes a result and its people.
	// Returns ENOTFOUND if the result does not exist.
	DeleteResult(ctx context.Context, id string) error
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	ID      *string `json:"id"`
	Website *string `json:"website"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
