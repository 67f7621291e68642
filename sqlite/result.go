package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/docscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docscout.ResultService = (*ResultService)(nil)

// ResultService implements docscout.ResultService using SQLite.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// CreateResult stores a finalized result and its people in one
// transaction. The person rows keep their listing order.
func (s *ResultService) CreateResult(ctx context.Context, result *docscout.WebsiteResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	result.ID = uuid.New().String()
	if result.ScrapedAt.IsZero() {
		result.ScrapedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO websites (id, website, practice_name, err_note, scraped_at)
		VALUES (?, ?, ?, ?, ?)
	`, result.ID, result.Website, result.PracticeName, result.ErrNote,
		result.ScrapedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, p := range result.People {
		var age any
		if p.Age != nil {
			age = *p.Age
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO people (id, website_id, name, bio, age, hometown, education, photo_url, role, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), result.ID, p.Name, p.Bio, age, p.Hometown,
			p.Education, p.PhotoURL, string(p.Role), i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindResultByID retrieves a result by ID, people included.
func (s *ResultService) FindResultByID(ctx context.Context, id string) (*docscout.WebsiteResult, error) {
	var result docscout.WebsiteResult
	var scrapedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, website, practice_name, err_note, scraped_at
		FROM websites
		WHERE id = ?
	`, id).Scan(&result.ID, &result.Website, &result.PracticeName, &result.ErrNote, &scrapedAt)

	if err == sql.ErrNoRows {
		return nil, docscout.Errorf(docscout.ENOTFOUND, "result not found")
	}
	if err != nil {
		return nil, err
	}

	if result.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
		return nil, err
	}

	if result.People, err = s.findPeople(ctx, result.ID); err != nil {
		return nil, err
	}

	return &result, nil
}

// FindResults retrieves results matching the filter, newest first,
// people included.
func (s *ResultService) FindResults(ctx context.Context, filter docscout.ResultFilter) ([]*docscout.WebsiteResult, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, website, practice_name, err_note, scraped_at FROM websites WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Website != nil {
		query.WriteString(" AND website = ?")
		args = append(args, *filter.Website)
	}

	query.WriteString(" ORDER BY scraped_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*docscout.WebsiteResult
	for rows.Next() {
		var result docscout.WebsiteResult
		var scrapedAt string

		if err := rows.Scan(&result.ID, &result.Website, &result.PracticeName,
			&result.ErrNote, &scrapedAt); err != nil {
			return nil, err
		}
		if result.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
			return nil, err
		}

		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, result := range results {
		if result.People, err = s.findPeople(ctx, result.ID); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// DeleteResult permanently removes a result; its people cascade.
func (s *ResultService) DeleteResult(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM websites WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return docscout.Errorf(docscout.ENOTFOUND, "result not found")
	}

	return nil
}

// findPeople loads the person rows for a website in listing order.
func (s *ResultService) findPeople(ctx context.Context, websiteID string) ([]docscout.Person, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, bio, age, hometown, education, photo_url, role
		FROM people
		WHERE website_id = ?
		ORDER BY position
	`, websiteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []docscout.Person
	for rows.Next() {
		var p docscout.Person
		var age sql.NullInt64
		var role string

		if err := rows.Scan(&p.Name, &p.Bio, &age, &p.Hometown,
			&p.Education, &p.PhotoURL, &role); err != nil {
			return nil, err
		}
		if age.Valid {
			v := int(age.Int64)
			p.Age = &v
		}
		p.Role = docscout.Role(role)

		people = append(people, p)
	}

	return people, rows.Err()
}
