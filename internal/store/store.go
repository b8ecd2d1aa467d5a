// Package store provides PostgreSQL persistence for jobs and resume
// profiles. The extraction-and-matching core never touches storage itself;
// this package is the collaborator boundary where identity-key
// deduplication is applied.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobika/jobika/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveJobs inserts the given batch, skipping any record whose (title,
// company) identity key already exists. The comparison is exact and
// case-sensitive. Returns the number of records actually inserted.
func (s *Store) SaveJobs(ctx context.Context, jobs []types.JobRecord) (int, error) {
	added := 0
	for _, job := range jobs {
		var exists bool
		err := s.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM jobs WHERE title = $1 AND company = $2)`,
			job.Title, job.Company,
		).Scan(&exists)
		if err != nil {
			return added, fmt.Errorf("failed to check job %q at %q: %w", job.Title, job.Company, err)
		}
		if exists {
			continue
		}

		skillsJSON, err := json.Marshal(job.RequiredSkills)
		if err != nil {
			return added, fmt.Errorf("failed to marshal skills: %w", err)
		}

		_, err = s.pool.Exec(ctx,
			`INSERT INTO jobs (id, title, company, location, salary, description, required_skills, posted_date, source)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.New(), job.Title, job.Company, job.Location, job.Salary,
			job.Description, skillsJSON, job.PostedDate, job.Source,
		)
		if err != nil {
			return added, fmt.Errorf("failed to insert job %q at %q: %w", job.Title, job.Company, err)
		}
		added++
	}
	return added, nil
}

// SaveResume persists an extracted resume profile and returns its ID.
func (s *Store) SaveResume(ctx context.Context, profile *types.ResumeProfile) (uuid.UUID, error) {
	skillsJSON, err := json.Marshal(profile.Skills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO resumes (id, name, email, phone, skills, experience_years, raw_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, profile.Name, profile.Email, profile.Phone, skillsJSON,
		profile.ExperienceYears, profile.RawText,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert resume: %w", err)
	}
	return id, nil
}

// RecentJobs returns the most recently stored jobs, newest first.
func (s *Store) RecentJobs(ctx context.Context, limit int) ([]types.JobRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT title, company, location, salary, description, required_skills, posted_date, source
		 FROM jobs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobRecord
	for rows.Next() {
		var job types.JobRecord
		var skillsJSON []byte
		if err := rows.Scan(&job.Title, &job.Company, &job.Location, &job.Salary,
			&job.Description, &skillsJSON, &job.PostedDate, &job.Source); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if len(skillsJSON) > 0 {
			if err := json.Unmarshal(skillsJSON, &job.RequiredSkills); err != nil {
				return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
			}
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}

// RecentJobSkills returns the union of required skills across the limit
// most recent jobs, deduplicated case-insensitively with first-seen casing
// preserved. This aggregate feeds the recommendation generator.
func (s *Store) RecentJobSkills(ctx context.Context, limit int) ([]string, error) {
	jobs, err := s.RecentJobs(ctx, limit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var all []string
	for _, job := range jobs {
		for _, skill := range job.RequiredSkills {
			lower := strings.ToLower(skill)
			if seen[lower] {
				continue
			}
			seen[lower] = true
			all = append(all, skill)
		}
	}
	return all, nil
}
