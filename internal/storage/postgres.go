package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"genzjobs/internal/domain"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	p := &Postgres{db: db}
	if err := p.ensureSchema(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Postgres) ensureSchema() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS jobs (
			id               TEXT PRIMARY KEY,
			external_id      TEXT NOT NULL,
			source           TEXT NOT NULL,
			title            TEXT NOT NULL,
			company          TEXT NOT NULL,
			company_logo     TEXT,
			location         TEXT,
			job_type         TEXT,
			description      TEXT NOT NULL DEFAULT '',
			salary_min       INTEGER,
			salary_max       INTEGER,
			salary_currency  TEXT,
			skills           TEXT[],
			remote           BOOLEAN NOT NULL DEFAULT FALSE,
			apply_url        TEXT,
			posted_at        TIMESTAMPTZ,
			scraped_at       TIMESTAMPTZ NOT NULL,
			experience_level TEXT,
			audience_tags    TEXT[],
			confidence       DOUBLE PRECISION,
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (source, external_id)
		)
	`)
	return err
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

// Save upserts a job keyed on (source, external_id) and reports whether a
// new row was inserted.
func (p *Postgres) Save(ctx context.Context, job domain.Job) (bool, error) {
	query := `
		INSERT INTO jobs (
			id, external_id, source, title, company, company_logo, location,
			job_type, description, salary_min, salary_max, salary_currency,
			skills, remote, apply_url, posted_at, scraped_at,
			experience_level, audience_tags, confidence, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, NOW())
		ON CONFLICT (source, external_id) DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			company_logo = EXCLUDED.company_logo,
			location = EXCLUDED.location,
			job_type = EXCLUDED.job_type,
			description = EXCLUDED.description,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			salary_currency = EXCLUDED.salary_currency,
			skills = EXCLUDED.skills,
			remote = EXCLUDED.remote,
			apply_url = EXCLUDED.apply_url,
			experience_level = EXCLUDED.experience_level,
			audience_tags = EXCLUDED.audience_tags,
			confidence = EXCLUDED.confidence,
			updated_at = NOW()
		RETURNING (xmax = 0)
	`

	var inserted bool
	err := p.db.QueryRowContext(ctx, query,
		job.ID,
		job.ExternalID,
		job.Source,
		job.Title,
		job.Company,
		job.CompanyLogo,
		job.Location,
		job.JobType,
		job.Description,
		job.SalaryMin,
		job.SalaryMax,
		job.SalaryCurrency,
		pq.Array(job.Skills),
		job.Remote,
		job.ApplyURL,
		job.PostedAt,
		job.ScrapedAt,
		job.ExperienceLevel,
		pq.Array(job.AudienceTags),
		job.Confidence,
	).Scan(&inserted)

	return inserted, err
}

const jobColumns = `
	id, external_id, source, title, company, COALESCE(company_logo, ''),
	COALESCE(location, ''), COALESCE(job_type, ''), description,
	salary_min, salary_max, COALESCE(salary_currency, ''), skills, remote,
	COALESCE(apply_url, ''), posted_at, scraped_at,
	COALESCE(experience_level, ''), audience_tags, COALESCE(confidence, 0)
`

func (p *Postgres) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	row := p.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (p *Postgres) FindAll(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY scraped_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (p *Postgres) FindByAudience(ctx context.Context, tag string, limit, offset int) ([]domain.Job, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE $1 = ANY(audience_tags) ORDER BY scraped_at DESC LIMIT $2 OFFSET $3`,
		tag, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (p *Postgres) Count(ctx context.Context) (int, error) {
	var count int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	return count, err
}

// Stats returns job counts per experience level.
func (p *Postgres) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT COALESCE(experience_level, ''), COUNT(*) FROM jobs GROUP BY experience_level`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		stats[level] = count
	}
	return stats, rows.Err()
}

func (p *Postgres) DeleteOlderThan(ctx context.Context, days int) (int, error) {
	result, err := p.db.ExecContext(ctx,
		`DELETE FROM jobs WHERE scraped_at < NOW() - ($1 || ' days')::interval`, days)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (domain.Job, error) {
	var job domain.Job
	var salaryMin, salaryMax sql.NullInt64
	var postedAt sql.NullTime
	var skills, tags pq.StringArray

	err := row.Scan(
		&job.ID,
		&job.ExternalID,
		&job.Source,
		&job.Title,
		&job.Company,
		&job.CompanyLogo,
		&job.Location,
		&job.JobType,
		&job.Description,
		&salaryMin,
		&salaryMax,
		&job.SalaryCurrency,
		&skills,
		&job.Remote,
		&job.ApplyURL,
		&postedAt,
		&job.ScrapedAt,
		&job.ExperienceLevel,
		&tags,
		&job.Confidence,
	)
	if err != nil {
		return domain.Job{}, err
	}

	if salaryMin.Valid {
		v := int(salaryMin.Int64)
		job.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := int(salaryMax.Int64)
		job.SalaryMax = &v
	}
	if postedAt.Valid {
		t := postedAt.Time
		job.PostedAt = &t
	}
	job.Skills = skills
	job.AudienceTags = tags

	return job, nil
}

func collectJobs(rows *sql.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
