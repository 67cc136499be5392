package scraper

import (
	"context"

	"genzjobs/internal/domain"
)

type Scraper interface {
	Name() domain.Source
	Fetch(ctx context.Context) ([]domain.Job, error)
}
