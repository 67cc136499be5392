package storage

import (
	"context"

	"genzjobs/internal/domain"
)

type JobRepository interface {
	Save(ctx context.Context, job domain.Job) (inserted bool, err error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	FindAll(ctx context.Context, limit, offset int) ([]domain.Job, error)
	FindByAudience(ctx context.Context, tag string, limit, offset int) ([]domain.Job, error)
	Count(ctx context.Context) (int, error)
	Stats(ctx context.Context) (map[string]int, error)
	DeleteOlderThan(ctx context.Context, days int) (int, error)
}
