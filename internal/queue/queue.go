package queue

import (
	"context"

	"genzjobs/internal/domain"
)

type Publisher interface {
	Publish(ctx context.Context, job domain.Job) error
	Close() error
}

type Consumer interface {
	Consume(ctx context.Context, handler func(job domain.Job) error) error
	Close() error
}
