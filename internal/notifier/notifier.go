package notifier

import (
	"context"

	"genzjobs/internal/classifier"
	"genzjobs/internal/domain"
)

type Notification struct {
	Job    domain.Job
	Result classifier.Result
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
