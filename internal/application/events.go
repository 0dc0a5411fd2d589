package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/event"
)

// Searcher answers full-text queries over indexed users and posts.
type Searcher interface {
	SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error)
	SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error)
}

// emit publishes ev when a publisher is configured. Delivery failures are
// logged and never fail the write that produced the event.
func emit(ctx context.Context, pub event.Publisher, logger *logrus.Logger, ev event.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, ev); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{"type": ev.Type, "entity_id": ev.EntityID}).Warn("publish event failed")
	}
}
