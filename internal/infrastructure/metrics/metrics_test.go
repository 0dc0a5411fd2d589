package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/event"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/metrics"
)

func TestObserveProbe(t *testing.T) {
	metrics.ObserveProbe("database", true, 3*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HealthProbeUp.WithLabelValues("database")))

	metrics.ObserveProbe("database", false, time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.HealthProbeUp.WithLabelValues("database")))
}

func TestObserveRequest(t *testing.T) {
	c := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/users", "200")
	before := testutil.ToFloat64(c)

	metrics.ObserveRequest("GET", "/api/v1/users", "200", 10*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestObservePublish(t *testing.T) {
	ok := metrics.EventsPublishedTotal.WithLabelValues("user.created", "ok")
	failed := metrics.EventsPublishedTotal.WithLabelValues("user.created", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	metrics.ObservePublish("user.created", nil)
	metrics.ObservePublish("user.created", errors.New("down"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}

func TestInstrumentPublisher(t *testing.T) {
	c := metrics.EventsPublishedTotal.WithLabelValues("post.deleted", "error")
	before := testutil.ToFloat64(c)

	failing := event.PublisherFunc(func(context.Context, event.Event) error { return errors.New("down") })
	err := metrics.InstrumentPublisher(failing).Publish(context.Background(), event.New(event.PostDeleted, "x", nil))

	assert.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
