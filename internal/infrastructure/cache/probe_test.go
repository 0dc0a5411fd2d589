package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/cache"
)

func TestProbe_Check(t *testing.T) {
	mr := miniredis.RunT(t)
	p := cache.NewProbe("redis://" + mr.Addr())

	require.NoError(t, p.Check(context.Background()))
	assert.Equal(t, "redis", p.Name())

	mr.Close()
	assert.Error(t, p.Check(context.Background()))
}

func TestProbe_Check_BadURL(t *testing.T) {
	p := cache.NewProbe("not a url")
	assert.Error(t, p.Check(context.Background()))
}
