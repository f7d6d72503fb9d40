package clients

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClient_PingAndClose(t *testing.T) {
	mr := miniredis.RunT(t)

	c := NewRedisClient(&cfg.RedisCfg{Addr: mr.Addr()})
	require.NoError(t, c.Ping(context.Background()))
	require.NoError(t, c.Close(context.Background()))

	assert.Error(t, c.Ping(context.Background()))
}

func TestRedisClient_PingUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	c := NewRedisClient(&cfg.RedisCfg{Addr: addr})
	defer c.Close(context.Background())

	assert.Error(t, c.Ping(context.Background()))
}
