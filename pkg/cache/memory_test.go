package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/jairomfjr/patrimonio-sub001/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func novoCacheDeTeste(t *testing.T) *cache.MemoryCache {
	return cache.NewMemoryCache(time.Minute, 2*time.Minute, nil, zaptest.NewLogger(t))
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := novoCacheDeTeste(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "chave", "valor", time.Minute))

	var valor string
	found, err := c.Get(ctx, "chave", &valor)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "valor", valor)

	found, err = c.Get(ctx, "inexistente", &valor)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheEstrutura(t *testing.T) {
	c := novoCacheDeTeste(t)
	ctx := context.Background()

	type configuracao struct {
		Chave string `json:"chave"`
		Valor string `json:"valor"`
	}

	require.NoError(t, c.Set(ctx, "cfg", configuracao{Chave: "a", Valor: "1"}, time.Minute))

	var lida configuracao
	found, err := c.Get(ctx, "cfg", &lida)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "a", lida.Chave)
	assert.Equal(t, "1", lida.Valor)
}

func TestMemoryCacheExpiracao(t *testing.T) {
	c := novoCacheDeTeste(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "efemera", "valor", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var valor string
	found, err := c.Get(ctx, "efemera", &valor)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheDeleteEClear(t *testing.T) {
	c := novoCacheDeTeste(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))

	require.NoError(t, c.Delete(ctx, "a"))
	var valor int
	found, _ := c.Get(ctx, "a", &valor)
	assert.False(t, found)

	require.NoError(t, c.Clear(ctx))
	found, _ = c.Get(ctx, "b", &valor)
	assert.False(t, found)

	assert.NoError(t, c.Ping(ctx))
}
