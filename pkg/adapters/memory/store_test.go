package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/avezina/kinetic/pkg/adapters/memory"
	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunTimelineStoreContract(t, memory.NewStore())
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "trail", domain.Record{Key: "opacity"}))

	records, err := store.List(ctx, "trail")
	require.NoError(t, err)
	records[0].Key = "mutated"

	again, err := store.List(ctx, "trail")
	require.NoError(t, err)
	assert.Equal(t, "opacity", again[0].Key)
}

func TestMemoryStore_ConcurrentAppend(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Append(ctx, "trail", domain.Record{Key: "opacity"})
		}()
	}
	wg.Wait()

	records, err := store.List(ctx, "trail")
	require.NoError(t, err)
	assert.Len(t, records, 20)
}
