package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	t.Run("BeginSetsLoadingAndClearsError", func(t *testing.T) {
		var l lifecycle
		l.err = "old failure"

		l.begin()
		assert.True(t, l.loading)
		assert.Empty(t, l.err)
	})

	t.Run("SettleRecordsOutcome", func(t *testing.T) {
		var l lifecycle

		seq := l.begin()
		assert.True(t, l.settle(seq, errors.New("boom")))
		assert.False(t, l.loading)
		assert.Equal(t, "boom", l.err)

		seq = l.begin()
		assert.True(t, l.settle(seq, nil))
		assert.Empty(t, l.err)
	})

	t.Run("StaleSettleIsDiscarded", func(t *testing.T) {
		var l lifecycle

		first := l.begin()
		second := l.begin()

		// The first operation finishes after being superseded: its settle
		// must not touch the lifecycle at all.
		assert.False(t, l.settle(first, errors.New("stale failure")))
		assert.True(t, l.loading)
		assert.Empty(t, l.err)

		assert.True(t, l.settle(second, nil))
		assert.False(t, l.loading)
	})
}

// A slow fetch that settles after a newer one must not clobber the newer
// result.
func TestStaleFetchDiscarded(t *testing.T) {
	ctx := context.Background()

	g := new(gatewayMock)
	s, _, _ := newTestStore(g, new(sessionStoreMock))

	started := make(chan struct{})
	release := make(chan struct{})
	slowPage := domain.Page[domain.Product]{
		Count:   1,
		Results: []domain.Product{{ID: 1, Name: "Stale"}},
	}
	fastPage := domain.Page[domain.Product]{
		Count:   1,
		Results: []domain.Product{{ID: 2, Name: "Fresh"}},
	}

	g.On("Products", ctx).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(slowPage, nil).Once()
	g.On("Products", ctx).Return(fastPage, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.FetchProducts(ctx) // slow, superseded
	}()

	// The newer fetch starts only once the slow one is inside the gateway.
	<-started
	require.NoError(t, s.FetchProducts(ctx))

	close(release)
	wg.Wait()

	snap := s.ProductsState()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Fresh", snap.Items[0].Name)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
}
