package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnuuid"
	"github.com/gnames/herbdb/pkg/parserpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPool verifies pool creation with default and custom sizes.
func TestNewPool(t *testing.T) {
	for _, jobs := range []int{0, 1, 4} {
		pool := parserpool.NewPool(jobs)
		require.NotNil(t, pool)
		res := pool.Parse("Mentha piperita L.")
		assert.True(t, res.Parsed)
		pool.Close()
	}
}

func TestCanonical(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	tests := []struct {
		msg, name, canonical string
	}{
		{"binomial", "Zingiber officinale", "Zingiber officinale"},
		{"with author", "Zingiber officinale Roscoe", "Zingiber officinale"},
		{"botanical infraspecies", "Matricaria chamomilla var. recutita (L.) Grierson",
			"Matricaria chamomilla recutita"},
	}

	for _, v := range tests {
		can, id := pool.Canonical(v.name)
		assert.Equal(t, v.canonical, can, v.msg)
		assert.True(t, id.Valid, v.msg)
		assert.Equal(t, gnuuid.New(v.canonical), id.UUID, v.msg)
	}

	can, id := pool.Canonical("   ")
	assert.Empty(t, can)
	assert.False(t, id.Valid)
}

// TestConcurrentParse verifies the pool is safe for concurrent use.
func TestConcurrentParse(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	names := []string{
		"Zingiber officinale", "Mentha piperita", "Valeriana officinalis",
		"Echinacea purpurea", "Salvia officinalis", "Thymus vulgaris",
	}

	var wg sync.WaitGroup
	res := make([]string, len(names))
	for i, n := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res[i], _ = pool.Canonical(n)
		}()
	}
	wg.Wait()

	assert.Equal(t, names, res)
}
