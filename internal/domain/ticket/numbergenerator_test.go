package ticket

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNumberGenerator_Sequence(t *testing.T) {
	gen := NewDefaultNumberGenerator()
	ctx := context.Background()

	first, err := gen.Generate(ctx)
	require.NoError(t, err)
	second, err := gen.Generate(ctx)
	require.NoError(t, err)

	assert.Regexp(t, `^FS-\d{8}-0001$`, first)
	assert.Regexp(t, `^FS-\d{8}-0002$`, second)
}

func TestDefaultNumberGenerator_Concurrent(t *testing.T) {
	gen := NewDefaultNumberGenerator()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	results := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := gen.Generate(ctx)
			assert.NoError(t, err)
			results <- number
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, n)
	for number := range results {
		assert.False(t, seen[number], "duplicate ticket number %s", number)
		seen[number] = true
	}
	assert.Len(t, seen, n)
}
