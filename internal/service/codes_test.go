package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeSource_UniqueUnderContention(t *testing.T) {
	codes := NewCodeSource()

	const n = 200
	out := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out <- codes.OrderCode()
		}()
	}
	wg.Wait()
	close(out)

	seen := make(map[string]bool, n)
	for code := range out {
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
	assert.Len(t, seen, n)
}

func TestCodeSource_Prefixes(t *testing.T) {
	codes := NewCodeSource()
	order := codes.OrderCode()
	tx := codes.TransactionCode()

	assert.True(t, strings.HasPrefix(order, "#"))
	assert.False(t, strings.HasPrefix(order, "#T"))
	assert.True(t, strings.HasPrefix(tx, "#T"))
	assert.NotEqual(t, order, tx)
}

func TestCodeSource_SameInstantStillDistinct(t *testing.T) {
	codes := NewCodeSource()
	a := codes.OrderCode()
	b := codes.OrderCode()
	assert.NotEqual(t, a, b, "codes issued back-to-back must differ even within one millisecond")
}
