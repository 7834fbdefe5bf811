package elloapi

import (
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
	"time"
)

func TestDerivations_Concurrent(t *testing.T) {
	catalog := Catalog()
	expect := make([]Request, len(catalog))
	at := time.Date(2014, time.June, 2, 0, 0, 0, 0, time.UTC)
	for i, e := range catalog {
		expect[i] = BuildRequest(e, StaticToken("abc"), FixedClock(at), "en")
	}

	var wg sync.WaitGroup
	results := make([][]Request, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			got := make([]Request, len(catalog))
			for i, e := range catalog {
				got[i] = BuildRequest(e, StaticToken("abc"), FixedClock(at), "en")
				_ = SampleData(e)
				_ = CurrentMode()
			}
			results[g] = got
		}(g)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, expect, got)
	}
}

func TestDerivations_Parallel(t *testing.T) {
	for _, e := range Catalog() {
		t.Run(Describe(e), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, PathOf(e), PathOf(e))
			assert.Equal(t, ParametersOf(e), ParametersOf(e))
			assert.Equal(t, KindOf(e), KindOf(e))
			assert.Equal(t, Headers(e, NoToken, nil, "en"), Headers(e, NoToken, nil, "en"))
		})
	}
}
