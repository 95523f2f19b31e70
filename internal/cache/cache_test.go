package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/internal/engine"
)

func cacheScenario(name string, rate float64) config.ScenarioConfig {
	return config.ScenarioConfig{
		Name:         name,
		LoanType:     "conventional",
		Transaction:  "purchase",
		HomePrice:    400000,
		LoanAmount:   320000,
		DownPayment:  80000,
		InterestRate: rate,
		TermYears:    30,
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint(cacheScenario("s", 6.0))
	b := Fingerprint(cacheScenario("s", 6.0))
	assert.Equal(t, a, b, "identical scenarios must share a fingerprint")
	assert.NotEmpty(t, a)
}

func TestFingerprintSensitiveToInputs(t *testing.T) {
	a := Fingerprint(cacheScenario("s", 6.0))
	b := Fingerprint(cacheScenario("s", 6.125))
	assert.NotEqual(t, a, b, "different rates must produce different fingerprints")
}

func TestResultCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	rc := NewResultCache(NewMemoryCache(), nil)
	sc := cacheScenario("cached", 6.0)

	_, ok := rc.Lookup(ctx, sc)
	assert.False(t, ok, "empty cache must miss")

	stored := engine.Result{
		ScenarioName: "cached",
		MonthlyPI:    1918.56,
		TotalMonthly: 2518.56,
		APR:          6.18,
		ItemizedFees: map[string]float64{"Origination Fee": 1500},
	}
	rc.Store(ctx, sc, stored)

	loaded, ok := rc.Lookup(ctx, sc)
	require.True(t, ok, "expected cache hit after store")
	assert.Equal(t, stored, loaded, "cached result must round-trip bit-identical")
}

func TestResultCacheMissOnChangedScenario(t *testing.T) {
	ctx := context.Background()
	rc := NewResultCache(NewMemoryCache(), nil)

	rc.Store(ctx, cacheScenario("s", 6.0), engine.Result{ScenarioName: "s"})

	_, ok := rc.Lookup(ctx, cacheScenario("s", 6.5))
	assert.False(t, ok, "changed scenario must miss")
}

func TestResultCacheDiscardsCorruptEntries(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryCache()
	rc := NewResultCache(backend, nil)
	sc := cacheScenario("corrupt", 6.0)

	require.NoError(t, backend.Set(ctx, Fingerprint(sc), "{not json"))

	_, ok := rc.Lookup(ctx, sc)
	assert.False(t, ok, "corrupt entries must read as misses")
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryCache()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = backend.Set(ctx, "key", "value")
		}
	}()
	for i := 0; i < 100; i++ {
		backend.Get(ctx, "key")
	}
	<-done

	assert.Equal(t, 1, backend.Len())
}
