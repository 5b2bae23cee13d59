package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, string) error {
	return errors.New("connection refused")
}

type recordingLogger struct {
	calculation.NopLogger
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func TestCachedEngine_HitAfterMiss(t *testing.T) {
	ctx := context.Background()
	ce := NewCachedEngine(calculation.NewEngine(), NewMemoryCache(0))

	first := ce.Project(ctx, domain.DefaultInput(), domain.DefaultSlabTable())
	second := ce.Project(ctx, domain.DefaultInput(), domain.DefaultSlabTable())

	hits, misses := ce.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)

	assert.True(t, first.LeaseTotal.Equal(second.LeaseTotal))
	assert.True(t, first.EMI.Equal(second.EMI))
	require.Len(t, second.BuyCumulative, len(first.BuyCumulative))
	for i := range first.BuyCumulative {
		assert.True(t, first.BuyCumulative[i].Equal(second.BuyCumulative[i]))
	}
	require.NotNil(t, second.BreakEvenYear)
	assert.Equal(t, *first.BreakEvenYear, *second.BreakEvenYear)
	require.Len(t, second.BuyTax.Breakdown, 7)
	assert.True(t, second.BuyTax.Breakdown[6].Width.IsUnbounded())
}

func TestCachedEngine_BrokenCacheStillProjects(t *testing.T) {
	logger := &recordingLogger{}
	engine := calculation.NewEngine()
	engine.SetLogger(logger)
	ce := NewCachedEngine(engine, brokenCache{})

	result := ce.Project(context.Background(), domain.DefaultInput(), domain.DefaultSlabTable())
	assert.True(t, result.LeaseTotal.Equal(decimal.NewFromInt(2978235)))
	assert.Len(t, logger.warns, 2)
}

func TestCachedEngine_UndecodableEntry(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryCache(0)
	ce := NewCachedEngine(calculation.NewEngine(), mem)

	key, err := Key(domain.DefaultInput(), domain.DefaultSlabTable(), domain.DefaultPerquisiteRates())
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, key, "{not json"))

	result := ce.Project(ctx, domain.DefaultInput(), domain.DefaultSlabTable())
	assert.Equal(t, 7, result.MaxYears)
	_, misses := ce.Stats()
	assert.Equal(t, int64(1), misses)
}

func TestKey_SensitiveToEveryPart(t *testing.T) {
	base, err := Key(domain.DefaultInput(), domain.DefaultSlabTable(), domain.DefaultPerquisiteRates())
	require.NoError(t, err)
	assert.Len(t, base, 64)

	again, _ := Key(domain.DefaultInput(), domain.DefaultSlabTable(), domain.DefaultPerquisiteRates())
	assert.Equal(t, base, again)

	in := domain.DefaultInput()
	in.LeaseTenureMonths = 36
	changedInput, _ := Key(in, domain.DefaultSlabTable(), domain.DefaultPerquisiteRates())
	assert.NotEqual(t, base, changedInput)

	scaled := domain.DefaultSlabTable().WithScaledRates(decimal.NewFromFloat(1.1))
	changedSlabs, _ := Key(domain.DefaultInput(), scaled, domain.DefaultPerquisiteRates())
	assert.NotEqual(t, base, changedSlabs)

	perq := domain.DefaultPerquisiteRates()
	perq.AboveThreshold = decimal.NewFromInt(3000)
	changedPerq, _ := Key(domain.DefaultInput(), domain.DefaultSlabTable(), perq)
	assert.NotEqual(t, base, changedPerq)
}

func TestCachedEngine_Concurrent(t *testing.T) {
	ce := NewCachedEngine(calculation.NewEngine(), NewMemoryCache(0))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := ce.Project(context.Background(), domain.DefaultInput(), domain.DefaultSlabTable())
			assert.Equal(t, 7, r.MaxYears)
		}()
	}
	wg.Wait()
	hits, misses := ce.Stats()
	assert.Equal(t, int64(16), hits+misses)
}
