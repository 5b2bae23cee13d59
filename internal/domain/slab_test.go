package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func row(limit int64, rate float64) SlabRow {
	return SlabRow{Limit: Bounded(decimal.NewFromInt(limit)), Rate: decimal.NewFromFloat(rate)}
}

func topRow(rate float64) SlabRow {
	return SlabRow{Limit: Unbounded(), Rate: decimal.NewFromFloat(rate)}
}

func TestParseSlabTable(t *testing.T) {
	tests := []struct {
		name    string
		rows    []SlabRow
		wantErr error
	}{
		{"default table", DefaultSlabTable(), nil},
		{"single unbounded row", []SlabRow{topRow(0.1)}, nil},
		{"empty", nil, ErrEmptySlabTable},
		{"negative limit", []SlabRow{row(-1, 0.1), topRow(0.2)}, ErrNegativeSlabLimit},
		{"rate above one", []SlabRow{row(100, 1.5), topRow(0.2)}, ErrSlabRateOutOfRange},
		{"negative rate", []SlabRow{row(100, -0.1), topRow(0.2)}, ErrSlabRateOutOfRange},
		{"unbounded in the middle", []SlabRow{topRow(0.1), row(100, 0.2)}, ErrUnboundedNotLast},
		{"capped table", []SlabRow{row(100, 0.1), row(100, 0.2)}, ErrMissingUnboundedSlab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseSlabTable(tt.rows)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Len(t, table, len(tt.rows))
		})
	}
}

func TestParseSlabTable_AcceptsNonProgressiveRates(t *testing.T) {
	table, err := ParseSlabTable([]SlabRow{row(100, 0.3), topRow(0.1)})
	require.NoError(t, err)
	assert.False(t, table.IsProgressive())
	assert.True(t, DefaultSlabTable().IsProgressive())
}

func TestSlabTable_CapacityAndEdges(t *testing.T) {
	_, capped := DefaultSlabTable().Capacity()
	assert.False(t, capped)

	capacity, capped := SlabTable{row(100, 0), row(250, 0.1)}.Capacity()
	assert.True(t, capped)
	assert.True(t, capacity.Equal(decimal.NewFromInt(350)))

	edges := DefaultSlabTable().LowerEdges()
	require.Len(t, edges, 7)
	assert.True(t, edges[0].IsZero())
	assert.True(t, edges[6].Equal(decimal.NewFromInt(2400000)))
}

func TestSlabTable_CloneIsIndependent(t *testing.T) {
	original := DefaultSlabTable()
	scaled := original.WithScaledRates(decimal.NewFromInt(2))
	assert.True(t, original[1].Rate.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, scaled[1].Rate.Equal(decimal.NewFromFloat(0.10)))
	assert.Nil(t, SlabTable(nil).Clone())
}

func TestBound_JSON(t *testing.T) {
	data, err := json.Marshal(DefaultSlabTable()[5:])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"limit":400000,"rate":"0.25"},{"limit":"unbounded","rate":"0.3"}]`, string(data))

	for _, raw := range []string{`"unbounded"`, `null`, `"Infinity"`, `"none"`} {
		var b Bound
		require.NoError(t, json.Unmarshal([]byte(raw), &b), raw)
		assert.True(t, b.IsUnbounded(), raw)
	}

	var b Bound
	require.NoError(t, json.Unmarshal([]byte(`"150000"`), &b))
	limit, ok := b.Limit()
	assert.True(t, ok)
	assert.True(t, limit.Equal(decimal.NewFromInt(150000)))

	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &b))
}

func TestBound_YAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(DefaultSlabTable())
	require.NoError(t, err)
	assert.Contains(t, string(data), "limit: unbounded")

	var back []SlabRow
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Len(t, back, 7)
	for i, r := range DefaultSlabTable() {
		assert.True(t, r.Limit.Equal(back[i].Limit), "row %d", i)
		assert.True(t, r.Rate.Equal(back[i].Rate), "row %d", i)
	}

	var empty struct {
		Limit Bound `yaml:"limit"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("limit: none\n"), &empty))
	assert.True(t, empty.Limit.IsUnbounded())
}

func TestBound_ZeroValue(t *testing.T) {
	var b Bound
	assert.False(t, b.IsUnbounded())
	assert.Equal(t, "0", b.String())
	assert.Equal(t, "unbounded", Unbounded().String())
}
