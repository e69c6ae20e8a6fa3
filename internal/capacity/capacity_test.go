package capacity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_RemainderGoesToFirstPartition(t *testing.T) {
	// usage 101 at 100% utilization gives a total capacity of 101.
	table, err := Derive([]int{101}, []float64{0.5, 0.3, 0.2}, []float64{1.0})
	require.NoError(t, err)

	if diff := cmp.Diff(Table{{51, 30, 20}}, table); diff != "" {
		t.Errorf("Derive() mismatch (-want +got):\n%s", diff)
	}
}

func TestDerive_ConservesTotalCapacity(t *testing.T) {
	usage := []int{537, 91, 1002, 7}
	ratios := []float64{0.13, 0.29, 0.31, 0.27}
	rates := []float64{0.8, 0.33, 0.95, 0.5}

	table, err := Derive(usage, ratios, rates)
	require.NoError(t, err)
	require.Equal(t, 4, table.Dims())
	require.Equal(t, 4, table.Partitions())

	for r := range usage {
		assert.Equal(t, TotalCapacity(usage[r], rates[r]), table.Sum(r), "resource %d", r)
		for p := 1; p < len(ratios); p++ {
			assert.Equal(t, int(float64(TotalCapacity(usage[r], rates[r]))*ratios[p]), table[r][p])
		}
	}
}

func TestDerive_TotalCapacityIsFloored(t *testing.T) {
	table, err := Derive([]int{10, 7}, []float64{1.0}, []float64{0.3, 0.5})
	require.NoError(t, err)
	// 10/0.3 = 33.33, 7/0.5 = 14
	assert.Equal(t, Table{{33}, {14}}, table)
}

func TestDerive_ConfigurationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		usage   []int
		ratios  []float64
		rates   []float64
		wantErr error
	}{
		{"ratios below one", []int{10}, []float64{0.5, 0.4}, []float64{1}, ErrRatioSum},
		{"ratios above one", []int{10}, []float64{0.6, 0.5}, []float64{1}, ErrRatioSum},
		{"no ratios", []int{10}, nil, []float64{1}, ErrRatioSum},
		{"negative ratio", []int{10}, []float64{1.5, -0.5}, []float64{1}, ErrRatioSum},
		{"too few rates", []int{10, 4}, []float64{1}, []float64{1}, ErrRateCount},
		{"too many rates", []int{10}, []float64{1}, []float64{1, 1}, ErrRateCount},
		{"zero rate", []int{10, 4}, []float64{1}, []float64{0.5, 0}, ErrZeroRate},
		{"negative rate", []int{10}, []float64{1}, []float64{-0.5}, ErrZeroRate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Derive(tc.usage, tc.ratios, tc.rates)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, table)
		})
	}
}

func TestDerive_RatioToleranceAccepted(t *testing.T) {
	_, err := Derive([]int{10}, []float64{0.3333333, 0.3333333, 0.3333334}, []float64{1})
	require.NoError(t, err)
}

func TestValidate(t *testing.T) {
	table := Table{{5, 5}, {4, 3}}
	before := table.Clone()

	v, err := Validate([]int{12, 7}, table)
	require.NoError(t, err)

	assert.False(t, v.OK)
	want := []Check{
		{Resource: 0, Usage: 12, Capacity: 10, Satisfied: false},
		{Resource: 1, Usage: 7, Capacity: 7, Satisfied: true},
	}
	if diff := cmp.Diff(want, v.Checks); diff != "" {
		t.Errorf("Validate() checks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want[:1], v.Violations())
	assert.Equal(t, before, table, "table must not be modified")
}

func TestValidate_AllSatisfied(t *testing.T) {
	v, err := Validate([]int{3, 3}, Table{{2, 2}, {3, 0}})
	require.NoError(t, err)
	assert.True(t, v.OK)
	assert.Empty(t, v.Violations())
}

func TestValidate_ShapeErrors(t *testing.T) {
	_, err := Validate([]int{1, 2}, Table{{1, 1}})
	require.ErrorIs(t, err, ErrTableShape)

	_, err = Validate([]int{1, 2}, Table{{1, 1}, {1}})
	require.ErrorIs(t, err, ErrTableShape)

	_, err = Validate([]int{1}, Table{{}})
	require.ErrorIs(t, err, ErrTableShape)
}

func TestUnflatten(t *testing.T) {
	table, err := Unflatten([]int{5, 5, 4, 3}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, Table{{5, 5}, {4, 3}}, table)

	table, err = Unflatten([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Table{{1, 2, 3}, {4, 5, 6}}, table)

	_, err = Unflatten([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, ErrCapacityCount)

	_, err = Unflatten(nil, 0, 2)
	require.ErrorIs(t, err, ErrTableShape)
}

func TestStrategies(t *testing.T) {
	t.Run("derive", func(t *testing.T) {
		s := DeriveStrategy{Ratios: []float64{0.5, 0.5}, Rates: []float64{0.5, 1}}
		require.NoError(t, s.CheckConfig(2))
		require.ErrorIs(t, s.CheckConfig(3), ErrRateCount)

		plan, err := s.Plan([]int{10, 9})
		require.NoError(t, err)
		assert.Equal(t, ModeDerive, plan.Mode)
		assert.Equal(t, Table{{10, 10}, {5, 4}}, plan.Table)
		assert.Equal(t, []float64{0.5, 1}, plan.Rates)
		assert.Nil(t, plan.Validation)
	})

	t.Run("fixed", func(t *testing.T) {
		s := FixedStrategy{Table: Table{{5, 5}, {4, 3}}}
		require.NoError(t, s.CheckConfig(2))
		require.ErrorIs(t, s.CheckConfig(3), ErrCapacityCount)

		plan, err := s.Plan([]int{12, 7})
		require.NoError(t, err)
		assert.Equal(t, ModeValidate, plan.Mode)
		assert.Equal(t, s.Table, plan.Table)
		require.NotNil(t, plan.Validation)
		assert.False(t, plan.Validation.OK)
	})
}
