package recommender

import (
	"testing"

	"github.com/kgnielsen777/AzureFinopsTools/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestRecommend_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		tier         model.ServiceTier
		capacity     int32
		peak         *float64
		cost         float64
		unit         model.CapacityUnitKind
		wantCapacity int32
		wantAction   model.Action
		wantEstimate float64
		wantSavings  float64
	}{
		{
			name:         "standard scale down to half",
			tier:         model.TierStandard,
			capacity:     100,
			peak:         ptr(40),
			cost:         200,
			unit:         model.UnitDTU,
			wantCapacity: 50,
			wantAction:   model.ActionScaleDown,
			wantEstimate: 100.00,
			wantSavings:  100.00,
		},
		{
			name:         "idle standard at minimum stays put",
			tier:         model.TierStandard,
			capacity:     10,
			peak:         ptr(0),
			cost:         82,
			unit:         model.UnitDTU,
			wantCapacity: 10,
			wantAction:   model.ActionUnused,
			wantEstimate: 82.00,
			wantSavings:  0,
		},
		{
			name:         "no metrics holds current capacity",
			tier:         model.TierBasic,
			capacity:     5,
			peak:         nil,
			cost:         27,
			unit:         model.UnitDTU,
			wantCapacity: 5,
			wantAction:   model.ActionNoMetrics,
			wantEstimate: 27.00,
			wantSavings:  0,
		},
		{
			name:         "idle premium scales down to tier minimum",
			tier:         model.TierPremium,
			capacity:     500,
			peak:         ptr(0),
			cost:         800,
			unit:         model.UnitDTU,
			wantCapacity: 125,
			wantAction:   model.ActionScaleDownUnused,
			wantEstimate: 200.00,
			wantSavings:  600.00,
		},
		{
			name:         "over target proposes scale up",
			tier:         model.TierPremium,
			capacity:     125,
			peak:         ptr(95),
			cost:         400,
			unit:         model.UnitDTU,
			wantCapacity: 250,
			wantAction:   model.ActionScaleUp,
			wantEstimate: 800.00,
			wantSavings:  -400.00,
		},
		{
			name:         "under target never scales up",
			tier:         model.TierStandard,
			capacity:     10,
			peak:         ptr(15),
			cost:         82,
			unit:         model.UnitDTU,
			wantCapacity: 10,
			wantAction:   model.ActionNoChange,
			wantEstimate: 82.00,
			wantSavings:  0,
		},
		{
			name:         "need above tier ceiling clamps to maximum",
			tier:         model.TierStandard,
			capacity:     3000,
			peak:         ptr(99),
			cost:         1000,
			unit:         model.UnitDTU,
			wantCapacity: 3000,
			wantAction:   model.ActionNoChange,
			wantEstimate: 1000.00,
			wantSavings:  0,
		},
		{
			name:         "vcore scale down snaps to legal step",
			tier:         model.TierGeneralPurpose,
			capacity:     16,
			peak:         ptr(30),
			cost:         640,
			unit:         model.UnitVCore,
			wantCapacity: 6,
			wantAction:   model.ActionScaleDown,
			wantEstimate: 240.00,
			wantSavings:  400.00,
		},
		{
			name:         "zero capacity guard keeps current cost",
			tier:         model.TierStandard,
			capacity:     0,
			peak:         ptr(0),
			cost:         50,
			unit:         model.UnitDTU,
			wantCapacity: 10,
			wantAction:   model.ActionUnused,
			wantEstimate: 50.00,
			wantSavings:  0,
		},
	}

	s := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Recommend(tt.tier, tt.capacity, tt.peak, tt.cost, tt.unit)
			assert.Equal(t, tt.wantCapacity, got.RecommendedCapacity)
			assert.Equal(t, tt.wantAction, got.Action)
			assert.InDelta(t, tt.wantEstimate, got.EstimatedCost, 0.001)
			assert.InDelta(t, tt.wantSavings, got.PotentialSavings, 0.001)
		})
	}
}

func TestRecommend_TierChange(t *testing.T) {
	s := NewService()

	t.Run("standard at minimum and idle-ish suggests basic", func(t *testing.T) {
		got := s.Recommend(model.TierStandard, 10, ptr(15), 82, model.UnitDTU)
		require.Equal(t, model.ActionNoChange, got.Action)
		assert.Equal(t, "Consider Basic (5 DTU)", got.TierChange)
		assert.InDelta(t, 53.30, got.TierChangeSavings, 0.001)
	})

	t.Run("premium at minimum suggests standard", func(t *testing.T) {
		got := s.Recommend(model.TierPremium, 125, ptr(10), 400, model.UnitDTU)
		require.Equal(t, model.ActionNoChange, got.Action)
		assert.Equal(t, "Consider Standard (100 DTU)", got.TierChange)
		assert.InDelta(t, 320.00, got.TierChangeSavings, 0.001)
	})

	t.Run("vcore at minimum needs material cost", func(t *testing.T) {
		cheap := s.Recommend(model.TierGeneralPurpose, 1, ptr(10), 50, model.UnitVCore)
		assert.Empty(t, cheap.TierChange)

		expensive := s.Recommend(model.TierGeneralPurpose, 1, ptr(10), 300, model.UnitVCore)
		assert.Equal(t, "Consider Standard DTU tier", expensive.TierChange)
		assert.InDelta(t, 210.00, expensive.TierChangeSavings, 0.001)
	})

	t.Run("basic has no cheaper tier", func(t *testing.T) {
		got := s.Recommend(model.TierBasic, 5, ptr(10), 27, model.UnitDTU)
		assert.Empty(t, got.TierChange)
		assert.Zero(t, got.TierChangeSavings)
	})

	t.Run("not at tier minimum gets no suggestion", func(t *testing.T) {
		got := s.Recommend(model.TierPremium, 250, ptr(79), 800, model.UnitDTU)
		assert.Empty(t, got.TierChange)
	})
}

// Every recommendation must come from the tier's legal capacity sequence and
// never sit below the tier minimum, whatever the inputs.
func TestRecommend_AlwaysLegalCapacity(t *testing.T) {
	s := NewService()

	cases := []struct {
		tier model.ServiceTier
		unit model.CapacityUnitKind
		seq  []int32
	}{
		{model.TierBasic, model.UnitDTU, dtuCapacities[model.TierBasic]},
		{model.TierStandard, model.UnitDTU, dtuCapacities[model.TierStandard]},
		{model.TierPremium, model.UnitDTU, dtuCapacities[model.TierPremium]},
		{model.TierGeneralPurpose, model.UnitVCore, vCoreCapacities},
		{model.TierBusinessCritical, model.UnitVCore, vCoreCapacities},
	}

	peaks := []*float64{nil, ptr(0), ptr(1), ptr(19.9), ptr(50), ptr(79.9), ptr(80), ptr(99), ptr(100)}

	for _, tc := range cases {
		legal := make(map[int32]bool, len(tc.seq))
		for _, capacity := range tc.seq {
			legal[capacity] = true
		}

		for _, current := range tc.seq {
			for _, peak := range peaks {
				got := s.Recommend(tc.tier, current, peak, 123.45, tc.unit)
				assert.True(t, legal[got.RecommendedCapacity],
					"tier %s capacity %d peak %v produced illegal capacity %d", tc.tier, current, peak, got.RecommendedCapacity)
				assert.GreaterOrEqual(t, got.RecommendedCapacity, tc.seq[0])
			}
		}
	}
}

func TestRecommend_NoScaleUpUnderTarget(t *testing.T) {
	s := NewService()

	for peak := 1.0; peak < 80.0; peak += 7.3 {
		for _, capacity := range dtuCapacities[model.TierStandard] {
			got := s.Recommend(model.TierStandard, capacity, ptr(peak), 100, model.UnitDTU)
			assert.NotEqual(t, model.ActionScaleUp, got.Action,
				"peak %.1f capacity %d must not scale up", peak, capacity)
		}
	}
}

func TestRecommend_ZeroPeakAlwaysMinimum(t *testing.T) {
	s := NewService()

	for tier, seq := range dtuCapacities {
		for _, capacity := range seq {
			got := s.Recommend(tier, capacity, ptr(0), 100, model.UnitDTU)
			assert.Equal(t, seq[0], got.RecommendedCapacity)
			assert.Contains(t, []model.Action{model.ActionUnused, model.ActionScaleDownUnused}, got.Action)
		}
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	s := NewService()

	first := s.Recommend(model.TierStandard, 200, ptr(33.3), 456.78, model.UnitDTU)
	second := s.Recommend(model.TierStandard, 200, ptr(33.3), 456.78, model.UnitDTU)
	assert.Equal(t, first, second)
}
