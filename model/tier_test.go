package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitKindForTier(t *testing.T) {
	assert.Equal(t, UnitDTU, UnitKindForTier(TierBasic))
	assert.Equal(t, UnitDTU, UnitKindForTier(TierStandard))
	assert.Equal(t, UnitDTU, UnitKindForTier(TierPremium))
	assert.Equal(t, UnitVCore, UnitKindForTier(TierGeneralPurpose))
	assert.Equal(t, UnitVCore, UnitKindForTier(TierBusinessCritical))
	assert.Equal(t, UnitVCore, UnitKindForTier(TierHyperscale))

	// unknown tiers fall back to vCore
	assert.Equal(t, UnitVCore, UnitKindForTier(ServiceTier("Future")))
}
