package model

// CapacityUnitKind identifies the billing unit a resource is provisioned in
type CapacityUnitKind string

const (
	UnitDTU   CapacityUnitKind = "DTU"
	UnitVCore CapacityUnitKind = "vCore"
)

// ServiceTier is the Azure SQL service tier name as reported by the SKU
type ServiceTier string

const (
	TierBasic            ServiceTier = "Basic"
	TierStandard         ServiceTier = "Standard"
	TierPremium          ServiceTier = "Premium"
	TierGeneralPurpose   ServiceTier = "GeneralPurpose"
	TierBusinessCritical ServiceTier = "BusinessCritical"
	TierHyperscale       ServiceTier = "Hyperscale"
)

// UnitKindForTier maps a service tier to its billing unit. Basic, Standard and
// Premium are DTU-based; every other tier is vCore-based.
func UnitKindForTier(tier ServiceTier) CapacityUnitKind {
	switch tier {
	case TierBasic, TierStandard, TierPremium:
		return UnitDTU
	default:
		return UnitVCore
	}
}
