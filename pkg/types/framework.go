package types

// NASSS domains rate adoption complexity on a 1-5 scale; lower is better.
type NASSSDomain string

const (
	DomainTechnology       NASSSDomain = "technology"
	DomainValueProposition NASSSDomain = "value_proposition"
	DomainAdopters         NASSSDomain = "adopters"
	DomainOrganization     NASSSDomain = "organization"
	DomainWiderSystem      NASSSDomain = "wider_system"
	DomainEmbedding        NASSSDomain = "embedding"
	DomainAdaptation       NASSSDomain = "adaptation"
)

func NASSSDomains() []NASSSDomain {
	return []NASSSDomain{
		DomainTechnology,
		DomainValueProposition,
		DomainAdopters,
		DomainOrganization,
		DomainWiderSystem,
		DomainEmbedding,
		DomainAdaptation,
	}
}

func (d NASSSDomain) Valid() bool {
	switch d {
	case DomainTechnology, DomainValueProposition, DomainAdopters, DomainOrganization,
		DomainWiderSystem, DomainEmbedding, DomainAdaptation:
		return true
	default:
		return false
	}
}

// RE-AIM dimensions rate implementation readiness on a 0-10 scale; higher is
// better.
type REAIMDimension string

const (
	DimensionReach          REAIMDimension = "reach"
	DimensionEffectiveness  REAIMDimension = "effectiveness"
	DimensionAdoption       REAIMDimension = "adoption"
	DimensionImplementation REAIMDimension = "implementation"
	DimensionMaintenance    REAIMDimension = "maintenance"
)

func REAIMDimensions() []REAIMDimension {
	return []REAIMDimension{
		DimensionReach,
		DimensionEffectiveness,
		DimensionAdoption,
		DimensionImplementation,
		DimensionMaintenance,
	}
}

func (d REAIMDimension) Valid() bool {
	switch d {
	case DimensionReach, DimensionEffectiveness, DimensionAdoption,
		DimensionImplementation, DimensionMaintenance:
		return true
	default:
		return false
	}
}

type ComplexityLevel string

const (
	ComplexitySimple      ComplexityLevel = "Simple"
	ComplexityComplicated ComplexityLevel = "Complicated"
	ComplexityComplex     ComplexityLevel = "Complex"
	ComplexityChaotic     ComplexityLevel = "Chaotic"
)

type ReadinessLevel string

const (
	ReadinessHigh     ReadinessLevel = "High Readiness"
	ReadinessModerate ReadinessLevel = "Moderate Readiness"
	ReadinessLow      ReadinessLevel = "Low Readiness"
	ReadinessNotReady ReadinessLevel = "Not Ready"
)

type ReadinessDecision string

const (
	DecisionReady             ReadinessDecision = "Ready for pilot implementation"
	DecisionWithModifications ReadinessDecision = "Ready with modifications"
	DecisionNeedsDevelopment  ReadinessDecision = "Requires significant development before implementation"
)
