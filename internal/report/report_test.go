package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amplifyai/amplify-backend/internal/brands"
	"github.com/amplifyai/amplify-backend/internal/scoring"
)

func mathResult(total int) scoring.MathScoreResult {
	return scoring.MathScoreResult{Total: total, Max: scoring.MaxTotal}
}

func TestAggregateFinalSumsAndCaps(t *testing.T) {
	out := AggregateFinal(mathResult(50), 35, nil, nil)
	assert.Equal(t, 85, out.Score)
	assert.False(t, out.FloorApplied)

	out = AggregateFinal(mathResult(60), 45, nil, nil)
	assert.Equal(t, 100, out.Score)
}

func TestAggregateFinalBrandFloor(t *testing.T) {
	brand := &brands.Record{Domain: "nike.com", MinScore: 88, Tier: brands.TierEnterprise}

	out := AggregateFinal(mathResult(10), 5, nil, brand)

	assert.Equal(t, 88, out.Score)
	assert.True(t, out.FloorApplied)
	assert.Equal(t, 55, out.Math.Total)
	assert.Equal(t, 15, out.Math.Breakdown.Technical.Score)
	assert.Equal(t, 10, out.Math.Breakdown.Content.Score)
	assert.Equal(t, 15, out.Math.Breakdown.Authority.Score)
	assert.Equal(t, 10, out.Math.Breakdown.AIDiscoverability.Score)
	assert.Equal(t, 5, out.Math.Breakdown.Answerability.Score)
	assert.Equal(t, TitanDefaultFixes, out.FixList)
}

func TestAggregateFinalFloorIdempotent(t *testing.T) {
	brand := &brands.Record{Domain: "nike.com", MinScore: 88}
	for _, mathTotal := range []int{0, 20, 40, 60} {
		for _, ai := range []int{0, 10, 20, 40} {
			out := AggregateFinal(mathResult(mathTotal), ai, nil, brand)
			assert.GreaterOrEqual(t, out.Score, 88, "math=%d ai=%d", mathTotal, ai)
		}
	}
}

func TestAggregateFinalNoFloorAboveMinScore(t *testing.T) {
	brand := &brands.Record{Domain: "nike.com", MinScore: 88}

	out := AggregateFinal(mathResult(55), 38, nil, brand)

	assert.Equal(t, 93, out.Score)
	assert.False(t, out.FloorApplied)
	assert.Equal(t, 55, out.Math.Total)
}

func TestAggregateFinalKeepsAIFixListOnFloor(t *testing.T) {
	brand := &brands.Record{Domain: "nike.com", MinScore: 88}
	aiFixes := []FixItem{{Title: "Add FAQ schema", Priority: PriorityHigh}}

	out := AggregateFinal(mathResult(10), 5, aiFixes, brand)

	assert.Equal(t, aiFixes, out.FixList)
}

func TestFlattenBreakdown(t *testing.T) {
	math := SyntheticMathResult()
	b := FlattenBreakdown(math, 32)

	assert.Equal(t, Breakdown{
		Technical:         15,
		Content:           10,
		Authority:         15,
		AIDiscoverability: 10,
		Answerability:     5,
		AIJudgment:        32,
	}, b)
}

func TestTitanDefaultFixesShape(t *testing.T) {
	assert.Len(t, TitanDefaultFixes, 3)
	for _, f := range TitanDefaultFixes {
		assert.NotEmpty(t, f.Title)
		assert.NotEmpty(t, f.Description)
		assert.NotEmpty(t, f.ImpactMetric)
		assert.Equal(t, "pending", f.Status)
	}
}
