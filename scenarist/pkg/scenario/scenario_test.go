package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ScenarioTestSuite struct {
	suite.Suite
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}

func (suite *ScenarioTestSuite) TestGlucoseWindow() {
	gvs := GlucoseValues()
	require.Len(suite.T(), gvs, 240)

	assert.Equal(suite.T(), -36000, gvs[0].DateOffset, "first offset should match")
	assert.Equal(suite.T(), 35700, gvs[len(gvs)-1].DateOffset, "last offset should match")
	for i := 1; i < len(gvs); i++ {
		assert.Equal(suite.T(), 300, gvs[i].DateOffset-gvs[i-1].DateOffset, "samples should be 5 minutes apart")
	}
}

func (suite *ScenarioTestSuite) TestGlucoseBounds() {
	for _, gv := range GlucoseValues() {
		assert.GreaterOrEqual(suite.T(), gv.MgdlValue, 70.0)
		assert.LessOrEqual(suite.T(), gv.MgdlValue, 150.0)
	}
}

func (suite *ScenarioTestSuite) TestGlucoseCurve() {
	byOffset := make(map[int]float64)
	for _, gv := range GlucoseValues() {
		byOffset[gv.DateOffset] = gv.MgdlValue
	}

	// Anchor, quarter period and three quarter period of a 3 hour wave.
	assert.Equal(suite.T(), 110.0, byOffset[0])
	assert.InDelta(suite.T(), 150.0, byOffset[2700], 1e-9)
	assert.InDelta(suite.T(), 110.0, byOffset[5400], 1e-9)
	assert.InDelta(suite.T(), 70.0, byOffset[8100], 1e-9)
	assert.InDelta(suite.T(), 70.0, byOffset[-2700], 1e-9)
}

func (suite *ScenarioTestSuite) TestBasalDoses() {
	bds := BasalDoses()
	require.Len(suite.T(), bds, 3)

	rates := []float64{1.2, 0.9, 0.8}
	offsets := []int{-5400, -3600, -1800}
	for i, bd := range bds {
		assert.Equal(suite.T(), rates[i], bd.UnitsPerHourValue, "rate should match")
		assert.Equal(suite.T(), offsets[i], bd.DateOffset, "offset should match")
		assert.Equal(suite.T(), 1800, bd.Duration, "duration should match")
	}
}

func (suite *ScenarioTestSuite) TestBolusDoses() {
	bds := BolusDoses()
	require.Len(suite.T(), bds, 1)

	assert.Equal(suite.T(), 3.0, bds[0].UnitsValue)
	assert.Equal(suite.T(), -900, bds[0].DateOffset)
	assert.Equal(suite.T(), 120, bds[0].DeliveryDuration)
}

func (suite *ScenarioTestSuite) TestCarbEntries() {
	ces := CarbEntries()
	require.Len(suite.T(), ces, 2)

	assert.Equal(suite.T(), 30.0, ces[0].GramValue)
	assert.Equal(suite.T(), -300, ces[0].DateOffset)
	assert.Equal(suite.T(), 10800, ces[0].AbsorptionTime)
	assert.Nil(suite.T(), ces[0].EnteredAtOffset, "first entry is logged when eaten")

	assert.Equal(suite.T(), 15.0, ces[1].GramValue)
	assert.Equal(suite.T(), 900, ces[1].DateOffset)
	assert.Equal(suite.T(), 7200, ces[1].AbsorptionTime)
	require.NotNil(suite.T(), ces[1].EnteredAtOffset)
	assert.Equal(suite.T(), -900, *ces[1].EnteredAtOffset)
}

func (suite *ScenarioTestSuite) TestMake() {
	sc := Make()
	assert.Equal(suite.T(), GlucoseValues(), sc.GlucoseValues)
	assert.Equal(suite.T(), BasalDoses(), sc.BasalDoses)
	assert.Equal(suite.T(), BolusDoses(), sc.BolusDoses)
	assert.Equal(suite.T(), CarbEntries(), sc.CarbEntries)
}
