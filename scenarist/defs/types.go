package defs

import "time"

const ScenarioName = "Sine Curve.json"

const SampleInterval = 5 * time.Minute

// OffsetPoint is anything placed on the scenario timeline, in seconds
// relative to the moment the scenario is loaded.
type OffsetPoint interface {
	GetOffset() int
}

type GlucoseValue struct {
	MgdlValue  float64 `json:"mgdlValue"`
	DateOffset int     `json:"dateOffset"`
}

func (gv GlucoseValue) GetOffset() int {
	return gv.DateOffset
}

type BasalDose struct {
	UnitsPerHourValue float64 `json:"unitsPerHourValue"`
	DateOffset        int     `json:"dateOffset"`
	Duration          int     `json:"duration"`
}

func (bd BasalDose) GetOffset() int {
	return bd.DateOffset
}

type BolusDose struct {
	UnitsValue       float64 `json:"unitsValue"`
	DateOffset       int     `json:"dateOffset"`
	DeliveryDuration int     `json:"deliveryDuration"`
}

func (bd BolusDose) GetOffset() int {
	return bd.DateOffset
}

// CarbEntry is eaten at DateOffset. EnteredAtOffset is set only when the
// entry was logged at a different time than it was eaten.
type CarbEntry struct {
	GramValue       float64 `json:"gramValue"`
	DateOffset      int     `json:"dateOffset"`
	AbsorptionTime  int     `json:"absorptionTime"`
	EnteredAtOffset *int    `json:"enteredAtOffset,omitempty"`
}

func (ce CarbEntry) GetOffset() int {
	return ce.DateOffset
}

type Scenario struct {
	GlucoseValues []GlucoseValue `json:"glucoseValues"`
	BasalDoses    []BasalDose    `json:"basalDoses"`
	BolusDoses    []BolusDose    `json:"bolusDoses"`
	CarbEntries   []CarbEntry    `json:"carbEntries"`
}

func Minutes(count float64) int {
	return int(count * time.Minute.Seconds())
}

func Hours(count float64) int {
	return int(count * time.Hour.Seconds())
}
