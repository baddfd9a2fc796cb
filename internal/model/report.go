package model

import "time"

// Report bundles everything the daily email needs.
type Report struct {
	Date                time.Time
	IncludeUntouchables bool
	Untouchables        map[string]float64

	Lineup     Lineup
	BenchShape BenchShape
	ILFlags    ILFlags

	ActiveUpgrades []Opportunity
	BenchUpgrades  []Opportunity

	Alerts []string
}
