package engine

import (
	"fmt"
	"strings"

	"HoopsSentinel/internal/model"
)

// benchCategories is the reporting order; targetBenchShape is the ideal
// composition: one guard, one forward, one centre.
var (
	benchCategories  = []string{model.SlotG, model.SlotF, model.SlotC}
	targetBenchShape = map[string]int{model.SlotG: 1, model.SlotF: 1, model.SlotC: 1}
)

// benchCategory classifies a player into G, F, or C by eligible positions.
// Centre eligibility takes priority, then forward types, then guard types.
// Returns "" when no position matches any category.
func benchCategory(positions []string) string {
	has := func(codes ...string) bool {
		for _, pos := range positions {
			for _, c := range codes {
				if pos == c {
					return true
				}
			}
		}
		return false
	}
	switch {
	case has(model.SlotC):
		return model.SlotC
	case has(model.SlotSF, model.SlotPF, model.SlotF):
		return model.SlotF
	case has(model.SlotPG, model.SlotSG, model.SlotG):
		return model.SlotG
	}
	return ""
}

// CheckBenchShape compares the bench composition against the one-of-each
// target and returns counts, whether the target is met, and a per-category
// OK/NEED summary.
func (e *Engine) CheckBenchShape(bench []model.LineupEntry) model.BenchShape {
	counts := map[string]int{model.SlotG: 0, model.SlotF: 0, model.SlotC: 0}
	for _, p := range bench {
		if cat := benchCategory(p.Positions); cat != "" {
			counts[cat]++
		}
	}

	met := true
	parts := make([]string, 0, len(benchCategories))
	for _, cat := range benchCategories {
		have, want := counts[cat], targetBenchShape[cat]
		indicator := "OK"
		if have < want {
			indicator = "NEED"
			met = false
		}
		parts = append(parts, fmt.Sprintf("%s: %d/%d (%s)", cat, have, want, indicator))
	}

	return model.BenchShape{
		Counts:    counts,
		TargetMet: met,
		Summary:   strings.Join(parts, " | "),
	}
}
