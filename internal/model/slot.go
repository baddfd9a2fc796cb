package model

// Roster slot codes.
const (
	SlotPG     = "PG"
	SlotSG     = "SG"
	SlotG      = "G"
	SlotSF     = "SF"
	SlotPF     = "PF"
	SlotF      = "F"
	SlotC      = "C"
	SlotUtil   = "UTIL"
	SlotBench  = "BN"
	SlotIL     = "IL"
	SlotILPlus = "IL+"
)

// SlotClass splits the active template into the two allocator phases:
// stable slots are filled by the 30-day signal, flex slots by the 14-day one.
type SlotClass int

const (
	ClassStable SlotClass = iota
	ClassFlex
)

func (c SlotClass) String() string {
	if c == ClassFlex {
		return "flex"
	}
	return "stable"
}

// SlotSpec is one position in the active roster template.
type SlotSpec struct {
	Code  string
	Class SlotClass
}

// ActiveTemplate is the 10-slot active roster in display order. The
// positional singles and the first centre slot are stable; the generic
// guard/forward slots, the second centre, and the utility slots are flex.
var ActiveTemplate = []SlotSpec{
	{SlotPG, ClassStable},
	{SlotSG, ClassStable},
	{SlotG, ClassFlex},
	{SlotSF, ClassStable},
	{SlotPF, ClassStable},
	{SlotF, ClassFlex},
	{SlotC, ClassStable},
	{SlotC, ClassFlex},
	{SlotUtil, ClassFlex},
	{SlotUtil, ClassFlex},
}

// StableFillOrder lists the stable slot codes most-restrictive-first.
var StableFillOrder = []string{SlotC, SlotPG, SlotSG, SlotSF, SlotPF}

// FlexFillOrder lists the flex slot codes most-restrictive-first. The second
// centre slot is part of the flex phase; UTIL appears once per template slot.
var FlexFillOrder = []string{SlotC, SlotG, SlotF, SlotUtil, SlotUtil}

// SlotEligibility maps each roster slot to the player positions it accepts.
var SlotEligibility = map[string][]string{
	SlotPG:    {SlotPG},
	SlotSG:    {SlotSG},
	SlotG:     {SlotPG, SlotSG},
	SlotSF:    {SlotSF},
	SlotPF:    {SlotPF},
	SlotF:     {SlotSF, SlotPF},
	SlotC:     {SlotC},
	SlotUtil:  {SlotPG, SlotSG, SlotSF, SlotPF, SlotC, SlotG, SlotF},
	SlotBench: {SlotPG, SlotSG, SlotSF, SlotPF, SlotC, SlotG, SlotF},
}

// IsILSlot reports whether code is an injury-list slot.
func IsILSlot(code string) bool {
	return code == SlotIL || code == SlotILPlus
}

// EligibleForSlot reports whether a player with the given positions can
// occupy the slot.
func EligibleForSlot(positions []string, slot string) bool {
	accepts := SlotEligibility[slot]
	for _, pos := range positions {
		for _, a := range accepts {
			if pos == a {
				return true
			}
		}
	}
	return false
}
