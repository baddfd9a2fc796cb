package model

// LineupEntry is one assigned active or bench spot in the allocator output.
type LineupEntry struct {
	Name      string
	Slot      string
	Class     SlotClass
	Positions []string

	Rank30 Rank
	Rank14 Rank
	Score  Score

	HasGameToday       bool
	GamesRemainingWeek int
	Status             Status
	Untouchable        bool

	FlagLowRank bool
	FlagInjured bool
}

// ILEntry describes a player parked on an injury-list slot, passed through
// the allocator unchanged.
type ILEntry struct {
	Name   string
	Slot   string
	Rank30 Rank
	Rank14 Rank
	Status Status
}

// Lineup is the allocator output for one run.
type Lineup struct {
	Active []LineupEntry
	Bench  []LineupEntry
	OnIL   []ILEntry
}

// BenchShape is the bench composition report against the one-of-each target.
type BenchShape struct {
	Counts    map[string]int
	TargetMet bool
	Summary   string
}

// ILMove recommends parking an injured player on an injury-list slot.
type ILMove struct {
	Name        string
	Status      Status
	CurrentSlot string
	Action      string
}

// DropCandidate is the bench player best cut to make room for a returning one.
type DropCandidate struct {
	Name      string
	Positions []string
	Score     Score
	Rank14    Rank
	Reason    string
}

// ILActivation recommends returning a recovered player from an IL slot.
type ILActivation struct {
	Name        string
	CurrentSlot string
	Positions   []string
	Score       Score
	Action      string
	Drop        *DropCandidate
}

// ILFlags is the IL advisor output. Recommendations only; no roster moves.
type ILFlags struct {
	MoveToIL       []ILMove
	ActivateFromIL []ILActivation
}

// HasAlerts reports whether any IL action is pending.
func (f *ILFlags) HasAlerts() bool {
	return len(f.MoveToIL) > 0 || len(f.ActivateFromIL) > 0
}

// Opportunity is one waiver-wire upgrade: add the free agent, drop the
// incumbent. Improvement is in score units when both sides are scored,
// otherwise in rank positions.
type Opportunity struct {
	Name         string
	Positions    []string
	Rank         Rank
	MPG          float64
	PercentOwned float64
	Score        Score

	GamesRemaining int
	WeeklyValue    Score

	ReplaceName string
	ReplaceRank Rank
	ReplaceSlot string
	PositionFit string

	Improvement        float64
	UntouchableReplace bool
}
