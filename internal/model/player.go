package model

// Status is the platform availability designation for a player.
type Status string

const (
	StatusHealthy      Status = "healthy"
	StatusQuestionable Status = "Q"
	StatusDoubtful     Status = "D"
	StatusOut          Status = "O"
	StatusInjured      Status = "INJ"
	StatusSuspended    Status = "SUSP"
	StatusUnavailable  Status = "NA"
)

// Healthy reports whether the player carries no designation at all.
func (s Status) Healthy() bool {
	return s == StatusHealthy || s == ""
}

// HardOut reports whether the designation rules the player out for the day.
func (s Status) HardOut() bool {
	return s == StatusOut || s == StatusInjured || s == StatusUnavailable
}

// RequiresIL reports whether the designation justifies an injury-list slot.
func (s Status) RequiresIL() bool {
	return s == StatusOut || s == StatusInjured
}

// GameImpacting reports whether the designation puts today's minutes in doubt.
func (s Status) GameImpacting() bool {
	switch s {
	case StatusInjured, StatusOut, StatusQuestionable, StatusDoubtful:
		return true
	}
	return false
}

// DisqualifiesPickup reports whether a free agent with this designation
// should be excluded from waiver consideration.
func (s Status) DisqualifiesPickup() bool {
	switch s {
	case StatusInjured, StatusOut, StatusUnavailable, StatusSuspended:
		return true
	}
	return false
}

// ParseStatus normalizes a platform status string into a Status. Platforms
// disagree on day-to-day spellings; anything unrecognized passes through
// untouched so it at least surfaces verbatim in reports.
func ParseStatus(raw string) Status {
	switch raw {
	case "", "healthy", "H":
		return StatusHealthy
	case "Q", "GTD":
		return StatusQuestionable
	case "D", "DTD":
		return StatusDoubtful
	case "O":
		return StatusOut
	case "INJ", "IL":
		return StatusInjured
	case "SUSP":
		return StatusSuspended
	case "NA":
		return StatusUnavailable
	}
	return Status(raw)
}

// RankSentinel stands in for a missing window rank when ordering players.
// Lower ranks are better, so an unranked player sorts behind everyone.
const RankSentinel = 999

// Rank is a platform ordinal rank over a trailing time window, lower = better.
// The zero value means the rank is unknown.
type Rank struct {
	Value int
	Known bool
}

// NewRank returns a known rank.
func NewRank(v int) Rank { return Rank{Value: v, Known: true} }

// OrSentinel returns the rank value, or RankSentinel when the rank is unknown.
func (r Rank) OrSentinel() int {
	if !r.Known {
		return RankSentinel
	}
	return r.Value
}

// Score is a cross-platform composite ranking signal, higher = better.
// The zero value means no score is available.
type Score struct {
	Value float64
	Known bool
}

// NewScore returns a known score.
func NewScore(v float64) Score { return Score{Value: v, Known: true} }

// Player is the unit of work for the roster engine. Records are built fresh
// each run from the day's snapshot; optional numeric signals use the explicit
// Rank/Score validity types rather than in-band magic values.
type Player struct {
	Name        string
	Team        string
	Positions   []string
	Status      Status
	CurrentSlot string

	HasGameToday       bool
	GamesRemainingWeek int

	Score     Score
	CatValues map[string]float64
	Rank14    Rank
	Rank30    Rank

	MPG          float64
	GamesLast30  int
	PercentOwned float64

	Untouchable bool
}

// HasPosition reports whether pos is among the player's eligible positions.
func (p *Player) HasPosition(pos string) bool {
	for _, have := range p.Positions {
		if have == pos {
			return true
		}
	}
	return false
}
