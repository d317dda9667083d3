package quiz

import (
	"errors"
	"time"
)

// DefaultAdvanceDelay is how long an answer stays revealed.
const DefaultAdvanceDelay = 800 * time.Millisecond

// NoSelection marks State.Selected when no option is locked in.
const NoSelection = -1

// Phase is the quiz progression state.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseInProgress
	PhaseRevealing
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseInProgress:
		return "in_progress"
	case PhaseRevealing:
		return "revealing"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// Tier classifies a final score for the celebration shown on the result screen.
type Tier int

const (
	TierNone Tier = iota
	TierLow
	TierMid
	TierTop
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	case TierTop:
		return "top"
	default:
		return "none"
	}
}

// Message is the celebration line shown for the tier.
func (t Tier) Message() string {
	switch t {
	case TierTop:
		return "Excellent!"
	case TierMid:
		return "Nice work, keep it up!"
	case TierLow:
		return "Keep going, try again!"
	default:
		return ""
	}
}

// Tier boundaries on the score ratio.
const (
	TopTierRatio = 0.8
	MidTierRatio = 0.5
)

// TierFor returns the score ratio and its tier. An empty quiz has ratio 0 and
// no tier.
func TierFor(score, total int) (float64, Tier) {
	if total <= 0 {
		return 0, TierNone
	}
	ratio := float64(score) / float64(total)
	switch {
	case ratio >= TopTierRatio:
		return ratio, TierTop
	case ratio >= MidTierRatio:
		return ratio, TierMid
	default:
		return ratio, TierLow
	}
}

// State is a read-only snapshot of a session.
type State struct {
	SessionID string
	Phase     Phase
	Index     int
	Score     int
	Total     int
	// Selected is the locked-in option index or NoSelection.
	Selected int
	// Ratio and Tier are set only in PhaseResult.
	Ratio float64
	Tier  Tier
}

// Percent returns the result ratio as a whole percentage.
func (s State) Percent() int {
	return int(s.Ratio*100 + 0.5)
}

// Ticket identifies a scheduled advance. A ticket is invalidated by Advance
// or by any reset; stale tickets are ignored.
type Ticket struct {
	ID    uint64
	Delay time.Duration
}

// Sentinel errors for rejected events. The machine state is unchanged when
// any of these is returned.
var (
	ErrEmptyBank       = errors.New("question bank is empty")
	ErrWrongPhase      = errors.New("event not allowed in current phase")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrInvalidOption   = errors.New("option index out of range")
)
