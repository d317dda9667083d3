package live

import "trivia/internal/question"

// Screen identifies what the live UI is showing.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenFault
	ScreenGuidance
	ScreenStart
	ScreenQuestion
	ScreenResult
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenFault:
		return "fault"
	case ScreenGuidance:
		return "guidance"
	case ScreenStart:
		return "start"
	case ScreenQuestion:
		return "question"
	case ScreenResult:
		return "result"
	default:
		return "unknown"
	}
}

// answerRecord holds one answered question for the result review.
type answerRecord struct {
	Index   int
	Text    string
	Chosen  question.Letter
	Correct question.Letter
}

func (r answerRecord) right() bool {
	return r.Chosen == r.Correct
}
