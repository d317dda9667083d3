package cucumber

import (
	"errors"
	"fmt"

	"trivia/internal/question"
	"trivia/internal/quiz"
)

func (s *featureState) aQuizWithQuestions(count int) error {
	bank := make([]question.Question, 0, count)
	for i := 0; i < count; i++ {
		letter, _ := question.LetterAt(i % question.OptionCount)
		bank = append(bank, question.Question{
			Text:    fmt.Sprintf("Question %d", i+1),
			Options: [question.OptionCount]string{"w", "x", "y", "z"},
			Correct: letter,
		})
	}
	s.machine = quiz.New(bank, quiz.Options{Log: s.log})
	return nil
}

func (s *featureState) iStartTheQuiz() error {
	return s.machine.Start()
}

func (s *featureState) iTryToStartTheQuiz() error {
	s.startErr = s.machine.Start()
	return nil
}

func (s *featureState) theStartIsRefused() error {
	if !errors.Is(s.startErr, quiz.ErrEmptyBank) {
		return fmt.Errorf("expected empty bank refusal, got %v", s.startErr)
	}
	return nil
}

func (s *featureState) iAnswer(outcome string) error {
	current, ok := s.machine.Current()
	if !ok {
		return fmt.Errorf("no current question in phase %s", s.machine.State().Phase)
	}
	index := current.Correct.Index()
	if outcome == "incorrectly" {
		index = (index + 1) % question.OptionCount
	}
	ticket, err := s.machine.Select(index)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}
	if !s.machine.Advance(ticket) {
		return fmt.Errorf("advance was not applied")
	}
	return nil
}

func (s *featureState) iSelectTheCorrectOption() error {
	current, ok := s.machine.Current()
	if !ok {
		return fmt.Errorf("no current question")
	}
	_, err := s.machine.Select(current.Correct.Index())
	if err != nil && !errors.Is(err, quiz.ErrAlreadyAnswered) {
		return fmt.Errorf("select: %w", err)
	}
	return nil
}

func (s *featureState) iAcknowledgeTheResult() error {
	return s.machine.Acknowledge()
}

func (s *featureState) thePhaseIs(phase string) error {
	if got := s.machine.State().Phase.String(); got != phase {
		return fmt.Errorf("expected phase %s, got %s", phase, got)
	}
	return nil
}

func (s *featureState) theScoreIs(score int) error {
	if got := s.machine.State().Score; got != score {
		return fmt.Errorf("expected score %d, got %d", score, got)
	}
	return nil
}

func (s *featureState) theQuestionIndexIs(index int) error {
	if got := s.machine.State().Index; got != index {
		return fmt.Errorf("expected index %d, got %d", index, got)
	}
	return nil
}

func (s *featureState) theTierIs(tier string) error {
	if got := s.machine.State().Tier.String(); got != tier {
		return fmt.Errorf("expected tier %s, got %s", tier, got)
	}
	return nil
}

func (s *featureState) noOptionIsSelected() error {
	if got := s.machine.State().Selected; got != quiz.NoSelection {
		return fmt.Errorf("expected no selection, got %d", got)
	}
	return nil
}
