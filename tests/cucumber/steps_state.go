package cucumber

import (
	"context"

	"github.com/cucumber/godog"

	"trivia/internal/diag"
	"trivia/internal/ingest"
	"trivia/internal/quiz"
)

// featureState holds scenario state shared by the step definitions.
type featureState struct {
	lines  []string
	result ingest.LineResult

	structured ingest.TableLoader
	raw        ingest.LineLoader
	rawCalls   int
	log        *diag.Log
	bank       ingest.Bank

	machine  *quiz.Machine
	startErr error
}

// InitializeScenario wires the step definitions to a fresh feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*state = featureState{log: diag.New(nil)}
		return ctx, nil
	})

	ctx.Step(`^the raw lines:$`, state.theRawLines)
	ctx.Step(`^the raw lines are parsed$`, state.theRawLinesAreParsed)
	ctx.Step(`^the header is at index (\d+)$`, state.theHeaderIsAtIndex)
	ctx.Step(`^(\d+) questions? (?:is|are) produced$`, state.questionsAreProduced)
	ctx.Step(`^question (\d+) has answer "([A-D])"$`, state.questionHasAnswer)
	ctx.Step(`^there (?:is|are) (\d+) parse errors?$`, state.thereAreParseErrors)
	ctx.Step(`^parse error (\d+) mentions "([^"]+)"$`, state.parseErrorMentions)

	ctx.Step(`^a structured source with (\d+) rows$`, state.aStructuredSourceWithRows)
	ctx.Step(`^a failing structured source$`, state.aFailingStructuredSource)
	ctx.Step(`^a raw-text source with (\d+) questions$`, state.aRawTextSourceWithQuestions)
	ctx.Step(`^a failing raw-text source$`, state.aFailingRawTextSource)
	ctx.Step(`^the bank is ingested$`, state.theBankIsIngested)
	ctx.Step(`^the bank has (\d+) questions from the (structured|raw) path$`, state.theBankHasQuestionsFromPath)
	ctx.Step(`^the bank is empty$`, state.theBankIsEmpty)
	ctx.Step(`^the raw-text loader was not called$`, state.theRawTextLoaderWasNotCalled)
	ctx.Step(`^the log contains "([^"]+)"$`, state.theLogContains)

	ctx.Step(`^a quiz with (\d+) questions$`, state.aQuizWithQuestions)
	ctx.Step(`^I start the quiz$`, state.iStartTheQuiz)
	ctx.Step(`^I try to start the quiz$`, state.iTryToStartTheQuiz)
	ctx.Step(`^the start is refused$`, state.theStartIsRefused)
	ctx.Step(`^I answer (correctly|incorrectly)$`, state.iAnswer)
	ctx.Step(`^I select the correct option(?: again)?$`, state.iSelectTheCorrectOption)
	ctx.Step(`^I acknowledge the result$`, state.iAcknowledgeTheResult)
	ctx.Step(`^the phase is "([a-z_]+)"$`, state.thePhaseIs)
	ctx.Step(`^the score is (\d+)$`, state.theScoreIs)
	ctx.Step(`^the question index is (\d+)$`, state.theQuestionIndexIs)
	ctx.Step(`^the tier is "([a-z]+)"$`, state.theTierIs)
	ctx.Step(`^no option is selected$`, state.noOptionIsSelected)
}
