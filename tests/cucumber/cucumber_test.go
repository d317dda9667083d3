package cucumber

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestFeatures runs each feature file as its own subtest so a failing
// scenario points at its file.
func TestFeatures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("features", "*.feature"))
	if err != nil || len(files) == 0 {
		t.Fatalf("no feature files found: %v", err)
	}
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".feature")
		t.Run(name, func(t *testing.T) {
			suite := godog.TestSuite{
				Name:                "trivia-" + name,
				ScenarioInitializer: InitializeScenario,
				Options: &godog.Options{
					Format:   "pretty",
					Paths:    []string{file},
					Output:   io.Discard,
					Strict:   true,
					TestingT: t,
				},
			}
			if status := suite.Run(); status != 0 {
				t.Fatalf("%s: godog exited with status %d", file, status)
			}
		})
	}
}
