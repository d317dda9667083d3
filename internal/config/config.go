package config

import (
	"time"

	"trivia/internal/ingest"
	"trivia/internal/question"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".trivia.yml"

// EnvPrefix prefixes environment overrides, e.g. TRIVIA_SOURCE or TRIVIA_UI_MODE.
const EnvPrefix = "TRIVIA"

// Structured loader names.
const (
	LoaderCSV    = "csv"
	LoaderDuckDB = "duckdb"
	LoaderYAML   = "yaml"
	LoaderNone   = "none"
)

// UI modes.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)

// Defaults applied before the config file and environment are read.
const (
	DefaultSource       = "questions.csv"
	DefaultAdvanceDelay = 800 * time.Millisecond
	DefaultLoadTimeout  = 10 * time.Second
)

// Config is the resolved runtime configuration.
type Config struct {
	Source           string        `mapstructure:"source"`
	StructuredLoader string        `mapstructure:"structured_loader"`
	Delimiter        string        `mapstructure:"delimiter"`
	CommentPrefix    string        `mapstructure:"comment_prefix"`
	AnswerPolicy     string        `mapstructure:"answer_policy"`
	AdvanceDelay     time.Duration `mapstructure:"advance_delay"`
	LoadTimeout      time.Duration `mapstructure:"load_timeout"`
	UI               UIConfig      `mapstructure:"ui"`
	Verbose          bool          `mapstructure:"verbose"`
}

// UIConfig selects how the quiz is presented.
type UIConfig struct {
	Mode    string `mapstructure:"mode"`
	NoColor bool   `mapstructure:"no_color"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Source:           DefaultSource,
		StructuredLoader: LoaderCSV,
		Delimiter:        ingest.DefaultDelimiter,
		CommentPrefix:    ingest.DefaultCommentPrefix,
		AnswerPolicy:     question.AnswerDefault.String(),
		AdvanceDelay:     DefaultAdvanceDelay,
		LoadTimeout:      DefaultLoadTimeout,
		UI:               UIConfig{Mode: UIModeAuto},
	}
}

// ParseOptions converts the parsing keys. The config must have been validated.
func (c Config) ParseOptions() ingest.ParseOptions {
	policy, _ := question.ParseAnswerPolicy(c.AnswerPolicy)
	return ingest.ParseOptions{
		Delimiter:     c.Delimiter,
		CommentPrefix: c.CommentPrefix,
		AnswerPolicy:  policy,
	}
}
