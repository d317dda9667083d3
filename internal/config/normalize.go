package config

import "strings"

// Normalize trims values and lowercases enums. Blank enums fall back to defaults.
func Normalize(cfg *Config) {
	def := Default()
	cfg.Source = strings.TrimSpace(cfg.Source)
	cfg.StructuredLoader = enumValue(cfg.StructuredLoader, def.StructuredLoader)
	cfg.AnswerPolicy = enumValue(cfg.AnswerPolicy, def.AnswerPolicy)
	cfg.UI.Mode = enumValue(cfg.UI.Mode, def.UI.Mode)
	cfg.CommentPrefix = strings.TrimSpace(cfg.CommentPrefix)
	if cfg.Delimiter == "" {
		cfg.Delimiter = def.Delimiter
	}
}

func enumValue(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
