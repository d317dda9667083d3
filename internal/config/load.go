package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"trivia/internal/source"
)

// Load resolves configuration from defaults, the config file and TRIVIA_*
// environment variables, then normalizes and validates it. A relative source
// read from the config file is resolved against the file's directory. An empty path
// searches the working directory for DefaultFileName and tolerates its
// absence; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, ".yml"))
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if used := v.ConfigFileUsed(); used != "" && v.InConfig("source") && os.Getenv(EnvPrefix+"_SOURCE") == "" {
		cfg.Source = resolveRelative(filepath.Dir(used), cfg.Source)
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("source", def.Source)
	v.SetDefault("structured_loader", def.StructuredLoader)
	v.SetDefault("delimiter", def.Delimiter)
	v.SetDefault("comment_prefix", def.CommentPrefix)
	v.SetDefault("answer_policy", def.AnswerPolicy)
	v.SetDefault("advance_delay", def.AdvanceDelay)
	v.SetDefault("load_timeout", def.LoadTimeout)
	v.SetDefault("ui.mode", def.UI.Mode)
	v.SetDefault("ui.no_color", def.UI.NoColor)
	v.SetDefault("verbose", def.Verbose)
}

// resolveRelative joins a relative local path onto dir.
func resolveRelative(dir, value string) string {
	value = strings.TrimSpace(value)
	if value == "" || source.IsRemote(value) || filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(dir, value)
}
