package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const sampleQuestions = `// Sample question bank. Lines starting with // are ignored.
question,A,B,C,D,answer
What is the capital of France?,Berlin,Paris,Rome,Madrid,B
How many legs does a spider have?,Six,Eight,Ten,Twelve,B
Which planet is known as the Red Planet?,Mars,Venus,Jupiter,Saturn,A
What is the boiling point of water at sea level in Celsius?,90,95,100,105,C
Which gas do plants absorb from the air?,Oxygen,Nitrogen,Helium,Carbon dioxide,D
`

type scaffoldFile struct {
	Source           string     `yaml:"source"`
	StructuredLoader string     `yaml:"structured_loader"`
	Delimiter        string     `yaml:"delimiter"`
	CommentPrefix    string     `yaml:"comment_prefix"`
	AnswerPolicy     string     `yaml:"answer_policy"`
	AdvanceDelay     string     `yaml:"advance_delay"`
	LoadTimeout      string     `yaml:"load_timeout"`
	UI               scaffoldUI `yaml:"ui"`
	Verbose          bool       `yaml:"verbose"`
}

type scaffoldUI struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// renderScaffoldConfig renders the default config as YAML.
func renderScaffoldConfig(source string) ([]byte, error) {
	def := Default()
	doc := scaffoldFile{
		Source:           source,
		StructuredLoader: def.StructuredLoader,
		Delimiter:        def.Delimiter,
		CommentPrefix:    def.CommentPrefix,
		AnswerPolicy:     def.AnswerPolicy,
		AdvanceDelay:     def.AdvanceDelay.String(),
		LoadTimeout:      def.LoadTimeout.String(),
		UI:               scaffoldUI{Mode: def.UI.Mode, NoColor: def.UI.NoColor},
		Verbose:          def.Verbose,
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return data, nil
}

// Scaffold writes a default config and a sample question bank into dir. It
// refuses to overwrite either file and returns the paths it wrote.
func Scaffold(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, DefaultFileName)
	questionsPath := filepath.Join(dir, DefaultSource)
	for _, path := range []string{configPath, questionsPath} {
		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				return nil, fmt.Errorf("path %q is a directory", path)
			}
			return nil, fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	data, err := renderScaffoldConfig(DefaultSource)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(questionsPath, []byte(sampleQuestions), 0o644); err != nil {
		return nil, fmt.Errorf("write questions file: %w", err)
	}
	return []string{configPath, questionsPath}, nil
}
