package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"

	"trivia/internal/ingest"
	"trivia/internal/question"
)

// YAMLTable loads a structured question bank written as YAML:
//
//	questions:
//	  - question: Capital of France?
//	    options: [Berlin, Paris, Rome, Madrid]
//	    answer: B
type YAMLTable struct {
	Client *http.Client
}

type yamlBank struct {
	Questions []yamlQuestion `yaml:"questions"`
}

type yamlQuestion struct {
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Answer   string   `yaml:"answer"`
}

// LoadTable decodes sourceID into one row per question.
func (l YAMLTable) LoadTable(ctx context.Context, sourceID string) (ingest.Table, error) {
	reader, err := Open(ctx, l.Client, sourceID)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sourceID, err)
	}
	bank, err := parseYAMLBank(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourceID, err)
	}

	records := &ingest.Records{Header: []string{"question", "A", "B", "C", "D", "answer"}}
	for i, item := range bank.Questions {
		if len(item.Options) > question.OptionCount {
			return nil, fmt.Errorf("%s: question %d has %d options, expected at most %d", sourceID, i+1, len(item.Options), question.OptionCount)
		}
		row := make([]any, question.FieldCount)
		row[question.FieldText] = item.Question
		for j, option := range item.Options {
			row[question.FieldText+1+j] = option
		}
		row[question.FieldAnswer] = item.Answer
		records.Rows = append(records.Rows, row)
	}
	return records, nil
}

// parseYAMLBank decodes a single strict YAML document. An empty document is
// an empty bank.
func parseYAMLBank(data []byte) (yamlBank, error) {
	var bank yamlBank
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bank); err != nil {
		if err == io.EOF {
			return yamlBank{}, nil
		}
		return yamlBank{}, fmt.Errorf("parse yaml: %w", err)
	}
	var trailing yaml.Node
	if err := decoder.Decode(&trailing); err != io.EOF {
		if err == nil {
			return yamlBank{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return yamlBank{}, fmt.Errorf("parse yaml: %w", err)
	}
	return bank, nil
}
