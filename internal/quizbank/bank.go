// Package quizbank loads the static question bank shipped with the binary.
package quizbank

import (
	_ "embed"
	"fmt"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultBank []byte

type yamlQuestion struct {
	ID            int      `yaml:"id"`
	Type          string   `yaml:"type"`
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer any      `yaml:"correctAnswer"`
	Explanation   string   `yaml:"explanation"`
	Category      string   `yaml:"category"`
	Difficulty    string   `yaml:"difficulty"`
}

// Load parses and validates the embedded bank.
func Load() (model.Bank, error) {
	return Parse(defaultBank)
}

// MustLoad panics on an invalid embedded bank; it is a build-time asset.
func MustLoad() model.Bank {
	bank, err := Load()
	if err != nil {
		panic(fmt.Sprintf("quizbank: %v", err))
	}
	return bank
}

// Parse decodes a YAML bank. The correct answer is bound to the declared
// question kind here, so the engine never sees a mismatched answer.
func Parse(data []byte) (model.Bank, error) {
	var raw []yamlQuestion
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	bank := make(model.Bank, 0, len(raw))
	for _, rq := range raw {
		q := model.Question{
			ID:          rq.ID,
			Kind:        model.QuestionKind(rq.Type),
			Prompt:      rq.Question,
			Options:     rq.Options,
			Explanation: rq.Explanation,
			Category:    rq.Category,
			Difficulty:  model.Difficulty(rq.Difficulty),
		}
		switch v := rq.CorrectAnswer.(type) {
		case bool:
			q.Correct = model.BoolAnswer(v)
		case int:
			q.Correct = model.IndexAnswer(v)
		default:
			return nil, fmt.Errorf("question %d: unsupported correctAnswer %v", rq.ID, rq.CorrectAnswer)
		}
		bank = append(bank, q)
	}

	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("invalid question bank: %w", err)
	}
	return bank, nil
}
