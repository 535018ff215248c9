// Package tui is the terminal rendition of the quiz, driven by bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/repository"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	historyShown   = 5
	storageTimeout = 3 * time.Second
)

// historyLoadedMsg carries the stored results after a completion or at startup.
type historyLoadedMsg struct {
	results []model.QuizResult
	err     error
}

type QuizModel struct {
	engine   *service.QuizEngine
	results  repository.ResultRepository
	clientID string
	locale   i18n.Locale

	history  []model.QuizResult
	err      error
	quitting bool
}

// NewQuizModel builds the model and an engine whose completions are appended
// to results under clientID.
func NewQuizModel(bank model.Bank, results repository.ResultRepository, clientID string, locale i18n.Locale) (QuizModel, error) {
	recorder := service.ResultRecorderFunc(func(r model.QuizResult) error {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		return results.Append(ctx, clientID, r)
	})
	engine, err := service.NewQuizEngine(bank, recorder, nil)
	if err != nil {
		return QuizModel{}, err
	}
	return QuizModel{engine: engine, results: results, clientID: clientID, locale: locale}, nil
}

func (m QuizModel) loadHistory() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	results, err := m.results.FindAll(ctx, m.clientID)
	return historyLoadedMsg{results: results, err: err}
}

func (m QuizModel) Init() tea.Cmd {
	return m.loadHistory
}

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.history = msg.results
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m QuizModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r":
		m.engine.Restart()
		m.err = nil
		return m, nil
	}

	if m.engine.IsCompleted() {
		return m, nil
	}

	if m.engine.Revealed() {
		if key == "enter" || key == " " || key == "n" {
			if err := m.engine.Advance(); err != nil {
				m.err = err
				return m, nil
			}
			if m.engine.IsCompleted() {
				return m, m.loadHistory
			}
		}
		return m, nil
	}

	if answer, ok := m.answerForKey(key); ok {
		if _, err := m.engine.SubmitAnswer(answer); err != nil {
			m.err = err
		}
	}
	return m, nil
}

// answerForKey maps o/x to true/false and 1..n to option indexes.
func (m QuizModel) answerForKey(key string) (model.Answer, bool) {
	q := m.engine.Current()
	switch q.Kind {
	case model.KindBinary:
		switch strings.ToLower(key) {
		case "o", "t", "y":
			return model.BoolAnswer(true), true
		case "x", "f":
			return model.BoolAnswer(false), true
		}
	case model.KindMultiple:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(q.Options) {
				return model.IndexAnswer(idx), true
			}
		}
	}
	return model.Answer{}, false
}

func (m QuizModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Enrich the World Quiz"))
	b.WriteString("\n\n")
	if m.engine.IsCompleted() {
		b.WriteString(m.completedView())
	} else {
		b.WriteString(m.questionView())
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("error: " + m.err.Error()))
	}
	return FrameStyle.Render(b.String()) + "\n"
}

func (m QuizModel) questionView() string {
	e := m.engine
	q := e.Current()
	var b strings.Builder

	b.WriteString(ProgressStyle.Render(fmt.Sprintf("Question %d/%d · %s · %s", e.Index()+1, e.Total(), q.Category, q.Difficulty)))
	b.WriteString("\n")
	b.WriteString(PromptStyle.Render(q.Prompt))
	b.WriteString("\n\n")

	selected := e.Answers()[e.Index()]
	switch q.Kind {
	case model.KindBinary:
		b.WriteString(m.optionLine("O", "True", model.BoolAnswer(true), selected))
		b.WriteString(m.optionLine("X", "False", model.BoolAnswer(false), selected))
	case model.KindMultiple:
		for i, opt := range q.Options {
			b.WriteString(m.optionLine(fmt.Sprintf("%d", i+1), opt, model.IndexAnswer(i), selected))
		}
	}

	if e.Revealed() {
		b.WriteString("\n")
		if q.IsCorrect(selected) {
			b.WriteString(CorrectStyle.Render("Correct!"))
		} else {
			b.WriteString(WrongStyle.Render("Incorrect"))
		}
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render(q.Explanation))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("enter: next · r: restart · q: quit"))
		return b.String()
	}

	b.WriteString("\n")
	if q.Kind == model.KindBinary {
		b.WriteString(HelpStyle.Render("o/x: answer · r: restart · q: quit"))
	} else {
		b.WriteString(HelpStyle.Render(fmt.Sprintf("1-%d: answer · r: restart · q: quit", len(q.Options))))
	}
	return b.String()
}

func (m QuizModel) optionLine(key, label string, option, selected model.Answer) string {
	line := fmt.Sprintf("  [%s] %s", key, label)
	if !m.engine.Revealed() {
		return OptionStyle.Render(line) + "\n"
	}
	q := m.engine.Current()
	switch {
	case option.Equal(q.Correct):
		return CorrectStyle.Render(line+" ✓") + "\n"
	case option.Equal(selected):
		return SelectedStyle.Render(line) + "\n"
	default:
		return MutedStyle.Render(line) + "\n"
	}
}

func (m QuizModel) completedView() string {
	result, _ := m.engine.Result()
	pct := service.ScorePercentage(result.Score, result.TotalQuestions)
	grade := service.GradeFor(pct, m.locale)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Score: %d/%d (%d%%)  ", result.Score, result.TotalQuestions, pct))
	b.WriteString(GradeStyle(grade.Color).Render(grade.Label))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("Time: " + service.FormatDuration(result.TimeTaken)))
	b.WriteString("\n\n")
	b.WriteString(service.CompletionMessage(pct, m.locale))
	b.WriteString("\n")

	if n := len(m.history); n > 0 {
		b.WriteString("\n")
		b.WriteString(ProgressStyle.Render("Recent results"))
		b.WriteString("\n")
		start := 0
		if n > historyShown {
			start = n - historyShown
		}
		for i := n - 1; i >= start; i-- {
			r := m.history[i]
			b.WriteString(MutedStyle.Render(fmt.Sprintf("  %s  %d/%d  %s",
				displayDate(r.CompletedAt), r.Score, r.TotalQuestions, service.FormatDuration(r.TimeTaken))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("r: try again · q: quit"))
	return b.String()
}

func displayDate(iso string) string {
	t, err := time.Parse(model.ISOTimeLayout, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format("2006-01-02 15:04")
}
