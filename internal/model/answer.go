package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// AnswerKind tags which variant an Answer holds.
type AnswerKind int

const (
	AnswerUnanswered AnswerKind = iota
	AnswerBool
	AnswerIndex
)

var ErrAnswerKind = errors.New("answer does not match question kind")

// Answer is Unanswered, Bool(b) or Index(i). The zero value is Unanswered.
type Answer struct {
	kind  AnswerKind
	b     bool
	index int
}

func Unanswered() Answer { return Answer{} }

func BoolAnswer(b bool) Answer { return Answer{kind: AnswerBool, b: b} }

func IndexAnswer(i int) Answer { return Answer{kind: AnswerIndex, index: i} }

func (a Answer) Kind() AnswerKind { return a.kind }

func (a Answer) IsAnswered() bool { return a.kind != AnswerUnanswered }

// Bool returns the boolean value and whether the answer holds one.
func (a Answer) Bool() (bool, bool) { return a.b, a.kind == AnswerBool }

// Index returns the option index and whether the answer holds one.
func (a Answer) Index() (int, bool) { return a.index, a.kind == AnswerIndex }

// Equal is strict: a Bool never equals an Index.
func (a Answer) Equal(other Answer) bool {
	if a.kind != other.kind {
		return false
	}
	switch a.kind {
	case AnswerBool:
		return a.b == other.b
	case AnswerIndex:
		return a.index == other.index
	default:
		return true
	}
}

func (a Answer) String() string {
	switch a.kind {
	case AnswerBool:
		return strconv.FormatBool(a.b)
	case AnswerIndex:
		return strconv.Itoa(a.index)
	default:
		return "unanswered"
	}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerBool:
		return json.Marshal(a.b)
	case AnswerIndex:
		return json.Marshal(a.index)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Unanswered()
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*a = BoolAnswer(b)
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*a = IndexAnswer(i)
		return nil
	}
	return fmt.Errorf("answer must be null, a boolean or an integer, got %s", string(data))
}

// ParseAnswer binds a raw submitted value to the answer type the question expects.
// Binary questions accept booleans ("o"/"x" and "true"/"false" strings too);
// multiple-choice questions accept an in-range option index.
func ParseAnswer(q Question, raw json.RawMessage) (Answer, error) {
	raw = bytes.TrimSpace(raw)
	switch q.Kind {
	case KindBinary:
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return BoolAnswer(b), nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			switch s {
			case "o", "O", "true":
				return BoolAnswer(true), nil
			case "x", "X", "false":
				return BoolAnswer(false), nil
			}
		}
		return Unanswered(), fmt.Errorf("question %d expects true/false: %w", q.ID, ErrAnswerKind)
	case KindMultiple:
		var i int
		if err := json.Unmarshal(raw, &i); err != nil {
			return Unanswered(), fmt.Errorf("question %d expects an option index: %w", q.ID, ErrAnswerKind)
		}
		if i < 0 || i >= len(q.Options) {
			return Unanswered(), fmt.Errorf("option %d out of range for question %d (%d options): %w", i, q.ID, len(q.Options), ErrAnswerKind)
		}
		return IndexAnswer(i), nil
	default:
		return Unanswered(), fmt.Errorf("question %d has unknown kind %q", q.ID, q.Kind)
	}
}
