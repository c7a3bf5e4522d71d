// Package exam holds the single live GeneratedExam and its edit
// operations: replace, in-place field updates, delete, and reorder.
package exam

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/attafarid/studyai/internal/examgen"
)

// ErrIndexOutOfRange reports a field edit against a question index the
// exam does not have. Delete and Move degrade to no-ops instead; field
// edits carry user data, so losing one silently is worse.
var ErrIndexOutOfRange = errors.New("question index out of range")

// ErrUnknownField reports an UpdateField against a field name the
// question model does not have.
var ErrUnknownField = errors.New("unknown question field")

// Token identifies one issued generation request. Replace discards
// results whose token is stale, so an overlapping generation can never
// clobber a newer one.
type Token string

// Store owns the current exam. Export adapters receive deep-copied
// snapshots; mutations go through the Store.
type Store struct {
	mu      sync.Mutex
	current *examgen.GeneratedExam
	latest  Token
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Begin issues a token for a new generation request. Any token issued
// earlier becomes stale.
func (s *Store) Begin() Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = Token(uuid.NewString())
	return s.latest
}

// Replace installs the exam if token is still the latest issued one.
// Returns false when the result is stale and has been discarded.
func (s *Store) Replace(token Token, exam *examgen.GeneratedExam) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest {
		return false
	}
	s.current = exam.Clone()
	return true
}

// Current returns a deep-copied snapshot of the held exam, or nil when
// none is held.
func (s *Store) Current() *examgen.GeneratedExam {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Len returns the number of questions in the held exam.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0
	}
	return len(s.current.Questions)
}

// UpdateField replaces the question at index with a copy differing only
// in the named field. No-op (nil) when no exam is held. Fields: id,
// type, question, answer, notes, difficulty, options, pairs. Updating
// "id" is permitted but unusual; every other field leaves IDs intact.
func (s *Store) UpdateField(index int, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	if index < 0 || index >= len(s.current.Questions) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	q := s.current.Questions[index].Clone()

	switch field {
	case "id":
		v, err := asString(field, value)
		if err != nil {
			return err
		}
		q.ID = v
	case "type":
		v, err := asString(field, value)
		if err != nil {
			return err
		}
		q.Type = examgen.QuestionType(v)
	case "question":
		v, err := asString(field, value)
		if err != nil {
			return err
		}
		q.Question = v
	case "answer":
		v, err := asString(field, value)
		if err != nil {
			return err
		}
		q.Answer = v
	case "notes":
		v, err := asString(field, value)
		if err != nil {
			return err
		}
		q.Notes = v
	case "difficulty":
		v, err := asString(field, value)
		if err != nil {
			return err
		}
		q.Difficulty = examgen.Difficulty(v)
	case "options":
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("field %q wants []string, got %T", field, value)
		}
		q.Options = append([]string(nil), v...)
	case "pairs":
		v, ok := value.([]examgen.Pair)
		if !ok {
			return fmt.Errorf("field %q wants []examgen.Pair, got %T", field, value)
		}
		q.Pairs = append([]examgen.Pair(nil), v...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	s.current.Questions[index] = q
	return nil
}

// Delete removes the question at index, shifting the rest down. No-op
// when no exam is held or the index is out of range.
func (s *Store) Delete(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || index < 0 || index >= len(s.current.Questions) {
		return
	}
	s.current.Questions = append(
		s.current.Questions[:index],
		s.current.Questions[index+1:]...)
}

// Move swaps the question at index with its neighbor in the given
// direction (-1 or +1). No-op when the resulting position would fall
// off either end, when dir is not ±1, or when no exam is held.
func (s *Store) Move(index, dir int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || (dir != -1 && dir != 1) {
		return
	}
	qs := s.current.Questions
	if index < 0 || index >= len(qs) {
		return
	}
	target := index + dir
	if target < 0 || target >= len(qs) {
		return
	}
	qs[index], qs[target] = qs[target], qs[index]
}

func asString(field string, value any) (string, error) {
	v, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q wants string, got %T", field, value)
	}
	return v, nil
}
