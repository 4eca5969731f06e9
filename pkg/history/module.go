package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is a single recorded result. Names are stored in canonical
// (lower-case) form; array order in a history file is chronological and
// determines replay order.
type Match struct {
	Winner    string `json:"winner"`
	Loser     string `json:"loser"`
	Timestamp string `json:"timestamp"`
}

var ErrMalformed = fmt.Errorf("malformed match history")

// Canonical folds a player or competition name to its storage form. Names
// differing only in case refer to the same entity.
func Canonical(name string) string {
	return strings.ToLower(name)
}

// Display upper-cases the first rune of a canonical name.
func Display(name string) string {
	if name == "" {
		return name
	}

	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// Store reads and writes one JSON array file per competition under a single
// directory. The directory is created lazily on first save.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(competition string) string {
	return filepath.Join(s.dir, Canonical(competition)+".json")
}

// Load returns a competition's matches in chronological order. A missing
// file is an empty history, not an error.
func (s *Store) Load(competition string) ([]Match, error) {
	data, err := os.ReadFile(s.path(competition))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var matches []Match
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, Canonical(competition), err)
	}

	for i, match := range matches {
		if match.Winner == "" {
			return nil, fmt.Errorf("%w: record %d: missing winner", ErrMalformed, i)
		}
		if match.Loser == "" {
			return nil, fmt.Errorf("%w: record %d: missing loser", ErrMalformed, i)
		}
		if match.Timestamp == "" {
			return nil, fmt.Errorf("%w: record %d: missing timestamp", ErrMalformed, i)
		}
	}

	return matches, nil
}

func (s *Store) Save(competition string, matches []Match) error {
	if matches == nil {
		matches = []Match{}
	}

	data, err := json.Marshal(matches)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("make history dir: %w", err)
	}

	return os.WriteFile(s.path(competition), data, 0644)
}

// Append records a match at the end of a competition's history and returns
// the updated history. Player names are canonicalized before storage.
func (s *Store) Append(competition string, match Match) ([]Match, error) {
	matches, err := s.Load(competition)
	if err != nil {
		return nil, err
	}

	match.Winner = Canonical(match.Winner)
	match.Loser = Canonical(match.Loser)
	matches = append(matches, match)

	if err := s.Save(competition, matches); err != nil {
		return nil, err
	}

	return matches, nil
}

// RemoveLast drops the most recent match and returns it, or nil when the
// history is already empty.
func (s *Store) RemoveLast(competition string) (*Match, error) {
	matches, err := s.Load(competition)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, nil
	}

	removed := matches[len(matches)-1]
	if err := s.Save(competition, matches[:len(matches)-1]); err != nil {
		return nil, err
	}

	return &removed, nil
}

// List names every competition that has a history file.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}

		names = append(names, strings.TrimSuffix(name, ".json"))
	}

	sort.Strings(names)
	return names, nil
}
