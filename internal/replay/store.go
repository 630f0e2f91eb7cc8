// Package replay persists battle transcripts as append-only JSONL so a
// battle can be re-run from its seed and byte-compared against the record.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
)

// Header is the first line of every transcript: the inputs that make the
// battle reproducible.
type Header struct {
	BattleID   string `json:"battle_id"`
	Generation int    `json:"generation"`
	Seed       int64  `json:"seed"`
	Roster     string `json:"roster,omitempty"`
	Script     string `json:"script,omitempty"`
}

// Entry is one resolved action in the transcript.
type Entry struct {
	BattleID string         `json:"battle_id"`
	Turn     int            `json:"turn"`
	Actor    string         `json:"actor"`
	Result   *battle.Result `json:"result"`
}

// line wraps the two record shapes for decoding.
type line struct {
	Header *Header `json:"header,omitempty"`
	Entry  *Entry  `json:"entry,omitempty"`
}

// Store appends transcript lines to a file.
type Store struct {
	file *os.File
}

// NewStore opens or creates the transcript file at path for appending.
func NewStore(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	return &Store{file: file}, nil
}

// NewBattleID mints the identifier stamped on every line of one battle.
func NewBattleID() string { return uuid.NewString() }

// Begin writes the battle header line.
func (s *Store) Begin(h Header) error {
	return s.write(line{Header: &h})
}

// Append writes one resolved action.
func (s *Store) Append(e Entry) error {
	return s.write(line{Entry: &e})
}

func (s *Store) write(l line) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	if _, err := s.file.Write(append(data, '\n')); err != nil {
		return err
	}
	return s.file.Sync()
}

// Load replays the whole file into headers and entries, in order.
func (s *Store) Load() ([]Header, []Entry, error) {
	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, nil, err
	}

	var headers []Header
	var entries []Entry
	scanner := bufio.NewScanner(s.file)
	for scanner.Scan() {
		var l line
		if err := json.Unmarshal(scanner.Bytes(), &l); err != nil {
			return nil, nil, fmt.Errorf("failed to decode transcript line: %w", err)
		}
		switch {
		case l.Header != nil:
			headers = append(headers, *l.Header)
		case l.Entry != nil:
			entries = append(entries, *l.Entry)
		default:
			return nil, nil, fmt.Errorf("transcript line is neither header nor entry")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return headers, entries, nil
}

// Close handles safe shutdown.
func (s *Store) Close() error {
	return s.file.Close()
}
