package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"tailscale.com/util/deephash"
)

// Submission is one answer sent to adventofcode.com.
type Submission struct {
	Part    string  `yaml:"part"`
	Input   string  `yaml:"input"` // InputDigest of the puzzle input
	Answer  string  `yaml:"answer"`
	Outcome Outcome `yaml:"outcome"`
}

// Ledger is the record of submissions for one day, kept so that the same
// answer is never sent twice.
type Ledger struct {
	path        string
	Submissions []Submission `yaml:"submissions"`
}

// InputDigest identifies a puzzle input. Inputs differ per account, so
// verdicts only apply to the input they were given for.
func InputDigest(input []byte) string {
	return deephash.Hash(&input).String()
}

// OpenLedger loads the ledger for the day from the cache directory. A missing
// file is an empty ledger.
func OpenLedger(cacheDir string, year, day int) (*Ledger, error) {
	l := &Ledger{
		path: filepath.Join(cacheDir, fmt.Sprint(year), fmt.Sprintf("%d.answers.yaml", day)),
	}
	b, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", l.path, err)
	}
	return l, nil
}

// Lookup returns the final verdict already given for answer.
func (l *Ledger) Lookup(part, digest, answer string) (Submission, bool) {
	for _, s := range l.Submissions {
		if s.Part == part && s.Input == digest && s.Answer == answer && s.Outcome.Final() {
			return s, true
		}
	}
	return Submission{}, false
}

// Solved returns the correct submission for the part, if any.
func (l *Ledger) Solved(part, digest string) (Submission, bool) {
	for _, s := range l.Submissions {
		if s.Part == part && s.Input == digest && s.Outcome == OutcomeCorrect {
			return s, true
		}
	}
	return Submission{}, false
}

// Record appends s and writes the ledger back to disk.
func (l *Ledger) Record(s Submission) error {
	l.Submissions = append(l.Submissions, s)
	b, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(l.path, b, 0644)
}
