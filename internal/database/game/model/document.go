package model

import (
	"encoding/json"
	"fmt"
)

// Document is the whole persisted game state. It is loaded once at the start of a
// tick and saved once at its end.
type Document struct {
	Rounds             []*Round    `json:"rounds"`
	Leaderboard        Leaderboard `json:"leaderboard"`
	NextRoundThreshold int64       `json:"nextRoundThreshold"`
	LastCheckedTime    int64       `json:"lastCheckedTime"`
}

func NewDocument() *Document {
	return &Document{
		Rounds:      []*Round{},
		Leaderboard: Leaderboard{},
	}
}

// OpenRounds returns rounds without a winner, oldest first.
func (d *Document) OpenRounds() []*Round {
	var open []*Round
	for _, r := range d.Rounds {
		if r.Open() {
			open = append(open, r)
		}
	}
	return open
}

func (d *Document) AppendRound(r *Round) {
	d.Rounds = append(d.Rounds, r)
}

type Round struct {
	Word            string  `json:"word"`
	Definition      string  `json:"definition,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	MessageID       string  `json:"messageId"`
	StartedAtHeight int64   `json:"startedAtHeight"`
	NextHintHeight  int64   `json:"nextHintHeight"`
	HintsPosted     int     `json:"hintsPosted"`
	Winner          *string `json:"winner"`
}

func (r *Round) Open() bool {
	return r.Winner == nil
}

// Win closes the round. It reports false if the round already had a winner.
func (r *Round) Win(authorID string) bool {
	if !r.Open() {
		return false
	}
	r.Winner = &authorID
	return true
}

func (d *Document) UnmarshalJSON(b []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}

	_, hasRounds := keys["rounds"]
	_, hasWords := keys["words"]
	if hasWords && !hasRounds {
		var legacy legacyDocument
		if err := json.Unmarshal(b, &legacy); err != nil {
			return fmt.Errorf("unmarshal legacy document: %w", err)
		}
		*d = *legacy.migrate()
		return nil
	}

	type plain Document
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}

	*d = Document(p)
	d.normalize()
	return nil
}

func (d *Document) normalize() {
	if d.Rounds == nil {
		d.Rounds = []*Round{}
	}
	if d.Leaderboard == nil {
		d.Leaderboard = Leaderboard{}
	}
}
