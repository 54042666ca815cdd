package model

// legacyDocument is the snake_case words.json written by the first version of the
// bot, before rounds carried definitions.
type legacyDocument struct {
	Words           []legacyWord   `json:"words"`
	Leaderboard     map[string]int `json:"leaderboard"`
	NextWordBlock   int64          `json:"next_word_block"`
	LastCheckedTime int64          `json:"last_checked_time"`
}

type legacyWord struct {
	Word          string  `json:"word"`
	ImageURL      string  `json:"image_url"`
	ImageEventID  string  `json:"image_event_id"`
	PostedAtBlock int64   `json:"posted_at_block"`
	NextHintBlock int64   `json:"next_hint_block"`
	HintsPosted   int     `json:"hints_posted"`
	Winner        *string `json:"winner"`
}

func (l legacyDocument) migrate() *Document {
	d := NewDocument()
	d.NextRoundThreshold = l.NextWordBlock
	d.LastCheckedTime = l.LastCheckedTime
	for k, v := range l.Leaderboard {
		d.Leaderboard[k] = v
	}

	for _, w := range l.Words {
		d.Rounds = append(d.Rounds, &Round{
			Word:            w.Word,
			ImageURL:        w.ImageURL,
			MessageID:       w.ImageEventID,
			StartedAtHeight: w.PostedAtBlock,
			NextHintHeight:  w.NextHintBlock,
			HintsPosted:     w.HintsPosted,
			Winner:          w.Winner,
		})
	}

	return d
}
