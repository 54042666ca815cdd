package model

// Leaderboard maps an author identifier to the number of rounds it has won.
type Leaderboard map[string]int

// IncrementScore returns a copy of lb with authorID's win count raised by one.
// A missing author counts as zero. lb itself is left untouched.
func IncrementScore(lb Leaderboard, authorID string) Leaderboard {
	next := make(Leaderboard, len(lb)+1)
	for k, v := range lb {
		next[k] = v
	}
	next[authorID]++
	return next
}
