// Package highscore tracks the best score per category and persists the
// mapping as a single JSON record in a KV backend.
package highscore

import (
	"maps"
	"time"
)

// DateLayout is the format of Entry.AchievedOn.
const DateLayout = "2006-01-02"

// Entry is the best score recorded for one category.
type Entry struct {
	Score      int    `json:"score"`
	AchievedOn string `json:"date"`
}

// Scores maps category ID to its best entry.
type Scores map[string]Entry

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	maps.Copy(out, s)
	return out
}

// Best returns the stored score for categoryID, or 0 when there is none.
func (s Scores) Best(categoryID string) int {
	return s[categoryID].Score
}

// RecordIfBetter returns scores with a new entry for categoryID when score
// strictly beats the stored one, or when the category has no entry yet.
// Otherwise, or when the arguments are out of range, it returns scores
// unchanged. The input map is never modified.
func RecordIfBetter(scores Scores, categoryID string, score, totalQuestions int, now time.Time) (Scores, bool) {
	if categoryID == "" || score < 0 || totalQuestions <= 0 || score > totalQuestions {
		return scores, false
	}
	if existing, ok := scores[categoryID]; ok && score <= existing.Score {
		return scores, false
	}

	updated := scores.Clone()
	updated[categoryID] = Entry{
		Score:      score,
		AchievedOn: now.Format(DateLayout),
	}
	return updated, true
}
