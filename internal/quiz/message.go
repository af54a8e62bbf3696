package quiz

// Tier buckets a final score percentage.
type Tier int

const (
	TierLearning  Tier = iota // below 50%
	TierGood                  // 50% and up
	TierExcellent             // 75% and up
	TierMaster                // 100%
)

var tierText = map[Tier]string{
	TierMaster:    "🥳 Amazing! You are a Quiz Master!",
	TierExcellent: "🌟 Excellent job! You did great!",
	TierGood:      "👍 Good effort! Keep practicing!",
	TierLearning:  "💡 You're learning! Try again to improve!",
}

// Message is the encouragement shown on the results screen.
type Message struct {
	Tier Tier
	Text string
}

// MessageFor maps score out of total to a tier message. Boundaries are
// inclusive and resolve to the higher tier. A non-positive total yields
// the learning tier.
func MessageFor(score, total int) Message {
	tier := TierLearning
	if total > 0 {
		percentage := float64(score) / float64(total) * 100
		switch {
		case percentage == 100:
			tier = TierMaster
		case percentage >= 75:
			tier = TierExcellent
		case percentage >= 50:
			tier = TierGood
		}
	}
	return Message{Tier: tier, Text: tierText[tier]}
}
