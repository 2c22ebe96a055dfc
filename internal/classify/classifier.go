package classify

import (
	"log/slog"
	"strings"

	"github.com/adeyemi-oso/doctriage/constants"
)

// Classifier scores text against a fixed keyword table per category and
// picks a winner. The table is read-only after construction, so a single
// Classifier is safe for concurrent use.
type Classifier struct {
	profiles []Profile
	logger   *slog.Logger
}

func NewClassifier(profiles []Profile, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}
	return &Classifier{profiles: profiles, logger: logger}
}

// Classify assigns a category to the given text.
//
// Each anchor present as a case-insensitive substring contributes 3 points,
// each context term 1 point, at most once per keyword regardless of how
// often it recurs. Ties resolve to the first-declared profile. A winning
// score of zero means nothing matched and yields Unknown.
func (c *Classifier) Classify(text string) constants.Category {
	if text == "" {
		return constants.Unknown
	}
	t := strings.ToLower(text)

	best := constants.Unknown
	bestScore := 0
	for _, p := range c.profiles {
		score := 0
		for _, k := range p.Anchors {
			if strings.Contains(t, k) {
				score += 3
			}
		}
		for _, k := range p.Context {
			if strings.Contains(t, k) {
				score++
			}
		}
		// strictly greater: earlier profiles win ties
		if score > bestScore {
			best = p.Category
			bestScore = score
		}
	}

	if bestScore == 0 {
		return constants.Unknown
	}
	c.logger.Debug("classified document", "category", best, "score", bestScore)
	return best
}
