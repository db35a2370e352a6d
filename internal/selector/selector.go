package selector

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"randbg/internal/domain"
)

// SystemRand draws from the auto-seeded generator of math/rand/v2.
// Statistically uniform; cryptographic strength is not needed here.
type SystemRand struct{}

// NewSystemRand creates the production randomness source
func NewSystemRand() *SystemRand {
	return &SystemRand{}
}

// IntN returns a uniform value in [0, n)
func (*SystemRand) IntN(n int) int {
	return rand.IntN(n)
}

// RandomSelector picks one candidate uniformly at random, avoiding the
// most recently applied wallpaper when more than one candidate exists
type RandomSelector struct {
	logger *zap.Logger
	rand   domain.Rand
}

// NewRandomSelector creates a selector backed by the given randomness source
func NewRandomSelector(logger *zap.Logger, rnd domain.Rand) *RandomSelector {
	return &RandomSelector{logger: logger, rand: rnd}
}

// Select draws one path from candidates, excluding exclude from the draw.
// When the exclusion empties the set, the draw falls back to the full
// candidate list: repeating a wallpaper beats failing the run.
func (s *RandomSelector) Select(candidates []string, exclude string) (string, error) {
	effective := candidates
	if exclude != "" {
		effective = make([]string, 0, len(candidates))
		for _, c := range candidates {
			if c != exclude {
				effective = append(effective, c)
			}
		}
		if len(effective) == 0 {
			effective = candidates
		}
	}

	if len(effective) == 0 {
		return "", domain.ErrNoCandidates
	}

	selected := effective[s.rand.IntN(len(effective))]

	s.logger.Debug("Wallpaper selected",
		zap.String("path", selected),
		zap.Int("effective", len(effective)),
		zap.Int("candidates", len(candidates)))

	return selected, nil
}
