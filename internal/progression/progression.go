package progression

import "github.com/ecoquest/ecoquest-backend/internal/model"

// PointsPerLevel is the fixed level step: users level up every 100 points.
const PointsPerLevel = 100

const (
	BadgeQuizMaster      = "Quiz Master"
	BadgeSortingChampion = "Sorting Champion"
	BadgeEnergyHero      = "Energy Hero"
)

// AwardContext carries the facts badge rules evaluate against: the outcome of
// a game session, or the badge attached to a completed challenge.
type AwardContext struct {
	GameType       model.GameType
	Level          int
	Score          int
	ChallengeBadge string
}

// LevelForPoints derives the progression tier from total points. Level 1 is
// the floor for zero points.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// NewlyEarned evaluates the badge rule table against the award context and
// the badges already held. Rules fire independently; a badge already held is
// skipped, so re-triggering a satisfied condition is a no-op.
func NewlyEarned(award AwardContext, held model.StringList) []string {
	var earned []string

	add := func(badge string) {
		if badge == "" || held.Contains(badge) {
			return
		}
		for _, b := range earned {
			if b == badge {
				return
			}
		}
		earned = append(earned, badge)
	}

	switch award.GameType {
	case model.GameTypeQuiz:
		if award.Score >= 80 {
			add(BadgeQuizMaster)
		}
	case model.GameTypeWasteSorting:
		if award.Level == 5 {
			add(BadgeSortingChampion)
		}
	case model.GameTypeEnergySaving:
		if award.Level == 5 {
			add(BadgeEnergyHero)
		}
	}

	add(award.ChallengeBadge)

	return earned
}
