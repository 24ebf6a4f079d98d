package world

import (
	"math/rand"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/entity"
)

// SpawnParams carries the per-tick inputs of the spawner.
type SpawnParams struct {
	Altitude         float64
	Score            int
	Held             *entity.Balloon // balloon the player is riding, nil otherwise
	IntervalScale    float64         // raises the lower bound of each new balloon interval
	EnemyProbability float64
}

// Spawner injects new balloons and enemies as the altitude grows.
type Spawner struct {
	balloon config.BalloonConfig
	enemy   config.EnemyConfig
	width   float64

	lastBalloon  float64
	nextInterval float64
	lastEnemy    float64
	enemySpacing float64
}

// NewSpawner creates a spawner. Call Reset before the first Step.
func NewSpawner(b config.BalloonConfig, e config.EnemyConfig, width float64) *Spawner {
	return &Spawner{balloon: b, enemy: e, width: width}
}

// Reset restarts both spawn counters from altitude.
func (s *Spawner) Reset(rng *rand.Rand, altitude float64, intervalScale float64) {
	s.lastBalloon = altitude
	s.lastEnemy = altitude
	s.enemySpacing = s.enemy.SpacingStart
	s.drawInterval(rng, intervalScale)
}

// NextInterval is the altitude gap before the next balloon.
func (s *Spawner) NextInterval() float64 { return s.nextInterval }

// EnemySpacing is the current altitude gap between enemy spawn attempts.
func (s *Spawner) EnemySpacing() float64 { return s.enemySpacing }

// drawInterval picks the next balloon gap in [min*scale, max]. The scale
// only narrows the range toward its top, the gap never exceeds max.
func (s *Spawner) drawInterval(rng *rand.Rand, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	hi := s.balloon.IntervalMax
	lo := min(s.balloon.IntervalMin*scale, hi)
	s.nextInterval = lo + rng.Float64()*(hi-lo)
}

// Step returns the entities to add this tick, at most one balloon and one
// enemy.
func (s *Spawner) Step(rng *rand.Rand, p SpawnParams) []entity.Entity {
	var out []entity.Entity

	if p.Altitude-s.lastBalloon > s.nextInterval {
		easy := p.Score < s.balloon.EasyScoreThreshold
		x := s.balloonX(rng, p.Held)
		y := -s.balloon.SpawnHeightFactor * s.balloon.Radius
		out = append(out, entity.NewRandomBalloon(rng, x, y, s.balloon, easy))
		s.lastBalloon = p.Altitude
		s.drawInterval(rng, p.IntervalScale)
	}

	if s.enemy.Enabled && p.Altitude-s.lastEnemy > s.enemySpacing {
		s.lastEnemy = p.Altitude
		s.enemySpacing = max(s.enemySpacing-s.enemy.SpacingStep, s.enemy.SpacingFloor)
		if rng.Float64() < p.EnemyProbability {
			out = append(out, entity.NewRandomEnemy(rng, s.enemy, s.width))
		}
	}

	return out
}

// balloonX picks a spawn column. While the player rides a balloon, a band
// of ExclusionFactor radii centered on it is kept free.
func (s *Spawner) balloonX(rng *rand.Rand, held *entity.Balloon) float64 {
	r := s.balloon.Radius
	lo, hi := 2*r, s.width-r

	if held != nil {
		band := s.balloon.ExclusionFactor * r
		if hi-band > lo {
			x := lo + rng.Float64()*(hi-band-lo)
			if x > held.X-band/2 {
				x += band
			}
			return x
		}
	}
	return lo + rng.Float64()*(hi-lo)
}
