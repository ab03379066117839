package system

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/pkg/gridmap"
)

// ResolveTarget picks one live enemy within rangePx of origin according to mode.
// Ties go to the earliest enemy in iteration order. It does not mutate anything.
func ResolveTarget(origin gridmap.Point, rangePx float64, enemies []*component.Enemy, mode component.TargetMode) (*component.Enemy, bool) {
	var best *component.Enemy
	var bestKey float64

	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		d := origin.Dist(e.Pos)
		if d > rangePx {
			continue
		}

		var key float64
		switch mode {
		case component.TargetFront:
			key = -e.Progress
		case component.TargetWeak:
			key = e.Health
		case component.TargetStrong:
			key = -e.Health
		default: // TargetNearest
			key = d
		}

		if best == nil || key < bestKey {
			best, bestKey = e, key
		}
	}
	return best, best != nil
}

// nextChainTarget ищет ближайшего живого врага в пределах maxDist, ещё не поражённого цепью.
func nextChainTarget(from gridmap.Point, maxDist float64, enemies []*component.Enemy, hit map[*component.Enemy]bool) *component.Enemy {
	var best *component.Enemy
	bestDist := maxDist
	for _, e := range enemies {
		if !e.Alive() || hit[e] {
			continue
		}
		if d := from.Dist(e.Pos); d <= bestDist && (best == nil || d < bestDist) {
			best, bestDist = e, d
		}
	}
	return best
}
