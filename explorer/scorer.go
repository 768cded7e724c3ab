package explorer

const (
	boundaryPenalty = 2
	obstaclePenalty = 2
	visitedPenalty  = 1

	priorityScore   = 4
	preferableScore = 2
)

// ScoreDeadEnd estimates how likely c is to become expensive to reach later
// and returns the frontier status matching that risk.
//
// Each of the four raw grid positions around c adds to the score: a position
// outside the map or a known obstacle adds 2, a visited position or the
// agent's current coordinate adds 1. Reaching 4 yields Priority immediately;
// otherwise 2 or more yields Preferable and anything lower Unvisited.
func ScoreDeadEnd(gt GroundTruthMap, mem *Memory, current, c Coordinate) NodeStatus {
	score := 0
	for _, d := range Directions {
		p := c.Step(d)
		if !gt.HasNode(p) {
			score += boundaryPenalty
		}
		switch status := mem.Status(p); {
		case status == Obstacle:
			score += obstaclePenalty
		case status == Visited || p == current:
			score += visitedPenalty
		}
		if score >= priorityScore {
			return Priority
		}
	}
	if score >= preferableScore {
		return Preferable
	}
	return Unvisited
}
