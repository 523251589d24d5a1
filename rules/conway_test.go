package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	var (
		// survival only on 2 or 3 neighbours
		wantAlive = map[int]bool{2: true, 3: true}
		// birth only on exactly 3 neighbours
		wantDead = map[int]bool{3: true}
	)
	for neighbours := 0; neighbours <= 8; neighbours++ {
		if got := ApplyConwayRules(neighbours, true); got != wantAlive[neighbours] {
			t.Errorf("alive cell with %d neighbours: got %v, want %v",
				neighbours, got, wantAlive[neighbours])
		}
		if got := ApplyConwayRules(neighbours, false); got != wantDead[neighbours] {
			t.Errorf("dead cell with %d neighbours: got %v, want %v",
				neighbours, got, wantDead[neighbours])
		}
	}
}
