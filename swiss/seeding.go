package swiss

// SeedingIssues lists the ways a proposed seeding order fails to be a
// permutation of the season roster.
type SeedingIssues struct {
	Missing    []int // in the roster but absent from the order
	Extra      []int // in the order but not in the roster
	Duplicates []int // appear more than once in the order
}

// ValidateSeeding checks that order is a permutation of roster: same set of
// team IDs, no duplicates, no omissions. Returns nil when the order is valid.
func ValidateSeeding(roster []int, order []int) *SeedingIssues {
	inRoster := make(map[int]bool, len(roster))
	for _, teamID := range roster {
		inRoster[teamID] = true
	}

	issues := &SeedingIssues{}
	seen := make(map[int]int, len(order))
	for _, teamID := range order {
		seen[teamID]++
		if seen[teamID] == 2 {
			issues.Duplicates = append(issues.Duplicates, teamID)
		}
		if !inRoster[teamID] && seen[teamID] == 1 {
			issues.Extra = append(issues.Extra, teamID)
		}
	}
	for _, teamID := range roster {
		if seen[teamID] == 0 {
			issues.Missing = append(issues.Missing, teamID)
		}
	}

	if len(issues.Missing) == 0 && len(issues.Extra) == 0 && len(issues.Duplicates) == 0 {
		return nil
	}
	return issues
}

// MoveUp swaps the entry at position i (0-based) with its predecessor and
// returns the order. Moving the first entry up is a no-op, as is an index
// outside the slice.
func MoveUp(order []int, i int) []int {
	if i <= 0 || i >= len(order) {
		return order
	}
	order[i-1], order[i] = order[i], order[i-1]
	return order
}

// MoveDown swaps the entry at position i with its successor. Moving the last
// entry down is a no-op.
func MoveDown(order []int, i int) []int {
	if i < 0 || i >= len(order)-1 {
		return order
	}
	order[i], order[i+1] = order[i+1], order[i]
	return order
}
