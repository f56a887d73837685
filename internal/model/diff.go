package model

// Diff compares two window id sets and returns the ids that appeared
// and disappeared, each in the enumeration order of its own snapshot.
// Only set membership is compared; attribute changes on surviving ids
// are not changes.
func Diff(prev, curr []WindowID) (appeared, disappeared []WindowID) {
	prevSet := make(map[WindowID]bool, len(prev))
	for _, id := range prev {
		prevSet[id] = true
	}
	currSet := make(map[WindowID]bool, len(curr))
	for _, id := range curr {
		currSet[id] = true
	}

	for _, id := range curr {
		if !prevSet[id] {
			appeared = append(appeared, id)
		}
	}
	for _, id := range prev {
		if !currSet[id] {
			disappeared = append(disappeared, id)
		}
	}
	return appeared, disappeared
}
