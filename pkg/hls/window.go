package hls

// Select keeps the segments whose cumulative end time falls inside [w.Start, w.End].
// A segment that started before w.Start is kept as long as it ends at or after it.
// Scanning stops at the first segment ending past w.End.
func Select(segments []Segment, w Window) []Segment {
	selected := make([]Segment, 0)

	elapsed := 0.0
	for _, s := range segments {
		elapsed += s.Duration

		if elapsed > w.End {
			break
		}
		if elapsed >= w.Start {
			selected = append(selected, s)
		}
	}

	return selected
}
