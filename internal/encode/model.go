package encode

// interval is a half-open [start, end) slice of the unit line.
type interval struct {
	start, end float64
}

// Model holds the adaptive per-character cumulative intervals for one series.
type Model struct {
	ranges map[rune]interval
}

func NewModel() *Model { return &Model{ranges: make(map[rune]interval)} }

// Update folds a value's character frequencies into the model. Characters are
// walked in first-appearance order and assigned consecutive slots sized by
// their frequency; a character seen before keeps its relative position inside
// its new slot, an unseen one takes the slot verbatim. An empty value leaves
// the model untouched.
func (m *Model) Update(value string) {
	runes := []rune(value)
	total := float64(len(runes))
	if total == 0 {
		return
	}

	counts := make(map[rune]int, len(runes))
	order := make([]rune, 0, len(runes))
	for _, r := range runes {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	start := 0.0
	for _, r := range order {
		end := start + float64(counts[r])/total
		if old, ok := m.ranges[r]; ok {
			m.ranges[r] = interval{
				start: start + old.start*(end-start),
				end:   start + old.end*(end-start),
			}
		} else {
			m.ranges[r] = interval{start: start, end: end}
		}
		start = end
	}
}

// Encode narrows the unit interval through each character's range and returns
// the midpoint, flipped and scaled for charting: increasing cookie values
// would otherwise chart as decreasing, and the x10 keeps the axis readable.
func (m *Model) Encode(value string) float64 {
	start, size := 0.0, 1.0
	for _, r := range value {
		rng := m.ranges[r]
		start += size * rng.start
		size *= rng.end - rng.start
	}
	return (1 - (start + 0.5*size)) * 10
}
