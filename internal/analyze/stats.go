package analyze

import (
	"math"

	"cookietrace/internal/domain"
)

// Stats summarises one encoded series' predictability signals. A low entropy
// or a tiny decimal spread is the numeric counterpart of a flat or trending
// chart.
type Stats struct {
	Name     string
	Samples  int
	Distinct int     // distinct whole values observed
	Repeat   float64 // fraction of samples repeating an already-seen value
	Entropy  float64 // Shannon entropy over whole values, in bits
	Spread   float64 // max-min of the encoded decimals
}

// Summarise computes the predictability signals for one encoded series.
func Summarise(name string, samples []domain.EncodedSample) Stats {
	st := Stats{Name: name, Samples: len(samples)}
	if len(samples) == 0 {
		return st
	}

	freq := make(map[string]int, len(samples))
	lo, hi := samples[0].Decimal, samples[0].Decimal
	for _, s := range samples {
		freq[s.Value]++
		if s.Decimal < lo {
			lo = s.Decimal
		}
		if s.Decimal > hi {
			hi = s.Decimal
		}
	}

	st.Distinct = len(freq)
	st.Repeat = 1 - float64(st.Distinct)/float64(st.Samples)
	total := float64(st.Samples)
	for _, n := range freq {
		p := float64(n) / total
		st.Entropy -= p * math.Log2(p)
	}
	st.Spread = hi - lo
	return st
}
