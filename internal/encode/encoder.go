package encode

// Encoder encodes successive observations of one cookie series. Session
// cookies commonly hold the same value across consecutive requests, so the
// last value/decimal pair is memoised and the model only advances on change.
type Encoder struct {
	model    *Model
	lastVal  string
	lastDec  float64
	haveLast bool
}

func NewEncoder() *Encoder { return &Encoder{model: NewModel()} }

// Encode returns the decimal for value, updating the model unless value
// repeats the immediately preceding observation.
func (e *Encoder) Encode(value string) float64 {
	if e.haveLast && value == e.lastVal {
		return e.lastDec
	}
	e.model.Update(value)
	d := e.model.Encode(value)
	e.lastVal, e.lastDec, e.haveLast = value, d, true
	return d
}
