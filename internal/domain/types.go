package domain

import (
	"net/url"
	"time"
)

// Sample is a single observation of one cookie's value.
type Sample struct {
	At    time.Time
	Value string
}

// EncodedSample pairs an observation with its arithmetic-coded decimal.
type EncodedSample struct {
	Sample
	Decimal float64
}

// CollectOptions control one capture run.
type CollectOptions struct {
	Payload   url.Values    // login form fields posted before each GET; may be empty
	Requests  int           // number of fresh sessions to open
	Throttle  bool          // pace sessions at one per 500ms
	Timeout   time.Duration // per-request timeout
	UserAgent string        // optional User-Agent override
}

// Run is one recorded capture, as kept in the catalog.
type Run struct {
	ID          string
	URL         string
	Domain      string
	OutDir      string
	Requests    int
	Cookies     int // distinct cookie names observed
	Samples     int // total observations written
	StartedUTC  int64
	FinishedUTC int64
}
