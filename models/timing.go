package models

import "time"

// Timings maps a named pipeline step to its elapsed duration. It is purely
// observational: nothing in the pipeline reads it back, and dropping the
// collector that fills it leaves every result byte-identical.
type Timings map[string]time.Duration
