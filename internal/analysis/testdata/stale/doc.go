package stale

import "time"

//schemald:type HowTo
type Guide struct {
	Name     string        `jsonld:",required"`
	Duration time.Duration `jsonld:"totalTime"`
}
