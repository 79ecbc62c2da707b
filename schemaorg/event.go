package schemaorg

import "time"

//schemald:type
type Event struct {
	Name                    string    `jsonld:",required"`
	StartDate               time.Time `jsonld:",required"`
	EndDate                 time.Time
	Description             string
	Image                   *ImageObject
	Location                string
	Address                 *PostalAddress
	Organizer               *Organization
	Offers                  []Offer
	EventStatus             string
	EventAttendanceMode     string
	URL                     string `jsonld:"url"`
	Performer               string
	AggregateRating         *AggregateRating
	IsAccessibleForFree     *bool
	MaximumAttendeeCapacity int
	TypicalAgeRange         string
	Sponsor                 string
	Duration                time.Duration
}
