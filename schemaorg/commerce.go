package schemaorg

import (
	"encoding/json"
	"time"
)

//schemald:type
type AggregateRating struct {
	RatingValue float64
	RatingCount int
	ReviewCount int
	BestRating  int
	WorstRating *int
}

// IsZero reports whether no rating data is set.
func (r AggregateRating) IsZero() bool { return r == AggregateRating{} }

//schemald:type
type Rating struct {
	RatingValue float64 `jsonld:",required"`
	BestRating  int
	WorstRating *int
}

//schemald:type
type Review struct {
	ReviewBody    string `jsonld:",required"`
	ReviewRating  *Rating
	Author        string
	DatePublished time.Time
	ItemReviewed  string
}

//schemald:type
type Offer struct {
	// Price keeps its decimal text verbatim, e.g. "12.50".
	Price         json.Number
	PriceCurrency string
	Availability  string
	URL           string `jsonld:"url"`
	ValidFrom     time.Time
	ValidThrough  time.Time
	Seller        *Organization
	ItemCondition string
}

//schemald:type
type Product struct {
	Name            string `jsonld:",required"`
	Description     string
	Image           []ImageObject
	Brand           string
	SKU             string `jsonld:"sku"`
	GTIN            string `jsonld:"gtin"`
	MPN             string `jsonld:"mpn"`
	Category        string
	AggregateRating AggregateRating
	Review          []Review
	Offers          []Offer
}
