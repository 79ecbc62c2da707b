package schemaorg

//schemald:type
type Person struct {
	Name     string `jsonld:",required"`
	URL      string `jsonld:"url"`
	Image    ImageObject
	JobTitle string
	SameAs   []string
}

//schemald:type
type Organization struct {
	Name        string `jsonld:",required"`
	URL         string `jsonld:"url"`
	Logo        string
	Description string
	Email       string
	Telephone   string
	Address     *PostalAddress
	SameAs      []string
}

//schemald:type
type PostalAddress struct {
	StreetAddress   string
	AddressLocality string
	AddressRegion   string
	PostalCode      string
	AddressCountry  string
}

// IsZero reports whether no address line is set.
func (a PostalAddress) IsZero() bool { return a == PostalAddress{} }

//schemald:type
type GeoCoordinates struct {
	Latitude  float64 `jsonld:",required"`
	Longitude float64 `jsonld:",required"`
	Elevation *float64
	Address   *PostalAddress
}

//schemald:type
type WebSite struct {
	Name            string `jsonld:",required"`
	URL             string `jsonld:"url,required"`
	Description     string
	PotentialAction string
}

//schemald:type
type LocalBusiness struct {
	Name               string `jsonld:",required"`
	Description        string
	URL                string `jsonld:"url"`
	Image              *ImageObject
	Telephone          string
	Email              string
	PriceRange         string
	Address            *PostalAddress
	Geo                *GeoCoordinates
	OpeningHours       []string
	CurrenciesAccepted string
	PaymentAccepted    string
	ServesCuisine      string
	SameAs             []string
	AggregateRating    *AggregateRating
	Review             []Review
	AreaServed         string
	Logo               *ImageObject
	BranchCode         string
}
