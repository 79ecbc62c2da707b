package schemaorg

import "time"

//schemald:type FAQPage
type FAQPage struct {
	MainEntity  []Question `jsonld:",required"`
	Name        string
	Description string
}

//schemald:type
type Question struct {
	Name            string `jsonld:",required"`
	AcceptedAnswer  []Answer
	SuggestedAnswer []Answer
}

//schemald:type
type Answer struct {
	Text        string `jsonld:",required"`
	Author      string
	DateCreated time.Time
}

//schemald:type
type BreadcrumbList struct {
	ItemListElement []ListItem `jsonld:",required"`
	Name            string
}

//schemald:type
type ListItem struct {
	Position int    `jsonld:",required"`
	Name     string `jsonld:",required"`
	Item     string `jsonld:",required"`
}
