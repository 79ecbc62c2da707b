package schemaorg

import "time"

// CreativeWork holds the properties shared by Article and BlogPosting. It is
// embedded, so its fields are written inline.
type CreativeWork struct {
	Headline       string `jsonld:",required"`
	Description    string
	Image          ImageObject
	DatePublished  time.Time
	DateModified   time.Time
	Author         *Person
	Publisher      *Organization
	ArticleBody    string
	URL            string `jsonld:"url"`
	ArticleSection string
}

//schemald:type
type Article struct {
	CreativeWork
	AlternativeHeadline string
	InLanguage          string
	Keywords            string
	IsAccessibleForFree *bool
	CommentCount        int
	WordCount           int
	AggregateRating     *AggregateRating
	Video               *VideoObject
	MainEntityOfPage    string
	ThumbnailURL        string `jsonld:"thumbnailUrl"`
	SameAs              []string
	CopyrightYear       int
	License             string
}

//schemald:type
type BlogPosting struct {
	CreativeWork
	WordCount int
}
