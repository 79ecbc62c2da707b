package schemaorg

import "time"

//schemald:type
type ImageObject struct {
	URL        string `jsonld:"url"`
	ContentURL string `jsonld:"contentUrl"`
	Width      int
	Height     int
	Caption    string
}

// IsZero reports whether the image carries no data.
func (i ImageObject) IsZero() bool { return i == ImageObject{} }

//schemald:type
type VideoObject struct {
	Name         string `jsonld:",required"`
	ContentURL   string `jsonld:"contentUrl,required"`
	Description  string
	ThumbnailURL string `jsonld:"thumbnailUrl"`
	UploadDate   time.Time
	Duration     time.Duration
	EmbedURL     string `jsonld:"embedUrl"`
	Transcript   string
}
