package vo

// ParsedTags is the structured meta tag record of a single html document.
// Optional fields are nil when the element or its attribute is missing,
// a pointer to "" means the tag is there with an empty value.
//
// The maps hold namespace suffixes, so
// <meta property="og:site_name" content="Example"> becomes
// OpenGraph["site_name"] = "Example".
type ParsedTags struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Canonical   *string           `json:"canonical"`
	Robots      *string           `json:"robots"`
	OpenGraph   map[string]string `json:"openGraph"`
	TwitterCard map[string]string `json:"twitterCard"`
}
