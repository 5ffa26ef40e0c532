package vo

// SerpPreview is a search result snippet as a search engine would render it.
type SerpPreview struct {
	Title       string `json:"title"`
	DisplayURL  string `json:"displayUrl"`
	Description string `json:"description"`
}

// Card is a social share preview after all tag fallbacks were applied.
type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SiteName    string `json:"siteName,omitempty"`
}

type TwitterPreview struct {
	Card
	Type string `json:"type"`
}

type Previews struct {
	Serp      SerpPreview    `json:"serp"`
	OpenGraph Card           `json:"openGraph"`
	Twitter   TwitterPreview `json:"twitter"`
}
