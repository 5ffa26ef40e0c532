// Package preview renders tag records into the previews a search engine or
// a social platform would show for the page, with the same tag fallback
// chains those platforms apply.
package preview

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/seolens/seolens/vo"
)

const (
	maxSerpTitle       = 60
	maxSerpDescription = 160

	fallbackSerpTitle      = "Untitled page"
	defaultTwitterCardType = "summary_large_image"
)

func Build(targetURL string, tags vo.ParsedTags) vo.Previews {
	return vo.Previews{
		Serp:      Serp(targetURL, tags),
		OpenGraph: OpenGraphCard(targetURL, tags),
		Twitter:   TwitterCard(targetURL, tags),
	}
}

// Serp is the search result snippet for a page, title and description
// truncated the way result pages truncate them.
func Serp(targetURL string, tags vo.ParsedTags) vo.SerpPreview {
	title := text(tags.Title)
	if title == "" {
		title = tags.OpenGraph["title"]
	}
	if title == "" {
		title = fallbackSerpTitle
	}
	description := text(tags.Description)
	if description == "" {
		description = tags.OpenGraph["description"]
	}
	return vo.SerpPreview{
		Title:       truncate(title, maxSerpTitle),
		DisplayURL:  displayURL(targetURL, text(tags.Canonical)),
		Description: truncate(description, maxSerpDescription),
	}
}

func OpenGraphCard(targetURL string, tags vo.ParsedTags) vo.Card {
	title := tags.OpenGraph["title"]
	if title == "" {
		title = text(tags.Title)
	}
	description := tags.OpenGraph["description"]
	if description == "" {
		description = text(tags.Description)
	}
	siteName := tags.OpenGraph["site_name"]
	if siteName == "" {
		siteName = host(targetURL)
	}
	return vo.Card{
		Title:       title,
		Description: description,
		Image:       tags.OpenGraph["image"],
		SiteName:    siteName,
	}
}

// TwitterCard falls back from twitter: to og: per field, twitter clients
// do the same when a card tag is missing.
func TwitterCard(targetURL string, tags vo.ParsedTags) vo.TwitterPreview {
	pick := func(key string) string {
		if value := tags.TwitterCard[key]; value != "" {
			return value
		}
		return tags.OpenGraph[key]
	}
	title := pick("title")
	if title == "" {
		title = text(tags.Title)
	}
	description := pick("description")
	if description == "" {
		description = text(tags.Description)
	}
	cardType := tags.TwitterCard["card"]
	if cardType == "" {
		cardType = defaultTwitterCardType
	}
	return vo.TwitterPreview{
		Card: vo.Card{
			Title:       title,
			Description: description,
			Image:       pick("image"),
		},
		Type: cardType,
	}
}

func text(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

// displayURL prefers the canonical, resolving it against the target when it
// is relative
func displayURL(targetURL, canonical string) string {
	if canonical == "" {
		return targetURL
	}
	canonicalURL, errParse := url.Parse(canonical)
	if errParse != nil {
		return targetURL
	}
	if canonicalURL.Scheme != "" {
		return canonical
	}
	baseURL, errParse := url.Parse(targetURL)
	if errParse != nil {
		return targetURL
	}
	return baseURL.ResolveReference(canonicalURL).String()
}

func host(targetURL string) string {
	u, errParse := url.Parse(targetURL)
	if errParse != nil {
		return ""
	}
	return u.Host
}

func truncate(value string, max int) string {
	if utf8.RuneCountInString(value) <= max {
		return value
	}
	runes := []rune(value)
	return strings.TrimRight(string(runes[:max-1]), " ") + "…"
}
