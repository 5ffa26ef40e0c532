package seolens

import (
	"github.com/seolens/seolens/vo"
)

// Suggest turns a tag record into ordered improvement tips. It reevaluates
// the raw tags instead of reading the scorer's issue list, wording and
// granularity differ, title and description length split into a too short
// and a too long tip.
func Suggest(tags vo.ParsedTags) []string {
	suggestions := []string{}
	add := func(tip string) {
		suggestions = append(suggestions, tip)
	}

	switch {
	case tags.Title == nil:
		add("Add a <title> tag, it is the headline of your search result.")
	case trimmedLength(*tags.Title) < 50:
		add("Title is too short, aim for 50–60 characters.")
	case trimmedLength(*tags.Title) > 60:
		add("Title is too long and will be cut off in search results, aim for 50–60 characters.")
	}
	switch {
	case tags.Description == nil:
		add("Add a meta description, search engines use it as the result snippet.")
	case trimmedLength(*tags.Description) < 150:
		add("Description is too short, aim for 150–160 characters.")
	case trimmedLength(*tags.Description) > 160:
		add("Description is too long and will be truncated, aim for 150–160 characters.")
	}
	if tags.Canonical == nil {
		add("Add a canonical link to mark the preferred URL of this page.")
	}
	if robotsBlocksIndexing(tags.Robots) {
		add("Remove noindex/nofollow from the robots meta tag, it keeps search engines away from this page.")
	}
	// stricter than the scorer on purpose, og:site_name does not
	// substitute og:title here
	if !hasAll(tags.OpenGraph, "title", "description", "image") {
		add("Add the Open Graph tags og:title, og:description and og:image for rich link previews.")
	}
	if !hasAll(tags.TwitterCard, "title", "description", "image") {
		add("Add the Twitter Card tags twitter:title, twitter:description and twitter:image and set twitter:card to summary_large_image.")
	}
	return suggestions
}

func hasAll(m map[string]string, keys ...string) bool {
	for _, key := range keys {
		if _, ok := m[key]; !ok {
			return false
		}
	}
	return true
}
