package seolens

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seolens/seolens/vo"
)

const (
	prefixOpenGraph = "og:"
	prefixTwitter   = "twitter:"
)

// Extract parses html and pulls the meta tag record out of it. Parsing is
// permissive, whatever can not be parsed simply ends up as absent tags.
func Extract(html string) vo.ParsedTags {
	doc, errDoc := goquery.NewDocumentFromReader(strings.NewReader(html))
	if errDoc != nil {
		return vo.ParsedTags{
			OpenGraph:   map[string]string{},
			TwitterCard: map[string]string{},
		}
	}
	return ExtractDocument(doc)
}

func ExtractDocument(doc *goquery.Document) vo.ParsedTags {
	tags := vo.ParsedTags{
		OpenGraph:   map[string]string{},
		TwitterCard: map[string]string{},
	}
	titleSelection := doc.Find("title").First()
	if titleSelection.Length() > 0 {
		title := titleSelection.Text()
		tags.Title = &title
	}
	if description, ok := doc.Find("meta[name=description]").First().Attr("content"); ok {
		tags.Description = &description
	}
	if canonical, ok := doc.Find("link[rel=canonical]").First().Attr("href"); ok {
		tags.Canonical = &canonical
	}
	if robots, ok := doc.Find("meta[name=robots]").First().Attr("content"); ok {
		tags.Robots = &robots
	}
	doc.Find("meta[property^='og:']").Each(func(i int, sel *goquery.Selection) {
		property, _ := sel.Attr("property")
		addTag(tags.OpenGraph, prefixOpenGraph, property, sel)
	})
	doc.Find("meta[name^='twitter:']").Each(func(i int, sel *goquery.Selection) {
		name, _ := sel.Attr("name")
		addTag(tags.TwitterCard, prefixTwitter, name, sel)
	})
	// some pages author their twitter tags with property instead of name,
	// those only count when no name based tag filled the key
	doc.Find("meta[property^='twitter:']").Each(func(i int, sel *goquery.Selection) {
		property, _ := sel.Attr("property")
		addTag(tags.TwitterCard, prefixTwitter, property, sel)
	})
	return tags
}

// addTag merges one meta tag into a namespace map, first occurrence wins
func addTag(m map[string]string, prefix, attr string, sel *goquery.Selection) {
	key := strings.TrimPrefix(attr, prefix)
	if _, ok := m[key]; ok {
		return
	}
	m[key] = sel.AttrOr("content", "")
}
