package seolens

import (
	"strings"
	"unicode/utf8"

	"github.com/seolens/seolens/vo"
)

const (
	penaltyMissingTitle       = 20
	penaltyMissingDescription = 20
	penaltyLength             = 5
	penaltyMissingCanonical   = 10
	penaltyRobotsBlocked      = 10
	penaltyOpenGraph          = 10
	penaltyTwitterCard        = 10
)

const (
	issueMissingTitle       = "Missing title"
	issueTitleLength        = "Title length suboptimal (50–60)"
	issueMissingDescription = "Missing meta description"
	issueDescriptionLength  = "Description length suboptimal (150–160)"
	issueMissingCanonical   = "Missing canonical link"
	issueRobotsBlocked      = "Robots prevents indexing"
	issueOpenGraph          = "Incomplete Open Graph tags"
	issueTwitterCard        = "Incomplete Twitter Card tags"
)

// Score rates a tag record against fixed heuristics. It starts at 100,
// subtracts a fixed penalty per triggered rule and clamps at 0 once at the
// end. Issues come back in rule evaluation order.
func Score(tags vo.ParsedTags) vo.ScoreResult {
	score := 100
	issues := []string{}
	penalize := func(penalty int, issue string) {
		score -= penalty
		issues = append(issues, issue)
	}

	switch {
	case tags.Title == nil:
		penalize(penaltyMissingTitle, issueMissingTitle)
	case lengthOutside(*tags.Title, 50, 60):
		penalize(penaltyLength, issueTitleLength)
	}
	switch {
	case tags.Description == nil:
		penalize(penaltyMissingDescription, issueMissingDescription)
	case lengthOutside(*tags.Description, 150, 160):
		penalize(penaltyLength, issueDescriptionLength)
	}
	if tags.Canonical == nil {
		penalize(penaltyMissingCanonical, issueMissingCanonical)
	}
	if robotsBlocksIndexing(tags.Robots) {
		penalize(penaltyRobotsBlocked, issueRobotsBlocked)
	}
	if !openGraphComplete(tags) {
		penalize(penaltyOpenGraph, issueOpenGraph)
	}
	if !twitterCardComplete(tags) {
		penalize(penaltyTwitterCard, issueTwitterCard)
	}

	if score < 0 {
		score = 0
	}
	return vo.ScoreResult{
		Score:  score,
		Issues: issues,
	}
}

func trimmedLength(value string) int {
	return utf8.RuneCountInString(strings.TrimSpace(value))
}

// lengthOutside is inclusive on both bounds, exactly min or max is fine
func lengthOutside(value string, min, max int) bool {
	l := trimmedLength(value)
	return l < min || l > max
}

func robotsBlocksIndexing(robots *string) bool {
	if robots == nil {
		return false
	}
	value := strings.ToLower(*robots)
	return strings.Contains(value, "noindex") || strings.Contains(value, "nofollow")
}

// openGraphComplete accepts og:site_name in place of og:title. The advisor
// does not, see Suggest.
func openGraphComplete(tags vo.ParsedTags) bool {
	_, hasTitle := tags.OpenGraph["title"]
	_, hasSiteName := tags.OpenGraph["site_name"]
	_, hasDescription := tags.OpenGraph["description"]
	_, hasImage := tags.OpenGraph["image"]
	return (hasTitle || hasSiteName) && hasDescription && hasImage
}

func twitterCardComplete(tags vo.ParsedTags) bool {
	_, hasTitle := tags.TwitterCard["title"]
	_, hasDescription := tags.TwitterCard["description"]
	_, hasImage := tags.TwitterCard["image"]
	return hasTitle && hasDescription && hasImage
}
