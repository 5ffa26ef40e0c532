package seolens

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"github.com/seolens/seolens/vo"
)

func printers(w io.Writer) (printh func(header ...interface{}), println func(a ...interface{}), printsep func()) {
	printsep = func() {
		fmt.Fprintln(w, "-----------------------------------------------------------------------------")
	}
	println = func(a ...interface{}) { fmt.Fprintln(w, a...) }
	printh = func(header ...interface{}) {
		println()
		println(header...)
		printsep()
	}
	return
}

// WriteReport writes a plain text report of an analysis
func WriteReport(w io.Writer, a vo.Analysis) {
	printh, println, printsep := printers(w)
	printh("seo analysis", a.TargetURL)
	if a.Code != 0 {
		println("fetched", a.FinalURL, "(", a.Code, ") via", a.Strategy, "in", a.Duration)
	}
	println("score", a.Result.Score, "/ 100")

	if len(a.Result.Issues) > 0 {
		printh("issues")
		for _, issue := range a.Result.Issues {
			println("	", issue)
		}
	}
	if len(a.Suggestions) > 0 {
		printh("suggestions")
		for _, suggestion := range a.Suggestions {
			println("	", suggestion)
		}
	}

	printh("search result preview")
	println("	", a.Previews.Serp.Title)
	println("	", a.Previews.Serp.DisplayURL)
	println("	", a.Previews.Serp.Description)

	printh("open graph preview")
	printCard(println, a.Previews.OpenGraph)

	printh("twitter card preview (" + a.Previews.Twitter.Type + ")")
	printCard(println, a.Previews.Twitter.Card)

	printh("tags")
	yamlBytes, errYaml := yaml.Marshal(a.Tags)
	if errYaml != nil {
		println("could not print tags", errYaml)
	} else {
		println(string(yamlBytes))
	}
	printsep()
}

func printCard(println func(a ...interface{}), card vo.Card) {
	println("	", card.Title)
	println("	", card.Description)
	if card.Image != "" {
		println("	image:", card.Image)
	}
	if card.SiteName != "" {
		println("	site:", card.SiteName)
	}
}
