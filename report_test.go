package seolens

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func TestWriteReport(t *testing.T) {
	s := NewService(testConf())
	analysis := s.AnalyzeHTML("https://www.example.com/", testDocHTML)
	t.Log(spew.Sdump(analysis.Result))

	buffer := &bytes.Buffer{}
	WriteReport(buffer, analysis)
	report := buffer.String()
	assert.Contains(t, report, "seo analysis https://www.example.com/")
	assert.Contains(t, report, "score 90 / 100")
	assert.Contains(t, report, issueTitleLength)
	assert.Contains(t, report, "Hello Tweet")
	assert.Contains(t, report, "title: Hello Test")
}

func TestWriteReportEmptyDocument(t *testing.T) {
	s := NewService(testConf())
	buffer := &bytes.Buffer{}
	WriteReport(buffer, s.AnalyzeHTML("https://www.example.com/", emptyDocHTML))
	report := buffer.String()
	assert.Contains(t, report, "score 20 / 100")
	assert.Contains(t, report, issueMissingTitle)
	assert.Contains(t, report, "Untitled page")
}
