package seolens

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/seolens/seolens/config"
	"github.com/seolens/seolens/preview"
	"github.com/seolens/seolens/vo"
)

type Service struct {
	fetcher *Fetcher
}

func NewService(conf *config.Config) *Service {
	return &Service{
		fetcher: NewFetcher(conf),
	}
}

// Analyze retrieves targetURL and runs the extraction, scoring, suggestion
// and preview pipeline on the document. The only error it can return is a
// *RetrievalError.
func (s *Service) Analyze(targetURL string) (a vo.Analysis, err error) {
	fetched, errFetch := s.fetcher.Fetch(targetURL)
	if errFetch != nil {
		return a, errFetch
	}
	a = s.AnalyzeHTML(targetURL, fetched.Body)
	a.FinalURL = fetched.FinalURL
	a.Code = fetched.Code
	a.ContentType = fetched.ContentType
	a.Strategy = fetched.Strategy
	a.Duration = fetched.Duration
	return a, nil
}

// AnalyzeHTML runs the pipeline on a document the caller already holds.
func (s *Service) AnalyzeHTML(targetURL string, html string) vo.Analysis {
	tags := Extract(html)
	result := Score(tags)
	metricAnalyses.Inc()
	metricScores.Observe(float64(result.Score))
	return vo.Analysis{
		TargetURL:   targetURL,
		Tags:        tags,
		Result:      result,
		Suggestions: Suggest(tags),
		Previews:    preview.Build(targetURL, tags),
	}
}

func GetAnalyzeHandler(s *Service) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		analysis, done := analyzeRequest(s, w, r)
		if done {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		errEncode := json.NewEncoder(w).Encode(analysis)
		if errEncode != nil {
			fmt.Println("could not encode analysis:", errEncode)
		}
	}
}

func GetReportHandler(s *Service) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		analysis, done := analyzeRequest(s, w, r)
		if done {
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		WriteReport(w, analysis)
	}
}

func analyzeRequest(s *Service, w http.ResponseWriter, r *http.Request) (a vo.Analysis, done bool) {
	targetURL := r.URL.Query().Get("url")
	if targetURL == "" {
		http.Error(w, "missing url parameter", http.StatusBadRequest)
		return a, true
	}
	fmt.Println("analyzing", targetURL)
	analysis, errAnalyze := s.Analyze(targetURL)
	if errAnalyze != nil {
		http.Error(w, errAnalyze.Error(), http.StatusBadGateway)
		return a, true
	}
	return analysis, false
}
