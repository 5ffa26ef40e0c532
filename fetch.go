package seolens

import (
	"errors"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/seolens/seolens/config"
	"github.com/temoto/robotstxt"
	"golang.org/x/net/html/charset"
)

// RetrievalError is the one error kind the analyzer surfaces to callers, it
// collects the failure of every retrieval strategy that was tried.
type RetrievalError struct {
	TargetURL string
	Attempts  []string
}

func (e *RetrievalError) attempt(name, message string) {
	e.Attempts = append(e.Attempts, name+": "+message)
}

func (e *RetrievalError) Error() string {
	return "could not retrieve " + e.TargetURL + ": " + strings.Join(e.Attempts, "; ")
}

type FetchResult struct {
	FinalURL    string
	Code        int
	ContentType string
	Strategy    string
	Duration    time.Duration
	Body        string
}

type fetchStrategy struct {
	name       string
	requestURL string
}

// Fetcher retrieves html documents. It tries a direct request first and
// falls back to the configured proxy prefixes, the pipeline behind it only
// ever sees the final document or a RetrievalError.
type Fetcher struct {
	client       *http.Client
	agent        string
	proxies      []string
	ignoreRobots bool
}

func NewFetcher(conf *config.Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: time.Duration(conf.TimeoutSeconds) * time.Second,
		},
		agent:        conf.UserAgent,
		proxies:      conf.Proxies,
		ignoreRobots: conf.IgnoreRobots,
	}
}

func (f *Fetcher) Fetch(targetURL string) (FetchResult, error) {
	retrievalErr := &RetrievalError{TargetURL: targetURL}
	if !f.ignoreRobots {
		allowed, errRobots := f.robotsAllowed(targetURL)
		if errRobots != nil {
			retrievalErr.attempt("robots", errRobots.Error())
			metricFetches.WithLabelValues("robots", "error").Inc()
			return FetchResult{}, retrievalErr
		}
		if !allowed {
			retrievalErr.attempt("robots", "robots.txt disallows fetching")
			metricFetches.WithLabelValues("robots", "disallowed").Inc()
			return FetchResult{}, retrievalErr
		}
	}
	for _, strategy := range f.strategies(targetURL) {
		result, errDo := f.do(strategy)
		metricFetchDurations.WithLabelValues(strategy.name).Observe(result.Duration.Seconds())
		if errDo == nil {
			metricFetches.WithLabelValues(strategy.name, "ok").Inc()
			return result, nil
		}
		metricFetches.WithLabelValues(strategy.name, "error").Inc()
		retrievalErr.attempt(strategy.name, errDo.Error())
	}
	return FetchResult{}, retrievalErr
}

func (f *Fetcher) strategies(targetURL string) []fetchStrategy {
	list := []fetchStrategy{
		{name: "direct", requestURL: targetURL},
	}
	for _, proxy := range f.proxies {
		list = append(list, fetchStrategy{
			name:       proxy,
			requestURL: proxy + url.QueryEscape(targetURL),
		})
	}
	return list
}

func (f *Fetcher) do(strategy fetchStrategy) (result FetchResult, err error) {
	start := time.Now()
	req, errRequest := http.NewRequest("GET", strategy.requestURL, nil)
	if errRequest != nil {
		return result, errRequest
	}
	req.Header.Set("User-Agent", f.agent)

	resp, errGet := f.client.Do(req)
	if errGet != nil {
		return result, errGet
	}
	defer resp.Body.Close()
	result.Duration = time.Now().Sub(start)
	result.Strategy = strategy.name
	result.Code = resp.StatusCode
	result.FinalURL = resp.Request.URL.String()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, errors.New("unexpected response code: " + resp.Status)
	}
	result.ContentType = resp.Header.Get("Content-Type")
	if result.ContentType != "" && !strings.Contains(result.ContentType, "html") {
		return result, errors.New("unexpected content type: " + result.ContentType)
	}
	bodyReader, errCharset := charset.NewReader(resp.Body, result.ContentType)
	if errCharset != nil {
		return result, errCharset
	}
	bodyBytes, errReadAll := ioutil.ReadAll(bodyReader)
	if errReadAll != nil {
		return result, errReadAll
	}
	result.Body = string(bodyBytes)
	return result, nil
}

// robotsAllowed checks the target host's robots.txt, an unreachable or
// unparseable robots.txt does not forbid anything
func (f *Fetcher) robotsAllowed(targetURL string) (bool, error) {
	u, errParse := url.Parse(targetURL)
	if errParse != nil {
		return false, errParse
	}
	resp, errGet := f.client.Get(u.Scheme + "://" + u.Host + "/robots.txt")
	if errGet != nil {
		return true, nil
	}
	defer resp.Body.Close()
	data, errFromResponse := robotstxt.FromResponse(resp)
	if errFromResponse != nil {
		return true, nil
	}
	return data.TestAgent(u.Path, f.agent), nil
}
