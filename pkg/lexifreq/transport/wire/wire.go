// Package wire defines the JSON response schema (§6.2) shared by the HTTP
// and batch/CLI transports, and the conversion from an analyze.Result into
// it.
package wire

import (
	"github.com/cognicore/lexifreq/pkg/lexifreq/analyze"
	"github.com/cognicore/lexifreq/pkg/lexifreq/counter"
)

// Response is the wire shape of §6.2.
type Response struct {
	Meta         Meta     `json:"meta"`
	DomainResult Result   `json:"domainResult"`
	PageResults  []Page   `json:"pageResults,omitempty"`
}

// Meta is the response's meta block.
type Meta struct {
	Domain            string  `json:"domain,omitempty"`
	PagesReceived     uint    `json:"pagesReceived"`
	RuntimeMsAnalyze  float64 `json:"runtimeMsAnalyze"`
	RuntimeMsTotal    float64 `json:"runtimeMsTotal"`
	PipelineRequested string  `json:"pipelineRequested"`
	PipelineUsed      string  `json:"pipelineUsed"`
	PeakRssKiB        uint64  `json:"peakRssKiB"`
	RunID             string  `json:"runID"`
}

// Result is one charCount/wordCount/wordCharCount + words/bigrams block,
// used for both the domain-level and per-page results.
type Result struct {
	CharCount     uint64   `json:"charCount"`
	WordCount     uint64   `json:"wordCount"`
	WordCharCount uint64   `json:"wordCharCount"`
	Words         []Word   `json:"words"`
	Bigrams       []Bigram `json:"bigrams,omitempty"`
}

// Page is one page's result block, present only when perPageResults is set.
type Page struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name,omitempty"`
	URL           string   `json:"url,omitempty"`
	CharCount     uint64   `json:"charCount"`
	WordCount     uint64   `json:"wordCount"`
	WordCharCount uint64   `json:"wordCharCount"`
	Words         []Word   `json:"words"`
	Bigrams       []Bigram `json:"bigrams,omitempty"`
}

// Word is one (word, count) pair.
type Word struct {
	Word  string `json:"word"`
	Count uint64 `json:"count"`
}

// Bigram is one (w1, w2, count) triple.
type Bigram struct {
	W1    string `json:"w1"`
	W2    string `json:"w2"`
	Count uint64 `json:"count"`
}

// ErrorResponse is the minimal error wire shape: `{"message": <str>}`.
type ErrorResponse struct {
	Message string `json:"message"`
}

// FromResult converts an analyze.Result plus the transport-supplied fields
// (domain echo, total wall time, run id, peak RSS) into a Response.
func FromResult(domain string, result analyze.Result, runtimeMsTotal float64, runID string, peakRSSKiB uint64) Response {
	resp := Response{
		Meta: Meta{
			Domain:            domain,
			PagesReceived:     uint(result.Meta.PagesReceived),
			RuntimeMsAnalyze:  round3(result.Meta.RuntimeMsAnalyze),
			RuntimeMsTotal:    round3(runtimeMsTotal),
			PipelineRequested: result.Meta.PipelineRequested.String(),
			PipelineUsed:      result.Meta.PipelineUsed.String(),
			PeakRssKiB:        peakRSSKiB,
			RunID:             runID,
		},
		DomainResult: Result{
			CharCount:     result.DomainResult.Metrics.CharCount,
			WordCount:     result.DomainResult.Metrics.WordCount,
			WordCharCount: result.DomainResult.Metrics.WordCharCount,
			Words:         fromWords(result.DomainResult.Words),
			Bigrams:       fromBigrams(result.DomainResult.Bigrams),
		},
	}
	for _, pr := range result.PageResults {
		resp.PageResults = append(resp.PageResults, Page{
			ID:            pr.ID,
			Name:          pr.Name,
			URL:           pr.URL,
			CharCount:     pr.Metrics.CharCount,
			WordCount:     pr.Metrics.WordCount,
			WordCharCount: pr.Metrics.WordCharCount,
			Words:         fromWords(pr.Words),
			Bigrams:       fromBigrams(pr.Bigrams),
		})
	}
	return resp
}

func fromWords(in []counter.WordCount) []Word {
	out := make([]Word, len(in))
	for i, wc := range in {
		out[i] = Word{Word: wc.Word, Count: wc.Count}
	}
	return out
}

func fromBigrams(in []counter.BigramCount) []Bigram {
	if in == nil {
		return nil
	}
	out := make([]Bigram, len(in))
	for i, bc := range in {
		out[i] = Bigram{W1: bc.W1, W2: bc.W2, Count: bc.Count}
	}
	return out
}

func round3(v float64) float64 {
	return float64(int64(v*1000+0.5)) / 1000
}
