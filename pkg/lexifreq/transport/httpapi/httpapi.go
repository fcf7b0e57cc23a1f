// Package httpapi is the HTTP transport: it decodes a request per §6.1,
// enforces the HTTP profile limits, drives one analysis through the
// analyze core, and encodes a response per §6.2.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cognicore/lexifreq/internal/config"
	"github.com/cognicore/lexifreq/internal/internalerr"
	"github.com/cognicore/lexifreq/internal/runid"
	"github.com/cognicore/lexifreq/pkg/lexifreq/analyze"
	"github.com/cognicore/lexifreq/pkg/lexifreq/counter"
	"github.com/cognicore/lexifreq/pkg/lexifreq/stopword"
	"github.com/cognicore/lexifreq/pkg/lexifreq/transport/wire"
)

// request is the wire shape of §6.1; the HTTP profile rejects a root array,
// so Root is always an object here (the batch transport handles arrays).
type request struct {
	Domain  string         `json:"domain"`
	Options requestOptions `json:"options"`
	Pages   []requestPage  `json:"pages"`
}

type requestOptions struct {
	IncludeBigrams *bool  `json:"includeBigrams"`
	PerPageResults *bool  `json:"perPageResults"`
	Pipeline       string `json:"pipeline"`
	StripHTML      bool   `json:"stripHtml"`
}

type requestPage struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Handler serves POST /analyze, bound to one stopword set and one set of
// profile limits.
type Handler struct {
	Stops  *stopword.Set
	Limits config.Limits
	Minter *runid.Minter
	// AutoPipelineThreshold overrides analyze's package-default Auto
	// pipeline byte threshold when non-zero, carrying a service config's
	// declared value (§4.8) through to every request this Handler serves.
	AutoPipelineThreshold int64
	NowFunc               func() time.Time // overridable for tests; defaults to time.Now
}

// NewHandler builds a Handler using the HTTP profile's default limits and
// the process-wide ID minter.
func NewHandler(stops *stopword.Set) *Handler {
	return &Handler{Stops: stops, Limits: config.HTTPLimits(), Minter: runid.Default}
}

func (h *Handler) now() time.Time {
	if h.NowFunc != nil {
		return h.NowFunc()
	}
	return time.Now()
}

// ServeHTTP implements http.Handler, routing every request through analyze.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := h.now()
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body := r.Body
	if h.Limits.MaxBytes > 0 {
		body = http.MaxBytesReader(w, body, h.Limits.MaxBytes)
	}

	var req request
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body exceeds size limit")
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed request: %v", err))
		return
	}

	if err := h.checkLimits(req); err != nil {
		if internalerr.Of(err) == internalerr.LimitExceeded {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		} else {
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	pages, err := toPages(req.Pages, h.Minter)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := toOptions(req)
	opts.AutoPipelineThreshold = h.AutoPipelineThreshold
	result, err := analyze.Run(pages, opts, h.Stops)
	if err != nil {
		status := statusFor(internalerr.Of(err))
		writeError(w, status, err.Error())
		return
	}

	total := h.now().Sub(start)
	resp := wire.FromResult(req.Domain, result, float64(total.Microseconds())/1000.0, h.Minter.Mint(), peakRSSKiB())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) checkLimits(req request) error {
	limits := h.Limits
	if limits.MaxPages > 0 && len(req.Pages) > limits.MaxPages {
		return internalerr.New(internalerr.LimitExceeded, fmt.Sprintf("too many pages: %d exceeds limit %d", len(req.Pages), limits.MaxPages))
	}
	var totalChars int64
	for _, p := range req.Pages {
		n := int64(len([]rune(p.Text)))
		totalChars += n
		if limits.MaxPageChars > 0 && n > limits.MaxPageChars {
			return internalerr.New(internalerr.LimitExceeded, "page text exceeds per-page character limit")
		}
	}
	if limits.MaxTotalChars > 0 && totalChars > limits.MaxTotalChars {
		return internalerr.New(internalerr.LimitExceeded, "combined page text exceeds total character limit")
	}
	return nil
}

// toPages converts the wire pages into analyze.Page values, auto-assigning
// an id from minter for any page that omits one (a restored feature: the
// teacher's cards.Builder never left a result card's id at its zero value
// either).
func toPages(in []requestPage, minter *runid.Minter) ([]analyze.Page, error) {
	out := make([]analyze.Page, 0, len(in))
	for i, p := range in {
		if p.Text == "" {
			return nil, internalerr.New(internalerr.MalformedInput, fmt.Sprintf("page %d: text is required", i))
		}
		id := int64(0)
		if p.ID != nil {
			id = *p.ID
		} else {
			id = minter.MintID()
		}
		out = append(out, analyze.Page{ID: id, Name: p.Name, URL: p.URL, Text: p.Text})
	}
	return out, nil
}

func toOptions(req request) analyze.Options {
	opts := analyze.Options{
		IncludeBigrams: true,
		Domain:         req.Domain,
		Pipeline:       counter.ParseKind(req.Options.Pipeline),
		StripHTML:      req.Options.StripHTML,
	}
	if req.Options.IncludeBigrams != nil {
		opts.IncludeBigrams = *req.Options.IncludeBigrams
	}
	if req.Options.PerPageResults != nil {
		opts.PerPageResults = *req.Options.PerPageResults
	}
	return opts
}

func statusFor(kind internalerr.Kind) int {
	switch kind {
	case internalerr.MalformedInput:
		return http.StatusBadRequest
	case internalerr.LimitExceeded:
		return http.StatusRequestEntityTooLarge
	case internalerr.Timeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(wire.ErrorResponse{Message: msg})
}
