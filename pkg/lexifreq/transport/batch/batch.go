// Package batch is the offline transport: it parses one JSON document (an
// object or an array of objects, per §6.1's Batch/CLI profile) and, for the
// directory form, walks a directory continuing past per-file failures.
package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cognicore/lexifreq/internal/internalerr"
	"github.com/cognicore/lexifreq/internal/runid"
	"github.com/cognicore/lexifreq/pkg/lexifreq/analyze"
	"github.com/cognicore/lexifreq/pkg/lexifreq/counter"
	"github.com/cognicore/lexifreq/pkg/lexifreq/transport/wire"
)

// document is the wire shape shared by the object and array root forms; a
// single object decodes into one document, an array decodes into several.
type document struct {
	Domain  string          `json:"domain"`
	Options documentOptions `json:"options"`
	Pages   []documentPage  `json:"pages"`
}

type documentOptions struct {
	IncludeBigrams *bool  `json:"includeBigrams"`
	PerPageResults *bool  `json:"perPageResults"`
	Pipeline       string `json:"pipeline"`
	StripHTML      bool   `json:"stripHtml"`
}

type documentPage struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Text string `json:"text"`
}

// ParseInput decodes raw into one or more documents. The Batch/CLI profile
// allows both an object root and an array root, unlike the HTTP profile.
func ParseInput(raw []byte) ([]document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, internalerr.New(internalerr.MalformedInput, "empty input")
	}

	if trimmed[0] == '[' {
		var docs []document
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, internalerr.Wrap(internalerr.MalformedInput, err)
		}
		return docs, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, internalerr.Wrap(internalerr.MalformedInput, err)
	}
	return []document{doc}, nil
}

// ToPages converts a document's wire pages into analyze.Page values, plus
// the Options the document requests. The Batch/CLI profile ignores the
// pipeline option (§6.1) — pipeline selection is always Auto here, honoring
// only an explicit CLI --pipeline flag at a higher layer. A page that omits
// id is auto-assigned one from runid.Default, the same restored feature the
// HTTP transport applies.
func ToPages(doc document) ([]analyze.Page, analyze.Options, error) {
	pages := make([]analyze.Page, 0, len(doc.Pages))
	for i, p := range doc.Pages {
		if p.Text == "" {
			return nil, analyze.Options{}, internalerr.New(internalerr.MalformedInput, fmt.Sprintf("page %d: text is required", i))
		}
		var id int64
		if p.ID != nil {
			id = *p.ID
		} else {
			id = runid.Default.MintID()
		}
		pages = append(pages, analyze.Page{ID: id, Name: p.Name, URL: p.URL, Text: p.Text})
	}

	opts := analyze.Options{IncludeBigrams: true, Domain: doc.Domain, Pipeline: counter.Auto, StripHTML: doc.Options.StripHTML}
	if doc.Options.IncludeBigrams != nil {
		opts.IncludeBigrams = *doc.Options.IncludeBigrams
	}
	if doc.Options.PerPageResults != nil {
		opts.PerPageResults = *doc.Options.PerPageResults
	}
	return pages, opts, nil
}

// FileResult is the outcome of analyzing one input file in a directory run.
type FileResult struct {
	Path   string
	Result analyze.Result
	Err    error
}

// RunDirectory analyzes every *.json file in inDir, writing one *.json
// result per input to outDir (mirroring the input's base name) unless
// outDir is empty. continueOnError controls whether a failing file aborts
// the run or is recorded and skipped — the CLI's --no-continue flag flips
// this off for callers that want fail-fast semantics.
func RunDirectory(inDir, outDir string, continueOnError bool, analyzeOne func([]analyze.Page, analyze.Options) (analyze.Result, error)) ([]FileResult, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory %s: %w", inDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %s: %w", outDir, err)
		}
	}

	results := make([]FileResult, 0, len(names))
	for _, name := range names {
		path := filepath.Join(inDir, name)
		res, err := runOne(path, outDir, analyzeOne)
		results = append(results, FileResult{Path: path, Result: res, Err: err})
		if err != nil && !continueOnError {
			break
		}
	}
	return results, nil
}

func runOne(path, outDir string, analyzeOne func([]analyze.Page, analyze.Options) (analyze.Result, error)) (analyze.Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return analyze.Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	docs, err := ParseInput(raw)
	if err != nil {
		return analyze.Result{}, err
	}
	if len(docs) == 0 {
		return analyze.Result{}, internalerr.New(internalerr.MalformedInput, "no documents in "+path)
	}

	pages, opts, err := ToPages(docs[0])
	if err != nil {
		return analyze.Result{}, err
	}
	result, err := analyzeOne(pages, opts)
	if err != nil {
		return analyze.Result{}, err
	}

	if outDir != "" {
		base := strings.TrimSuffix(filepath.Base(path), ".json")
		outPath := filepath.Join(outDir, base+".result.json")
		resp := wire.FromResult(opts.Domain, result, result.Meta.RuntimeMsAnalyze, runid.Default.Mint(), 0)
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return result, fmt.Errorf("marshal result for %s: %w", path, err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return result, fmt.Errorf("write result for %s: %w", path, err)
		}
	}
	return result, nil
}
