// Command lexifreq is the CLI/batch collaborator: `lexifreq analyze
// <input.json>` runs one analysis from a file, `lexifreq analyze batch`
// walks a directory of inputs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cognicore/lexifreq/internal/runid"
	"github.com/cognicore/lexifreq/pkg/lexifreq/analyze"
	"github.com/cognicore/lexifreq/pkg/lexifreq/counter"
	"github.com/cognicore/lexifreq/pkg/lexifreq/stopword"
	"github.com/cognicore/lexifreq/pkg/lexifreq/transport/batch"
	"github.com/cognicore/lexifreq/pkg/lexifreq/transport/wire"
)

// Exit codes per the CLI surface: 0 success, 1 a batch file failed but the
// run continued, 2 fatal setup, 3 parse/validation failure, 4 analysis
// failure.
const (
	exitSuccess         = 0
	exitBatchPartial    = 1
	exitFatalSetup      = 2
	exitParseFailure    = 3
	exitAnalysisFailure = 4
)

func main() {
	if len(os.Args) < 2 || os.Args[1] != "analyze" {
		fmt.Fprintln(os.Stderr, "usage: lexifreq analyze <input.json> [--out FILE] [--pipeline auto|string|id] [--topk N]")
		fmt.Fprintln(os.Stderr, "       lexifreq analyze batch [--in DIR] [--out DIR] [--no-continue]")
		os.Exit(exitFatalSetup)
	}

	args := os.Args[2:]
	if len(args) > 0 && args[0] == "batch" {
		os.Exit(runBatch(args[1:]))
	}
	os.Exit(runAnalyze(args))
}

func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	out := fs.String("out", "", "Write the result JSON here instead of stdout")
	pipeline := fs.String("pipeline", "auto", "auto|string|id")
	topK := fs.Uint("topk", 0, "Limit output to the top N entries (0 = full list)")
	stopwordsPath := fs.String("stopwords", "", "Path to a stopword file (optional)")
	stripHTML := fs.Bool("strip-html", false, "Strip HTML markup from page text before tokenizing")
	if err := fs.Parse(args); err != nil {
		return exitFatalSetup
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "missing input.json path")
		return exitFatalSetup
	}
	inputPath := fs.Arg(0)

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", inputPath, err)
		return exitFatalSetup
	}

	stops, err := loadStopwords(*stopwordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load stopwords: %v\n", err)
		return exitFatalSetup
	}

	docs, err := batch.ParseInput(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", inputPath, err)
		return exitParseFailure
	}
	if len(docs) == 0 {
		fmt.Fprintln(os.Stderr, "no documents in input")
		return exitParseFailure
	}

	pages, opts, err := batch.ToPages(docs[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "validate %s: %v\n", inputPath, err)
		return exitParseFailure
	}
	opts.Pipeline = counter.ParseKind(*pipeline)
	opts.TopK = uint32(*topK)
	opts.StripHTML = *stripHTML

	start := time.Now()
	result, err := analyze.Run(pages, opts, stops)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze %s: %v\n", inputPath, err)
		return exitAnalysisFailure
	}
	total := time.Since(start)

	resp := wire.FromResult(opts.Domain, result, float64(total.Microseconds())/1000.0, runid.Default.Mint(), 0)
	if err := writeResult(*out, resp); err != nil {
		fmt.Fprintf(os.Stderr, "write result: %v\n", err)
		return exitAnalysisFailure
	}

	printPerfLine(resp)
	return exitSuccess
}

func runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	inDir := fs.String("in", ".", "Input directory of *.json files")
	outDir := fs.String("out", "", "Output directory for *.result.json files")
	noContinue := fs.Bool("no-continue", false, "Stop at the first failing file instead of continuing")
	stopwordsPath := fs.String("stopwords", "", "Path to a stopword file (optional)")
	if err := fs.Parse(args); err != nil {
		return exitFatalSetup
	}

	stops, err := loadStopwords(*stopwordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load stopwords: %v\n", err)
		return exitFatalSetup
	}

	analyzeOne := func(pages []analyze.Page, opts analyze.Options) (analyze.Result, error) {
		return analyze.Run(pages, opts, stops)
	}

	results, err := batch.RunDirectory(*inDir, *outDir, !*noContinue, analyzeOne)
	if err != nil {
		fmt.Fprintf(os.Stderr, "batch run: %v\n", err)
		return exitFatalSetup
	}

	var anyFailed bool
	for _, r := range results {
		if r.Err != nil {
			anyFailed = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		resp := wire.FromResult("", r.Result, r.Result.Meta.RuntimeMsAnalyze, runid.Default.Mint(), 0)
		fmt.Printf("%s: ", r.Path)
		printPerfLine(resp)
	}

	if anyFailed {
		return exitBatchPartial
	}
	return exitSuccess
}

func loadStopwords(path string) (*stopword.Set, error) {
	if path == "" {
		return stopword.New(nil), nil
	}
	return stopword.DefaultCache.Load(path)
}

func writeResult(path string, resp wire.Response) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// printPerfLine prints the stdout key=value lines scraped by perf tooling.
func printPerfLine(resp wire.Response) {
	fmt.Printf("runtime_ms_total=%.3f runtime_ms_analyze=%.3f peak_rss_kib=%d pages_received=%d pipeline_used=%s word_count=%d char_count=%d word_char_count=%d\n",
		resp.Meta.RuntimeMsTotal,
		resp.Meta.RuntimeMsAnalyze,
		resp.Meta.PeakRssKiB,
		resp.Meta.PagesReceived,
		resp.Meta.PipelineUsed,
		resp.DomainResult.WordCount,
		resp.DomainResult.CharCount,
		resp.DomainResult.WordCharCount,
	)
}
