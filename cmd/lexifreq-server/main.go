// Command lexifreq-server runs the HTTP analysis service.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/cognicore/lexifreq/internal/config"
	"github.com/cognicore/lexifreq/pkg/lexifreq/stopword"
	"github.com/cognicore/lexifreq/pkg/lexifreq/transport/httpapi"
)

func main() {
	configPath := flag.String("config", "", "Path to service config YAML (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var stops *stopword.Set
	if cfg.StopwordsFile != "" {
		stops, err = stopword.DefaultCache.Load(cfg.StopwordsFile)
		if err != nil {
			log.Fatalf("load stopwords: %v", err)
		}
	} else {
		stops = stopword.New(nil)
	}

	handler := httpapi.NewHandler(stops)
	handler.Limits = cfg.HTTP
	handler.AutoPipelineThreshold = cfg.AutoPipelineThreshold

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("lexifreq-server listening on %s (stopwords=%q)", addr, cfg.StopwordsFile)

	mux := http.NewServeMux()
	mux.Handle("/analyze", handler)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
