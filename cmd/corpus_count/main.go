package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/teatak/corpuscount/config"
	"github.com/teatak/corpuscount/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file (explicit flags override its values)")
	corpus := flag.String("corpus", "", "Corpus file (default: standard input)")
	tokenCounts := flag.String("token_counts", "", "Token count file (default: standard output)")
	ngramCounts := flag.String("ngram_counts", "", "File for ngram counts (omit to skip ngram counting)")
	tokenMin := flag.Int("token_min", 1, "Token min count")
	ngramMin := flag.Int("ngram_min", 1, "Ngram min count")
	minN := flag.Int("min_n", 3, "Minimal ngram length to be used")
	maxN := flag.Int("max_n", 6, "Maximum ngram length to be used")
	filterFirst := flag.Bool("filter_first", false, "Filter tokens before counting ngrams")
	noBracket := flag.Bool("no_bracket", false, "Do not wrap tokens in '<' and '>' before ngram extraction")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal("Failed to load config file", zap.Error(err))
		}
	}

	// Only flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "corpus":
			cfg.Corpus = *corpus
		case "token_counts":
			cfg.TokenCounts = *tokenCounts
		case "ngram_counts":
			cfg.NgramCounts = *ngramCounts
		case "token_min":
			cfg.TokenMin = *tokenMin
		case "ngram_min":
			cfg.NgramMin = *ngramMin
		case "min_n":
			cfg.MinN = *minN
		case "max_n":
			cfg.MaxN = *maxN
		case "filter_first":
			cfg.FilterFirst = *filterFirst
		case "no_bracket":
			cfg.NoBracket = *noBracket
		}
	})

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	if err := pipeline.Run(cfg, logger); err != nil {
		logger.Fatal("Counting failed", zap.Error(err))
	}
}
