package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/teatak/corpuscount/config"
	"github.com/teatak/corpuscount/freq"
	"github.com/teatak/corpuscount/ngram"
	"github.com/teatak/corpuscount/vocab"
)

// Stats summarizes a completed run.
type Stats struct {
	TotalTokens  int
	UniqueTokens int
	UniqueNgrams int
}

// Run opens the corpus and the sinks named by cfg and processes the corpus
// through Process. The corpus defaults to standard input and the token sink
// to standard output; the ngram sink only exists when cfg.NgramCounts is set.
// Any failure aborts the run.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var corpus io.Reader = os.Stdin
	if cfg.Corpus != "" {
		file, err := os.Open(cfg.Corpus)
		if err != nil {
			return fmt.Errorf("open corpus: %w", err)
		}
		defer file.Close()
		corpus = file
	}

	var tokenOut io.Writer = os.Stdout
	if cfg.TokenCounts != "" {
		file, err := os.Create(cfg.TokenCounts)
		if err != nil {
			return fmt.Errorf("create token counts file: %w", err)
		}
		defer file.Close()
		tokenOut = file
	}
	tokenW := bufio.NewWriter(tokenOut)

	var ngramW *bufio.Writer
	var ngramOut io.Writer
	if cfg.NgramCounts != "" {
		file, err := os.Create(cfg.NgramCounts)
		if err != nil {
			return fmt.Errorf("create ngram counts file: %w", err)
		}
		defer file.Close()
		ngramW = bufio.NewWriter(file)
		ngramOut = ngramW
	}

	stats, err := Process(corpus, tokenW, ngramOut, cfg)
	if err != nil {
		return err
	}

	if err := tokenW.Flush(); err != nil {
		return fmt.Errorf("write token counts: %w", err)
	}
	if ngramW != nil {
		if err := ngramW.Flush(); err != nil {
			return fmt.Errorf("write ngram counts: %w", err)
		}
	}

	logger.Info("counting done",
		zap.Int("total_tokens", stats.TotalTokens),
		zap.Int("unique_tokens", stats.UniqueTokens),
		zap.Int("unique_ngrams", stats.UniqueNgrams))
	return nil
}

// Process counts whitespace-separated tokens from corpus and writes the
// rank-sorted counts to tokenOut. When ngramOut is non-nil, every token is
// additionally expanded into character ngrams whose counts, weighted by the
// token's count, are rank-sorted and written to ngramOut.
//
// The TokenMin filter applies to the token list in token-only mode. With an
// ngram sink it only applies when FilterFirst is set, and then excludes the
// filtered tokens from ngram expansion as well; without FilterFirst the full
// unfiltered token list is written and expanded.
func Process(corpus io.Reader, tokenOut, ngramOut io.Writer, cfg *config.Config) (Stats, error) {
	tokenCounts, err := freq.CountTokens(corpus)
	if err != nil {
		return Stats{}, fmt.Errorf("read corpus: %w", err)
	}

	stats := Stats{
		TotalTokens:  tokenCounts.Total(),
		UniqueTokens: len(tokenCounts),
	}

	if ngramOut == nil {
		entries := tokenCounts.Sorted(cfg.TokenMin)
		if err := vocab.WriteEntries(tokenOut, entries); err != nil {
			return stats, fmt.Errorf("write token counts: %w", err)
		}
		return stats, nil
	}

	tokenMin := 0
	if cfg.FilterFirst {
		tokenMin = cfg.TokenMin
	}
	entries := tokenCounts.Sorted(tokenMin)

	if err := vocab.WriteEntries(tokenOut, entries); err != nil {
		return stats, fmt.Errorf("write token counts: %w", err)
	}

	ngramCounts := freq.NewCounter()
	for _, e := range entries {
		text := e.Text
		if !cfg.NoBracket {
			text = "<" + e.Text + ">"
		}
		for s := range ngram.New(text, cfg.MinN, cfg.MaxN).All() {
			ngramCounts.AddN(s, e.Count)
		}
	}
	stats.UniqueNgrams = len(ngramCounts)

	if err := vocab.WriteEntries(ngramOut, ngramCounts.Sorted(cfg.NgramMin)); err != nil {
		return stats, fmt.Errorf("write ngram counts: %w", err)
	}
	return stats, nil
}
