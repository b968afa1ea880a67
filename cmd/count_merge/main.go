package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/teatak/corpuscount/vocab"
)

func main() {
	outputPath := flag.String("output", "", "Path to save the merged counts")
	minCount := flag.Int("min", 0, "Minimum merged count for an entry to be kept")
	flag.Parse()

	if *outputPath == "" || len(flag.Args()) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s -output merged.txt counts1.txt counts2.txt ...\n", os.Args[0])
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	merged := vocab.New()
	for _, path := range flag.Args() {
		if err := merged.Load(path); err != nil {
			logger.Fatal("Failed to load counts file", zap.String("file", path), zap.Error(err))
		}
		logger.Info("Loaded counts file", zap.String("file", path))
	}

	outFile, err := os.Create(*outputPath)
	if err != nil {
		logger.Fatal("Failed to create output file", zap.Error(err))
	}
	defer outFile.Close()

	writer := bufio.NewWriter(outFile)
	entries := merged.Sorted(*minCount)
	if err := vocab.WriteEntries(writer, entries); err != nil {
		logger.Fatal("Failed to write merged counts", zap.Error(err))
	}
	if err := writer.Flush(); err != nil {
		logger.Fatal("Failed to write merged counts", zap.Error(err))
	}

	logger.Info("Merged counts saved",
		zap.String("file", *outputPath),
		zap.Int("entries", len(entries)),
		zap.Int("total", merged.Total))
}
