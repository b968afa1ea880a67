package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/teatak/corpuscount/ngram"
)

func main() {
	minN := flag.Int("min_n", 3, "Minimal ngram length")
	maxN := flag.Int("max_n", 6, "Maximum ngram length")
	noBracket := flag.Bool("no_bracket", false, "Do not wrap the text in '<' and '>'")
	flag.Parse()

	if *minN < 1 || *minN > *maxN {
		fmt.Fprintf(os.Stderr, "Invalid length range [%d, %d]: need 1 <= min_n <= max_n.\n", *minN, *maxN)
		os.Exit(1)
	}

	expand := func(text string) {
		if !*noBracket {
			text = "<" + text + ">"
		}
		var grams []string
		for s := range ngram.New(text, *minN, *maxN).All() {
			grams = append(grams, s)
		}
		fmt.Println(strings.Join(grams, " / "))
	}

	// If args provided (non-flag args), expand them
	args := flag.Args()
	if len(args) > 0 {
		for _, arg := range args {
			expand(arg)
		}
		return
	}

	// Otherwise interactive mode
	fmt.Println("Enter text to expand (Ctrl+D to exit):")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		expand(text)
	}
}
