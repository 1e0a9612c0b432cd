// Command labelmerge validates and merges PDF files from the command line.
// It applies the same file checks as the service, so a file that labelmerge
// accepts will also be accepted at upload time.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"labels-tracker/internal/pdf"
	"labels-tracker/internal/storage"
)

func main() {
	output := flag.String("o", "merged.pdf", "output file path")
	maxSize := flag.Int64("max-size", 0, "max input file size in bytes (0 uses the default)")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: labelmerge [-o output.pdf] input.pdf [input.pdf ...]")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := storage.NewValidator(*maxSize)
	for _, in := range inputs {
		if err := validator.Validate(in); err != nil {
			fmt.Fprintf(os.Stderr, "rejected %s: %v\n", in, err)
			os.Exit(1)
		}
	}

	merger := pdf.NewMerger(logger)
	out, err := merger.Merge(inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "merge failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("merged %d file(s) into %s (%d bytes)\n", len(inputs), *output, len(out))
}
