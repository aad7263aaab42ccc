// Command huffstat prints the Huffman code and compression statistics for
// each input file.
//
// Usage:
//
//     huffstat [flags] [file ...]
//
// With no files, or with "-", standard input is read.
//
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/text/language"

	"github.com/chronos-tachyon/huffstat"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffstat: ")

	var (
		sizeHint  = flag.Int("size-hint", 0, "expected input size in bytes, for buffer preallocation")
		raw       = flag.Bool("raw", false, "keep raw tree paths instead of stripping leading zeros")
		canonical = flag.Bool("canonical", false, "print canonical codes with the same lengths (implies -raw)")
		workers   = flag.Int("workers", 1, "frequency counting workers (-1 = one per CPU)")
		verify    = flag.Bool("verify", false, "verify each tree is a complete prefix code")
		lang      = flag.String("lang", "en", "language for number formatting")
		dumpTree  = flag.Bool("tree", false, "dump each Huffman tree")
	)
	flag.Parse()

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("invalid -lang %q: %v", *lang, err)
	}

	analyzer := huffstat.NewAnalyzer(
		huffstat.WithStripMode(stripModeFor(*raw, *canonical)),
		huffstat.WithWorkers(*workers),
		huffstat.WithVerify(*verify),
	)
	renderer := huffstat.NewRenderer(tag)

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{huffstat.StdinPath}
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	ctx := context.Background()
	for index, path := range paths {
		if len(paths) > 1 {
			if index != 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", path)
		}

		err := run(ctx, w, analyzer, renderer, huffstat.SourceConfig{Path: path, SizeHint: *sizeHint}, *canonical, *dumpTree)
		if err != nil {
			w.Flush()
			log.Fatal(err)
		}
	}
}

// stripModeFor picks the StripMode for the given flags.  Canonical codes are
// only meaningful for the raw paths, so -canonical implies -raw.
func stripModeFor(raw bool, canonical bool) huffstat.StripMode {
	if raw || canonical {
		return huffstat.KeepRawPath
	}
	return huffstat.StripLeadingZeros
}

func run(ctx context.Context, w *bufio.Writer, analyzer *huffstat.Analyzer, renderer *huffstat.Renderer, src huffstat.SourceConfig, canonical bool, dumpTree bool) error {
	data, err := huffstat.ReadSource(ctx, src)
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(ctx, data)
	if err != nil {
		return fmt.Errorf("%s: %w", src.Path, err)
	}
	if result.Cached {
		log.Printf("%s: identical to an earlier input, reusing its code", src.Path)
	}

	if dumpTree {
		if _, err := result.Root.Dump(w); err != nil {
			return err
		}
	}
	if canonical {
		result.Encodings = result.Encodings.Canonical()
	}
	_, err = renderer.Render(w, result)
	return err
}
