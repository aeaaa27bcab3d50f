// Command jsontokendump parses a JSON file (or stdin) and prints its
// preorder token tree, one line per token.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/mcvoid/jsontoken"
	"github.com/mcvoid/jsontoken/internal/cpuinfo"
)

type options struct {
	Capacity int    `short:"c" long:"capacity" description:"token store capacity" value-name:"n" default:"4096"`
	File     string `long:"file" description:"read JSON from the file, rather than stdin" value-name:"path" default:"-"`
	Diag     bool   `long:"diag" description:"print host CPU diagnostics before parsing"`
	Help     bool   `long:"help" description:"show this help"`
}

func main() {
	opts := parseOptions(os.Args[1:])

	if opts.Diag {
		printDiag()
	}

	input, err := readInput(opts.File)
	if err != nil {
		log.Fatalf("jsontokendump: %v", err)
	}

	store := jsontoken.NewTokenStore(opts.Capacity)
	n := jsontoken.Parse(store, input)
	if n < 0 {
		log.Fatalf("jsontokendump: %v", jsontoken.Error(n))
	}

	dump(os.Stdout, store)
}

func parseOptions(args []string) options {
	var opts options
	p := flags.NewParser(&opts, flags.None)
	p.Usage = "[options]"
	if _, err := p.ParseArgs(args); err != nil {
		log.Fatal(err)
	}
	if opts.Help {
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	return opts
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printDiag() {
	info := cpuinfo.Report()
	fmt.Fprintf(os.Stderr, "cpu: %s (cores=%d avx2=%v sse4.2=%v)\n",
		info.BrandName, info.NumCores, info.HasAVX2, info.HasSSE42)
}

func dump(w io.Writer, store *jsontoken.TokenStore) {
	for i := 0; i < store.Count(); i++ {
		t := store.At(i)
		fmt.Fprintf(w, "%s%s depth=%d %s\n",
			strings.Repeat("  ", t.Depth), t.Kind, t.Depth, summarize(t))
	}
}

func summarize(t jsontoken.Token) string {
	const maxLen = 60
	s := t.Slice.String()
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return s
}
