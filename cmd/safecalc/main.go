package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/zephyrtronium/safecalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb         string
		strict, asJSON, echo bool
		cache                int
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&strict, "strict", false, "always evaluate as an expression, without the plain number fast path")
	flag.BoolVar(&asJSON, "json", false, "print each result as a JSON object")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.IntVar(&cache, "cache", 0, "remember up to this many results for repeated inputs")
	flag.Parse()
	if cache < 0 {
		log.Fatalf("cache size (%d) must not be negative", cache)
	}

	eval := safecalc.ParseNumericInput
	if strict {
		eval = safecalc.Evaluate
	}
	if cache > 0 {
		m, err := safecalc.NewMemo(cache)
		if err != nil {
			log.Fatal(err)
		}
		eval = m.ParseNumericInput
		if strict {
			eval = m.Evaluate
		}
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		lines, err := readLines(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, lines...)
	}
	srcs = append(srcs, flag.Args()...)

	enc := json.NewEncoder(os.Stdout)
	verb += "\n"
	failed := false
	for _, src := range srcs {
		r := eval(src)
		failed = failed || !r.Success
		if echo {
			if a, err := safecalc.Parse(src); err == nil {
				fmt.Printf("%v : ", a)
			}
		}
		switch {
		case asJSON:
			if err := enc.Encode(r); err != nil {
				log.Fatal(err)
			}
		case r.Success:
			fmt.Printf(verb, r.Value)
		default:
			fmt.Printf("%s: %v\n", r.Kind(), r.Err)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// readLines reads non-blank lines from r. UTF-16 input with a byte order mark
// is converted to UTF-8, since that's what some editors save by default.
func readLines(r io.Reader) ([]string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	var lines []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
