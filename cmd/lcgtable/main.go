// Command lcgtable prints or exports a linear congruential sequence table.
//
// Usage:
//
//	lcgtable -variant linear -seed 5 -k 1 -c 7 -p 3 -d 2
//	lcgtable -variant multiplicative -seed 5 -k 0 -form 5+8k -p 100 -d 4 -csv -
//	lcgtable -variant linear -seed 5 -k 1 -c 7 -p 3 -d 2 -csv auto
//
// All fields are passed as raw text and validated together; every violated
// rule is printed before exiting with status 1.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/katalvlaran/congruent/lcg"
	"github.com/katalvlaran/congruent/session"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, generates the table and writes it to stdout or a file.
// It returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lcgtable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	variantFlag := fs.String("variant", "linear", "generator: linear or multiplicative")
	seedFlag := fs.String("seed", "", "seed X0 (multiplicative: odd and > 0)")
	kFlag := fs.String("k", "", "multiplier index k (a = 1+4k, or 3+8k / 5+8k)")
	cFlag := fs.String("c", "", "additive constant c, prime (linear only)")
	formFlag := fs.String("form", "3+8k", "multiplier form: 3+8k or 5+8k (multiplicative only)")
	pFlag := fs.String("p", "", "how many values to generate (one extra row is added), ≤ 8192")
	dFlag := fs.String("d", "4", "decimals for r_i, 0..12")
	csvFlag := fs.String("csv", "", "write CSV instead of a table: '-' for stdout, 'auto' for a timestamped file, or a path")
	exactFlag := fs.Bool("exact", false, "use the exact bit-length exponent instead of ceil(ln p / ln 2)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	variant, err := lcg.ParseVariant(*variantFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	var opts []session.Option
	if *exactFlag {
		opts = append(opts, session.WithExponentMode(lcg.ExponentBitLength))
	}
	s, err := session.New(variant, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	raw := lcg.RawInputs{Seed: *seedFlag, K: *kFlag, C: *cFlag, Form: *formFlag, P: *pFlag, D: *dFlag}
	if err := s.Generate(raw); err != nil {
		issues := s.Errors()
		if len(issues) == 0 {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		for _, is := range issues {
			fmt.Fprintf(stderr, "  • %s\n", is.Message)
		}
		return 1
	}

	switch *csvFlag {
	case "":
		err = printTable(stdout, s)
	case "-":
		if _, err = s.WriteCSV(stdout); err == nil {
			fmt.Fprintln(stdout)
		}
	default:
		var path string
		if path, err = exportFile(s, *csvFlag); err == nil {
			fmt.Fprintf(stderr, "wrote %s\n", path)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// exportFile writes the CSV to path, or to the suggested filename in the
// working directory when path is "auto". The temp file lives in the target
// directory so the final rename never crosses filesystems.
func exportFile(s *session.Session, path string) (string, error) {
	dir := "."
	if path != "auto" {
		dir = filepath.Dir(path)
	}
	tmp, err := os.CreateTemp(dir, ".lcgtable-*.csv")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	name, err := s.WriteCSV(w)
	if err != nil {
		tmp.Close()
		return "", err
	}
	if err = w.Flush(); err != nil {
		tmp.Close()
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}
	if path == "auto" {
		path = filepath.Join(dir, name)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}

// printTable renders the summary line and an aligned table.
func printTable(out io.Writer, s *session.Session) error {
	seq, _ := s.Result()
	fmt.Fprintln(out, s.Summary())
	fmt.Fprintf(out, "D = %d decimals; p = %d values + 1 extra\n\n", seq.Params.D, seq.Params.P)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tXi\tOperation\tResult\tr_i = X(i+1)/(m-1)")
	for _, r := range seq.Rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%s\n", r.Index, r.Current, r.Op, r.Next, lcg.FormatRatio(r.Ratio, seq.Params.D))
	}
	return tw.Flush()
}
