/*
Command nena prints Toki Pona text in Unicode Braille.

Usage:

   nena [-trace level] [-words] [text …]

Text is taken from the command line. Without arguments, nena reads standard
input. If standard input is a terminal, nena prints the sample sentence
"toki pona li toki pona.".

Flag -words prints all official words together with their rendering.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/skytomo221/sitelen-nena/braille"
	"github.com/skytomo221/sitelen-nena/lexicon"
	"github.com/skytomo221/sitelen-nena/token"
)

var logger = log.New(os.Stderr, "nena: ", 0)

// Sample sentence for an empty session.
const seed = "toki pona li toki pona."

func main() {
	tracelevel := flag.String("trace", "error", "trace level [debug|info|error]")
	words := flag.Bool("words", false, "print all official words")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	if err := setTraceLevel(*tracelevel); err != nil {
		logger.Fatal(err)
	}
	var err error
	if *words {
		err = printWords(os.Stdout)
	} else {
		err = run(os.Stdout, os.Stdin, isTerminal(os.Stdin), flag.Args())
	}
	if err != nil {
		logger.Fatal(err)
	}
}

func setTraceLevel(name string) error {
	switch strings.ToLower(name) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("unknown trace level %q", name)
	}
	return nil
}

// run transliterates args, if given, or else the input.
func run(w io.Writer, input io.Reader, interactive bool, args []string) error {
	if len(args) == 0 && interactive {
		args = []string{seed}
	}
	if len(args) > 0 {
		_, err := fmt.Fprintln(w, braille.Transliterate(strings.Join(args, " ")))
		return err
	}
	if _, err := braille.Copy(w, input); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func printWords(w io.Writer) error {
	for _, word := range lexicon.Words() {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", word, braille.Render(token.New(word))); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
