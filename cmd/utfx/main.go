package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/utfx/transcoder"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		from        = flag.String("from", "utf-8", "Source encoding")
		to          = flag.String("to", "utf-8", "Target encoding")
		check       = flag.Bool("check", false, "Validate input and report the code point count")
		interactive = flag.Bool("i", false, "Interactive inspector with TUI")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer func() { _ = log.Sync() }()
	transcoder.SetLogger(log.Named("transcoder"))

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(flag.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(log, *inFile, *outFile, *from, *to, *check); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: utfx [-in file] [-out file] [-from enc] [-to enc]")
		fmt.Fprintln(os.Stderr, "       utfx [-in file] [-from enc] -check")
		fmt.Fprintln(os.Stderr, "       utfx -i [text]  (interactive mode)")
		os.Exit(1)
	}
}

func run(log *zap.Logger, inFile, outFile, fromName, toName string, check bool) error {
	from, err := transcoder.ParseEncoding(fromName)
	if err != nil {
		return fmt.Errorf("source encoding: %w", err)
	}
	to, err := transcoder.ParseEncoding(toName)
	if err != nil {
		return fmt.Errorf("target encoding: %w", err)
	}

	in := io.Reader(os.Stdin)
	if inFile != "" {
		f, err := os.Open(inFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	if check {
		return runCheck(log, in, from)
	}

	if outFile == "" {
		return convert(log, os.Stdout, in, from, to)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := convert(log, f, in, from, to); err != nil {
		_ = f.Close()
		if rerr := os.Remove(outFile); rerr != nil {
			log.Warn("remove partial output", zap.String("path", outFile), zap.Error(rerr))
		}
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func convert(log *zap.Logger, out io.Writer, in io.Reader, from, to transcoder.Encoding) error {
	n, err := io.Copy(out, transcoder.NewReader(in, from, to))
	if err != nil {
		return fmt.Errorf("convert %s to %s: %w", from, to, err)
	}
	log.Debug("converted",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int64("bytes", n))
	return nil
}

// runCheck validates the input by streaming it to UTF-32, where each four
// bytes of output are one code point.
func runCheck(log *zap.Logger, in io.Reader, from transcoder.Encoding) error {
	n, err := io.Copy(io.Discard, transcoder.NewReader(in, from, transcoder.UTF32LE))
	if err != nil {
		return fmt.Errorf("invalid %s after %d code points: %w", from, n/4, err)
	}
	log.Debug("validated", zap.Stringer("encoding", from), zap.Int64("code_points", n/4))
	fmt.Printf("valid %s, %d code points\n", from, n/4)
	return nil
}
