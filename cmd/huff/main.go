// Command huff compresses and decompresses files with a Huffman code tree.
//
// Usage:
//
//     huff [-p] [-f] [-q] [-v] [-o OUTPUT] FILE        # writes FILE.huf
//     huff -d [-p] [-v] [-o OUTPUT] FILE.huf            # writes FILE.orig
//
// A FILE of "-" reads standard input; without -o the result then goes to
// standard output.
//
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/hufftree"
)

var log = logging.MustGetLogger("huff")

const (
	compressedSuffix   = ".huf"
	decompressedSuffix = ".orig"
	stdio              = "-"
)

type options struct {
	decode     bool
	output     string
	printTree  bool
	printFreq  bool
	printQueue bool
	verbose    bool
	input      string
}

func parseOptions(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.BoolVar(&opts.decode, "d", false, "decompress instead of compress")
	fs.StringVar(&opts.output, "o", "", "output file (default derived from the input name)")
	fs.BoolVar(&opts.printTree, "p", false, "print the code tree to standard error")
	fs.BoolVar(&opts.printFreq, "f", false, "print the byte frequency table to standard error")
	fs.BoolVar(&opts.printQueue, "q", false, "print the initial priority queue to standard error")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 1 {
		return options{}, errors.New("expected exactly one input file")
	}
	opts.input = fs.Arg(0)
	if opts.decode && (opts.printFreq || opts.printQueue) {
		return options{}, errors.New("-f and -q only apply when compressing")
	}
	return opts, nil
}

func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))

	level := logging.INFO
	if verbose {
		level = logging.DEBUG
	}
	if env := os.Getenv("HUFF_LOG_LEVEL"); env != "" {
		if parsed, err := logging.LogLevel(env); err == nil {
			level = parsed
		} else {
			fmt.Fprintf(os.Stderr, "huff: ignoring HUFF_LOG_LEVEL: %v\n", err)
		}
	}
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "huff: %v\n", err)
		os.Exit(2)
	}
	setupLogging(opts.verbose)

	if err := run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(opts options, stdin io.Reader, stdout, diag io.Writer) error {
	input, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}

	outName, err := outputName(opts)
	if err != nil {
		return err
	}

	var result []byte
	if opts.decode {
		result, err = decompress(opts, input, diag)
	} else {
		result, err = compress(opts, input, diag)
	}
	if err != nil {
		return err
	}

	if outName == stdio {
		_, err = stdout.Write(result)
		return errors.Wrap(err, "writing standard output")
	}
	if err := os.WriteFile(outName, result, 0o666); err != nil {
		return errors.Wrapf(err, "writing %s", outName)
	}
	log.Infof("%s: %d bytes -> %s: %d bytes", opts.input, len(input), outName, len(result))
	return nil
}

func compress(opts options, input []byte, diag io.Writer) ([]byte, error) {
	if len(input) == 0 {
		return hufftree.Encode(input)
	}

	ft := hufftree.CountFrequencies(input)
	if opts.printFreq {
		if _, err := ft.Dump(diag); err != nil {
			return nil, err
		}
	}
	if opts.printQueue {
		if _, err := hufftree.DumpQueue(diag, ft); err != nil {
			return nil, err
		}
	}

	t, err := hufftree.BuildTree(ft)
	if err != nil {
		return nil, err
	}
	if opts.printTree {
		if _, err := t.Dump(diag); err != nil {
			return nil, err
		}
	}

	e, err := hufftree.NewEncoder(t)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := e.EncodeTo(&buf, input); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(opts options, input []byte, diag io.Writer) ([]byte, error) {
	if opts.printTree {
		if err := dumpStreamTree(input, diag); err != nil {
			return nil, err
		}
	}
	return hufftree.Decode(input)
}

// dumpStreamTree prints the tree stored in a compressed stream, if any.
func dumpStreamTree(stream []byte, diag io.Writer) error {
	src := hufftree.NewBitSource(bytes.NewReader(stream))
	count, err := src.ReadUint32()
	if err != nil {
		return err
	}
	if count == 0 {
		_, err = io.WriteString(diag, "(empty stream, no tree)\n")
		return err
	}
	t, err := hufftree.ReadTree(src)
	if err != nil {
		return err
	}
	_, err = t.Dump(diag)
	return err
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == stdio {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, &hufftree.InputUnavailableError{Path: name, Err: err}
	}
	return data, nil
}

// outputName derives the output file from the input file unless -o was
// given: compressing appends ".huf", decompressing strips ".huf" and
// appends ".orig".
func outputName(opts options) (string, error) {
	switch {
	case opts.output != "":
		return opts.output, nil
	case opts.input == stdio:
		return stdio, nil
	case !opts.decode:
		return opts.input + compressedSuffix, nil
	case strings.HasSuffix(opts.input, compressedSuffix):
		return strings.TrimSuffix(opts.input, compressedSuffix) + decompressedSuffix, nil
	default:
		return "", errors.Errorf("%s: name does not end in %s; use -o", opts.input, compressedSuffix)
	}
}
