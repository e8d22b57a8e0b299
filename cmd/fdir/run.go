package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/fdir"
	"github.com/jmgilman/go/fdir/errors"
	"github.com/jmgilman/go/fdir/internal/logging"
)

// Exit codes.
const (
	exitOK      = 0
	exitOther   = 1
	exitUsage   = 2
	exitInput   = 3
	exitFormat  = 4
	exitIOError = 5
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

type config struct {
	input     string
	extract   string
	list      string
	output    string
	include   stringList
	exclude   stringList
	files     stringList
	logLevel  string
	logFormat string
	format    string
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	flags := flag.NewFlagSet("fdir", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.input, "i", "", "file or directory to pack")
	flags.StringVar(&cfg.extract, "e", "", "container to unpack")
	flags.StringVar(&cfg.list, "l", "", "container to list")
	flags.StringVar(&cfg.output, "o", "", "output base name (pack, .fdir appended unless present) or directory (unpack)")
	flags.Var(&cfg.include, "include", "only pack paths matching this glob (repeatable)")
	flags.Var(&cfg.exclude, "exclude", "skip paths matching this glob when packing (repeatable)")
	flags.Var(&cfg.files, "files", "only unpack records matching this glob (repeatable)")
	flags.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&cfg.logFormat, "log-format", "text", "log and error format: text or json")
	flags.StringVar(&cfg.format, "format", "text", "listing format: text, json or yaml")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage:")
		fmt.Fprintln(stderr, "  fdir -i <file|dir> -o <output-base>")
		fmt.Fprintln(stderr, "  fdir -e <container> -o <dir>")
		fmt.Fprintln(stderr, "  fdir -l <container> [-format text|json|yaml]")
		fmt.Fprintln(stderr, "pack writes <output-base>.fdir, or <output-base> as-is if it already ends in .fdir")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	if msg := cfg.validate(flags.NArg()); msg != "" {
		fmt.Fprintf(stderr, "fdir: %s\n", msg)
		flags.Usage()
		return exitUsage
	}

	level, err := logging.ParseLogLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "fdir: %v\n", err)
		return exitUsage
	}
	logFormat, err := logging.ParseLogFormat(cfg.logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "fdir: %v\n", err)
		return exitUsage
	}

	logger := logging.NewLogger(logging.LogConfig{
		Level:            level,
		Format:           logFormat,
		Output:           stderr,
		EnableCallerInfo: level == logging.LogLevelDebug,
	})
	archiver := fdir.New(fdir.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case cfg.input != "":
		res, err := archiver.Pack(ctx, cfg.input, cfg.output,
			fdir.WithInclude(cfg.include...), fdir.WithExclude(cfg.exclude...))
		if err != nil {
			return reportError(stderr, logFormat, err)
		}
		fmt.Fprintf(stdout, "packed %d file(s) into %s\n", len(res.Records), res.Container)
	case cfg.extract != "":
		res, err := archiver.Unpack(ctx, cfg.extract, cfg.output, fdir.WithFilesToExtract(cfg.files...))
		if err != nil {
			return reportError(stderr, logFormat, err)
		}
		fmt.Fprintf(stdout, "unpacked %d file(s) into %s\n", len(res.Records), cfg.output)
	default:
		entries, err := archiver.List(ctx, cfg.list)
		if err != nil {
			return reportError(stderr, logFormat, err)
		}
		if err := printEntries(stdout, cfg.format, entries); err != nil {
			return reportError(stderr, logFormat, err)
		}
	}

	return exitOK
}

// validate checks flag combinations and returns a usage message, or "" if
// they are fine.
func (c *config) validate(extraArgs int) string {
	if extraArgs > 0 {
		return "unexpected positional arguments"
	}

	modes := 0
	for _, v := range []string{c.input, c.extract, c.list} {
		if v != "" {
			modes++
		}
	}
	switch {
	case modes == 0:
		return "one of -i, -e or -l is required"
	case modes > 1:
		return "-i, -e and -l are mutually exclusive"
	case c.list == "" && c.output == "":
		return "-o is required"
	}

	switch c.format {
	case "text", "json", "yaml":
	default:
		return fmt.Sprintf("unknown listing format %q", c.format)
	}
	return ""
}

func printEntries(w io.Writer, format string, entries []fdir.Entry) error {
	if entries == nil {
		entries = []fdir.Entry{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write listing")
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write listing")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write listing")
		}
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PATH\tSIZE\tDIGEST")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Path, e.Size, e.Digest)
		}
		if err := tw.Flush(); err != nil {
			return errors.Wrap(err, errors.CodeIO, "failed to write listing")
		}
	}
	return nil
}

// reportError prints err and maps its kind to an exit code.
func reportError(w io.Writer, format logging.LogFormat, err error) int {
	if format == logging.FormatJSON {
		_ = json.NewEncoder(w).Encode(errors.ToJSON(err))
	} else {
		fmt.Fprintf(w, "fdir: %v\n", err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.IsInputError(err):
		return exitInput
	case errors.IsFormatError(err):
		return exitFormat
	case errors.IsIOError(err):
		return exitIOError
	default:
		return exitOther
	}
}
