// greekutils converts text between Greek and its Latin renderings from the
// command line. Arguments are converted as one text; without arguments
// stdin is converted line by line.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	greekutils "github.com/mkarajohn/greek-text-utils"
	"github.com/mkarajohn/greek-text-utils/internal/logger"
)

func main() {
	if err := mainE(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := ff.NewFlagSet("greekutils")
	var (
		scheme   = fs.StringLong("scheme", string(greekutils.SchemeISO843Type2), "conversion scheme (see --list)")
		ignore   = fs.StringLong("ignore", "", "characters to leave untouched")
		collapse = fs.BoolLong("collapse-whitespace", "collapse whitespace runs when removing stop words")
		list     = fs.BoolLong("list", "list the available schemes and exit")
		logLevel = fs.StringLong("log-level", "warn", "log level: debug, info, warn, error")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("GREEKUTILS")); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New(stderr, os.Getenv("LOG_FORMAT"), *logLevel)
	slog.SetDefault(log)

	if *list {
		return listSchemes(stdout)
	}

	s, err := greekutils.ParseScheme(*scheme)
	if err != nil {
		return err
	}
	opts := greekutils.ConvertOptions{Ignore: *ignore, CollapseWhitespace: *collapse}

	if rest := fs.GetArgs(); len(rest) > 0 {
		out, err := greekutils.Convert(s, strings.Join(rest, " "), opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}

	log.Debug("converting stdin", "scheme", s)
	return convertLines(s, opts, stdin, stdout)
}

func listSchemes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, info := range greekutils.Schemes() {
		ignore := ""
		if info.Ignore {
			ignore = "(--ignore)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, info.Description, ignore)
	}
	return tw.Flush()
}

func convertLines(s greekutils.Scheme, opts greekutils.ConvertOptions, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	out := bufio.NewWriter(w)
	defer out.Flush()

	lines := 0
	for scanner.Scan() {
		converted, err := greekutils.Convert(s, scanner.Text(), opts)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, converted); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	slog.Debug("converted", "lines", lines)
	return out.Flush()
}
