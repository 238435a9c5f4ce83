// Command audesc prints stream metadata read from audio file headers.
//
// Usage:
//
//	audesc [-json] [-format wav|flac|mp3] [-skip-id3] [-max-scan N] [-strict] [-j N] [-v] files...
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/simonhull/audesc"
)

const usageMessage = "usage: audesc [flags] files..."

var (
	errMissingPath = errors.New("missing path argument")
	errFailed      = errors.New("one or more files failed")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
		return
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, errMissingPath):
		fmt.Fprintln(os.Stderr, usageMessage)
		fmt.Fprintln(os.Stderr, "formats:", supportedFormats())
		os.Exit(2)
	case errors.Is(err, errFailed):
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	flagSet := flag.NewFlagSet("audesc", flag.ContinueOnError)
	flagSet.SetOutput(errOut)

	asJSON := flagSet.Bool("json", false, "print one JSON object per file")
	formatName := flagSet.String("format", "", "force the format (wav, flac or mp3) instead of detecting it")
	skipID3 := flagSet.Bool("skip-id3", false, "start the MP3 frame search after a leading ID3v2 tag")
	maxScan := flagSet.Int64("max-scan", 0, "load at most N bytes of an MP3 file for the frame search (0 = whole file)")
	jobs := flagSet.Int("j", 0, "number of files read concurrently (0 = number of CPUs)")
	strict := flagSet.Bool("strict", false, "reject WAV files without the canonical chunk layout")
	verbose := flagSet.Bool("v", false, "log decoder debug output to stderr")
	version := flagSet.Bool("version", false, "print version information and exit")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintln(out, audesc.GetVersionInfo())
		return nil
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		return errMissingPath
	}

	opts := []audesc.Option{
		audesc.WithMaxScanBytes(*maxScan),
		audesc.WithConcurrency(*jobs),
	}
	if *formatName != "" {
		f := audesc.ParseFormat(*formatName)
		if f == audesc.FormatUnknown {
			return fmt.Errorf("unknown format %q", *formatName)
		}
		opts = append(opts, audesc.WithFormat(f))
	}
	if *skipID3 {
		opts = append(opts, audesc.WithSkipID3v2())
	}
	if *strict {
		opts = append(opts, audesc.WithStrictParsing())
	}
	if *verbose {
		logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, audesc.WithLogger(logger))
	}

	results, err := audesc.DescribeMany(ctx, paths, opts...)
	if err != nil {
		return err
	}

	var p printer
	if *asJSON {
		p = newJSONPrinter(out)
	} else {
		p = newTextPrinter(out)
	}

	errLog := log.New(errOut, "audesc: ", 0)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			errLog.Print(r.Err)
			failed++
		}
		if err := p.print(r); err != nil {
			return err
		}
	}

	if failed > 0 {
		return errFailed
	}
	return nil
}

func supportedFormats() string {
	names := make([]string, 0, 3)
	for _, f := range audesc.SupportedFormats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

type printer interface {
	print(r audesc.Result) error
}

type jsonPrinter struct {
	enc *json.Encoder
}

func newJSONPrinter(w io.Writer) *jsonPrinter {
	return &jsonPrinter{enc: json.NewEncoder(w)}
}

type jsonResult struct {
	Path        string              `json:"path"`
	Format      string              `json:"format,omitempty"`
	Description *audesc.Description `json:"description,omitempty"`
	Error       string              `json:"error,omitempty"`
}

func (p *jsonPrinter) print(r audesc.Result) error {
	jr := jsonResult{Path: r.Path}
	if r.Format != audesc.FormatUnknown {
		jr.Format = r.Format.String()
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	} else {
		jr.Description = &r.Description
	}
	return p.enc.Encode(jr)
}

type textPrinter struct {
	w       io.Writer
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	unknown lipgloss.Style
	failure lipgloss.Style
}

func newTextPrinter(w io.Writer) *textPrinter {
	r := lipgloss.NewRenderer(w)
	return &textPrinter{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		label:   r.NewStyle().Width(14).Foreground(lipgloss.Color("86")),
		value:   r.NewStyle().Foreground(lipgloss.Color("250")),
		unknown: r.NewStyle().Faint(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (p *textPrinter) print(r audesc.Result) error {
	if _, err := fmt.Fprintln(p.w, p.title.Render(r.Path)); err != nil {
		return err
	}
	if r.Err != nil {
		_, err := fmt.Fprintln(p.w, "  "+p.failure.Render("error: "+r.Err.Error()))
		return err
	}

	if err := p.row("format", p.value.Render(r.Format.String())); err != nil {
		return err
	}

	d := r.Description
	rows := []struct {
		label string
		value field
		unit  string
	}{
		{"sample rate", d.SamplingRate, " Hz"},
		{"channels", d.ChannelsCount, ""},
		{"bit rate", d.BitRate, " b/s"},
		{"duration", d.Duration, " s"},
		{"samples", d.NumSamples, ""},
	}

	for _, row := range rows {
		v := p.unknown.Render("unknown")
		if row.value.IsKnown() {
			v = p.value.Render(row.value.String() + row.unit)
		}
		if err := p.row(row.label, v); err != nil {
			return err
		}
	}
	return nil
}

// field is satisfied by every audesc.Value.
type field interface {
	IsKnown() bool
	String() string
}

func (p *textPrinter) row(label, value string) error {
	_, err := fmt.Fprintln(p.w, "  "+p.label.Render(label)+value)
	return err
}
