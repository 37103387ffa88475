package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/npillmayer/bbow"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// settings are the flags shared by all sub-commands.
type settings struct {
	trace string
	lang  string
	nfc   bool
	copy  bool
	jobs  int
}

// NewRootCmd creates the root command for the bbow CLI.
func NewRootCmd() *cobra.Command {
	s := &settings{}
	cmd := &cobra.Command{
		Use:   "bbow",
		Short: "Build a big bag of words from text",
		Long: `bbow reduces texts to a collection of words, each with the count
of its occurrences. Words are separated by whitespace and consist of
letters only; leading and trailing punctuation is removed and words
are lowercased.`,
		SilenceUsage:      true,
		PersistentPreRunE: s.setupTracing,
	}
	cmd.PersistentFlags().StringVar(&s.trace, "trace", "error", "Trace level: debug, info or error")
	cmd.PersistentFlags().StringVar(&s.lang, "lang", "", "Language for lowercasing (BCP 47), 'auto' for the user locale")
	cmd.PersistentFlags().BoolVar(&s.nfc, "nfc", false, "Compose text to Unicode NFC before extracting words")
	cmd.PersistentFlags().BoolVar(&s.copy, "copy", false, "Copy words instead of keeping file contents in memory")
	cmd.PersistentFlags().IntVar(&s.jobs, "jobs", runtime.NumCPU(), "Number of files to read in parallel")

	cmd.AddCommand(newCountCmd(s))
	cmd.AddCommand(newMatchCmd(s))
	cmd.AddCommand(newStatsCmd(s))
	return cmd
}

func (s *settings) setupTracing(_ *cobra.Command, _ []string) error {
	level := tracing.LevelError
	switch strings.ToLower(s.trace) {
	case "debug":
		level = tracing.LevelDebug
	case "info":
		level = tracing.LevelInfo
	case "error":
	default:
		return fmt.Errorf("unknown trace level %q", s.trace)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	return nil
}

// bagOptions translates the shared flags into options for bbow.New.
func (s *settings) bagOptions() ([]bbow.Option, error) {
	var opts []bbow.Option
	if s.lang != "" {
		tag, err := languageFor(s.lang)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bbow.WithLanguage(tag))
	}
	if s.nfc {
		opts = append(opts, bbow.WithNFC())
	}
	if s.copy {
		opts = append(opts, bbow.OwnedKeys())
	}
	return opts, nil
}
