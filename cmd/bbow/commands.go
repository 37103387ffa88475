package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/bbow"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCountCmd(s *settings) *cobra.Command {
	var minCount int
	var format string
	cmd := &cobra.Command{
		Use:   "count [files...]",
		Short: "Print every word with the number of its occurrences",
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := s.buildBag(cmd.Context(), args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return printCounts(cmd.OutOrStdout(), bag, minCount, format)
		},
	}
	cmd.Flags().IntVar(&minCount, "min", 1, "Only print words occurring at least this often")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")
	return cmd
}

func newMatchCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "match <keyword> [files...]",
		Short: "Print the number of occurrences of a lowercase keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := s.buildBag(cmd.Context(), args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bag.MatchCount(args[0]))
			return err
		},
	}
}

func newStatsCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [files...]",
		Short: "Print the number of unique words and of all words",
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := s.buildBag(cmd.Context(), args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "unique\t%d\ntotal\t%d\n", bag.Len(), bag.Count())
			return err
		},
	}
}

// wordCount is a row of yaml output.
type wordCount struct {
	Word  string `yaml:"word"`
	Count int    `yaml:"count"`
}

type countReport struct {
	Unique int         `yaml:"unique"`
	Total  int         `yaml:"total"`
	Words  []wordCount `yaml:"words"`
}

func printCounts(w io.Writer, bag *bbow.Bag, minCount int, format string) error {
	switch format {
	case "text":
		for word, count := range bag.All() {
			if count < minCount {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s\t%d\n", word, count); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		report := countReport{Unique: bag.Len(), Total: bag.Count()}
		for word, count := range bag.All() {
			if count >= minCount {
				report.Words = append(report.Words, wordCount{word, count})
			}
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
