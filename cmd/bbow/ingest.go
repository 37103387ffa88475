package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bbow"
	"github.com/npillmayer/schuko/gtrace"
	"golang.org/x/sync/errgroup"
)

// buildBag reads all files, one bag per file and in parallel, and folds
// the bags into one. Without files, stdin is read.
func (s *settings) buildBag(ctx context.Context, files []string, stdin io.Reader) (*bbow.Bag, error) {
	opts, err := s.bagOptions()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		text, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return bbow.New(opts...).ExtendFromText(string(text)), nil
	}
	bags := make([]*bbow.Bag, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.jobs))
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("reading %s: %w", name, err)
			}
			bags[i] = bbow.New(opts...).ExtendFromText(string(text))
			gtrace.CoreTracer.Infof("%s: %v", name, bags[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	bag := bbow.New(opts...)
	for _, b := range bags {
		bag.Merge(b)
	}
	return bag, nil
}
