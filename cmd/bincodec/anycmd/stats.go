// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/anyvalue"
	"github.com/bureau-foundation/bincodec/lib/wire"
)

// statsParams holds the parameters for "bincodec stats".
type statsParams struct {
	sharedParams
	cli.InputOptions
	cli.JSONOutput
}

// statsReport summarizes a run of values.
type statsReport struct {
	Values       int        `json:"values"`
	Bytes        int        `json:"bytes"`
	LargestValue int        `json:"largest_value"`
	MaxDepth     int        `json:"max_depth"`
	StringBytes  int        `json:"string_bytes"`
	BinaryBytes  int        `json:"binary_bytes"`
	Tags         []tagCount `json:"tags"`
}

// tagCount is how many values, at any depth, carry one tag.
type tagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// StatsCommand returns the "stats" command.
func StatsCommand() *cli.Command {
	var params statsParams

	return &cli.Command{
		Name:    "stats",
		Summary: "Summarize the values in an any-value stream",
		Description: `Decode consecutive any-values and report their count, the total and
largest encoded size, the deepest nesting, how many bytes strings and
byte buffers take, and how often each type occurs at any depth.`,
		Usage:  "bincodec stats [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Summarize a file",
				Command:     "bincodec stats events.bin",
			},
		},
		Run: func(args []string) error {
			env, err := params.load("stats")
			if err != nil {
				return err
			}
			data, remainingArgs, err := params.Read(args, os.Stdin)
			if err != nil {
				return err
			}
			if err := cli.ExtraArgs("stats", remainingArgs); err != nil {
				return err
			}
			report, err := collectStats(data, env)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(os.Stdout, report); done {
				return err
			}
			return writeStats(os.Stdout, report)
		},
	}
}

// collectStats decodes every value in data and tallies it.
func collectStats(data []byte, env *environment) (*statsReport, error) {
	if err := cli.RequireInput(data, "any-value data"); err != nil {
		return nil, err
	}

	report := &statsReport{Bytes: len(data)}
	counts := make(map[anyvalue.Tag]int)
	decoder := wire.NewDecoderOptions(data, env.options)
	for decoder.HasContent() {
		start := decoder.Pos()
		value, err := anyvalue.Read(decoder)
		if err != nil {
			return nil, decodeFailure(data, fmt.Errorf("value %d: %w", report.Values, err))
		}
		report.Values++
		report.LargestValue = max(report.LargestValue, decoder.Pos()-start)
		report.tally(value, 1, counts)
	}

	for tag, count := range counts {
		report.Tags = append(report.Tags, tagCount{Tag: tag.String(), Count: count})
	}
	slices.SortFunc(report.Tags, func(a, b tagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})
	env.logger.Debug("collected stats", "values", report.Values, "tags", len(report.Tags))
	return report, nil
}

func (r *statsReport) tally(value anyvalue.Value, depth int, counts map[anyvalue.Tag]int) {
	counts[value.Tag()]++
	r.MaxDepth = max(r.MaxDepth, depth)
	switch v := value.(type) {
	case anyvalue.String:
		r.StringBytes += len(v)
	case anyvalue.Bytes:
		r.BinaryBytes += len(v)
	case anyvalue.Array:
		for _, element := range v {
			r.tally(element, depth+1, counts)
		}
	case anyvalue.Object:
		for _, field := range v {
			r.StringBytes += len(field.Key)
			r.tally(field.Value, depth+1, counts)
		}
	}
}

func writeStats(w io.Writer, report *statsReport) error {
	writer := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "values:\t%s\n", humanize.Comma(int64(report.Values)))
	fmt.Fprintf(writer, "size:\t%s (%s bytes)\n", humanize.IBytes(uint64(report.Bytes)), humanize.Comma(int64(report.Bytes)))
	fmt.Fprintf(writer, "largest value:\t%s\n", humanize.IBytes(uint64(report.LargestValue)))
	fmt.Fprintf(writer, "max depth:\t%d\n", report.MaxDepth)
	fmt.Fprintf(writer, "string bytes:\t%s\n", humanize.IBytes(uint64(report.StringBytes)))
	fmt.Fprintf(writer, "binary bytes:\t%s\n", humanize.IBytes(uint64(report.BinaryBytes)))
	fmt.Fprintf(writer, "\ntag\tcount\n")
	for _, entry := range report.Tags {
		fmt.Fprintf(writer, "%s\t%s\n", entry.Tag, humanize.Comma(int64(entry.Count)))
	}
	return writer.Flush()
}
