// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// maxSuggestDistance is the largest edit distance still worth a "did
// you mean". Three covers a transposition plus a dropped character.
const maxSuggestDistance = 3

// Closest returns the candidate with the smallest edit distance to
// name, or "" when none is within maxSuggestDistance. Ties go to the
// earlier candidate.
func Closest(name string, candidates []string) string {
	best := ""
	bestDistance := maxSuggestDistance + 1
	for _, candidate := range candidates {
		if distance := levenshtein(name, candidate); distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}

// suggestCommand returns the subcommand name closest to unknown.
func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, len(commands))
	for i, command := range commands {
		names[i] = command.Name
	}
	return Closest(unknown, names)
}

// suggestFlag finds the first flag in args that flagSet does not
// define and returns the closest defined flag, with its dashes.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	unknown := firstUnknownFlag(args, flagSet)
	if unknown == "" {
		return ""
	}

	var defined []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		defined = append(defined, f.Name)
	})

	switch best := Closest(unknown, defined); {
	case best == "":
		return ""
	case len(best) == 1:
		return "-" + best
	default:
		return "--" + best
	}
}

// firstUnknownFlag returns the bare name of the first argument that
// looks like a flag but is neither a long name nor a shorthand in
// flagSet. Arguments after "--" are positional.
func firstUnknownFlag(args []string, flagSet *pflag.FlagSet) string {
	for _, arg := range args {
		if arg == "--" {
			return ""
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}
		name, _, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name == "" || flagSet.Lookup(name) != nil {
			continue
		}
		if len(name) == 1 && flagSet.ShorthandLookup(name) != nil {
			continue
		}
		return name
	}
	return ""
}

// levenshtein returns the number of single-rune insertions, deletions
// and substitutions that turn a into b.
func levenshtein(a, b string) int {
	source, target := []rune(a), []rune(b)
	if len(source) > len(target) {
		source, target = target, source
	}

	previous := make([]int, len(source)+1)
	current := make([]int, len(source)+1)
	for i := range previous {
		previous[i] = i
	}
	for j, targetRune := range target {
		current[0] = j + 1
		for i, sourceRune := range source {
			substitution := previous[i]
			if sourceRune != targetRune {
				substitution++
			}
			current[i+1] = min(previous[i+1]+1, current[i]+1, substitution)
		}
		previous, current = current, previous
	}
	return previous[len(source)]
}
