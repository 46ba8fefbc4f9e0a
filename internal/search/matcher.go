// Package search filters the inventory index with normalized prefix
// matching and owns the live query state.
package search

import (
	"strings"

	"partscope/internal/index"
	"partscope/internal/textnorm"
)

// Logic combines per-token results across a query
type Logic string

const (
	LogicAnd Logic = "AND" // every token must match some field
	LogicOr  Logic = "OR"  // any token matching some field is enough
)

// MatchFrom selects where a token may anchor inside a field.
// Both strategies may be enabled at once; a field matches if either does.
type MatchFrom struct {
	StartOfString bool
	StartOfWord   bool
}

// FieldMatches reports whether a token prefix-matches one field.
// Leading non-alphanumeric runs are ignored before prefix testing, so
// a code stored as "(12345)" still matches the token "12345".
func FieldMatches(field index.Field, token string, from MatchFrom) bool {
	if token == "" {
		return false
	}

	if from.StartOfString {
		if strings.HasPrefix(textnorm.TrimLeadingNonAlnum(field.Text), token) {
			return true
		}
	}

	if from.StartOfWord {
		for _, word := range field.Words {
			if strings.HasPrefix(textnorm.TrimLeadingNonAlnum(word), token) {
				return true
			}
		}
	}

	return false
}

// tokenMatchesItem reports whether a token matches ANY field of an item
func tokenMatchesItem(item index.Item, token string, from MatchFrom) bool {
	for _, field := range item.Fields {
		if FieldMatches(field, token, from) {
			return true
		}
	}
	return false
}

// ItemMatches applies the token list to one item under the given logic
func ItemMatches(item index.Item, tokens []string, logic Logic, from MatchFrom) bool {
	if len(tokens) == 0 {
		return true
	}

	for _, token := range tokens {
		matched := tokenMatchesItem(item, token, from)
		if logic == LogicOr && matched {
			return true
		}
		if logic != LogicOr && !matched {
			return false
		}
	}

	// AND: no token failed. OR: no token succeeded.
	return logic != LogicOr
}

// Result is the outcome of filtering the index with a token list.
// Items is capped to the configured maximum while Total counts every
// match, so the status line can report both.
type Result struct {
	Tokens []string
	Items  []index.Item
	Total  int
}

// Filter runs the token list over the whole index in dataset order.
// With no tokens it returns everything when emptyQueryAll is set and
// nothing otherwise. maxResults <= 0 means uncapped.
func Filter(items []index.Item, tokens []string, logic Logic, from MatchFrom, emptyQueryAll bool, maxResults int) Result {
	result := Result{Tokens: tokens}

	if len(tokens) == 0 && !emptyQueryAll {
		return result
	}

	for _, item := range items {
		if !ItemMatches(item, tokens, logic, from) {
			continue
		}
		result.Total++
		if maxResults <= 0 || len(result.Items) < maxResults {
			result.Items = append(result.Items, item)
		}
	}

	return result
}
