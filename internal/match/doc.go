// Package match provides name normalization and Levenshtein distance for
// suggesting the closest existing member name when a path segment misses.
package match
