// Package diagnostic collects structured findings about a dispatch chain:
// why a candidate was rejected for an input and which candidates can
// never run because a later one always wins.
package diagnostic
