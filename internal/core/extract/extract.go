// Package extract pulls the JSON document and the Markdown report out of
// a raw model response. The response format is asked for in the prompt
// but not guaranteed, so matching is deliberately permissive; every way
// extraction can fail is a distinct, named outcome.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"audience-intel/internal/core/domain"
)

// Sentinel causes for extraction failures. They are always wrapped in a
// domain.Error with KindExtraction; use errors.Is to tell them apart.
var (
	ErrNoJSON     = errors.New("no JSON found in response")
	ErrBadJSON    = errors.New("malformed JSON in response")
	ErrNoMarkdown = errors.New("no Markdown found in response")
)

var (
	// a fenced block explicitly tagged as json
	fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	// a bare object at a line start, terminated by a heading or blank line
	bareJSON = regexp.MustCompile(`(?m)^(\{[\s\S]*?\})\s*(?:#+|\n\n)`)
)

// Split locates the JSON payload in text and returns it together with
// everything after it as Markdown. A fenced json block wins over a bare
// object. A wrapping markdown fence around the remainder is stripped.
func Split(text string) (jsonRaw []byte, markdown string, err error) {
	jsonText, end, ok := locateJSON(text)
	if !ok {
		return nil, "", domain.WrapError(domain.KindExtraction, "could not find JSON in model response", ErrNoJSON)
	}

	// probe the span for syntax errors now so the caller can tell
	// "model emitted broken JSON" from "model emitted none"
	var probe any
	if perr := json.Unmarshal([]byte(jsonText), &probe); perr != nil {
		return nil, "", domain.WrapError(domain.KindExtraction,
			fmt.Sprintf("model response JSON does not parse: %v", perr), ErrBadJSON)
	}

	markdown = strings.TrimSpace(text[end:])
	markdown = leadMDFence.ReplaceAllString(markdown, "")
	markdown = trailFence.ReplaceAllString(markdown, "")
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, "", domain.WrapError(domain.KindExtraction, "could not find Markdown in model response", ErrNoMarkdown)
	}

	return []byte(jsonText), markdown, nil
}

var (
	leadMDFence = regexp.MustCompile("(?i)^```markdown\\s*")
	trailFence  = regexp.MustCompile("```\\s*$")
)

// locateJSON returns the JSON span text and the offset just past the
// matched region (fence markers or terminator included).
func locateJSON(text string) (string, int, bool) {
	if m := fencedJSON.FindStringSubmatchIndex(text); m != nil {
		return text[m[2]:m[3]], m[1], true
	}
	if m := bareJSON.FindStringSubmatchIndex(text); m != nil {
		return text[m[2]:m[3]], m[1], true
	}
	return "", 0, false
}
