// Package tagscan extracts <id>value</id> pairs from free-form text.
//
// It is a dedicated scanner, not a markup parser: it walks the raw text
// through outside-tag / in-open-tag / in-content / in-close-tag states and
// emits only pairs whose open tag carries a legal identifier and is matched
// by a closing tag. Anything else (stray brackets, unmatched or malformed
// tags, surrounding prose) is skipped, never fatal.
package tagscan

import "strings"

// Pair is one successfully matched tag with its enclosed content.
type Pair struct {
	ID      string
	Content string
}

// Scan returns all matched pairs in encounter order. Text without any
// recognizable tag yields an empty result.
func Scan(text string) []Pair {
	var pairs []Pair
	i := 0
	for i < len(text) {
		if text[i] != '<' {
			i++
			continue
		}
		id, contentStart, ok := openTag(text, i)
		if !ok {
			i++
			continue
		}
		rel := matchClose(text[contentStart:], id)
		if rel < 0 {
			// Unmatched open tag; resume scanning inside it so inner
			// well-formed tags still match.
			i = contentStart
			continue
		}
		pairs = append(pairs, Pair{ID: id, Content: text[contentStart : contentStart+rel]})
		i = contentStart + rel + len("</"+id+">")
	}
	return pairs
}

// matchClose returns the index of the close tag matching an already-open
// tag with the given id, counting same-named nested opens so a child tag
// reusing its parent's id stays inside the content. Returns -1 when
// unmatched.
func matchClose(text, id string) int {
	open := "<" + id + ">"
	closing := "</" + id + ">"
	depth := 1
	i := 0
	for i < len(text) {
		ci := strings.Index(text[i:], closing)
		if ci < 0 {
			return -1
		}
		oi := strings.Index(text[i:], open)
		if oi >= 0 && oi < ci {
			depth++
			i += oi + len(open)
			continue
		}
		if depth == 1 {
			return i + ci
		}
		depth--
		i += ci + len(closing)
	}
	return -1
}

// openTag parses an open tag at text[at] ('<'). It returns the tag
// identifier and the index just past '>'.
func openTag(text string, at int) (id string, contentStart int, ok bool) {
	j := at + 1
	if j >= len(text) || !isIdentStart(text[j]) {
		return "", 0, false
	}
	for j < len(text) && isIdent(text[j]) {
		j++
	}
	if j >= len(text) || text[j] != '>' {
		return "", 0, false
	}
	return text[at+1 : j], j + 1, true
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || c == '_'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
