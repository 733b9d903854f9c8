package extraction

import (
	"strings"
	"unicode"
)

// chunkStopWords filters glue words so candidate phrases start and end on
// content tokens. Mirrors the stop list used for resume/job keyword matching.
var chunkStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "in": true, "is": true, "it": true, "its": true, "of": true,
	"on": true, "or": true, "our": true, "that": true, "the": true, "their": true,
	"they": true, "this": true, "to": true, "was": true, "we": true, "were": true,
	"will": true, "with": true, "you": true, "your": true,
}

// PhraseChunker extracts short noun-phrase-like spans from free text. It is
// the pluggable stand-in for a full NER pass: exact span boundaries are a
// best-effort heuristic, and callers must not depend on them beyond the
// documented 2-49 character window.
type PhraseChunker interface {
	KeywordCandidates(text string) []string
}

// HeuristicChunker is the default PhraseChunker: maximal runs of content
// tokens, broken into phrases of at most three tokens, emitted in document
// order.
type HeuristicChunker struct{}

// KeywordCandidates tokenizes lower-cased text (keeping tech suffixes such as
// "c#" and "node.js" intact) and returns deduplicated candidate phrases whose
// surface form is 2-49 characters long.
func (HeuristicChunker) KeywordCandidates(text string) []string {
	tokens := tokenize(strings.ToLower(text))

	var out []string
	seen := make(map[string]bool)
	emit := func(run []string) {
		for len(run) > 0 {
			chunk := run
			if len(chunk) > 3 {
				chunk = chunk[:3]
			}
			run = run[len(chunk):]

			phrase := strings.Join(chunk, " ")
			if len(phrase) < 2 || len(phrase) >= 50 || seen[phrase] {
				continue
			}
			seen[phrase] = true
			out = append(out, phrase)
		}
	}

	var run []string
	for _, tok := range tokens {
		if chunkStopWords[tok] || isNumeric(tok) {
			emit(run)
			run = nil
			continue
		}
		run = append(run, tok)
	}
	emit(run)
	return out
}

// tokenize splits on anything that is not a letter, digit, or one of the
// characters that keep "c++", "c#" and "node.js" whole. Sentence punctuation
// breaks runs because it clears the builder.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
