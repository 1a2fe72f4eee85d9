package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Span is a claim-candidate span with its position in the source text
type Span struct {
	Text     string // Trimmed span text
	Start    int    // Byte offset of span start
	End      int    // Byte offset of span end
	Sentence int    // Sentence index in source (0-based)
}

// ClaimExtractor splits text into atomic claim-candidate spans
type ClaimExtractor struct {
	minTokens  int
	stopwords  map[string]bool
	rhetorical []string
	clauseSeps []string
}

// NewClaimExtractor creates a new claim extractor
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{
		minTokens: 3,
		stopwords: map[string]bool{
			"a": true, "an": true, "the": true, "and": true, "or": true,
			"but": true, "of": true, "to": true, "in": true, "on": true,
			"is": true, "are": true, "was": true, "were": true, "be": true,
			"it": true, "this": true, "that": true, "with": true, "as": true,
			"for": true, "at": true, "by": true, "so": true, "if": true,
		},
		rhetorical: []string{
			"hello", "hi there", "dear ", "greetings",
			"thank you", "thanks for",
			"hope this helps", "let me know", "feel free to",
			"as mentioned above", "as noted earlier", "moving on",
		},
		clauseSeps: []string{
			"; ", ", but ", ", however ", ", whereas ", ", and ",
		},
	}
}

// Extract splits text into ordered claim-candidate spans. Spans below the
// minimum token length and purely rhetorical spans are discarded. Genuine
// recurrence is preserved: repeated claims are intentional signal, not
// something to deduplicate.
func (e *ClaimExtractor) Extract(text string) []Span {
	spans := make([]Span, 0)
	for _, s := range splitSentences(text) {
		for _, c := range e.splitClauses(s) {
			if e.keep(c.Text) {
				spans = append(spans, c)
			}
		}
	}
	return spans
}

// ExtractHTML strips markup and extracts spans from the visible text.
// Offsets are relative to the stripped text, not the original markup.
func (e *ClaimExtractor) ExtractHTML(htmlContent string) ([]Span, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}
	return e.Extract(visibleText(doc)), nil
}

// splitClauses splits a sentence span on clause-level conjunctions,
// preserving offsets into the original text.
func (e *ClaimExtractor) splitClauses(s Span) []Span {
	parts := []Span{s}
	for _, sep := range e.clauseSeps {
		var next []Span
		for _, p := range parts {
			rest := p
			for {
				idx := strings.Index(rest.Text, sep)
				if idx < 0 {
					next = append(next, rest)
					break
				}
				head := Span{
					Text:     rest.Text[:idx],
					Start:    rest.Start,
					End:      rest.Start + idx,
					Sentence: rest.Sentence,
				}
				next = append(next, head)
				cut := idx + len(sep)
				rest = Span{
					Text:     rest.Text[cut:],
					Start:    rest.Start + cut,
					End:      rest.End,
					Sentence: rest.Sentence,
				}
			}
		}
		parts = next
	}
	for i := range parts {
		parts[i] = trimSpan(parts[i])
	}
	return parts
}

// keep applies the token floor and the rhetorical-span filter
func (e *ClaimExtractor) keep(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range e.rhetorical {
		if strings.Contains(lower, phrase) {
			return false
		}
	}

	tokens := strings.Fields(lower)
	if len(tokens) < e.minTokens {
		return false
	}

	// Reject stopword-only fragments
	for _, tok := range tokens {
		if !e.stopwords[strings.Trim(tok, ".,;:!?")] {
			return true
		}
	}
	return false
}

// splitSentences splits text on sentence boundaries, keeping byte offsets
func splitSentences(text string) []Span {
	var spans []Span
	start := 0
	sentence := 0

	flush := func(end int) {
		s := trimSpan(Span{Text: text[start:end], Start: start, End: end, Sentence: sentence})
		if s.Text != "" {
			spans = append(spans, s)
			sentence++
		}
		start = end
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			// Avoid splitting inside numbers like "3.5" or abbreviations
			if i+1 < len(text) && !isBoundary(text[i+1]) {
				continue
			}
			flush(i + 1)
		case '\n':
			flush(i + 1)
		}
	}
	if start < len(text) {
		flush(len(text))
	}
	return spans
}

func isBoundary(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '"' || b == ')'
}

// trimSpan trims surrounding whitespace while keeping offsets accurate.
// Trimming decodes whole runes: a byte-wise scan would strip UTF-8
// continuation bytes that alias space codepoints (0xA0, 0x85) off the
// end of a multi-byte character.
func trimSpan(s Span) Span {
	text := s.Text
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if !unicode.IsSpace(r) {
			break
		}
		text = text[size:]
		s.Start += size
	}
	for len(text) > 0 {
		r, size := utf8.DecodeLastRuneInString(text)
		if !unicode.IsSpace(r) {
			break
		}
		text = text[:len(text)-size]
	}
	s.Text = text
	s.End = s.Start + len(text)
	return s
}

// visibleText extracts text nodes from HTML, skipping scripts and styles
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return strings.TrimSpace(buf.String())
}
