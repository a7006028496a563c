package promptweave

import (
	"regexp"
	"strings"
	"unicode"
)

// ParseStructuredContent extracts named tag sections from content. For each
// requested name, a properly closed <NAME>...</NAME> match wins (non-greedy,
// first occurrence). When only an opening <NAME> exists, the section runs
// from just after the opener to the next opening boundary of any other
// requested tag, or to the end of the content. Names with no match at all
// map to "" - never absent. Each tag's result is independent of the others'.
//
// Go maps carry no iteration order; callers that care about section order
// iterate their own tagNames slice.
func ParseStructuredContent(content string, tagNames []string) map[string]string {
	result := make(map[string]string, len(tagNames))
	for _, name := range tagNames {
		result[name] = extractTagSection(content, name, tagNames)
	}
	return result
}

// extractTagSection pulls one tag's section out of content
func extractTagSection(content, name string, tagNames []string) string {
	quoted := regexp.QuoteMeta(name)
	closed := regexp.MustCompile(`(?s)<` + quoted + `>(.*?)</` + quoted + `>`)
	if match := closed.FindStringSubmatch(content); match != nil {
		return strings.TrimSpace(match[1])
	}

	opener := "<" + name + ">"
	idx := strings.Index(content, opener)
	if idx == -1 {
		return ""
	}

	// Unclosed tag: best-effort capture up to the next other requested tag
	rest := content[idx+len(opener):]
	end := len(rest)
	for _, other := range tagNames {
		if other == name {
			continue
		}
		if j := strings.Index(rest, "<"+other+">"); j >= 0 && j < end {
			end = j
		}
	}
	return strings.TrimSpace(rest[:end])
}

// LeadingExtraction is the result of ExtractInitialTaggedContent.
// Found distinguishes a matched-but-empty tag from no match at all.
type LeadingExtraction struct {
	Extracted string // Trimmed inner text; "" when Found is false
	Found     bool   // True only when the tag led the content and was closed
	Remaining string // Text after the close tag, or the untouched input
}

// ExtractInitialTaggedContent extracts a single tag's content only when the
// tag is the first non-whitespace content. A tag that is absent, unclosed,
// or present only later in the text is ignored entirely: the input comes
// back byte-identical as Remaining. Used for separating a model's leading
// reasoning block from its final answer.
func ExtractInitialTaggedContent(content, tagName string) LeadingExtraction {
	openTag := "<" + tagName + ">"
	closeTag := "</" + tagName + ">"

	trimmed := strings.TrimLeftFunc(content, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, openTag) {
		return LeadingExtraction{Remaining: content}
	}

	closeIdx := strings.Index(trimmed, closeTag)
	if closeIdx == -1 {
		return LeadingExtraction{Remaining: content}
	}

	inner := trimmed[len(openTag):closeIdx]
	after := trimmed[closeIdx+len(closeTag):]
	return LeadingExtraction{
		Extracted: strings.TrimSpace(inner),
		Found:     true,
		Remaining: strings.TrimSpace(after),
	}
}
