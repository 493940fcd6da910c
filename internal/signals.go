package internal

import (
	"strings"
	"unicode"
)

const (
	// ImagePrefix introduces an image directive line
	ImagePrefix = "IMAGE_GENERATED: "
	// VisualMarker replaces an image directive in the displayed text
	VisualMarker = "*(Visual Generated)*"

	codeFence = "```"
)

// Extract scans an assistant payload for directives. It has no side effects:
// the caller decides what opening the lab or filling the editor means.
//
// The image directive is found first and replaced by VisualMarker. The code
// directive is then looked for in the image-stripped text; its fenced block
// is left in place so the code stays readable in the conversation.
func Extract(raw string) Extraction {
	ex := Extraction{CleanText: raw}

	if image, start, end, ok := findImageDirective(raw); ok {
		ex.Image = image
		ex.CleanText = raw[:start] + VisualMarker + raw[end:]
	}

	if code, ok := findCodeBlock(ex.CleanText); ok {
		ex.Code = code
	}

	return ex
}

// findImageDirective locates the first ImagePrefix and the rest of its line.
// start and end delimit the span to replace. A prefix with nothing after it
// is not a directive.
func findImageDirective(text string) (*ImageDirective, int, int, bool) {
	start := strings.Index(text, ImagePrefix)
	if start == -1 {
		return nil, 0, 0, false
	}

	end := len(text)
	if eol := strings.IndexAny(text[start:], "\r\n"); eol != -1 {
		end = start + eol
	}

	url := strings.TrimSpace(text[start+len(ImagePrefix) : end])
	if url == "" {
		return nil, 0, 0, false
	}

	return &ImageDirective{URL: url}, start, end, true
}

// findCodeBlock returns the body of the first fenced block: opening fence,
// optional language tag, optional whitespace, then everything up to the next
// fence. Without a closing fence there is no block.
func findCodeBlock(text string) (*CodeBlock, bool) {
	open := strings.Index(text, codeFence)
	if open == -1 {
		return nil, false
	}

	rest := text[open+len(codeFence):]
	lang := languageTag(rest)
	body := strings.TrimLeftFunc(rest[len(lang):], unicode.IsSpace)

	end := strings.Index(body, codeFence)
	if end == -1 {
		return nil, false
	}

	return &CodeBlock{
		Language: strings.ToLower(lang),
		Content:  strings.TrimSpace(body[:end]),
	}, true
}

// languageTag returns the label directly after an opening fence. A run of tag
// characters only counts as a label when it ends the fence line; otherwise it
// is the start of an inline body such as ```ls -la```.
func languageTag(s string) string {
	i := 0
	for i < len(s) && isTagByte(s[i]) {
		i++
	}
	if i == 0 {
		return ""
	}
	for j := i; j < len(s) && unicode.IsSpace(rune(s[j])); j++ {
		if s[j] == '\n' || s[j] == '\r' {
			return s[:i]
		}
	}
	return ""
}

func isTagByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '+', c == '#', c == '.', c == '-':
		return true
	}
	return false
}
