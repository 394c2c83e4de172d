package ui

import (
	"regexp"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/rs/zerolog/log"
)

var (
	inlineCodeRegex = regexp.MustCompile(`(?s)\x1b\[44;3m(.*?)\x1b\[0m`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	urlRegex        = regexp.MustCompile(`(https?://[^\s]+)`)
	ansiRegex       = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

const codeBlockBar = "┃"

// renderMarkdown renders a bot reply for a terminal of the given width.
func renderMarkdown(content string, width int) string {
	if width < 10 {
		width = 10
	}
	start := time.Now()

	// [text](url) -> url, so every link shows as a plain colored URL
	content = mdLinkRegex.ReplaceAllString(content, "$2")

	// Autolink stays off so the terminal can detect and open plain URLs
	ext := markdown.Extensions() &^ parser.Autolink
	p := parser.NewWithExtensions(ext)
	r := markdown.NewRenderer(width-4, 0)
	rendered := string(gomarkdown.Render(p.Parse([]byte(content)), r))

	rendered = fixInlineCode(rendered)
	rendered = colorURLs(rendered)
	rendered = frameCodeBlocks(rendered, width)

	log.Debug().Int("chars", len(content)).Dur("elapsed", time.Since(start)).Msg("markdown rendered")
	return rendered
}

// fixInlineCode turns the renderer's blue-background inline code into red text.
func fixInlineCode(s string) string {
	return inlineCodeRegex.ReplaceAllString(s, "\x1b[31m$1\x1b[0m")
}

func colorURLs(s string) string {
	redColor := "\x1b[31m"
	reset := "\x1b[0m"

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		// Code block lines are left alone
		if !strings.Contains(line, codeBlockBar) {
			lines[i] = urlRegex.ReplaceAllString(line, redColor+"$1"+reset)
		}
	}
	return strings.Join(lines, "\n")
}

// frameCodeBlocks replaces the renderer's left bar on code blocks with a
// dark horizontal rule above (labelled [code]) and below the block.
func frameCodeBlocks(s string, width int) string {
	darkGray := "\x1b[90m"
	reset := "\x1b[0m"

	ruleLen := max(width-4, 8)
	label := "[code]"
	left := (ruleLen - len(label)) / 2
	right := ruleLen - len(label) - left
	top := darkGray + strings.Repeat("━", left) + reset + label + darkGray + strings.Repeat("━", right) + reset
	bottom := darkGray + strings.Repeat("━", ruleLen) + reset

	var result []string
	inCodeBlock := false

	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, codeBlockBar) {
			if !inCodeBlock {
				inCodeBlock = true
				result = append(result, "", top, "")
			}
			result = append(result, stripCodeBlockPrefix(line))
			continue
		}
		if inCodeBlock {
			result = append(result, "", bottom, "")
			inCodeBlock = false
		}
		result = append(result, line)
	}
	if inCodeBlock {
		result = append(result, "", bottom, "")
	}

	return strings.Join(result, "\n")
}

func stripCodeBlockPrefix(line string) string {
	idx := strings.Index(line, codeBlockBar)
	if idx < 0 {
		return line
	}
	after := idx + len(codeBlockBar)
	if after < len(line) && line[after] == ' ' {
		after++
	}
	return line[after:]
}

// stripANSI removes ANSI escape codes for accurate width calculation
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
