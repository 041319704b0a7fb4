// Where: internal/domain/template/renderer.go
// What: Line-oriented Dockerfile template loading and token substitution.
// Why: Keep rendering literal and deterministic, independent of where the template lives.
package template

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"strings"
)

// ErrTemplateNotFound means the template resource could not be located.
var ErrTemplateNotFound = errors.New("dockerfile template not found")

const maxTemplateLineBytes = 1 << 20

var placeholderPattern = regexp.MustCompile(`@[A-Za-z][A-Za-z0-9_.\-]*@`)

// Load reads the named template from fsys as a sequence of lines.
func Load(fsys fs.FS, name string) ([]string, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	file, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("open template %s: %w", name, err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	return lines, nil
}

// ReadLines splits r into lines, dropping line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTemplateLineBytes)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Render substitutes every occurrence of every token on every line.
// Placeholders that are not in tokens are left as-is.
func Render(lines []string, tokens TokenSet) []string {
	replacer := newReplacer(tokens)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, replacer.Replace(line))
	}
	return out
}

// ReplaceTokens substitutes tokens within a single line.
func ReplaceTokens(line string, tokens TokenSet) string {
	return newReplacer(tokens).Replace(line)
}

// newReplacer performs a single left-to-right pass, so replacement values
// are never rescanned for other placeholders.
func newReplacer(tokens TokenSet) *strings.Replacer {
	pairs := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		if token.Placeholder == "" {
			continue
		}
		pairs = append(pairs, token.Placeholder, token.Value)
	}
	return strings.NewReplacer(pairs...)
}

// UnresolvedTokens lists distinct @name@ placeholders in the template lines
// that tokens does not define, in order of first appearance. It reads the
// template before substitution, so values that look like placeholders are
// never reported.
func UnresolvedTokens(lines []string, tokens TokenSet) []string {
	var found []string
	seen := map[string]struct{}{}
	for _, line := range lines {
		for _, match := range placeholderPattern.FindAllString(line, -1) {
			if _, ok := seen[match]; ok {
				continue
			}
			if _, ok := tokens.Value(match); ok {
				continue
			}
			seen[match] = struct{}{}
			found = append(found, match)
		}
	}
	return found
}

// Content joins lines with a trailing newline after each line.
func Content(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
