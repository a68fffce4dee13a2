package frontmatter

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse extracts YAML frontmatter into matter and returns the remaining
// body. Frontmatter is optional: when the content does not open with a
// "---" delimiter line, matter is left untouched and the full content is
// returned as the body. Template transforms rely on this so files without
// metadata still flow through an install unharmed.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return content, nil
	}

	// Skip the opening delimiter, tolerating CRLF.
	startOffset := 3
	if len(content) > 3 && content[3] == '\r' {
		startOffset = 4
	}
	if len(content) > startOffset && content[startOffset] == '\n' {
		startOffset++
	}

	rest := content[startOffset:]

	// The closing delimiter starts a line, possibly the very first one
	// when the header is empty. CRLF closings match through the LF in
	// "\r\n---"; the header then carries a trailing '\r' that the YAML
	// decoder tolerates.
	var header, bodyContent []byte
	switch {
	case bytes.Equal(rest, []byte("---")),
		bytes.HasPrefix(rest, []byte("---\n")),
		bytes.HasPrefix(rest, []byte("---\r\n")):
		bodyContent = rest[3:]
	default:
		parts := bytes.SplitN(rest, []byte("\n---"), 2)
		if len(parts) < 2 {
			// Unterminated frontmatter reads as plain content.
			return content, nil
		}
		header = parts[0]
		bodyContent = parts[1]
	}

	// Trim the closing delimiter line's newline.
	if len(bodyContent) > 0 && bodyContent[0] == '\r' {
		bodyContent = bodyContent[1:]
	}
	if len(bodyContent) > 0 && bodyContent[0] == '\n' {
		bodyContent = bodyContent[1:]
	}

	if err := yaml.Unmarshal(header, matter); err != nil {
		return nil, err
	}

	return bodyContent, nil
}

// ParseHeader parses only the frontmatter, stopping at the closing "---"
// without consuming the body. A file with no frontmatter is a silent
// success and matter remains empty. Listing uses this to pull a template's
// description without holding the whole file.
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return scanner.Err()
	}
	if strings.TrimSpace(scanner.Text()) != "---" {
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			return yaml.Unmarshal(buf.Bytes(), matter)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	return scanner.Err()
}

// Format serializes matter as YAML between "---" delimiters, followed by
// body. A non-empty body is separated from the header by a blank line and
// always ends with a newline.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
