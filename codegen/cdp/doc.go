package cdp

import "strings"

// formatDoc renders a schema description as Go doc-comment lines, each
// prefixed with "// ". The result is empty for an empty description and
// otherwise ends with a newline.
func formatDoc(description string) string {
	if description == "" {
		return ""
	}

	lines := strings.Split(description, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			lines[i] = "// " + line
		} else {
			lines[i] = "//"
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
