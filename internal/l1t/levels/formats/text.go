package formats

import (
	"strings"
)

// textHeaderLines is the number of lines before the grid: name, author, description.
const textHeaderLines = 3

// ParseText parses the plain text level format:
//
//	Name
//	Author
//	Description
//	IIIII
//	IX.SI
//	IIIII
//
// Leading and trailing blank lines are ignored. The format carries no ID.
func ParseText(data []byte) (Level, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.Trim(content, "\n")
	if strings.TrimSpace(content) == "" {
		return Level{}, formatError(CodeMissingHeader, "empty level file")
	}

	lines := strings.Split(content, "\n")
	if len(lines) <= textHeaderLines {
		return Level{}, formatError(CodeMissingHeader,
			"level file needs name, author and description lines followed by the grid")
	}

	gridLines := lines[textHeaderLines:]
	for i, line := range gridLines {
		gridLines[i] = strings.TrimRight(line, " \t\r")
	}

	rows, cols, placements, err := parseGrid(gridLines)
	if err != nil {
		return Level{}, err
	}

	return Level{
		Name:        strings.TrimSpace(lines[0]),
		Author:      strings.TrimSpace(lines[1]),
		Description: strings.TrimSpace(lines[2]),
		Rows:        rows,
		Cols:        cols,
		Placements:  placements,
	}, nil
}
