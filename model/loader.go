package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	// InlineRowSeparator separates rows of a board given on the command line
	InlineRowSeparator = "/"

	maxLineBytes = 1 << 20
)

// ParseBoard reads a board with one row per line. '0' is Dead and '1' is Live;
// any other character is skipped and blank lines are ignored.
func ParseBoard(r io.Reader) (*Board, error) {
	var (
		rows    [][]rules.Cell
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		row := make([]rules.Cell, 0, len(line))
		for _, ch := range line {
			if cell, ok := rules.CellFromDigit(ch); ok {
				row = append(row, cell)
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseBoard] failed to read board")
	}

	board, err := NewBoardFromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "[ParseBoard] failed to build board")
	}
	return board, nil
}

// LoadBoard parses the board stored in the file at path
func LoadBoard(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to open file: %+v", path)
	}
	defer f.Close()

	board, err := ParseBoard(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to parse file: %+v", path)
	}
	return board, nil
}

// ParseInlineBoard parses a board whose rows are separated by InlineRowSeparator or newlines
func ParseInlineBoard(spec string) (*Board, error) {
	return ParseBoard(strings.NewReader(strings.ReplaceAll(spec, InlineRowSeparator, "\n")))
}
