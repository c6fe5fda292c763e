package mitab

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// FileClass identifies which flavor of MapInfo dataset a path holds.
type FileClass int

const (
	FileClassNone FileClass = iota
	FileClassTable
	FileClassView
	FileClassSeamless
	FileClassMIF
)

// String returns the file class name.
func (c FileClass) String() string {
	switch c {
	case FileClassTable:
		return "Table"
	case FileClassView:
		return "View"
	case FileClassSeamless:
		return "Seamless"
	case FileClassMIF:
		return "MIF"
	default:
		return "None"
	}
}

// DetectFileClass sniffs the dataset flavor behind path.
//
// MIF/MID pairs are recognized by extension alone. A .tab file is a small
// text header that must be scanned to tell plain tables, views and seamless
// tables apart: "Fields" marks a table definition, "create view" a view, and
// the IsSeamless metadata line a seamless table.
func DetectFileClass(path string) (FileClass, error) {
	switch strings.ToUpper(filepath.Ext(path)) {
	case ".MIF", ".MID":
		return FileClassMIF, nil
	case ".TAB":
	default:
		return FileClassNone, &ErrNotMapInfo{Path: path, Reason: "unrecognized extension"}
	}

	f, err := os.Open(path)
	if err != nil {
		return FileClassNone, err
	}
	defer f.Close()

	var foundFields, foundView, foundSeamless bool

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")
		switch {
		case hasPrefixFold(line, "Fields"):
			foundFields = true
		case hasPrefixFold(line, "create view"):
			foundView = true
		case hasPrefixFold(line, `"\IsSeamless" = "TRUE"`):
			foundSeamless = true
		}
	}
	if err := scanner.Err(); err != nil {
		return FileClassNone, err
	}

	switch {
	case foundView:
		return FileClassView, nil
	case foundFields && foundSeamless:
		return FileClassSeamless, nil
	case foundFields:
		return FileClassTable, nil
	default:
		return FileClassNone, &ErrNotMapInfo{Path: path, Reason: "no Fields definition in .tab header"}
	}
}

// hasPrefixFold is strings.HasPrefix with ASCII case folding.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
