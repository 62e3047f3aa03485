package domain

import (
	"path/filepath"
	"strings"
)

// ParentPageRef names a parent page in the workspace service
type ParentPageRef struct {
	ID   string // Service page ID (e.g., "3132484b-84ae-81b8-a2cb-deff086bb4d0")
	Name string // Display label used in reports (e.g., "TASK_1")
	Dir  string // Optional source directory for this parent, relative to the workspace
}

// Label returns the name used in reports, falling back to the ID
func (p ParentPageRef) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// SourceFile is a local text file synced as a child page titled Title
type SourceFile struct {
	Title string // Child page title (e.g., "model_a.txt")
	Path  string // Path relative to the parent's Dir (or the workspace when Dir is empty)
}

// SourcePath resolves the location of file for parent.
func SourcePath(parent ParentPageRef, file SourceFile) string {
	if parent.Dir == "" || filepath.IsAbs(file.Path) {
		return file.Path
	}
	return filepath.Join(parent.Dir, file.Path)
}

// ChildPage is a page observed beneath a parent
type ChildPage struct {
	ID    string
	Title string
	URL   string
}

// HasChildTitled reports whether children contains a page whose title is
// exactly title. No case or whitespace normalization is applied.
func HasChildTitled(children []ChildPage, title string) bool {
	for _, c := range children {
		if c.Title == title {
			return true
		}
	}
	return false
}

// PageURL builds the public URL for a page ID
func PageURL(id string) string {
	return "https://www.notion.so/" + strings.ReplaceAll(id, "-", "")
}
