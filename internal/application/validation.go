package application

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pagesync/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "parentID" -> "parent ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"parentID":   "parent ID",
		"runID":      "run ID",
		"parents":    "parents",
		"files":      "files",
		"title":      "title",
		"sampleSize": "sample size",
		"service":    "page service",
		"reader":     "source reader",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidatePageID checks that id is a page ID in dashed or undashed form.
func ValidatePageID(fieldName, id string) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid %s: %s", formatFieldName(fieldName), id),
		}
	}
	return nil
}

// ValidateSourceFiles checks that every file has a title and a path and that
// no two files share a title.
func ValidateSourceFiles(files []domain.SourceFile) error {
	if len(files) == 0 {
		return &ValidationError{Field: "files", Message: "at least one source file is required"}
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if err := ValidateRequired("title", f.Title); err != nil {
			return err
		}
		if strings.TrimSpace(f.Path) == "" {
			return &ValidationError{
				Field:   "files",
				Message: fmt.Sprintf("source %q has no path", f.Title),
			}
		}
		if seen[f.Title] {
			return &ValidationError{
				Field:   "files",
				Message: fmt.Sprintf("duplicate title %q", f.Title),
			}
		}
		seen[f.Title] = true
	}
	return nil
}

// ValidateParents checks that there is at least one parent and that every
// parent has an ID. IDs are otherwise opaque; a malformed one is rejected by
// the service and recorded against its own pairs.
func ValidateParents(parents []domain.ParentPageRef) error {
	if len(parents) == 0 {
		return &ValidationError{Field: "parents", Message: "at least one parent page is required"}
	}
	for _, p := range parents {
		if err := ValidateRequired("parentID", p.ID); err != nil {
			return err
		}
	}
	return nil
}
