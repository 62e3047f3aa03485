package config

import (
	"fmt"
	"time"

	"pagesync/internal/domain"
)

// Default locations and files, matching the TASK_<n> workspace layout
const (
	DefaultWorkspace = "/workspace"
	DefaultSampleMax = domain.DefaultSampleSize
)

// Service defaults
const (
	DefaultBaseURL       = "https://api.notion.com/v1"
	DefaultNotionVersion = "2022-06-28"
	DefaultDelay         = 350 * time.Millisecond // Pause after every request
)

var defaultParentIDs = []string{
	"3132484b-84ae-81b8-a2cb-deff086bb4d0",
	"3132484b-84ae-8156-8da3-d147e36748ea",
	"3132484b-84ae-8195-a5a4-e4a232609ec5",
	"3132484b-84ae-8194-90ab-fa7c630def92",
	"3132484b-84ae-81d3-b976-f8b42819c43d",
	"3132484b-84ae-81eb-a9bc-e1470415bb2f",
	"3132484b-84ae-81df-abee-e9203676ade7",
	"3132484b-84ae-8139-87c6-d49a95e78121",
	"3132484b-84ae-812d-9350-c1b871d01b2e",
	"3132484b-84ae-811b-a59d-e3e596559c4d",
	"3132484b-84ae-81be-a7f8-c7b133653018",
	"3132484b-84ae-8184-849a-c4b411dd45c5",
	"3132484b-84ae-8194-8a34-f0f133932a0b",
	"3132484b-84ae-819b-a6d9-f54aab756169",
	"3132484b-84ae-812b-9f1a-fd53b993a1e8",
	"3132484b-84ae-81a3-a79d-dbdaa16d24fa",
	"3132484b-84ae-8139-904f-c718fcffdbdc",
	"3132484b-84ae-81d5-80b3-cd809f4c7578",
	"3132484b-84ae-81d4-9e09-cc17e43d99a7",
	"3132484b-84ae-8173-a8a1-f4fcc34cb8fe",
}

// DefaultParents returns the 20 TASK parents, each reading from its own TASK_<n> directory
func DefaultParents() []domain.ParentPageRef {
	parents := make([]domain.ParentPageRef, len(defaultParentIDs))
	for i, id := range defaultParentIDs {
		name := fmt.Sprintf("TASK_%d", i+1)
		parents[i] = domain.ParentPageRef{ID: id, Name: name, Dir: name}
	}
	return parents
}

// DefaultFiles returns the two model output files
func DefaultFiles() []domain.SourceFile {
	return []domain.SourceFile{
		{Title: "model_a.txt", Path: "model_a.txt"},
		{Title: "model_b.txt", Path: "model_b.txt"},
	}
}
