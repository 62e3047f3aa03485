package ports

// SourceReader loads the text of local source files
type SourceReader interface {
	// ReadSource returns the full text content of path as UTF-8
	ReadSource(path string) (string, error)
}
