package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pagesync/internal/application"
	"pagesync/internal/domain"
	"pagesync/internal/ports"
)

// SyncResult contains the result of a sync run
type SyncResult struct {
	RunID    string // Empty when no ledger is configured
	Outcomes []domain.SyncOutcome
	Summary  domain.RunSummary
	Message  string
}

// SyncOption configures a SyncCommand
type SyncOption func(*SyncCommand)

// WithParents sets the parent pages to sync into
func WithParents(parents []domain.ParentPageRef) SyncOption {
	return func(c *SyncCommand) {
		c.Parents = parents
	}
}

// WithFiles sets the source files to sync
func WithFiles(files []domain.SourceFile) SyncOption {
	return func(c *SyncCommand) {
		c.Files = files
	}
}

// WithSampleSize sets how many created-page URLs the summary keeps
func WithSampleSize(n int) SyncOption {
	return func(c *SyncCommand) {
		c.SampleSize = n
	}
}

// WithProgress installs a callback invoked with each outcome as it is produced
func WithProgress(fn func(domain.SyncOutcome)) SyncOption {
	return func(c *SyncCommand) {
		c.progress = fn
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) SyncOption {
	return func(c *SyncCommand) {
		c.logger = logger
	}
}

// WithLedger records every completed run in ledger
func WithLedger(ledger ports.RunLedger) SyncOption {
	return func(c *SyncCommand) {
		c.ledger = ledger
	}
}

// SyncCommand creates a child page for every (parent, file) pair that does
// not already have one with the file's exact title
type SyncCommand struct {
	service  ports.PageService
	reader   ports.SourceReader
	pacer    ports.Pacer
	ledger   ports.RunLedger
	logger   *zap.Logger
	progress func(domain.SyncOutcome)
	now      func() time.Time

	Parents    []domain.ParentPageRef
	Files      []domain.SourceFile
	SampleSize int
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(service ports.PageService, reader ports.SourceReader, pacer ports.Pacer, opts ...SyncOption) *SyncCommand {
	c := &SyncCommand{
		service:    service,
		reader:     reader,
		pacer:      pacer,
		logger:     zap.NewNop(),
		now:        time.Now,
		SampleSize: domain.DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.pacer == nil {
		c.pacer = ports.PacerFunc(func(context.Context) {})
	}
	return c
}

// Validate checks if the sync operation is valid
func (c *SyncCommand) Validate() error {
	if c.service == nil {
		return &application.ValidationError{Field: "service", Message: "page service is required"}
	}
	if c.reader == nil {
		return &application.ValidationError{Field: "reader", Message: "source reader is required"}
	}
	if c.SampleSize < 0 {
		return &application.ValidationError{
			Field:   "sampleSize",
			Message: fmt.Sprintf("sample size must not be negative, got %d", c.SampleSize),
		}
	}
	if err := application.ValidateParents(c.Parents); err != nil {
		return err
	}
	return application.ValidateSourceFiles(c.Files)
}

// Execute runs the sync. Validation and source loading failures abort before
// any service call; service failures are recorded per pair.
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	contents, err := c.loadSources()
	if err != nil {
		return nil, err
	}

	started := c.now()
	outcomes := make([]domain.SyncOutcome, 0, len(c.Parents)*len(c.Files))
	record := func(o domain.SyncOutcome) {
		if o.Kind == domain.OutcomeErrored {
			c.logger.Warn("pair failed",
				zap.String("parent", o.Parent.Label()),
				zap.String("title", o.File.Title),
				zap.String("error", o.Err))
		}
		outcomes = append(outcomes, o)
		if c.progress != nil {
			c.progress(o)
		}
	}

	for _, parent := range c.Parents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		children, err := c.listChildren(ctx, parent)
		if err != nil {
			for _, file := range c.Files {
				record(errored(parent, file, err))
			}
			continue
		}

		for _, file := range c.Files {
			if domain.HasChildTitled(children, file.Title) {
				record(domain.SyncOutcome{Parent: parent, File: file, Kind: domain.OutcomeSkipped})
				continue
			}
			record(c.create(ctx, parent, file, contents[domain.SourcePath(parent, file)]))
		}
	}

	summary := domain.Summarize(outcomes, c.SampleSize)
	summary.StartedAt = started
	summary.FinishedAt = c.now()

	result := &SyncResult{
		Outcomes: outcomes,
		Summary:  summary,
		Message: fmt.Sprintf("Synced %d pairs: %d created, %d skipped, %d errored",
			summary.Total(), summary.Created, summary.Skipped, summary.Errored),
	}

	if c.ledger != nil {
		runID := uuid.NewString()
		if err := c.ledger.RecordRun(ctx, domain.NewRunRecord(runID, summary, outcomes)); err != nil {
			c.logger.Warn("failed to record run", zap.String("run", runID), zap.Error(err))
		} else {
			result.RunID = runID
		}
	}

	return result, nil
}

// loadSources reads every resolved source path once, failing on the first
// unreadable one.
func (c *SyncCommand) loadSources() (map[string]string, error) {
	contents := make(map[string]string)
	for _, parent := range c.Parents {
		for _, file := range c.Files {
			path := domain.SourcePath(parent, file)
			if _, ok := contents[path]; ok {
				continue
			}
			text, err := c.reader.ReadSource(path)
			if err != nil {
				return nil, &application.InputError{Path: path, Err: err}
			}
			contents[path] = text
		}
	}
	return contents, nil
}

func (c *SyncCommand) listChildren(ctx context.Context, parent domain.ParentPageRef) ([]domain.ChildPage, error) {
	start := time.Now()
	children, err := c.service.ListChildren(ctx, parent.ID)
	c.pacer.Wait(ctx)

	c.logger.Debug("listed children",
		zap.String("parent", parent.Label()),
		zap.Int("count", len(children)),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err))

	if err != nil {
		return nil, &application.ServiceCallError{Op: "list", ParentID: parent.ID, Err: err}
	}
	return children, nil
}

func (c *SyncCommand) create(ctx context.Context, parent domain.ParentPageRef, file domain.SourceFile, content string) domain.SyncOutcome {
	if _, err := domain.BlockSegments(content); err != nil {
		return errored(parent, file, err)
	}

	start := time.Now()
	page, err := c.service.CreateChildPage(ctx, parent.ID, file.Title, content)
	c.pacer.Wait(ctx)

	c.logger.Debug("created page",
		zap.String("parent", parent.Label()),
		zap.String("title", file.Title),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err))

	if err != nil {
		return errored(parent, file, &application.ServiceCallError{Op: "create", ParentID: parent.ID, Err: err})
	}

	url := page.URL
	if url == "" {
		url = domain.PageURL(page.ID)
	}
	return domain.SyncOutcome{Parent: parent, File: file, Kind: domain.OutcomeCreated, URL: url}
}

func errored(parent domain.ParentPageRef, file domain.SourceFile, err error) domain.SyncOutcome {
	return domain.SyncOutcome{Parent: parent, File: file, Kind: domain.OutcomeErrored, Err: err.Error()}
}
