package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pagesync/internal/adapters/tui/styles"
	"pagesync/internal/application/commands"
	"pagesync/internal/domain"
)

// RunFunc runs a sync, reporting each outcome through progress
type RunFunc func(ctx context.Context, progress func(domain.SyncOutcome)) (*commands.SyncResult, error)

// outcomeMsg carries one outcome from the running sync
type outcomeMsg struct {
	outcome domain.SyncOutcome
}

// doneMsg is sent once the sync returns
type doneMsg struct {
	result *commands.SyncResult
	err    error
}

// App is the progress view for a running sync
type App struct {
	run    RunFunc
	total  int
	events chan tea.Msg
	cancel context.CancelFunc

	spinner  spinner.Model
	outcomes []domain.SyncOutcome
	result   *commands.SyncResult
	err      error
	done     bool

	width  int
	height int
}

// NewApp creates a progress view for a sync of total pairs
func NewApp(run RunFunc, total int) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &App{
		run:     run,
		total:   total,
		events:  make(chan tea.Msg, 16),
		spinner: s,
	}
}

// Init starts the sync in the background
func (a *App) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	go func() {
		result, err := a.run(ctx, func(o domain.SyncOutcome) {
			a.send(ctx, outcomeMsg{outcome: o})
		})
		a.send(ctx, doneMsg{result: result, err: err})
	}()

	return tea.Batch(a.spinner.Tick, a.waitForEvent())
}

// send delivers msg unless the program was aborted and stopped reading
func (a *App) send(ctx context.Context, msg tea.Msg) {
	select {
	case a.events <- msg:
	case <-ctx.Done():
	}
}

func (a *App) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-a.events
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if a.done {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case outcomeMsg:
		a.outcomes = append(a.outcomes, msg.outcome)
		return a, a.waitForEvent()

	case doneMsg:
		a.done = true
		a.result = msg.result
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if a.cancel != nil {
				a.cancel()
			}
			return a, tea.Quit
		case "q", "esc", "enter":
			if a.done {
				return a, tea.Quit
			}
		}
	}

	return a, nil
}

// View renders the progress view
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("pagesync"))
	b.WriteString("\n")

	for _, o := range a.visibleOutcomes() {
		b.WriteString(styles.OutcomeStyle(o.Kind).Render(fmt.Sprintf("%-8s", o.Kind)))
		b.WriteString(" ")
		b.WriteString(o.Key())
		switch o.Kind {
		case domain.OutcomeCreated:
			b.WriteString("  " + styles.MutedText.Render(o.URL))
		case domain.OutcomeErrored:
			b.WriteString("  " + styles.ErrorMsg.Render(o.Err))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case !a.done:
		b.WriteString(a.spinner.View())
		fmt.Fprintf(&b, " Syncing %d/%d", len(a.outcomes), a.total)
		b.WriteString("\n\n")
		b.WriteString(styles.HelpKey.Render("ctrl+c"))
		b.WriteString(styles.HelpDesc.Render(" abort"))
	case a.err != nil:
		b.WriteString(styles.ErrorMsg.Render("Error: " + a.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpKey.Render("q"))
		b.WriteString(styles.HelpDesc.Render(" quit"))
	default:
		b.WriteString(domain.RenderReport(a.result.Summary))
		b.WriteString("\n")
		b.WriteString(styles.HelpKey.Render("q"))
		b.WriteString(styles.HelpDesc.Render(" quit"))
	}

	return styles.App.Render(b.String())
}

// visibleOutcomes keeps the most recent outcomes that fit the window
func (a *App) visibleOutcomes() []domain.SyncOutcome {
	limit := a.height - 16 // Title, status, report and padding
	if a.height == 0 || limit >= len(a.outcomes) {
		return a.outcomes
	}
	if limit < 1 {
		limit = 1
	}
	return a.outcomes[len(a.outcomes)-limit:]
}

// Result returns the sync result once the program has exited
func (a *App) Result() (*commands.SyncResult, error) {
	return a.result, a.err
}

// Done reports whether the sync finished
func (a *App) Done() bool {
	return a.done
}
