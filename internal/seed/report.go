package seed

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0a84ff"))

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#30d158"))
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9f0a"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff453a"))

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 2)
)

// Reporter prints seed progress.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) Title(s string) {
	fmt.Fprintln(r.w, titleStyle.Render(s))
}

func (r *Reporter) Phase(format string, args ...any) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, phaseStyle.Render(fmt.Sprintf(format, args...)))
}

func (r *Reporter) OK(format string, args ...any) {
	fmt.Fprintln(r.w, "  "+okStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (r *Reporter) Skip(format string, args ...any) {
	fmt.Fprintln(r.w, "  "+skipStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

func (r *Reporter) Fail(format string, args ...any) {
	fmt.Fprintln(r.w, "  "+failStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

func (r *Reporter) Summary(s Summary) {
	body := fmt.Sprintf(
		"Categories:      %d\nInventory items: %d\nProducts:        %d\nTasks:           %d/%d",
		s.Categories, s.Items, s.Products, s.Tasks, s.TasksPlanned,
	)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, summaryStyle.Render(body))
}
