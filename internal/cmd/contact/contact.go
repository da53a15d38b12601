// Package contact parses contact command flags and submits one consultation
// request to a running landing service, or lists the submission log.
package contact

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	entrypoint "github.com/trueluxconstruction/landing/internal/platform/cmd"
	"github.com/trueluxconstruction/landing/internal/platform/timeouts"
	"github.com/trueluxconstruction/landing/internal/services/contact"
	"github.com/trueluxconstruction/landing/internal/services/contact/storage"
	"github.com/trueluxconstruction/landing/internal/services/contact/storage/sqlite"
)

var (
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16a34a"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c8102e"))
	detailStyle = lipgloss.NewStyle().Faint(true)
)

// ErrNotSent reports a submission the service did not deliver.
var ErrNotSent = errors.New("contact request not sent")

// Exit codes by failure reason.
const (
	exitFailed      = 1
	exitMissing     = 2
	exitUnavailable = 3
	exitRejected    = 4
)

// Config holds contact command configuration.
type Config struct {
	BaseURL          string `env:"LANDING_CONTACT_URL" envDefault:"http://localhost:8080"`
	SubmissionDBPath string `env:"LANDING_SUBMISSION_DB_PATH"`
	// List > 0 prints that many logged submissions instead of sending one.
	List       int
	Submission contact.Submission
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	s := &cfg.Submission
	fs.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "Landing service base URL")
	fs.StringVar(&cfg.SubmissionDBPath, "submission-db", cfg.SubmissionDBPath, "SQLite submission log read by -list")
	fs.IntVar(&cfg.List, "list", 0, "Print the newest N logged submissions and exit")
	fs.StringVar(&s.Name, contact.FieldName, "", "Full name")
	fs.StringVar(&s.Email, contact.FieldEmail, "", "Reply-to email address")
	fs.StringVar(&s.Phone, contact.FieldPhone, "", "Phone number")
	fs.StringVar(&s.Location, contact.FieldLocation, "", "Project location")
	fs.StringVar(&s.ProjectType, contact.FieldProjectType, "", "Project type")
	fs.StringVar(&s.Timeline, contact.FieldTimeline, "", "Desired timeline")
	fs.StringVar(&s.Description, contact.FieldDescription, "", "Project description")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.List < 0 {
		return Config{}, fmt.Errorf("-list must not be negative, got %d", cfg.List)
	}
	if cfg.List > 0 && strings.TrimSpace(cfg.SubmissionDBPath) == "" {
		return Config{}, errors.New("-list requires -submission-db or LANDING_SUBMISSION_DB_PATH")
	}
	return cfg, nil
}

// Run submits the configured request and prints the outcome to stdout.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceContact, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdout)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	if cfg.List > 0 {
		return listSubmissions(ctx, cfg, out)
	}
	client, err := contact.NewClient(cfg.BaseURL, nil)
	if err != nil {
		return fmt.Errorf("contact client: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.ContactRequest)
	defer cancel()

	result := client.Submit(ctx, cfg.Submission)
	printResult(out, result)
	if !result.OK() {
		return fmt.Errorf("%w: %w", ErrNotSent, &contact.Error{Reason: result.Reason, Message: result.Message, Fields: result.Fields})
	}
	return nil
}

func listSubmissions(ctx context.Context, cfg Config, out io.Writer) error {
	path := strings.TrimSpace(cfg.SubmissionDBPath)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("submission log: %w", err)
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("submission log: %w", err)
	}
	defer store.Close()

	records, err := store.ListSubmissions(ctx, cfg.List)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, detailStyle.Render("no submissions logged"))
		return nil
	}
	for _, record := range records {
		printRecord(out, record)
	}
	return nil
}

func printRecord(out io.Writer, record storage.SubmissionRecord) {
	outcome := okStyle.Render(record.Outcome)
	if record.Outcome != storage.OutcomeSent {
		outcome = failStyle.Render(record.Outcome)
	}
	fmt.Fprintf(out, "%s %s %s <%s>\n", record.CreatedAt.Local().Format(time.DateTime), outcome, record.Name, record.Email)
	detail := record.ID
	if record.ProjectType != "" {
		detail += " " + record.ProjectType
	}
	if record.Reason != "" {
		detail += " " + record.Reason
	}
	fmt.Fprintln(out, detailStyle.Render(detail))
}

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var contactErr *contact.Error
	if !errors.As(err, &contactErr) {
		return exitFailed
	}
	switch contactErr.Reason {
	case contact.ReasonMissingField:
		return exitMissing
	case contact.ReasonUnavailable:
		return exitUnavailable
	case contact.ReasonRejected, contact.ReasonTransport:
		return exitRejected
	default:
		return exitFailed
	}
}

func printResult(out io.Writer, result contact.Result) {
	if result.OK() {
		fmt.Fprintln(out, okStyle.Render("sent")+" "+result.Message)
		return
	}
	fmt.Fprintln(out, failStyle.Render(string(result.Reason))+" "+result.Message)
	if len(result.Fields) > 0 {
		fmt.Fprintln(out, detailStyle.Render("missing: "+strings.Join(result.Fields, ", ")))
	}
	if result.Details != "" && result.Details != result.Message {
		fmt.Fprintln(out, detailStyle.Render(result.Details))
	}
}
