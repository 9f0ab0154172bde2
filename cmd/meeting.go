package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/samuhq/samu-cli/config"
	"github.com/samuhq/samu-cli/pkg/meetings"
	"github.com/samuhq/samu-cli/pkg/meetings/agenda"
)

// Meeting command flags.
var (
	meetingHost   string
	meetingClient string
	meetingDay    string
	meetingOutput string
)

// dayFlagLayout is the format accepted by --day.
const dayFlagLayout = "02/01/2006"

// MeetingCommandDeps holds the dependencies for meeting commands.
type MeetingCommandDeps struct {
	Config     *config.CLIConfig
	LoadConfig func() (*config.CLIConfig, error)

	// Source overrides the configured meeting source. Used in tests.
	Source meetings.Source

	// Now returns the evaluation instant. Defaults to time.Now.
	Now func() time.Time
}

// DefaultMeetingDeps returns the default dependencies for production use.
func DefaultMeetingDeps() *MeetingCommandDeps {
	return &MeetingCommandDeps{
		LoadConfig: config.LoadConfig,
		Now:        time.Now,
	}
}

// NewMeetingCommand creates the meeting command with its subcommands.
func NewMeetingCommand(deps *MeetingCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultMeetingDeps()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	cmd := &cobra.Command{
		Use:     "meeting",
		Short:   "Browse and inspect sales call meetings",
		Aliases: []string{"meetings"},
	}

	cmd.AddCommand(newMeetingListCommand(deps))
	cmd.AddCommand(newMeetingShowCommand(deps))
	cmd.AddCommand(newMeetingAgendaCommand(deps))

	return cmd
}

// newMeetingListCommand creates the meeting list command.
func newMeetingListCommand(deps *MeetingCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meetings split into upcoming and past",
		Long: `List meetings split into upcoming and past.

Meetings whose display datetime is at or after the current moment appear
under "Próximas" (soonest first); everything else appears under
"Ya ocurridas" (most recent first). Filters combine with AND semantics
and match case-insensitive substrings.

Examples:
  samu meeting list
  samu meeting list --host lina
  samu meeting list --client acme --day 21/08/2026
  samu meeting list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingList(cmd.Context(), deps)
		},
	}

	cmd.Flags().StringVar(&meetingHost, "host", "", "Filter by host name (substring, case-insensitive)")
	cmd.Flags().StringVar(&meetingClient, "client", "", "Filter by client name (substring, case-insensitive)")
	cmd.Flags().StringVar(&meetingDay, "day", "", "Filter to one calendar day (DD/MM/YYYY)")
	cmd.Flags().StringVarP(&meetingOutput, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

// newMeetingShowCommand creates the meeting show command.
func newMeetingShowCommand(deps *MeetingCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <meeting-id>",
		Short: "Show the full detail for one meeting",
		Long: `Show the full detail for one meeting: summary, participants,
action items, objections, transcript and extracted insights.

Examples:
  samu meeting show 2
  samu meeting show 2 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingShow(cmd.Context(), deps, args[0])
		},
	}

	cmd.Flags().StringVarP(&meetingOutput, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

// newMeetingAgendaCommand creates the meeting agenda command.
func newMeetingAgendaCommand(deps *MeetingCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show today's schedule",
		Long: `Show today's schedule of events and their attached tasks.

Examples:
  samu meeting agenda
  samu meeting agenda -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingAgenda(cmd.Context(), deps)
		},
	}

	cmd.Flags().StringVarP(&meetingOutput, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

// resolveMeetingSource loads config and builds the meeting source unless the
// deps carry an override.
func resolveMeetingSource(ctx context.Context, deps *MeetingCommandDeps) (meetings.Source, func(), error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	deps.Config = cfg

	if deps.Source != nil {
		return deps.Source, func() {}, nil
	}
	return newMeetingSource(ctx, cfg, newLogger(cfg))
}

// meetingListing is the output shape of the list command.
type meetingListing struct {
	Upcoming []meetings.Record `json:"upcoming" yaml:"upcoming"`
	Past     []meetings.Record `json:"past" yaml:"past"`
}

// runMeetingList executes the meeting list command.
func runMeetingList(ctx context.Context, deps *MeetingCommandDeps) error {
	source, cleanup, err := resolveMeetingSource(ctx, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	records, err := source.List(ctx)
	if err != nil {
		return fmt.Errorf("listing meetings: %w", err)
	}

	var selectedDay *time.Time
	if meetingDay != "" {
		day, err := time.ParseInLocation(dayFlagLayout, meetingDay, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --day %q: expected DD/MM/YYYY", meetingDay)
		}
		selectedDay = &day
	}

	now := deps.Now()
	filters := meetings.FilterState{Host: meetingHost, Client: meetingClient}
	filtered := agenda.EvaluateFilters(records, filters, selectedDay, now)
	upcoming, past := agenda.Partition(filtered, now)

	listing := meetingListing{Upcoming: upcoming, Past: past}

	switch outputFormat(deps.Config, meetingOutput) {
	case config.OutputFormatJSON:
		return encodeJSON(listing)
	case config.OutputFormatYAML:
		return encodeYAML(listing)
	default:
		return outputListingText(listing)
	}
}

// runMeetingShow executes the meeting show command.
func runMeetingShow(ctx context.Context, deps *MeetingCommandDeps, id string) error {
	source, cleanup, err := resolveMeetingSource(ctx, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	detail, err := source.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("getting meeting: %w", err)
	}

	switch outputFormat(deps.Config, meetingOutput) {
	case config.OutputFormatJSON:
		return encodeJSON(detail)
	case config.OutputFormatYAML:
		return encodeYAML(detail)
	default:
		return outputDetailText(detail)
	}
}

// runMeetingAgenda executes the meeting agenda command.
func runMeetingAgenda(ctx context.Context, deps *MeetingCommandDeps) error {
	source, cleanup, err := resolveMeetingSource(ctx, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	events, err := source.Schedule(ctx)
	if err != nil {
		return fmt.Errorf("getting schedule: %w", err)
	}

	switch outputFormat(deps.Config, meetingOutput) {
	case config.OutputFormatJSON:
		return encodeJSON(events)
	case config.OutputFormatYAML:
		return encodeYAML(events)
	default:
		return outputScheduleText(events, deps.Now())
	}
}

// ==================== Output Functions ====================

// outputFormat returns the output format from the flag or config.
func outputFormat(cfg *config.CLIConfig, flag string) config.OutputFormat {
	if flag != "" {
		return config.OutputFormat(flag)
	}
	if cfg != nil {
		return cfg.OutputFormat
	}
	return config.OutputFormatText
}

// encodeJSON writes v to stdout as indented JSON.
func encodeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// encodeYAML writes v to stdout as YAML.
func encodeYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(v)
}

// outputListingText renders the two-bucket listing in human-readable form.
func outputListingText(listing meetingListing) error {
	if len(listing.Upcoming) == 0 && len(listing.Past) == 0 {
		fmt.Println("No meetings found.")
		return nil
	}

	if len(listing.Upcoming) > 0 {
		fmt.Printf("Próximas (%d)\n\n", len(listing.Upcoming))
		for _, rec := range listing.Upcoming {
			printRecord(rec)
		}
	}

	if len(listing.Past) > 0 {
		if len(listing.Upcoming) > 0 {
			fmt.Println()
		}
		fmt.Printf("Ya ocurridas (%d)\n\n", len(listing.Past))
		for _, rec := range listing.Past {
			printRecord(rec)
		}
	}

	return nil
}

// printRecord prints one listing row.
func printRecord(rec meetings.Record) {
	fmt.Printf("  [%s] %s\n", rec.ID, rec.Title)
	fmt.Printf("      %s · %s · %s", rec.Host, rec.Client, rec.Datetime)
	if rec.Duration != "" {
		fmt.Printf(" · %s", rec.Duration)
	}
	fmt.Println()
	if rec.Tag != "" || rec.PendingTasks > 0 {
		fmt.Print("     ")
		if rec.Tag != "" {
			fmt.Printf(" %s", rec.Tag)
		}
		if rec.PendingTasks > 0 {
			fmt.Printf(" (%d tareas pendientes)", rec.PendingTasks)
		}
		fmt.Println()
	}
}

// outputDetailText renders the full meeting detail.
func outputDetailText(d *meetings.Detail) error {
	fmt.Printf("%s\n", d.Title)
	fmt.Printf("%s · %s · %s\n", d.Host, d.Client, d.Datetime)
	if d.Type != "" {
		fmt.Printf("Tipo: %s\n", d.Type)
	}
	if d.Seller != "" {
		fmt.Printf("Vendedor: %s\n", d.Seller)
	}
	if d.DurationMin > 0 {
		fmt.Printf("Duración: %d min\n", d.DurationMin)
	}

	if d.Summary != "" {
		fmt.Printf("\nResumen\n  %s\n", d.Summary)
	}

	if len(d.Participants) > 0 {
		fmt.Println("\nParticipantes")
		for _, p := range d.Participants {
			fmt.Printf("  %s <%s> (%s, %s, %d%%)\n", p.Name, p.Email, p.Organization, p.Role, p.SpeakPct)
		}
	}

	if len(d.Actions) > 0 {
		fmt.Println("\nAcciones")
		for _, a := range d.Actions {
			mark := " "
			if a.Done {
				mark = "x"
			}
			fmt.Printf("  [%s] %s\n", mark, a.Label)
		}
	}

	if len(d.Objections) > 0 {
		fmt.Println("\nObjeciones")
		for _, o := range d.Objections {
			fmt.Printf("  (%s) %s\n", o.Status, o.Text)
		}
	}

	if len(d.Insights) > 0 {
		fmt.Println("\nInsights")
		for _, section := range d.Insights {
			fmt.Printf("  %s\n", section.Label)
			for _, item := range section.Items {
				fmt.Printf("    - %s\n", item)
			}
		}
	}

	if len(d.Transcript) > 0 {
		fmt.Println("\nTranscripción")
		for _, entry := range d.Transcript {
			fmt.Printf("  %s %s: %s\n", entry.Offset, entry.Speaker, entry.Text)
		}
	}

	if d.Sentiment != "" {
		fmt.Printf("\nSentimiento: %s\n", d.Sentiment)
	}

	return nil
}

// outputScheduleText renders today's schedule.
func outputScheduleText(events []meetings.ScheduleEvent, now time.Time) error {
	if len(events) == 0 {
		fmt.Println("No events scheduled today.")
		return nil
	}

	fmt.Printf("Agenda · %s\n\n", now.Format("Mon 02/01/2006"))
	for _, ev := range events {
		fmt.Printf("  %s-%s  %s", ev.StartAt(now).Format("15:04"), ev.EndAt(now).Format("15:04"), ev.Title)
		if ev.Tag != "" {
			fmt.Printf(" [%s]", ev.Tag)
		}
		if ev.Location != "" {
			fmt.Printf(" @ %s", ev.Location)
		}
		fmt.Println()
		for _, task := range ev.Tasks {
			mark := " "
			if task.Completed {
				mark = "x"
			}
			fmt.Printf("         [%s] %s\n", mark, task.Description)
		}
	}

	return nil
}
