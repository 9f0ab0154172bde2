// Package cmd provides CLI commands for the samu tool.
package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuhq/samu-cli/config"
	pferrors "github.com/samuhq/samu-cli/pkg/errors"
	"github.com/samuhq/samu-cli/pkg/meetings"
)

// testNow matches the seed data: "Hoy, 16:00" is still upcoming.
var testNow = time.Date(2026, time.August, 21, 15, 45, 0, 0, time.Local)

func testMeetingDeps() *MeetingCommandDeps {
	return &MeetingCommandDeps{
		LoadConfig: func() (*config.CLIConfig, error) { return config.DefaultConfig(), nil },
		Source:     meetings.NewStaticSource(),
		Now:        func() time.Time { return testNow },
	}
}

func resetMeetingFlags() {
	meetingHost = ""
	meetingClient = ""
	meetingDay = ""
	meetingOutput = ""
}

// TestNewMeetingCommand verifies the meeting command structure.
func TestNewMeetingCommand(t *testing.T) {
	cmd := NewMeetingCommand(testMeetingDeps())

	assert.Equal(t, "meeting", cmd.Use, "command name should be meeting")
	assert.Contains(t, cmd.Aliases, "meetings")

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	assert.True(t, subcommands["list"], "list subcommand should exist")
	assert.True(t, subcommands["show"], "show subcommand should exist")
	assert.True(t, subcommands["agenda"], "agenda subcommand should exist")
}

// TestNewMeetingListCommand_Flags verifies the list command flags.
func TestNewMeetingListCommand_Flags(t *testing.T) {
	cmd := newMeetingListCommand(testMeetingDeps())

	for _, name := range []string{"host", "client", "day", "output"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "%s flag should exist", name)
		assert.Equal(t, "string", flag.Value.Type())
	}

	outputShortFlag := cmd.Flags().ShorthandLookup("o")
	require.NotNil(t, outputShortFlag, "output flag should have shorthand -o")
}

// TestRunMeetingList verifies the list pipeline against the seed source.
func TestRunMeetingList(t *testing.T) {
	resetMeetingFlags()
	deps := testMeetingDeps()

	err := runMeetingList(context.Background(), deps)
	require.NoError(t, err)
	assert.NotNil(t, deps.Config, "run should load the configuration")
}

// TestRunMeetingList_WithFilters verifies filter flags are accepted.
func TestRunMeetingList_WithFilters(t *testing.T) {
	resetMeetingFlags()
	meetingHost = "lina"
	meetingClient = "monex"
	t.Cleanup(resetMeetingFlags)

	err := runMeetingList(context.Background(), testMeetingDeps())
	assert.NoError(t, err)
}

// TestRunMeetingList_InvalidDay verifies --day validation.
func TestRunMeetingList_InvalidDay(t *testing.T) {
	resetMeetingFlags()
	meetingDay = "2026-08-21"
	t.Cleanup(resetMeetingFlags)

	err := runMeetingList(context.Background(), testMeetingDeps())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DD/MM/YYYY")
}

// TestRunMeetingList_ValidDay verifies the DD/MM/YYYY day filter.
func TestRunMeetingList_ValidDay(t *testing.T) {
	resetMeetingFlags()
	meetingDay = "21/08/2026"
	t.Cleanup(resetMeetingFlags)

	err := runMeetingList(context.Background(), testMeetingDeps())
	assert.NoError(t, err)
}

// TestRunMeetingShow verifies the detail lookup.
func TestRunMeetingShow(t *testing.T) {
	resetMeetingFlags()

	err := runMeetingShow(context.Background(), testMeetingDeps(), "2")
	assert.NoError(t, err)
}

// TestRunMeetingShow_NotFound verifies the not-found path.
func TestRunMeetingShow_NotFound(t *testing.T) {
	resetMeetingFlags()

	err := runMeetingShow(context.Background(), testMeetingDeps(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pferrors.ErrNotFound))
}

// TestRunMeetingAgenda verifies the schedule output path.
func TestRunMeetingAgenda(t *testing.T) {
	resetMeetingFlags()

	err := runMeetingAgenda(context.Background(), testMeetingDeps())
	assert.NoError(t, err)
}

// TestRunMeetingList_LoadConfigError verifies config failures surface.
func TestRunMeetingList_LoadConfigError(t *testing.T) {
	resetMeetingFlags()
	deps := testMeetingDeps()
	deps.LoadConfig = func() (*config.CLIConfig, error) {
		return nil, errors.New("boom")
	}

	err := runMeetingList(context.Background(), deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")
}

// TestOutputFormat verifies flag and config precedence.
func TestOutputFormat(t *testing.T) {
	cfg := &config.CLIConfig{OutputFormat: config.OutputFormatJSON}

	assert.Equal(t, config.OutputFormatYAML, outputFormat(cfg, "yaml"), "flag should win over config")
	assert.Equal(t, config.OutputFormatJSON, outputFormat(cfg, ""), "config should be used when flag is empty")
	assert.Equal(t, config.OutputFormatText, outputFormat(nil, ""), "text is the fallback")
}
