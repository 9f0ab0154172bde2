package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuhq/samu-cli/config"
	"github.com/samuhq/samu-cli/credentials"
)

func testCRMDeps(t *testing.T) *CRMCommandDeps {
	t.Helper()
	t.Setenv("SAMU_CONFIG_DIR", t.TempDir())
	t.Setenv("SAMU_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

	return &CRMCommandDeps{
		LoadConfig: func() (*config.CLIConfig, error) { return config.DefaultConfig(), nil },
		NewStore:   credentials.NewStore,
		ReadToken:  func() (string, error) { return "prompted-token", nil },
	}
}

func resetCRMFlags() {
	crmToken = ""
	crmAccount = ""
	crmOutput = ""
}

// TestNewCRMCommand verifies the crm command structure.
func TestNewCRMCommand(t *testing.T) {
	cmd := NewCRMCommand(testCRMDeps(t))

	assert.Equal(t, "crm", cmd.Use, "command name should be crm")

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	assert.True(t, subcommands["connect"], "connect subcommand should exist")
	assert.True(t, subcommands["status"], "status subcommand should exist")
	assert.True(t, subcommands["disconnect"], "disconnect subcommand should exist")
}

// TestNewCRMConnectCommand_Flags verifies the connect command flags.
func TestNewCRMConnectCommand_Flags(t *testing.T) {
	cmd := newCRMConnectCommand(testCRMDeps(t))

	tokenFlag := cmd.Flags().Lookup("token")
	require.NotNil(t, tokenFlag, "token flag should exist")
	assert.Equal(t, "string", tokenFlag.Value.Type())

	accountFlag := cmd.Flags().Lookup("account")
	require.NotNil(t, accountFlag, "account flag should exist")
	assert.Equal(t, "string", accountFlag.Value.Type())
}

// TestRunCRMConnect verifies connecting with a token flag.
func TestRunCRMConnect(t *testing.T) {
	resetCRMFlags()
	crmToken = "pat-na1-abcdef1234567890"
	crmAccount = "acme"
	t.Cleanup(resetCRMFlags)

	deps := testCRMDeps(t)
	err := runCRMConnect(deps, credentials.ProviderHubSpot)
	require.NoError(t, err)

	store, err := deps.NewStore()
	require.NoError(t, err)
	conn, err := store.Get(credentials.ProviderHubSpot)
	require.NoError(t, err)
	assert.Equal(t, "pat-na1-abcdef1234567890", conn.Token)
	assert.Equal(t, "acme", conn.Account)
}

// TestRunCRMConnect_PromptsWhenNoTokenFlag verifies the interactive path.
func TestRunCRMConnect_PromptsWhenNoTokenFlag(t *testing.T) {
	resetCRMFlags()

	deps := testCRMDeps(t)
	err := runCRMConnect(deps, credentials.ProviderZoho)
	require.NoError(t, err)

	store, err := deps.NewStore()
	require.NoError(t, err)
	conn, err := store.Get(credentials.ProviderZoho)
	require.NoError(t, err)
	assert.Equal(t, "prompted-token", conn.Token)
}

// TestRunCRMConnect_InvalidProvider verifies provider validation.
func TestRunCRMConnect_InvalidProvider(t *testing.T) {
	resetCRMFlags()

	err := runCRMConnect(testCRMDeps(t), "salesforce")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

// TestRunCRMConnect_EmptyToken verifies the empty token guard.
func TestRunCRMConnect_EmptyToken(t *testing.T) {
	resetCRMFlags()

	deps := testCRMDeps(t)
	deps.ReadToken = func() (string, error) { return "", nil }

	err := runCRMConnect(deps, credentials.ProviderHubSpot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token must not be empty")
}

// TestRunCRMStatus verifies the status listing.
func TestRunCRMStatus(t *testing.T) {
	resetCRMFlags()
	crmToken = "some-token"
	t.Cleanup(resetCRMFlags)

	deps := testCRMDeps(t)
	require.NoError(t, runCRMConnect(deps, credentials.ProviderHubSpot))

	err := runCRMStatus(deps)
	assert.NoError(t, err)
}

// TestRunCRMStatus_Empty verifies status with nothing connected.
func TestRunCRMStatus_Empty(t *testing.T) {
	resetCRMFlags()

	err := runCRMStatus(testCRMDeps(t))
	assert.NoError(t, err)
}

// TestRunCRMDisconnect verifies removing a connection.
func TestRunCRMDisconnect(t *testing.T) {
	resetCRMFlags()
	crmToken = "some-token"
	t.Cleanup(resetCRMFlags)

	deps := testCRMDeps(t)
	require.NoError(t, runCRMConnect(deps, credentials.ProviderHubSpot))

	err := runCRMDisconnect(deps, credentials.ProviderHubSpot)
	require.NoError(t, err)

	store, err := deps.NewStore()
	require.NoError(t, err)
	_, err = store.Get(credentials.ProviderHubSpot)
	assert.True(t, errors.Is(err, credentials.ErrNoCredentials))
}

// TestRunCRMDisconnect_NotConnected verifies disconnecting an unknown provider.
func TestRunCRMDisconnect_NotConnected(t *testing.T) {
	resetCRMFlags()

	err := runCRMDisconnect(testCRMDeps(t), credentials.ProviderZoho)
	require.Error(t, err)
	assert.True(t, errors.Is(err, credentials.ErrNotConnected))
}
