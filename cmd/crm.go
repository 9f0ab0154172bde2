package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samuhq/samu-cli/config"
	"github.com/samuhq/samu-cli/credentials"
)

// CRM command flags.
var (
	crmToken   string
	crmAccount string
	crmOutput  string
)

// CRMCommandDeps holds the dependencies for crm commands.
type CRMCommandDeps struct {
	Config     *config.CLIConfig
	LoadConfig func() (*config.CLIConfig, error)

	// NewStore builds the credential store. Overridden in tests with a store
	// backed by a fixed key provider.
	NewStore func() (*credentials.Store, error)

	// ReadToken reads a token interactively. Defaults to a no-echo terminal
	// prompt.
	ReadToken func() (string, error)
}

// DefaultCRMDeps returns the default dependencies for production use.
func DefaultCRMDeps() *CRMCommandDeps {
	return &CRMCommandDeps{
		LoadConfig: config.LoadConfig,
		NewStore:   credentials.NewStore,
		ReadToken:  readTokenFromTerminal,
	}
}

// readTokenFromTerminal prompts for a token without echoing it.
func readTokenFromTerminal() (string, error) {
	fmt.Fprint(os.Stderr, "Token: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// NewCRMCommand creates the crm command with its subcommands.
func NewCRMCommand(deps *CRMCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultCRMDeps()
	}

	cmd := &cobra.Command{
		Use:   "crm",
		Short: "Manage CRM connections (HubSpot, Zoho)",
	}

	cmd.AddCommand(newCRMConnectCommand(deps))
	cmd.AddCommand(newCRMStatusCommand(deps))
	cmd.AddCommand(newCRMDisconnectCommand(deps))

	return cmd
}

func newCRMConnectCommand(deps *CRMCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect <provider>",
		Short: "Store an API token for a CRM provider",
		Long: `Store an API token for a CRM provider. The token is encrypted at
rest; the encryption key lives in the system keyring or, for CI, in the
SAMU_ENCRYPTION_KEY environment variable.

Supported providers: hubspot, zoho

Examples:
  samu crm connect hubspot
  samu crm connect zoho --account emea --token "$ZOHO_TOKEN"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCRMConnect(deps, credentials.Provider(args[0]))
		},
	}

	cmd.Flags().StringVar(&crmToken, "token", "", "API token (prompted securely when omitted)")
	cmd.Flags().StringVar(&crmAccount, "account", "", "Account or portal identifier")

	return cmd
}

func newCRMStatusCommand(deps *CRMCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show connected CRM providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCRMStatus(deps)
		},
	}

	cmd.Flags().StringVarP(&crmOutput, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

func newCRMDisconnectCommand(deps *CRMCommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <provider>",
		Short: "Remove a stored CRM connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCRMDisconnect(deps, credentials.Provider(args[0]))
		},
	}
}

func runCRMConnect(deps *CRMCommandDeps, provider credentials.Provider) error {
	if !provider.IsValid() {
		return fmt.Errorf("unsupported provider %q (expected hubspot or zoho)", provider)
	}

	token := crmToken
	if token == "" {
		var err error
		token, err = deps.ReadToken()
		if err != nil {
			return err
		}
	}
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}

	store, err := deps.NewStore()
	if err != nil {
		return fmt.Errorf("opening credential store: %w", err)
	}

	conn := &credentials.Connection{
		Provider:    provider,
		Token:       token,
		Account:     crmAccount,
		ConnectedAt: time.Now(),
	}
	if err := store.Connect(conn); err != nil {
		return fmt.Errorf("storing connection: %w", err)
	}

	fmt.Printf("Connected %s (%s)\n", provider, credentials.MaskToken(token))
	return nil
}

// crmStatusEntry is the output shape of crm status.
type crmStatusEntry struct {
	Provider    credentials.Provider `json:"provider" yaml:"provider"`
	Account     string               `json:"account,omitempty" yaml:"account,omitempty"`
	ConnectedAt time.Time            `json:"connected_at" yaml:"connected_at"`
}

func runCRMStatus(deps *CRMCommandDeps) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	deps.Config = cfg

	store, err := deps.NewStore()
	if err != nil {
		return fmt.Errorf("opening credential store: %w", err)
	}

	conns, err := store.List()
	if err != nil {
		return fmt.Errorf("listing connections: %w", err)
	}

	entries := make([]crmStatusEntry, 0, len(conns))
	for _, c := range conns {
		entries = append(entries, crmStatusEntry{
			Provider:    c.Provider,
			Account:     c.Account,
			ConnectedAt: c.ConnectedAt,
		})
	}

	switch outputFormat(deps.Config, crmOutput) {
	case config.OutputFormatJSON:
		return encodeJSON(entries)
	case config.OutputFormatYAML:
		return encodeYAML(entries)
	default:
		if len(entries) == 0 {
			fmt.Println("No CRM providers connected.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("  %s", e.Provider)
			if e.Account != "" {
				fmt.Printf(" (%s)", e.Account)
			}
			fmt.Printf(" · connected %s\n", e.ConnectedAt.Format("02/01/2006"))
		}
		return nil
	}
}

func runCRMDisconnect(deps *CRMCommandDeps, provider credentials.Provider) error {
	if !provider.IsValid() {
		return fmt.Errorf("unsupported provider %q (expected hubspot or zoho)", provider)
	}

	store, err := deps.NewStore()
	if err != nil {
		return fmt.Errorf("opening credential store: %w", err)
	}

	if err := store.Disconnect(provider); err != nil {
		return fmt.Errorf("disconnecting %s: %w", provider, err)
	}

	fmt.Printf("Disconnected %s\n", provider)
	return nil
}
