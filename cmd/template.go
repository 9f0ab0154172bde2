package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/samuhq/samu-cli/config"
	"github.com/samuhq/samu-cli/pkg/db"
	"github.com/samuhq/samu-cli/pkg/logging"
	"github.com/samuhq/samu-cli/pkg/templates"
)

// Template command flags.
var (
	templateKind     string
	templateTitle    string
	templateAuthor   string
	templatePrompt   string
	templateLanguage string
	templateTone     string
	templateLength   string
	templateCallLink bool
	templatePublish  bool
	templateOutput   string
)

// TemplateCommandDeps holds the dependencies for template commands.
type TemplateCommandDeps struct {
	Config     *config.CLIConfig
	LoadConfig func() (*config.CLIConfig, error)

	// Store overrides the configured template store. Used in tests.
	Store templates.Store
}

// DefaultTemplateDeps returns the default dependencies for production use.
func DefaultTemplateDeps() *TemplateCommandDeps {
	return &TemplateCommandDeps{
		LoadConfig: config.LoadConfig,
	}
}

// NewTemplateCommand creates the template command with its subcommands.
func NewTemplateCommand(deps *TemplateCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultTemplateDeps()
	}

	cmd := &cobra.Command{
		Use:     "template",
		Short:   "Manage follow-up generation templates",
		Aliases: []string{"templates"},
	}

	cmd.AddCommand(newTemplateListCommand(deps))
	cmd.AddCommand(newTemplateShowCommand(deps))
	cmd.AddCommand(newTemplateCreateCommand(deps))
	cmd.AddCommand(newTemplateUpdateCommand(deps))
	cmd.AddCommand(newTemplateDeleteCommand(deps))
	cmd.AddCommand(newTemplateDuplicateCommand(deps))

	return cmd
}

func newTemplateListCommand(deps *TemplateCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Long: `List templates, most recently updated first.

Examples:
  samu template list
  samu template list --kind task
  samu template list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateList(cmd.Context(), deps)
		},
	}

	cmd.Flags().StringVar(&templateKind, "kind", "", "Filter by kind: email, task")
	cmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

func newTemplateShowCommand(deps *TemplateCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <template-id>",
		Short: "Show one template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateShow(cmd.Context(), deps, args[0])
		},
	}

	cmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

func newTemplateCreateCommand(deps *TemplateCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new template",
		Long: `Create a new template. New templates start as drafts unless
--publish is given.

Examples:
  samu template create --kind email --title "Follow-up Short" --prompt "..." --language es
  samu template create --kind task --title "Handoff" --prompt "..." --publish`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateCreate(cmd.Context(), deps)
		},
	}

	cmd.Flags().StringVar(&templateKind, "kind", string(templates.KindEmail), "Template kind: email, task")
	cmd.Flags().StringVar(&templateTitle, "title", "", "Template title (required)")
	cmd.Flags().StringVar(&templateAuthor, "author", "", "Template author")
	cmd.Flags().StringVar(&templatePrompt, "prompt", "", "Generation instructions (required)")
	cmd.Flags().StringVar(&templateLanguage, "language", "", "Output language, e.g. es, en")
	cmd.Flags().StringVar(&templateTone, "tone", "", "Email tone")
	cmd.Flags().StringVar(&templateLength, "length", "", "Email length")
	cmd.Flags().BoolVar(&templateCallLink, "call-link", false, "Insert a link to the call in generated emails")
	cmd.Flags().BoolVar(&templatePublish, "publish", false, "Publish immediately instead of saving as draft")
	cmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Output format: text, json, yaml")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("prompt")

	return cmd
}

func newTemplateUpdateCommand(deps *TemplateCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <template-id>",
		Short: "Update an existing template",
		Long: `Update an existing template. Only the flags given are changed.

Examples:
  samu template update 7f1a3c52-... --title "Email Follow-up v2"
  samu template update 7f1a3c52-... --publish`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateUpdate(cmd.Context(), deps, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&templateTitle, "title", "", "Template title")
	cmd.Flags().StringVar(&templateAuthor, "author", "", "Template author")
	cmd.Flags().StringVar(&templatePrompt, "prompt", "", "Generation instructions")
	cmd.Flags().StringVar(&templateLanguage, "language", "", "Output language")
	cmd.Flags().StringVar(&templateTone, "tone", "", "Email tone")
	cmd.Flags().StringVar(&templateLength, "length", "", "Email length")
	cmd.Flags().BoolVar(&templateCallLink, "call-link", false, "Insert a link to the call in generated emails")
	cmd.Flags().BoolVar(&templatePublish, "publish", false, "Set status to published")
	cmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

func newTemplateDeleteCommand(deps *TemplateCommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template-id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateDelete(cmd.Context(), deps, args[0])
		},
	}
}

func newTemplateDuplicateCommand(deps *TemplateCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duplicate <template-id>",
		Short: "Duplicate a template as a new draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateDuplicate(cmd.Context(), deps, args[0])
		},
	}

	cmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

// resolveTemplateStore loads config and builds the template store unless the
// deps carry an override. The store is Postgres-backed when a database is
// configured and the built-in seed otherwise.
func resolveTemplateStore(ctx context.Context, deps *TemplateCommandDeps) (templates.Store, func(), error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}
	deps.Config = cfg

	if deps.Store != nil {
		return deps.Store, func() {}, nil
	}

	if cfg.Database.IsConfigured() {
		pool, err := db.Connect(ctx, cfg.Database.PoolConfig())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		if _, err := db.RegisterPoolStatsCollector(pool, "samu", "cli"); err != nil {
			newLogger(cfg).Warn("registering pool metrics failed", logging.Err(err))
		}
		return templates.NewRepository(pool), func() { db.Close(pool) }, nil
	}

	return templates.NewSeededMemStore(), func() {}, nil
}

func parseTemplateID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid template ID %q: %w", arg, err)
	}
	return id, nil
}

func runTemplateList(ctx context.Context, deps *TemplateCommandDeps) error {
	store, cleanup, err := resolveTemplateStore(ctx, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	list, err := store.List(ctx, templates.Kind(templateKind))
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}

	switch outputFormat(deps.Config, templateOutput) {
	case config.OutputFormatJSON:
		return encodeJSON(list)
	case config.OutputFormatYAML:
		return encodeYAML(list)
	default:
		return outputTemplatesText(list)
	}
}

func runTemplateShow(ctx context.Context, deps *TemplateCommandDeps, arg string) error {
	id, err := parseTemplateID(arg)
	if err != nil {
		return err
	}

	store, cleanup, err := resolveTemplateStore(ctx, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("getting template: %w", err)
	}

	switch outputFormat(deps.Config, templateOutput) {
	case config.OutputFormatJSON:
		return encodeJSON(t)
	case config.OutputFormatYAML:
		return encodeYAML(t)
	default:
		return outputTemplateText(t)
	}
}

func runTemplateCreate(ctx context.Context, deps *TemplateCommandDeps) error {
	store, cleanup, err := resolveTemplateStore(ctx, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	status := templates.StatusDraft
	if templatePublish {
		status = templates.StatusPublished
	}

	t := &templates.Template{
		Kind:           templates.Kind(templateKind),
		Title:          templateTitle,
		Author:         templateAuthor,
		Status:         status,
		Language:       templateLanguage,
		Tone:           templateTone,
		Length:         templateLength,
		Prompt:         templatePrompt,
		InsertCallLink: templateCallLink,
	}

	if err := store.Create(ctx, t); err != nil {
		return fmt.Errorf("creating template: %w", err)
	}

	fmt.Printf("Created template %s (%s)\n", t.ID, t.Status)
	return nil
}

func runTemplateUpdate(ctx context.Context, deps *TemplateCommandDeps, cmd *cobra.Command, arg string) error {
	id, err := parseTemplateID(arg)
	if err != nil {
		return err
	}

	store, cleanup, err := resolveTemplateStore(ctx, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("getting template: %w", err)
	}

	if cmd.Flags().Changed("title") {
		t.Title = templateTitle
	}
	if cmd.Flags().Changed("author") {
		t.Author = templateAuthor
	}
	if cmd.Flags().Changed("prompt") {
		t.Prompt = templatePrompt
	}
	if cmd.Flags().Changed("language") {
		t.Language = templateLanguage
	}
	if cmd.Flags().Changed("tone") {
		t.Tone = templateTone
	}
	if cmd.Flags().Changed("length") {
		t.Length = templateLength
	}
	if cmd.Flags().Changed("call-link") {
		t.InsertCallLink = templateCallLink
	}
	if cmd.Flags().Changed("publish") {
		if templatePublish {
			t.Status = templates.StatusPublished
		} else {
			t.Status = templates.StatusDraft
		}
	}

	if err := store.Update(ctx, t); err != nil {
		return fmt.Errorf("updating template: %w", err)
	}

	fmt.Printf("Updated template %s\n", t.ID)
	return nil
}

func runTemplateDelete(ctx context.Context, deps *TemplateCommandDeps, arg string) error {
	id, err := parseTemplateID(arg)
	if err != nil {
		return err
	}

	store, cleanup, err := resolveTemplateStore(ctx, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	fmt.Printf("Deleted template %s\n", id)
	return nil
}

func runTemplateDuplicate(ctx context.Context, deps *TemplateCommandDeps, arg string) error {
	id, err := parseTemplateID(arg)
	if err != nil {
		return err
	}

	store, cleanup, err := resolveTemplateStore(ctx, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	dup, err := templates.Duplicate(ctx, store, id)
	if err != nil {
		return fmt.Errorf("duplicating template: %w", err)
	}

	switch outputFormat(deps.Config, templateOutput) {
	case config.OutputFormatJSON:
		return encodeJSON(dup)
	case config.OutputFormatYAML:
		return encodeYAML(dup)
	default:
		fmt.Printf("Created draft %s (%q)\n", dup.ID, dup.Title)
		return nil
	}
}

// ==================== Output Functions ====================

func outputTemplatesText(list []templates.Template) error {
	if len(list) == 0 {
		fmt.Println("No templates found.")
		return nil
	}

	for _, t := range list {
		fmt.Printf("  %s  [%s/%s]  %s\n", t.ID, t.Kind, t.Status, t.Title)
		fmt.Printf("      %s · updated %s\n", t.Author, t.UpdatedAt.Format("02/01/2006"))
	}
	return nil
}

func outputTemplateText(t *templates.Template) error {
	fmt.Printf("%s\n", t.Title)
	fmt.Printf("ID:      %s\n", t.ID)
	fmt.Printf("Kind:    %s\n", t.Kind)
	fmt.Printf("Status:  %s\n", t.Status)
	fmt.Printf("Author:  %s\n", t.Author)
	if t.Language != "" {
		fmt.Printf("Language: %s\n", t.Language)
	}
	if t.Tone != "" {
		fmt.Printf("Tone:    %s\n", t.Tone)
	}
	if t.Length != "" {
		fmt.Printf("Length:  %s\n", t.Length)
	}
	if t.Kind == templates.KindEmail {
		fmt.Printf("Call link: %v\n", t.InsertCallLink)
	}
	fmt.Printf("Updated: %s\n", t.UpdatedAt.Format("02/01/2006 15:04"))
	fmt.Printf("\nPrompt\n  %s\n", t.Prompt)
	return nil
}
