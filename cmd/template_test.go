package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuhq/samu-cli/config"
	pferrors "github.com/samuhq/samu-cli/pkg/errors"
	"github.com/samuhq/samu-cli/pkg/templates"
)

func testTemplateDeps() *TemplateCommandDeps {
	return &TemplateCommandDeps{
		LoadConfig: func() (*config.CLIConfig, error) { return config.DefaultConfig(), nil },
		Store:      templates.NewSeededMemStore(),
	}
}

func resetTemplateFlags() {
	templateKind = ""
	templateTitle = ""
	templateAuthor = ""
	templatePrompt = ""
	templateLanguage = ""
	templateTone = ""
	templateLength = ""
	templateCallLink = false
	templatePublish = false
	templateOutput = ""
}

// seededTemplateID returns the ID of one seeded template.
func seededTemplateID(t *testing.T, deps *TemplateCommandDeps, kind templates.Kind) uuid.UUID {
	t.Helper()
	list, err := deps.Store.List(context.Background(), kind)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	return list[0].ID
}

// TestNewTemplateCommand verifies the template command structure.
func TestNewTemplateCommand(t *testing.T) {
	cmd := NewTemplateCommand(testTemplateDeps())

	assert.Equal(t, "template", cmd.Use, "command name should be template")
	assert.Contains(t, cmd.Aliases, "templates")

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"list", "show", "create", "update", "delete", "duplicate"} {
		assert.True(t, subcommands[name], "%s subcommand should exist", name)
	}
}

// TestNewTemplateCreateCommand_Flags verifies the create command flags.
func TestNewTemplateCreateCommand_Flags(t *testing.T) {
	cmd := newTemplateCreateCommand(testTemplateDeps())

	for _, name := range []string{"kind", "title", "author", "prompt", "language", "tone", "length"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "%s flag should exist", name)
		assert.Equal(t, "string", flag.Value.Type())
	}

	callLinkFlag := cmd.Flags().Lookup("call-link")
	require.NotNil(t, callLinkFlag, "call-link flag should exist")
	assert.Equal(t, "bool", callLinkFlag.Value.Type())

	publishFlag := cmd.Flags().Lookup("publish")
	require.NotNil(t, publishFlag, "publish flag should exist")
	assert.Equal(t, "bool", publishFlag.Value.Type())
}

// TestRunTemplateList verifies listing against the seeded store.
func TestRunTemplateList(t *testing.T) {
	resetTemplateFlags()

	err := runTemplateList(context.Background(), testTemplateDeps())
	assert.NoError(t, err)
}

// TestRunTemplateList_KindFilter verifies the --kind filter flows through.
func TestRunTemplateList_KindFilter(t *testing.T) {
	resetTemplateFlags()
	templateKind = "task"
	t.Cleanup(resetTemplateFlags)

	err := runTemplateList(context.Background(), testTemplateDeps())
	assert.NoError(t, err)
}

// TestRunTemplateShow verifies the show path.
func TestRunTemplateShow(t *testing.T) {
	resetTemplateFlags()
	deps := testTemplateDeps()
	id := seededTemplateID(t, deps, templates.KindEmail)

	err := runTemplateShow(context.Background(), deps, id.String())
	assert.NoError(t, err)
}

// TestRunTemplateShow_InvalidID verifies malformed IDs are rejected.
func TestRunTemplateShow_InvalidID(t *testing.T) {
	resetTemplateFlags()

	err := runTemplateShow(context.Background(), testTemplateDeps(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid template ID")
}

// TestRunTemplateShow_NotFound verifies unknown IDs surface not-found.
func TestRunTemplateShow_NotFound(t *testing.T) {
	resetTemplateFlags()

	err := runTemplateShow(context.Background(), testTemplateDeps(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, pferrors.ErrNotFound))
}

// TestRunTemplateCreate verifies creation against the store.
func TestRunTemplateCreate(t *testing.T) {
	resetTemplateFlags()
	templateKind = string(templates.KindEmail)
	templateTitle = "Follow-up corto"
	templatePrompt = "Redacta un seguimiento breve."
	templatePublish = true
	t.Cleanup(resetTemplateFlags)

	deps := testTemplateDeps()
	err := runTemplateCreate(context.Background(), deps)
	require.NoError(t, err)

	list, err := deps.Store.List(context.Background(), templates.KindEmail)
	require.NoError(t, err)
	require.Len(t, list, 7)
	var created *templates.Template
	for i := range list {
		if list[i].Title == "Follow-up corto" {
			created = &list[i]
		}
	}
	require.NotNil(t, created, "created template should be listed")
	assert.Equal(t, templates.StatusPublished, created.Status)
}

// TestRunTemplateCreate_Validation verifies store validation surfaces.
func TestRunTemplateCreate_Validation(t *testing.T) {
	resetTemplateFlags()
	templateKind = "letter"
	templateTitle = "x"
	templatePrompt = "y"
	t.Cleanup(resetTemplateFlags)

	err := runTemplateCreate(context.Background(), testTemplateDeps())
	require.Error(t, err)
	assert.True(t, pferrors.IsValidation(err))
}

// TestRunTemplateUpdate verifies partial updates only touch changed flags.
func TestRunTemplateUpdate(t *testing.T) {
	resetTemplateFlags()
	t.Cleanup(resetTemplateFlags)

	deps := testTemplateDeps()
	id := seededTemplateID(t, deps, templates.KindEmail)

	before, err := deps.Store.Get(context.Background(), id)
	require.NoError(t, err)

	cmd := newTemplateUpdateCommand(deps)
	require.NoError(t, cmd.Flags().Set("title", "Título nuevo"))
	templateTitle = "Título nuevo"

	err = runTemplateUpdate(context.Background(), deps, cmd, id.String())
	require.NoError(t, err)

	after, err := deps.Store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Título nuevo", after.Title)
	assert.Equal(t, before.Prompt, after.Prompt, "untouched fields should be preserved")
	assert.Equal(t, before.Author, after.Author, "untouched fields should be preserved")
}

// TestRunTemplateDelete verifies deletion.
func TestRunTemplateDelete(t *testing.T) {
	resetTemplateFlags()

	deps := testTemplateDeps()
	id := seededTemplateID(t, deps, templates.KindTask)

	err := runTemplateDelete(context.Background(), deps, id.String())
	require.NoError(t, err)

	_, err = deps.Store.Get(context.Background(), id)
	assert.True(t, pferrors.IsNotFound(err))
}

// TestRunTemplateDuplicate verifies duplication creates a draft copy.
func TestRunTemplateDuplicate(t *testing.T) {
	resetTemplateFlags()

	deps := testTemplateDeps()
	id := seededTemplateID(t, deps, templates.KindEmail)

	err := runTemplateDuplicate(context.Background(), deps, id.String())
	require.NoError(t, err)

	list, err := deps.Store.List(context.Background(), templates.KindEmail)
	require.NoError(t, err)
	require.Len(t, list, 7, "duplicate should add one email template")
	var dup *templates.Template
	for i := range list {
		if list[i].ID != id && strings.HasSuffix(list[i].Title, "(copia)") {
			dup = &list[i]
		}
	}
	require.NotNil(t, dup, "duplicated draft should be listed")
	assert.Equal(t, templates.StatusDraft, dup.Status)
}
