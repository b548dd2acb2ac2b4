package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/cheatrc/pkg/log"
	"github.com/walteh/cheatrc/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var console bytes.Buffer
	ctx := log.NewContext(context.Background(), log.New(&console, zerolog.Disabled))
	return ctx, &console
}

func TestRun(t *testing.T) {
	templateDir := t.TempDir()
	destDir := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(templateDir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("Scripts/Shop.lua", "Cost = @shop_cost_scale|200@,\n")
	write("Scripts/Combat.lua", "-- nothing to change here\n")
	write("Scripts/Shop.lua.orig", "Cost = @shop_cost_scale|200@,\n")

	table := rules.NewTable().Add("shop_cost_scale", rules.ScaleInt(0.5))

	ctx, console := testContext(t)
	err := Run(ctx, Options{
		TemplateDir: templateDir,
		DestDir:     destDir,
		Ignore:      []string{"**/*.orig"},
		Table:       table,
	})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(destDir, "Scripts", "Shop.lua"))
	require.NoError(t, err)
	assert.Equal(t, "Cost = 100,\n", string(got))

	got, err = os.ReadFile(filepath.Join(destDir, "Scripts", "Combat.lua"))
	require.NoError(t, err)
	assert.Equal(t, "-- nothing to change here\n", string(got))

	_, statErr := os.Stat(filepath.Join(destDir, "Scripts", "Shop.lua.orig"))
	assert.True(t, os.IsNotExist(statErr), "ignored template must not be written")

	assert.Contains(t, console.String(), "Scripts/Shop.lua")
	assert.Contains(t, console.String(), "Processed 2 templates")
}

func TestRun_AbortsOnFirstError(t *testing.T) {
	templateDir := t.TempDir()
	destDir := t.TempDir()

	// lexical order: Bad.lua processes before Good.lua
	require.NoError(t, os.WriteFile(
		filepath.Join(templateDir, "Bad.lua"),
		[]byte("x = @totally_unknown_tag|5@\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(templateDir, "Good.lua"),
		[]byte("y = 1\n"), 0o644))

	ctx, _ := testContext(t)
	err := Run(ctx, Options{
		TemplateDir: templateDir,
		DestDir:     destDir,
		Table:       rules.DefaultTable(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, rules.ErrUnknownMacro))

	// nothing after the failure got processed
	_, statErr := os.Stat(filepath.Join(destDir, "Good.lua"))
	assert.True(t, os.IsNotExist(statErr))
}
