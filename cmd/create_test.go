package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCreateCmd_Exists verifies getCreateCmd returns
// a valid command.
func TestGetCreateCmd_Exists(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd, "Create command should exist")
	assert.Equal(t, "create", cmd.Use,
		"Command name should be create")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
	assert.Contains(t, cmd.Short, "schema",
		"Short description should mention schema")
}

// TestGetCreateCmd_Flags verifies --force and --example flags.
func TestGetCreateCmd_Flags(t *testing.T) {
	cmd := getCreateCmd()

	tests := []struct {
		name, short, usage string
	}{
		{"force", "f", "drop"},
		{"example", "e", "placeholder"},
	}

	for _, v := range tests {
		fl := cmd.Flags().Lookup(v.name)
		require.NotNil(t, fl, v.name)
		assert.Equal(t, v.short, fl.Shorthand, v.name)
		assert.Equal(t, "false", fl.DefValue, v.name)
		assert.Contains(t, fl.Usage, v.usage, v.name)
	}
}

// TestGetCreateCmd_HelpText verifies help text content.
func TestGetCreateCmd_HelpText(t *testing.T) {
	cmd := getCreateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "--force")
	assert.Contains(t, helpText, "herbdb create --force")
	assert.Contains(t, helpText, "herbdb create -f --example")
}

// TestGetCreateCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetCreateCmd_IndependentInstances(t *testing.T) {
	cmd1 := getCreateCmd()
	cmd2 := getCreateCmd()
	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")

	require.NoError(t, cmd1.Flags().Set("force", "true"))
	assert.Equal(t, "false", cmd2.Flags().Lookup("force").Value.String())
}

func TestCreate(t *testing.T) {
	useSQLite(t)

	_, err := run(t, getCreateCmd())
	require.NoError(t, err)

	op, err := connect(context.Background())
	require.NoError(t, err)
	defer op.Close()
	for _, v := range []string{"plants", "medicinal_uses", "plant_medicinal_uses"} {
		exists, err := op.TableExists(context.Background(), v)
		require.NoError(t, err)
		assert.True(t, exists, v)
	}
}

// TestCreate_Prompt verifies that existing tables are kept unless
// a user agrees to drop them.
func TestCreate_Prompt(t *testing.T) {
	useSQLite(t)

	_, err := run(t, getCreateCmd(), "--example")
	require.NoError(t, err)
	assert.Len(t, listUses(t), 1)

	cmd := getCreateCmd()
	cmd.SetIn(strings.NewReader("no\n"))
	out, err := run(t, cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Do you want to continue?")
	assert.Len(t, listUses(t), 1, "nothing dropped")

	cmd = getCreateCmd()
	cmd.SetIn(strings.NewReader("yes\n"))
	_, err = run(t, cmd)
	require.NoError(t, err)
	assert.Empty(t, listUses(t), "tables recreated")

	_, err = run(t, getCreateCmd(), "--force", "--example")
	require.NoError(t, err)
	uses := listUses(t)
	require.Len(t, uses, 1)
	assert.Equal(t, "Example Use", uses[0].UseName)
	assert.Equal(t, 1, uses[0].PlantCount)
}
