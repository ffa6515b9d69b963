package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_VersionCommand_PrintsVersion(t *testing.T) {
	// arrange
	root := newRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	// act
	err := root.Execute()

	// assert
	require.NoError(t, err)
	assert.Equal(t, "libmgmt dev\n", out.String())
}

func Test_MigrateDown_RejectsInvalidSteps(t *testing.T) {
	// arrange
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"migrate", "down", "zero"})

	// act
	err := root.Execute()

	// assert
	assert.ErrorContains(t, err, "steps must be a positive number")
}

func Test_RootCommand_RegistersAllSubcommands(t *testing.T) {
	// arrange
	root := newRootCommand()

	// act
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	// assert
	assert.Subset(t, names, []string{"serve", "migrate", "bootstrap-admin", "token", "version"})
}

func Test_ReadPassword_FromStdin(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "line with newline", input: "s3cret-pass\n", want: "s3cret-pass"},
		{name: "windows line ending", input: "s3cret-pass\r\n", want: "s3cret-pass"},
		{name: "no trailing newline", input: "s3cret-pass", want: "s3cret-pass"},
		{name: "empty input", input: "", wantErr: errNoPassword},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			cmd := &cobra.Command{}
			cmd.SetIn(strings.NewReader(tc.input))

			// act
			got, err := readPassword(cmd, true)

			// assert
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}
