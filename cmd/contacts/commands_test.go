package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/contacts/internal/cli"
	"github.com/jacksmith/contacts/internal/export"
	"github.com/jacksmith/contacts/internal/logger"
	"github.com/jacksmith/contacts/internal/ops"
	"github.com/jacksmith/contacts/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDir changes into a fresh temporary directory and resets the
// persistent flags so each test uses ./contacts.dat.
func setupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { os.Chdir(origDir) })

	flagFile = ""
	flagConfig = ""
	flagLogLevel = ""
	flagLogFormat = ""
	flagNoColor = true
	cli.SetColorEnabled(false)

	return tmpDir
}

// setupTestDirWithData seeds the backing file with two contacts.
func setupTestDirWithData(t *testing.T) string {
	tmpDir := setupTestDir(t)

	m := openTestManager(t)
	_, err := m.Add("Bob", "555-2222", "bob@example.com")
	require.NoError(t, err)
	_, err = m.Add("alice", "555-1111", "alice@example.com")
	require.NoError(t, err)

	return tmpDir
}

func openTestManager(t *testing.T) *ops.Manager {
	t.Helper()
	g, err := storage.Open(storage.DefaultFile)
	require.NoError(t, err)
	m, err := ops.NewManager(g, logger.Nop())
	require.NoError(t, err)
	return m
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old

	return buf.String(), runErr
}

func TestAddCommand(t *testing.T) {
	setupTestDir(t)

	output, err := captureStdout(t, func() error {
		return runAdd(nil, []string{" Alice ", "555-1111", "alice@example.com"})
	})
	require.NoError(t, err)
	assert.Equal(t, "Added: Alice | 555-1111 | alice@example.com\n", output)

	data, err := os.ReadFile("contacts.dat")
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Alice")
}

func TestAddCommandInvalid(t *testing.T) {
	setupTestDir(t)

	output, err := captureStdout(t, func() error {
		return runAdd(nil, []string{"Alice", "555-1111", "not-an-email"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email")
	assert.Empty(t, output)
	assert.Empty(t, openTestManager(t).List())
}

func TestListCommand(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		setupTestDir(t)

		output, err := captureStdout(t, func() error { return runList(nil, nil) })
		require.NoError(t, err)
		assert.Equal(t, "info: No contacts to display.\n", output)
	})

	t.Run("sorted by name", func(t *testing.T) {
		setupTestDirWithData(t)

		output, err := captureStdout(t, func() error { return runList(nil, nil) })
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "All contacts (2):", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], " - alice"), lines[1])
		assert.True(t, strings.HasPrefix(lines[2], " - Bob"), lines[2])
	})
}

func TestSearchCommand(t *testing.T) {
	setupTestDirWithData(t)

	output, err := captureStdout(t, func() error { return runSearch(nil, []string{"ALICE"}) })
	require.NoError(t, err)
	assert.Contains(t, output, "Found 1 contact(s) named 'ALICE':")
	assert.Contains(t, output, " * alice")
	assert.NotContains(t, output, "Bob")

	output, err = captureStdout(t, func() error { return runSearch(nil, []string{"Carol"}) })
	assert.NoError(t, err, "not found is informational")
	assert.Equal(t, "info: no contact found named \"Carol\"\n", output)
}

func TestUpdateCommand(t *testing.T) {
	setupTestDirWithData(t)
	resetUpdateFlags := func() {
		updatePhone, updateEmail = "", ""
		updateCmd.Flags().Lookup("phone").Changed = false
		updateCmd.Flags().Lookup("email").Changed = false
	}
	t.Cleanup(resetUpdateFlags)

	t.Run("requires a field", func(t *testing.T) {
		resetUpdateFlags()
		err := runUpdate(updateCmd, []string{"alice"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to update")
	})

	t.Run("changes phone and keeps email", func(t *testing.T) {
		resetUpdateFlags()
		require.NoError(t, updateCmd.Flags().Set("phone", "555-9999"))

		output, err := captureStdout(t, func() error { return runUpdate(updateCmd, []string{"Alice"}) })
		require.NoError(t, err)
		assert.Equal(t, "Updated: alice | 555-9999 | alice@example.com\n", output)

		matches, err := openTestManager(t).Search("alice")
		require.NoError(t, err)
		assert.Equal(t, "555-9999", matches[0].Phone())
	})

	t.Run("unknown name is informational", func(t *testing.T) {
		resetUpdateFlags()
		require.NoError(t, updateCmd.Flags().Set("email", "x@y.z"))

		output, err := captureStdout(t, func() error { return runUpdate(updateCmd, []string{"Nobody"}) })
		require.NoError(t, err)
		assert.Contains(t, output, "info: no contact found")
	})

	t.Run("invalid email is an error", func(t *testing.T) {
		resetUpdateFlags()
		require.NoError(t, updateCmd.Flags().Set("email", "broken"))

		_, err := captureStdout(t, func() error { return runUpdate(updateCmd, []string{"Bob"}) })
		require.Error(t, err)

		matches, err := openTestManager(t).Search("bob")
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", matches[0].Email())
	})
}

func TestDeleteCommand(t *testing.T) {
	setupTestDirWithData(t)

	output, err := captureStdout(t, func() error { return runDelete(nil, []string{"bob"}) })
	require.NoError(t, err)
	assert.Equal(t, "Deleted 1 contact(s) named 'bob'.\n", output)
	assert.Len(t, openTestManager(t).List(), 1)

	output, err = captureStdout(t, func() error { return runDelete(nil, []string{"bob"}) })
	require.NoError(t, err)
	assert.Contains(t, output, "info: no contact found")
}

func TestExportCommand(t *testing.T) {
	tmpDir := setupTestDirWithData(t)
	dest := filepath.Join(tmpDir, "out.xlsx")

	output, err := captureStdout(t, func() error { return runExport(nil, []string{dest}) })
	require.NoError(t, err)
	assert.Contains(t, output, "Exported 2 contact(s)")

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()

	records, err := export.ReadXLSX(f)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "alice", records[0].Name)
	assert.Equal(t, "Bob", records[1].Name)
}

func TestFileFlag(t *testing.T) {
	tmpDir := setupTestDir(t)
	flagFile = filepath.Join(tmpDir, "other.dat")
	t.Cleanup(func() { flagFile = "" })
	require.NoError(t, rootCmd.PersistentFlags().Set("file", flagFile))
	t.Cleanup(func() { rootCmd.PersistentFlags().Lookup("file").Changed = false })

	_, err := captureStdout(t, func() error {
		return runAdd(nil, []string{"Alice", "1", "a@b.c"})
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tmpDir, "other.dat"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "contacts.dat"))
}

func TestShell(t *testing.T) {
	t.Run("full session", func(t *testing.T) {
		setupTestDir(t)
		m := openTestManager(t)

		input := strings.Join([]string{
			"1", "Alice", "555-1111", "alice@example.com",
			"add", "Bob", "555-2222", "bob@example.com",
			"2", "alice", "", "alice@work.example.com",
			"5", "ALICE",
			"3", "bob",
			"4",
			"6",
		}, "\n") + "\n"

		var out bytes.Buffer
		require.NoError(t, shell(strings.NewReader(input), &out, m, false))

		output := out.String()
		assert.Contains(t, output, "=== Contact Manager ===")
		assert.Contains(t, output, "Added: Alice | 555-1111 | alice@example.com")
		assert.Contains(t, output, "Added: Bob | 555-2222 | bob@example.com")
		assert.Contains(t, output, "Updated: Alice | 555-1111 | alice@work.example.com")
		assert.Contains(t, output, "Found 1 contact(s) named 'ALICE':")
		assert.Contains(t, output, "Deleted 1 contact(s) named 'bob'.")
		assert.Contains(t, output, "All contacts (1):")
		assert.True(t, strings.HasSuffix(output, "Goodbye!\n"))

		// Changes were persisted.
		reloaded := openTestManager(t).List()
		require.Len(t, reloaded, 1)
		assert.Equal(t, "alice@work.example.com", reloaded[0].Email())
	})

	t.Run("errors do not end the loop", func(t *testing.T) {
		setupTestDir(t)
		m := openTestManager(t)

		input := strings.Join([]string{
			"9",
			"add", "", "555", "a@b.c",
			"search", "nobody",
			"list",
		}, "\n") + "\n"

		var out bytes.Buffer
		require.NoError(t, shell(strings.NewReader(input), &out, m, false))

		output := out.String()
		assert.Contains(t, output, "warning: ")
		assert.Contains(t, output, "error: invalid name: cannot be empty")
		assert.Contains(t, output, "info: no contact found named \"nobody\"")
		assert.Contains(t, output, "info: No contacts to display.")
		assert.True(t, strings.HasSuffix(output, "Goodbye!\n"), "EOF ends the session")
	})

	t.Run("end of input mid prompt", func(t *testing.T) {
		setupTestDir(t)
		m := openTestManager(t)

		var out bytes.Buffer
		require.NoError(t, shell(strings.NewReader("1\nAlice\n"), &out, m, false))
		assert.True(t, strings.HasSuffix(out.String(), "Goodbye!\n"))
		assert.Empty(t, m.List())
	})
}
