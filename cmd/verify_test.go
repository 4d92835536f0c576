package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	command := rootCmd()
	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs(args)
	err := command.Execute()
	return out.String(), err
}

func TestVerifyCommandReportsOrderedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "ordered.xml", `<project><a/><b/></project>`)

	out, err := runCommand(t, "verify", path)

	assert.NoError(t, err)
	assert.Contains(t, out, "Looking good! All documents are in canonical order.")
}

func TestVerifyCommandWarnsByDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "unordered.xml", `<project><b/><a/></project>`)

	out, err := runCommand(t, "verify", path)

	assert.NoError(t, err)
	assert.Contains(t, out, "Found 1 unordered or unreadable document:")
	assert.Contains(t, out, "children of <project> differ at position 0")
}

func TestVerifyCommandStopPolicyFails(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "unordered.xml", `<project><b/><a/></project>`)

	_, err := runCommand(t, "verify", "--on-unordered", "stop", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not sorted")
}

func TestVerifyCommandRejectsUnknownPolicy(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.xml", `<project/>`)

	_, err := runCommand(t, "verify", "--on-unordered", "explode", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid policy")
}

func TestSortCommandSortsInPlace(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "pom.xml", `<project><b/><a/></project>`)

	_, err := runCommand(t, "sort", "--no-backup", path)
	require.NoError(t, err)

	out, err := runCommand(t, "verify", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "Looking good!")
}

func TestSortCommandExplicitOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "pom.xml",
		`<project><artifactId>demo</artifactId><groupId>org</groupId></project>`)

	_, err := runCommand(t, "sort", "--no-backup", "--order", "groupId,artifactId", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Less(t,
		bytes.Index(content, []byte("groupId")),
		bytes.Index(content, []byte("artifactId")))
}
