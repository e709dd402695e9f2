package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteDeleteRemovesFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "junk.log")
	writeFile(t, path, 4)

	actions := NewFSActions()
	result, err := actions.Execute(context.Background(), ActionRequest{Type: ActionDelete, Path: path})
	require.NoError(t, err)

	assert.Equal(t, ActionDelete, result.Type)
	assert.Equal(t, path, result.Path)
	assert.Contains(t, result.Message, path)
	assert.NoFileExists(t, path)
}

func TestExecuteDeleteRefusesDirectories(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "keep")
	require.NoError(t, os.Mkdir(dir, 0o755))

	actions := NewFSActions()
	_, err := actions.Execute(context.Background(), ActionRequest{Type: ActionDelete, Path: dir})
	assert.Error(t, err)
	assert.DirExists(t, dir)
}

func TestExecuteDeleteMissingFileFails(t *testing.T) {
	actions := NewFSActions()
	_, err := actions.Execute(context.Background(), ActionRequest{
		Type: ActionDelete,
		Path: filepath.Join(t.TempDir(), "gone.txt"),
	})
	assert.Error(t, err)
}

func TestExecuteRejectsUnknownAction(t *testing.T) {
	actions := NewFSActions()
	_, err := actions.Execute(context.Background(), ActionRequest{Type: "shred", Path: "/tmp/x"})
	assert.Error(t, err)
}

func TestExecuteHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	actions := NewFSActions()
	_, err := actions.Execute(ctx, ActionRequest{Type: ActionDelete, Path: "/tmp/x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestContainingFolder(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b"), containingFolder(filepath.Join("a", "b", "c.txt")))
	assert.Equal(t, string(filepath.Separator), containingFolder(string(filepath.Separator)))
}
