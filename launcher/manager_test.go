package launcher

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRunsOpenerWithCleanPath(t *testing.T) {
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "2024-03-05.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	var opened []string
	m := &Manager{command: func(path string) *exec.Cmd {
		opened = append(opened, path)
		return exec.Command(truePath)
	}}

	require.NoError(t, m.Open(`"`+file+`"`))
	require.NoError(t, m.Open(dir+string(filepath.Separator)))
	assert.Equal(t, []string{file, dir}, opened)
}

func TestOpenMissingPath(t *testing.T) {
	called := false
	m := &Manager{command: func(path string) *exec.Cmd {
		called = true
		return exec.Command("true")
	}}

	err := m.Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.False(t, called)
}

func TestOpenCommandUsesPlatformOpener(t *testing.T) {
	cmd := openCommand("/tmp/x.txt")
	assert.Equal(t, "/tmp/x.txt", cmd.Args[len(cmd.Args)-1])
}
