package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "2024-03-05.txt", FileName(day("2024-03-05 23:59:59")))
}

func TestAppendCreatesDirectoryAndAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	clock := day("2024-03-05 09:15:02")
	w := NewWriter(dir, day("2024-03-05 08:00:00")).WithClock(func() time.Time { return clock })

	assert.False(t, w.Exists())
	require.NoError(t, w.Append("hello"))
	clock = clock.Add(3 * time.Second)
	require.NoError(t, w.Append("hello"))
	assert.True(t, w.Exists())

	data, err := os.ReadFile(filepath.Join(dir, "2024-03-05.txt"))
	require.NoError(t, err)
	assert.Equal(t, "09:15:02 - hello\n\n09:15:05 - hello\n\n", string(data))
}

func TestAppendKeepsExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2024-03-05.txt")
	require.NoError(t, os.WriteFile(path, []byte("earlier\n\n"), 0o644))

	w := NewWriter(dir, day("2024-03-05 08:00:00")).WithClock(func() time.Time { return day("2024-03-05 10:00:00") })
	require.NoError(t, w.Append("later"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "earlier\n\n10:00:00 - later\n\n", string(data))
}

func TestPathDoesNotRollOverAtMidnight(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, day("2024-03-05 23:59:00")).WithClock(func() time.Time { return day("2024-03-06 00:01:00") })

	require.NoError(t, w.Append("late night"))
	assert.FileExists(t, filepath.Join(dir, "2024-03-05.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "2024-03-06.txt"))
}

func TestAppendFailsWhenDirectoryCannotBeCreated(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	w := NewWriter(filepath.Join(blocker, "logs"), time.Now())
	err := w.Append("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating log directory")
}

func TestListAndPrevious(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2024-03-01.txt", "2024-03-04.txt", "2024-03-05.txt", "notes.txt", "2024-03-02.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	logs, err := List(dir)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, filepath.Join(dir, "2024-03-01.txt"), logs[0].Path)
	assert.Equal(t, filepath.Join(dir, "2024-03-05.txt"), logs[2].Path)
	assert.Equal(t, int64(1), logs[0].Size)

	prev, err := Previous(dir, day("2024-03-05 09:00:00"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2024-03-04.txt"), prev)

	// a Monday finds the last working day
	prev, err = Previous(dir, day("2024-03-04 09:00:00"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2024-03-01.txt"), prev)
}

func TestPreviousWithoutLogs(t *testing.T) {
	_, err := Previous(filepath.Join(t.TempDir(), "missing"), time.Now())
	assert.ErrorIs(t, err, ErrNoLog)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-03-05.txt"), nil, 0o644))
	_, err = Previous(dir, day("2024-03-05 12:00:00"))
	assert.ErrorIs(t, err, ErrNoLog)
}
