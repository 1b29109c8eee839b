package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/making3/Comments/journal"
)

// PrintLog writes a day log to out with the timestamps highlighted.
func PrintLog(out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening log %s: %w", path, err)
	}
	defer f.Close()

	stamp := color.New(color.FgCyan)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if at, text, ok := strings.Cut(line, " - "); ok && len(at) == len("15:04:05") {
			fmt.Fprintf(out, "%s - %s\n", stamp.Sprint(at), text)
			continue
		}
		fmt.Fprintln(out, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading log %s: %w", path, err)
	}
	return nil
}

// PrintLogList writes a table of day logs, newest first.
func PrintLogList(out io.Writer, logs []journal.LogFile) {
	if len(logs) == 0 {
		fmt.Fprintln(out, "No logs found.")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.AddRow(bold.Sprint("DATE"), bold.Sprint("SIZE"), bold.Sprint("PATH"))
	for i := len(logs) - 1; i >= 0; i-- {
		l := logs[i]
		tbl.AddRow(l.Date.Format("Mon 2006-01-02"), fmt.Sprintf("%d B", l.Size), l.Path)
	}
	fmt.Fprintln(out, tbl)
}
