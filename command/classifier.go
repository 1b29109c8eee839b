package command

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/making3/Comments/models"
)

// Action is what a line of user input asks for.
type Action int

const (
	None Action = iota
	Exit
	TodaysLog
	AllLogs
	Help
	Yesterday
	Reminder
	Position
	Screen
	Nudge
	Log
)

var actionNames = [...]string{
	None:      "none",
	Exit:      "exit",
	TodaysLog: "todays-log",
	AllLogs:   "all-logs",
	Help:      "help",
	Yesterday: "yesterday",
	Reminder:  "reminder",
	Position:  "position",
	Screen:    "screen",
	Nudge:     "nudge",
	Log:       "log",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Command is a classified line of input.
type Command struct {
	Action Action
	// Text is the trimmed input.
	Text string
	// Arg is the second space separated field, used by Position and Screen.
	Arg string
	// Direction and Pixels are set for Nudge.
	Direction models.Direction
	Pixels    int
}

type rule struct {
	action Action
	match  func(text string) bool
}

func exactly(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if text == w {
				return true
			}
		}
		return false
	}
}

func containing(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}
}

// rules are evaluated top to bottom, first match wins.
var rules = []rule{
	{Exit, exactly("/exit", "/e", "/x")},
	{TodaysLog, exactly("/todayslog", "/t")},
	{AllLogs, exactly("/logs", "/l")},
	{Help, exactly("/help", "/h")},
	{Yesterday, exactly("/yolo", "/y", "/yesterday")},
	{Reminder, exactly("/reminder", "/r")},
	{Position, containing("/pos", "/position")},
	{Screen, containing("/screen")},
	{Nudge, func(text string) bool { return ParseDirection(text) != models.Nondirectional }},
}

var directionPatterns = []struct {
	dir     models.Direction
	pattern *regexp.Regexp
}{
	{models.Up, regexp.MustCompile(`^up \d+$`)},
	{models.Left, regexp.MustCompile(`^left \d+$`)},
	{models.Right, regexp.MustCompile(`^right \d+$`)},
	{models.Down, regexp.MustCompile(`^down \d+$`)},
}

// ParseDirection reports which nudge pattern the whole of text matches.
func ParseDirection(text string) models.Direction {
	for _, dp := range directionPatterns {
		if dp.pattern.MatchString(text) {
			return dp.dir
		}
	}
	return models.Nondirectional
}

// Classify decides what input asks for. Whitespace-only input yields None.
func Classify(input string) Command {
	text := strings.TrimSpace(input)
	if text == "" {
		return Command{Action: None}
	}

	for _, r := range rules {
		if !r.match(text) {
			continue
		}
		cmd := Command{Action: r.action, Text: text}
		switch r.action {
		case Position, Screen:
			cmd.Arg = secondField(text)
		case Nudge:
			pixels, ok := trailingNumber(text)
			if !ok {
				// Too large for an int; treat it as ordinary text.
				return Command{Action: Log, Text: text}
			}
			cmd.Direction = ParseDirection(text)
			cmd.Pixels = pixels
		}
		return cmd
	}

	return Command{Action: Log, Text: text}
}

// secondField returns the field after the first space, up to the next one.
func secondField(text string) string {
	fields := strings.Split(text, " ")
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

func trailingNumber(text string) (int, bool) {
	idx := strings.LastIndexByte(text, ' ')
	n, err := strconv.Atoi(text[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
