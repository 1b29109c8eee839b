package command

// Usage describes one entry of the command vocabulary.
type Usage struct {
	Commands    string
	Description string
}

// Reference lists the command vocabulary in the order it is matched.
func Reference() []Usage {
	return []Usage{
		{"/exit, /e, /x", "Close the note"},
		{"/todayslog, /t", "Open today's log"},
		{"/logs, /l", "Open the log folder"},
		{"/help, /h", "Show this help"},
		{"/yesterday, /yolo, /y", "Open the previous day's log"},
		{"/reminder, /r", "Reminder settings"},
		{"/pos <corner>", "Pin to TopLeft, TopRight, BottomLeft or BottomRight"},
		{"/screen <n>", "Move to monitor n (0 is the primary)"},
		{"up|down|left|right <px>", "Nudge the note by px pixels"},
		{"anything else", "Logged with the current time"},
	}
}
