package models

// Settings represents the persisted application settings.
// The session mutates it in place; storage.Manager persists it.
type Settings struct {
	Screen             int    `json:"screen"`
	Position           string `json:"position"`
	PositionTop        int    `json:"position_top"`
	PositionLeft       int    `json:"position_left"`
	ReminderEnabled    bool   `json:"reminder_enabled"`
	ReminderIntervalMS int    `json:"reminder_interval_ms"`
	ReminderText       string `json:"reminder_text"`
	LogLocation        string `json:"log_location"`
	LogStartStop       bool   `json:"log_start_stop"`
	DisplayPreviousLog bool   `json:"display_previous_log"`
}

// DefaultSettings returns default application settings
func DefaultSettings() *Settings {
	return &Settings{
		Screen:             0,
		Position:           BottomRight.String(),
		ReminderEnabled:    false,
		ReminderIntervalMS: 30 * 60 * 1000, // 30 minutes
		ReminderText:       "Remember to log what you are working on!",
		LogLocation:        "~/Comments",
		LogStartStop:       true,
		DisplayPreviousLog: true,
	}
}

// Clone returns a copy that can be edited without touching s.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}
