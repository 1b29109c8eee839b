package command

import (
	"testing"

	"github.com/making3/Comments/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyExactCommands(t *testing.T) {
	tests := map[string]Action{
		"/exit":      Exit,
		"/e":         Exit,
		"/x":         Exit,
		"/todayslog": TodaysLog,
		"/t":         TodaysLog,
		"/logs":      AllLogs,
		"/l":         AllLogs,
		"/help":      Help,
		"/h":         Help,
		"/yolo":      Yesterday,
		"/y":         Yesterday,
		"/yesterday": Yesterday,
		"/reminder":  Reminder,
		"/r":         Reminder,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			cmd := Classify(input)
			assert.Equal(t, want, cmd.Action)
			assert.Equal(t, input, cmd.Text)
		})
	}
}

func TestClassifyTrimsInput(t *testing.T) {
	assert.Equal(t, Exit, Classify("  /exit \n").Action)
	assert.Equal(t, "hello world", Classify("\thello world  ").Text)
}

func TestClassifyIsCaseSensitive(t *testing.T) {
	cmd := Classify("/EXIT")
	assert.Equal(t, Log, cmd.Action)
	assert.Equal(t, "/EXIT", cmd.Text)
}

func TestClassifyEmptyInput(t *testing.T) {
	for _, input := range []string{"", " ", "\t\n", "   \r\n"} {
		assert.Equal(t, None, Classify(input).Action, "input %q", input)
	}
}

func TestClassifyPosition(t *testing.T) {
	tests := []struct {
		input string
		arg   string
	}{
		{"/pos TopLeft", "TopLeft"},
		{"/position bottomright", "bottomright"},
		{"/pos", ""},
		{"/pos top left", "top"},
		{"note /pos BottomLeft", "/pos"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := Classify(tt.input)
			assert.Equal(t, Position, cmd.Action)
			assert.Equal(t, tt.arg, cmd.Arg)
		})
	}
}

func TestClassifyScreen(t *testing.T) {
	cmd := Classify("/screen 1")
	assert.Equal(t, Screen, cmd.Action)
	assert.Equal(t, "1", cmd.Arg)

	cmd = Classify("/screen")
	assert.Equal(t, Screen, cmd.Action)
	assert.Empty(t, cmd.Arg)
}

func TestClassifyPriority(t *testing.T) {
	// /pos is checked before /screen
	assert.Equal(t, Position, Classify("/screen /pos").Action)
	// exact commands win over substring matches
	assert.Equal(t, AllLogs, Classify("/l").Action)
}

func TestClassifyNudge(t *testing.T) {
	tests := []struct {
		input  string
		dir    models.Direction
		pixels int
	}{
		{"up 5", models.Up, 5},
		{"down 120", models.Down, 120},
		{"left 0", models.Left, 0},
		{"right 10", models.Right, 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := Classify(tt.input)
			assert.Equal(t, Nudge, cmd.Action)
			assert.Equal(t, tt.dir, cmd.Direction)
			assert.Equal(t, tt.pixels, cmd.Pixels)
		})
	}
}

func TestClassifyMalformedNudgeIsLogged(t *testing.T) {
	inputs := []string{
		"up",
		"up -5",
		"upward 5",
		"up 5px",
		"Up 5",
		"up  5",
		"go up 5",
		"up 99999999999999999999",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			cmd := Classify(input)
			assert.Equal(t, Log, cmd.Action)
			assert.Equal(t, input, cmd.Text)
		})
	}
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, models.Right, ParseDirection("right 10"))
	assert.Equal(t, models.Nondirectional, ParseDirection("right"))
	assert.Equal(t, models.Nondirectional, ParseDirection(""))
}

func TestReferenceCoversEveryCommand(t *testing.T) {
	ref := Reference()
	assert.NotEmpty(t, ref)
	for _, u := range ref {
		assert.NotEmpty(t, u.Commands)
		assert.NotEmpty(t, u.Description)
	}
}
