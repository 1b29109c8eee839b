package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/making3/Comments/command"
	"github.com/making3/Comments/models"
	"github.com/ncruces/zenity"
)

// settingsDialogs opens the help and reminder forms in their own windows;
// the note itself is too small to host overlay dialogs.
type settingsDialogs struct {
	app fyne.App
}

// ShowHelp shows the command reference and the logging options. done may
// also be called from the nested reminder form.
func (d *settingsDialogs) ShowHelp(current *models.Settings, done func(*models.Settings)) {
	w := d.app.NewWindow("Help")

	commands := widget.NewLabel(helpText())
	commands.TextStyle = fyne.TextStyle{Monospace: true}

	previousCheck := widget.NewCheck("Display Previous Day's Log?", nil)
	previousCheck.SetChecked(current.DisplayPreviousLog)

	startStopCheck := widget.NewCheck("Log Start and Close of Application?", nil)
	startStopCheck.SetChecked(current.LogStartStop)

	finished := false
	finish := func(updated *models.Settings) {
		if finished {
			return
		}
		finished = true
		w.Close()
		done(updated)
	}

	reminderBtn := widget.NewButton("Reminder Settings", func() {
		d.ShowReminderSettings(current.Clone(), func(updated *models.Settings) {
			if updated == nil {
				return
			}
			current.ReminderEnabled = updated.ReminderEnabled
			current.ReminderIntervalMS = updated.ReminderIntervalMS
			current.ReminderText = updated.ReminderText
			done(current.Clone())
		})
	})
	okBtn := widget.NewButton("OK", func() {
		current.DisplayPreviousLog = previousCheck.Checked
		current.LogStartStop = startStopCheck.Checked
		finish(current)
	})
	cancelBtn := widget.NewButton("Cancel", func() { finish(nil) })

	w.SetCloseIntercept(func() { finish(nil) })
	w.SetContent(container.NewBorder(
		nil,
		container.NewHBox(reminderBtn, layout.NewSpacer(), cancelBtn, okBtn),
		nil, nil,
		container.NewVBox(commands, previousCheck, startStopCheck),
	))
	w.Show()
}

// ShowReminderSettings edits whether and how often the reminder pops up.
func (d *settingsDialogs) ShowReminderSettings(current *models.Settings, done func(*models.Settings)) {
	w := d.app.NewWindow("Reminder")
	w.Resize(fyne.NewSize(400, 200))

	enabledCheck := widget.NewCheck("Enable reminder", nil)
	enabledCheck.SetChecked(current.ReminderEnabled)

	intervalEntry := widget.NewEntry()
	intervalEntry.SetText(strconv.Itoa(current.ReminderIntervalMS / 60000))

	textEntry := widget.NewEntry()
	textEntry.SetText(current.ReminderText)

	finished := false
	finish := func(updated *models.Settings) {
		if finished {
			return
		}
		finished = true
		w.Close()
		done(updated)
	}

	form := &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("", enabledCheck),
			widget.NewFormItem("Interval (minutes)", intervalEntry),
			widget.NewFormItem("Reminder text", textEntry),
		},
		SubmitText: "OK",
		CancelText: "Cancel",
		OnSubmit: func() {
			current.ReminderEnabled = enabledCheck.Checked
			// Keep the old interval if the entry is not a positive number
			if minutes, err := strconv.Atoi(strings.TrimSpace(intervalEntry.Text)); err == nil && minutes > 0 {
				current.ReminderIntervalMS = minutes * 60000
			}
			current.ReminderText = textEntry.Text
			finish(current)
		},
		OnCancel: func() { finish(nil) },
	}

	w.SetCloseIntercept(func() { finish(nil) })
	w.SetContent(form)
	w.Show()
}

func helpText() string {
	var b strings.Builder
	for _, u := range command.Reference() {
		fmt.Fprintf(&b, "%-26s %s\n", u.Commands, u.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// notifier pops up reminders, natively when zenity is available.
type notifier struct {
	app fyne.App
}

// Notify implements session.Notifier
func (n *notifier) Notify(title, message string) {
	if zenity.IsAvailable() {
		go func() {
			err := zenity.Info(message, zenity.Title(title), zenity.InfoIcon)
			if err != nil && err != zenity.ErrCanceled {
				showMessage(n.app, title, message)
			}
		}()
		return
	}
	showMessage(n.app, title, message)
}

// showMessage opens a small window with a message and an OK button
func showMessage(a fyne.App, title, message string) {
	w := a.NewWindow(title)
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	okBtn := widget.NewButton("OK", func() { w.Close() })
	w.SetContent(container.NewBorder(nil, container.NewHBox(layout.NewSpacer(), okBtn), nil, nil, label))
	w.Resize(fyne.NewSize(360, 140))
	w.Show()
}
