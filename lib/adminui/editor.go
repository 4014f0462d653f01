// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hostadmin/admintui/lib/cron"
	"github.com/hostadmin/admintui/lib/crontab"
	"github.com/hostadmin/admintui/lib/tui"
)

// EditMode is the cron table's modal state. The editor is visible
// exactly when the mode is not EditIdle.
type EditMode int

const (
	EditIdle EditMode = iota
	EditCreating
	EditEditing
)

func (mode EditMode) String() string {
	switch mode {
	case EditCreating:
		return "creating"
	case EditEditing:
		return "editing"
	default:
		return "idle"
	}
}

// EditorField identifies one of the job editor's inputs. Tab moves
// focus Schedule → Command → Description → Schedule.
type EditorField int

const (
	FieldSchedule EditorField = iota
	FieldCommand
	FieldDescription

	fieldCount
)

// Next returns the field after field in tab order.
func (field EditorField) Next() EditorField {
	return (field + 1) % fieldCount
}

func (field EditorField) String() string {
	switch field {
	case FieldCommand:
		return "Command"
	case FieldDescription:
		return "Description"
	default:
		return "Schedule"
	}
}

var fieldPlaceholders = [fieldCount]string{
	FieldSchedule:    "Enter a cron expression, e.g. */5 * * * *",
	FieldCommand:     "Enter a command",
	FieldDescription: "Enter a description",
}

// Editor box width bounds, in cells.
const (
	editorMinWidth = 36
	editorMaxWidth = 78
)

// JobEditor is the modal form for creating and changing cron jobs.
//
// Each field has a multi-line buffer and a single-line mirror taken
// from the buffer's first line. Only the mirrors become the job:
// pasted text after the first newline stays visible in the box but is
// not saved.
type JobEditor struct {
	env   Env
	mode  EditMode
	focus EditorField

	buffers [fieldCount]tui.TextBuffer
	mirrors [fieldCount]string

	// Schedule feedback, recomputed whenever the schedule changes.
	scheduleError error
	description   string
	nextRun       string

	notice notice
}

func newJobEditor(env Env) JobEditor {
	editor := JobEditor{env: env}
	editor.reset()
	return editor
}

// Mode returns the current EditMode.
func (editor *JobEditor) Mode() EditMode { return editor.mode }

// Active reports whether the modal is open.
func (editor *JobEditor) Active() bool { return editor.mode != EditIdle }

// Focus returns the focused field.
func (editor *JobEditor) Focus() EditorField { return editor.focus }

// Mirror returns the single-line value of field.
func (editor *JobEditor) Mirror(field EditorField) string { return editor.mirrors[field] }

// Value returns the full multi-line buffer of field.
func (editor *JobEditor) Value(field EditorField) string { return editor.buffers[field].Value() }

// ScheduleValid reports whether the schedule mirror parses.
func (editor *JobEditor) ScheduleValid() bool { return editor.scheduleError == nil }

// Notice returns the editor's status message, if any.
func (editor *JobEditor) Notice() string { return editor.notice.text }

// Open shows the modal in mode with the fields taken from job. Pass a
// zero Job to start empty.
func (editor *JobEditor) Open(mode EditMode, job crontab.Job) {
	editor.reset()
	editor.mode = mode
	editor.buffers[FieldSchedule].SetValue(job.Schedule)
	editor.buffers[FieldCommand].SetValue(job.Command)
	editor.buffers[FieldDescription].SetValue(job.Description)
	for field := range fieldCount {
		editor.refresh(field)
	}
}

// reset discards all input and closes the modal.
func (editor *JobEditor) reset() {
	editor.mode = EditIdle
	editor.focus = FieldSchedule
	for field := range fieldCount {
		editor.buffers[field] = tui.NewTextBuffer()
		editor.mirrors[field] = ""
	}
	editor.notice = notice{}
	editor.refresh(FieldSchedule)
}

// refresh re-reads field's mirror from its buffer. Schedule changes
// re-run validation, the description and the next-run preview.
func (editor *JobEditor) refresh(field EditorField) {
	editor.mirrors[field] = editor.buffers[field].FirstLine()
	if field != FieldSchedule {
		return
	}
	schedule := editor.mirrors[FieldSchedule]
	_, editor.scheduleError = cron.Parse(schedule)
	editor.description = cron.Describe(schedule)
	editor.nextRun = cron.FormatNextRun(schedule, editor.env.Clock.Now(), editor.env.Settings.Location())
}

// HandleKey applies one key to the open editor. When the key commits
// the form it returns the finished job, the mode it was opened in and
// true; the editor is then closed and reset. Cancel closes the editor
// and returns false.
func (editor *JobEditor) HandleKey(message tea.KeyMsg) (crontab.Job, EditMode, bool) {
	if !editor.Active() {
		return crontab.Job{}, EditIdle, false
	}
	editor.notice = notice{}
	keys := editor.env.Keys

	switch {
	case key.Matches(message, keys.Cancel):
		editor.reset()

	case key.Matches(message, keys.Commit):
		return editor.commit()

	case key.Matches(message, keys.NextField):
		editor.focus = editor.focus.Next()

	case key.Matches(message, keys.Paste):
		text, err := editor.env.Clipboard()
		if err != nil {
			editor.env.Logger.Warn("clipboard read failed", "error", err)
			editor.notice = errorf("Clipboard unavailable: %v", err)
			break
		}
		editor.buffers[editor.focus].AppendString(text)
		editor.refresh(editor.focus)

	default:
		if editor.buffers[editor.focus].Update(message) {
			editor.refresh(editor.focus)
		}
	}
	return crontab.Job{}, editor.mode, false
}

// commit turns the mirrors into a job. An invalid schedule keeps the
// editor open.
func (editor *JobEditor) commit() (crontab.Job, EditMode, bool) {
	if editor.scheduleError != nil {
		editor.notice = errorf("Cannot save: %v", editor.scheduleError)
		editor.focus = FieldSchedule
		return crontab.Job{}, editor.mode, false
	}
	job := crontab.Job{
		Schedule:    editor.mirrors[FieldSchedule],
		Command:     editor.mirrors[FieldCommand],
		Description: editor.mirrors[FieldDescription],
	}
	job.Refresh(editor.env.Clock.Now(), editor.env.Settings.Location())
	mode := editor.mode
	editor.reset()
	return job, mode, true
}

// Render draws the modal for a screen of the given size and returns
// its lines with the top-left anchor that centers it.
func (editor *JobEditor) Render(screenWidth, screenHeight int) ([]string, int, int) {
	theme := editor.env.Theme
	boxWidth := min(max(screenWidth-4, editorMinWidth), editorMaxWidth)
	// Outer border and padding take four columns; field borders two more.
	innerWidth := boxWidth - 4
	fieldWidth := innerWidth - 2

	background := lipgloss.NewStyle().Background(theme.ModalBackground)
	textStyle := background.Foreground(theme.NormalText)
	faintStyle := background.Foreground(theme.FaintText)
	labelStyle := background.Foreground(theme.HeaderForeground).Bold(true)

	var sections []string
	title := "New cron job"
	if editor.mode == EditEditing {
		title = "Edit cron job"
	}
	sections = append(sections, tui.PadLine(labelStyle.Render(title), innerWidth, background), "")

	for field := range fieldCount {
		borderColor := theme.BorderColor
		if field == editor.focus {
			borderColor = theme.FocusBorderColor
		}
		label := labelStyle.Render(field.String())
		if field == FieldSchedule {
			valid := editor.ScheduleValid()
			borderColor = theme.ValidationColor(valid)
			status := "OK"
			if !valid {
				status = "invalid cron syntax"
			}
			label += background.Render(" ") +
				background.Foreground(theme.ValidationColor(valid)).Render(status)
		}
		sections = append(sections, tui.PadLine(label, innerWidth, background))

		lines := editor.renderField(field, fieldWidth, textStyle, faintStyle)
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			BorderBackground(theme.ModalBackground).
			Render(strings.Join(lines, "\n"))
		sections = append(sections, box)

		if field == FieldSchedule {
			sections = append(sections,
				faintStyle.Width(innerWidth).Render(editor.description),
				tui.PadLine(faintStyle.Render("Next run: "+editor.nextRun), innerWidth, background))
		}
	}

	sections = append(sections, "")
	if editor.notice.text != "" {
		sections = append(sections, tui.PadLine(
			editor.notice.style(theme).Background(theme.ModalBackground).Render(editor.notice.text),
			innerWidth, background))
	}
	keys := editor.env.Keys
	help := helpLine(keys.NextField, keys.Paste, keys.Commit, keys.Cancel)
	sections = append(sections, tui.PadLine(background.Foreground(theme.HelpText).Render(help), innerWidth, background))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.FocusBorderColor).
		BorderBackground(theme.ModalBackground).
		Background(theme.ModalBackground).
		Padding(0, 1).
		Width(innerWidth + 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	lines := strings.Split(modal, "\n")
	anchorX, anchorY := tui.CenterAnchor(lines, screenWidth, screenHeight)
	return lines, anchorX, anchorY
}

// renderField draws one buffer, or its placeholder when empty.
func (editor *JobEditor) renderField(field EditorField, width int, textStyle, faintStyle lipgloss.Style) []string {
	focused := field == editor.focus
	buffer := editor.buffers[field]
	if buffer.Value() != "" {
		return buffer.Render(width, focused, textStyle)
	}
	placeholder := faintStyle.Render(fieldPlaceholders[field])
	if focused {
		placeholder = lipgloss.NewStyle().Reverse(true).Render(" ") + placeholder
	}
	return []string{tui.PadLine(placeholder, width, textStyle)}
}
