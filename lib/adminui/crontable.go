// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hostadmin/admintui/lib/cron"
	"github.com/hostadmin/admintui/lib/crontab"
	"github.com/hostadmin/admintui/lib/tui"
)

var cronColumns = []column{
	{title: "Schedule", width: 16},
	{title: "Next run", width: 21},
	{title: "Description"},
	{title: "Command"},
}

// CronTable is the crontab editor screen. It owns the job list and
// the job editor; every structural change is saved through the store
// immediately.
type CronTable struct {
	env       Env
	jobs      []crontab.Job
	selection selection
	editor    JobEditor

	// editIndex is the row being changed while the editor is in
	// EditEditing mode.
	editIndex int

	// loadFailed disables mutations: saving over a table that could
	// not be read would replace it with the error row.
	loadFailed bool

	notice notice
	width  int
	height int
}

// NewCronTable loads the crontab from env.Store. A load failure is
// shown as a single row carrying the error message.
func NewCronTable(env Env) *CronTable {
	env = env.withDefaults()
	table := &CronTable{
		env:    env,
		editor: newJobEditor(env),
		width:  defaultWidth,
		height: defaultHeight,
	}
	table.load()
	return table
}

func (table *CronTable) load() {
	logger := table.env.Logger
	jobs, err := table.env.Store.Load(table.env.Context)
	if err != nil {
		logger.Error("loading crontab failed", "error", err)
		jobs = []crontab.Job{{Schedule: err.Error(), NextRun: cron.NextRunUnavailable}}
		table.loadFailed = true
		table.notice = errorf("Could not read the crontab; editing is disabled")
	} else {
		logger.Info("loaded crontab", "jobs", len(jobs))
	}
	table.jobs = jobs
	table.selection = newSelection(len(jobs))
}

// Jobs returns the current job list.
func (table *CronTable) Jobs() []crontab.Job {
	return table.jobs
}

// Cursor returns the selected row, or -1 when the list is empty.
func (table *CronTable) Cursor() int {
	return table.selection.cursor
}

// Editor returns the job editor.
func (table *CronTable) Editor() *JobEditor {
	return &table.editor
}

// Notice returns the status line message, if any.
func (table *CronTable) Notice() string {
	return table.notice.text
}

func (table *CronTable) Resize(width, height int) {
	table.width = width
	table.height = height
	table.selection.follow(len(table.jobs), visibleRows(height))
}

func (table *CronTable) HandleMouse(tea.MouseMsg) Screen {
	return nil
}

func (table *CronTable) HandleKey(message tea.KeyMsg) Screen {
	if table.editor.Active() {
		job, mode, committed := table.editor.HandleKey(message)
		if committed {
			table.apply(job, mode)
		}
		return nil
	}

	table.notice = notice{}
	keys := table.env.Keys
	count := len(table.jobs)
	switch {
	case key.Matches(message, keys.Back):
		return NewMainMenu(table.env)
	case key.Matches(message, keys.Down):
		table.selection.next(count)
	case key.Matches(message, keys.Up):
		table.selection.previous(count)
	case key.Matches(message, keys.Home):
		table.selection.first(count)
	case key.Matches(message, keys.End):
		table.selection.last(count)
	case key.Matches(message, keys.New):
		if table.mutable() {
			table.editor.Open(EditCreating, crontab.Job{})
		}
	case key.Matches(message, keys.Select):
		if count > 0 && table.mutable() {
			table.editIndex = table.selection.cursor
			table.editor.Open(EditEditing, table.jobs[table.editIndex])
		}
	case key.Matches(message, keys.Delete):
		if count > 0 && table.mutable() {
			table.deleteSelected()
		}
	}
	table.selection.follow(len(table.jobs), visibleRows(table.height))
	return nil
}

func (table *CronTable) mutable() bool {
	if table.loadFailed {
		table.notice = errorf("The crontab could not be read; reopen the screen to retry")
		return false
	}
	return true
}

// apply puts a committed job into the list and saves.
func (table *CronTable) apply(job crontab.Job, mode EditMode) {
	switch mode {
	case EditCreating:
		table.jobs = append(table.jobs, job)
		table.selection.selectRow(len(table.jobs)-1, len(table.jobs))
		table.env.Logger.Info("created cron job", "schedule", job.Schedule)
	case EditEditing:
		if table.editIndex < 0 || table.editIndex >= len(table.jobs) {
			return
		}
		table.jobs[table.editIndex] = job
		table.selection.selectRow(table.editIndex, len(table.jobs))
		table.env.Logger.Info("updated cron job", "index", table.editIndex, "schedule", job.Schedule)
	}
	table.selection.follow(len(table.jobs), visibleRows(table.height))
	table.save()
	if !job.Persistable() && !table.notice.isError {
		table.notice = infof("Job has no command and is not written to the crontab")
	}
}

func (table *CronTable) deleteSelected() {
	index := table.selection.cursor
	removed := table.jobs[index]
	table.jobs = append(table.jobs[:index], table.jobs[index+1:]...)
	table.selection.clamp(len(table.jobs))
	table.env.Logger.Info("deleted cron job", "index", index, "schedule", removed.Schedule)
	table.save()
}

// save installs the current list. The list is kept as is when the
// store fails.
func (table *CronTable) save() {
	if err := table.env.Store.Save(table.env.Context, table.jobs); err != nil {
		table.env.Logger.Error("saving crontab failed", "error", err)
		table.notice = errorf("Save failed: %v", err)
		return
	}
	installed := 0
	for _, job := range table.jobs {
		if job.Persistable() {
			installed++
		}
	}
	table.notice = infof("Crontab saved (%d jobs)", installed)
}

func (table *CronTable) View() string {
	theme := table.env.Theme
	keys := table.env.Keys
	highlightedCommand := func(command string, selected bool) string {
		if selected {
			return command
		}
		return tui.HighlightShell(command, table.env.Profile)
	}
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	frame := tableFrame{
		theme:   theme,
		width:   table.width,
		height:  table.height,
		title:   fmt.Sprintf("Cron jobs (%s)", table.env.Settings.Location()),
		columns: cronColumns,
		rows:    len(table.jobs),
		cell: func(row, column int, selected bool) string {
			job := table.jobs[row]
			switch column {
			case 0:
				if !selected && !cron.Validate(job.Schedule) {
					return lipgloss.NewStyle().Foreground(theme.InvalidColor).Render(job.Schedule)
				}
				return job.Schedule
			case 1:
				if !selected && job.NextRun == cron.NextRunUnavailable {
					return faint.Render(job.NextRun)
				}
				return job.NextRun
			case 2:
				return job.Description
			default:
				return highlightedCommand(job.Command, selected)
			}
		},
		status:      table.notice.text,
		statusStyle: table.notice.style(theme),
		help:        helpLine(keys.Back, keys.Down, keys.Up, keys.Select, keys.New, keys.Delete),
	}
	if len(table.jobs) == 0 && frame.status == "" {
		frame.status = "No cron jobs. Press n to create one."
		frame.statusStyle = faint
	}
	view := frame.render(table.selection)

	if table.editor.Active() {
		lines, anchorX, anchorY := table.editor.Render(table.width, table.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	return view
}
