// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

// selection is a row cursor with a scroll offset that follows it. The
// cursor is -1 exactly when the list is empty.
type selection struct {
	cursor int
	offset int
}

func newSelection(count int) selection {
	if count == 0 {
		return selection{cursor: -1}
	}
	return selection{}
}

// next moves down one row, wrapping from the last row to the first.
func (s *selection) next(count int) {
	if count == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % count
}

// previous moves up one row, wrapping from the first row to the last.
func (s *selection) previous(count int) {
	if count == 0 {
		return
	}
	s.cursor = (s.cursor - 1 + count) % count
}

func (s *selection) first(count int) {
	if count > 0 {
		s.cursor = 0
	}
}

func (s *selection) last(count int) {
	if count > 0 {
		s.cursor = count - 1
	}
}

func (s *selection) selectRow(row, count int) {
	if row >= 0 && row < count {
		s.cursor = row
	}
}

// clamp repairs the cursor after the list shrank or grew.
func (s *selection) clamp(count int) {
	switch {
	case count == 0:
		s.cursor = -1
	case s.cursor < 0:
		s.cursor = 0
	case s.cursor >= count:
		s.cursor = count - 1
	}
}

// follow adjusts the scroll offset so the cursor is inside a window of
// visible rows.
func (s *selection) follow(count, visible int) {
	if visible <= 0 || count <= visible {
		s.offset = 0
		return
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+visible {
		s.offset = s.cursor - visible + 1
	}
	s.offset = max(min(s.offset, count-visible), 0)
}
