package message

import (
	tea "charm.land/bubbletea/v2"

	nt "datalist/entity"
)

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// GetPageCmd returns a command to request a page of data
func GetPageCmd(limit, page int) tea.Cmd {
	return func() tea.Msg {
		return GetPageMsg{
			Limit: limit,
			Page:  page,
		}
	}
}

// SortCmd returns a command to reorder records
func SortCmd(sorts []nt.Sort) tea.Cmd {
	return func() tea.Msg {
		return SortMsg{Sorts: sorts}
	}
}
