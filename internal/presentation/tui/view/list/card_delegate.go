// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/festdays/internal/presentation/tui/metrics"
	"github.com/tesso57/festdays/internal/presentation/tui/textutil"
)

// CardItem is an item that can be rendered by CardDelegate.
type CardItem interface {
	list.Item
	Title() string
	Description() string
}

// CardContent exposes the remaining card fields. Items without it render
// as a single message line.
type CardContent interface {
	CardItem
	Icon() string
	Date() string
	Days() string
}

// CardDelegate renders festival cards over three lines.
type CardDelegate struct {
	Styles list.DefaultItemStyles
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

// NewCardDelegate creates a new CardDelegate.
func NewCardDelegate(accent, muted lipgloss.Color) *CardDelegate {
	return &CardDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
		Accent: accent,
		Muted:  muted,
	}
}

// Height returns the height of the item.
func (d *CardDelegate) Height() int {
	return metrics.CardLines
}

// Spacing returns the spacing between items.
func (d *CardDelegate) Spacing() int {
	return metrics.CardSpacing
}

// Update handles messages for the delegate.
func (d *CardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *CardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(CardItem)
	if !ok {
		return
	}

	style := itemStyle(d.Styles, m, index)
	width := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding

	card, ok := item.(CardContent)
	if !ok {
		renderItemText(w, style, textutil.Truncate(i.Title(), width))
		return
	}

	days := lipgloss.NewStyle().Bold(true).Foreground(d.Accent).Render(card.Days())
	head := textutil.JoinEnds(card.Icon()+"  "+card.Title(), days, width)
	muted := lipgloss.NewStyle().Foreground(d.Muted)
	indent := strings.Repeat(" ", 4)

	lines := []string{
		head,
		muted.Render(textutil.Truncate(indent+card.Description(), width)),
		muted.Render(textutil.Truncate(indent+card.Date(), width)),
	}
	renderItemText(w, style, strings.Join(lines, "\n"))
}
