package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/festdays/internal/presentation/tui/metrics"
)

func withItemPadding(styles list.DefaultItemStyles) list.DefaultItemStyles {
	styles.NormalTitle = styles.NormalTitle.PaddingRight(metrics.ItemRightPadding)
	styles.SelectedTitle = styles.SelectedTitle.PaddingRight(metrics.ItemRightPadding)
	styles.DimmedTitle = styles.DimmedTitle.PaddingRight(metrics.ItemRightPadding)
	return styles
}

func itemStyle(styles list.DefaultItemStyles, m list.Model, index int) lipgloss.Style {
	if index == m.Index() {
		return styles.SelectedTitle
	}
	return styles.NormalTitle
}

func renderItemText(w io.Writer, style lipgloss.Style, text string) {
	_, _ = io.WriteString(w, style.Render(text))
}
