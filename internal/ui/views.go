package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"daygrid/internal/dateutil"
)

const timeGutter = 7 // "HH:00  "

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	scheduleWidth := m.width * 2 / 3
	if scheduleWidth < 40 {
		scheduleWidth = 40
	}

	rightSide := m.renderDayEvents(m.width - scheduleWidth - 4)
	if m.ctrl.MonthExpanded() {
		rightSide = lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderMonthCalendar(),
			"",
			rightSide,
		)
	}

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(scheduleWidth).Render(m.renderSchedule(scheduleWidth)),
		" ",
		rightSide,
	)

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusBar())
}

// rowsPerHour maps the engine's pixel scale onto terminal rows: one row per
// half hour at the default 60px hour height.
func (m *Model) rowsPerHour() int {
	rows := int(math.Round(m.ctrl.HourHeight() / 30))
	if rows < 1 {
		rows = 1
	} else if rows > 4 {
		rows = 4
	}
	return rows
}

// renderSchedule draws the selected day's hour grid. Event geometry comes
// straight from the layout engine: the available text width is handed in as
// the pixel width, so rectangle X/Width land directly on terminal cells and
// only the vertical axis needs rescaling from pixels to rows.
func (m *Model) renderSchedule(scheduleWidth int) string {
	selected := m.ctrl.Selected()
	hourHeight := m.ctrl.HourHeight()
	rowsPerHour := m.rowsPerHour()
	totalRows := 24 * rowsPerHour

	textWidth := scheduleWidth - timeGutter
	if textWidth < 20 {
		textWidth = 20
	}

	events := m.ctrl.EventsForDay(selected)
	rects := m.ctrl.LayoutForDay(selected, hourHeight, float64(textWidth))

	// Paint event titles into a cell grid, one row per grid row.
	grid := make([][]rune, totalRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", textWidth))
	}
	for i, e := range events {
		r := rects[i]
		row := pixelToRow(r.Y, hourHeight, rowsPerHour)
		if row < 0 || row >= totalRows {
			continue
		}
		col := int(r.X)
		width := int(r.Width)
		if width < 1 {
			width = 1
		}
		title := e.Title
		if len(title) > width {
			if width > 3 {
				title = title[:width-3] + "..."
			} else {
				title = title[:width]
			}
		}
		for j, ch := range title {
			if col+j < textWidth {
				grid[row][col+j] = ch
			}
		}
	}

	nowY, nowVisible := m.ctrl.NowCursorPosition(hourHeight)
	nowRow := -1
	if nowVisible {
		nowRow = pixelToRow(nowY, hourHeight, rowsPerHour)
	}

	var lines []string
	lines = append(lines, m.styles.Header.Render(selected.Format("Mon Jan 02 2006")))

	visibleRows := m.height - 4
	if visibleRows < 10 {
		visibleRows = 10
	}
	start := 0
	if visibleRows < totalRows {
		focus := 8 * rowsPerHour
		if nowRow >= 0 {
			focus = nowRow
		}
		start = focus - visibleRows/2
		if start > totalRows-visibleRows {
			start = totalRows - visibleRows
		}
		if start < 0 {
			start = 0
		}
	}

	for row := start; row < totalRows && row < start+visibleRows; row++ {
		label := strings.Repeat(" ", timeGutter)
		if row%rowsPerHour == 0 {
			label = fmt.Sprintf("%02d:00  ", row/rowsPerHour)
		}

		body := string(grid[row])
		if row == nowRow {
			body = strings.ReplaceAll(body, " ", "─")
			lines = append(lines, m.styles.NowLine.Render(label+body))
			continue
		}
		lines = append(lines, m.styles.Normal.Render(label+body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func pixelToRow(y, hourHeight float64, rowsPerHour int) int {
	minutes := y * 60 / hourHeight
	return int(minutes) * rowsPerHour / 60
}

// renderDayEvents lists the selected day's events in start order.
func (m *Model) renderDayEvents(boxWidth int) string {
	if boxWidth < 30 {
		boxWidth = 30
	}

	selected := m.ctrl.Selected()
	events := m.ctrl.EventsForDay(selected)

	var lines []string
	lines = append(lines, m.styles.Header.Render(selected.Format("Mon Jan 2, 2006")))

	if len(events) == 0 {
		lines = append(lines, "")
		lines = append(lines, m.styles.Help.Render("(no events)"))
	} else {
		for _, e := range events {
			lines = append(lines, "")
			span := fmt.Sprintf("%s–%s", e.Start.Format("15:04"), e.End.Format("15:04"))
			lines = append(lines, m.styles.Event.Render(span))
			for _, line := range strings.Split(wordwrap.String(e.Title, boxWidth-4), "\n") {
				if line != "" {
					lines = append(lines, line)
				}
			}
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.Border.Width(boxWidth).Render(content)
}

// renderMonthCalendar draws a month grid for navigation context, honoring
// the configured week-start convention.
func (m *Model) renderMonthCalendar() string {
	selected := m.ctrl.Selected()
	weekStart := m.cfg.WeekStart()

	var lines []string
	lines = append(lines, m.styles.Header.Render(selected.Format("January 2006")))

	var headers []string
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(weekStart) + i) % 7)
		headers = append(headers, day.String()[:2])
	}
	lines = append(lines, strings.Join(headers, " "))

	firstDay := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	day := dateutil.StartOfWeek(firstDay, weekStart)

	today := time.Now()
	for week := 0; week < 6; week++ {
		var cells []string
		for weekday := 0; weekday < 7; weekday++ {
			cell := fmt.Sprintf("%2d", day.Day())
			switch {
			case day.Month() != selected.Month():
				cell = m.styles.Help.Render(cell)
			case dateutil.SameDay(day, today):
				cell = m.styles.Today.Render(cell)
			case dateutil.SameDay(day, selected):
				cell = m.styles.Selected.Render(cell)
			case dateutil.IsWeekend(day):
				cell = m.styles.Weekend.Render(cell)
			default:
				cell = m.styles.Normal.Render(cell)
			}
			cells = append(cells, cell)
			day = day.AddDate(0, 0, 1)
		}
		lines = append(lines, strings.Join(cells, " "))
		if day.Month() != selected.Month() && week > 3 {
			break
		}
	}

	return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s  zoom %.0fpx/h", m.ctrl.Selected().Format("Monday, January 2"), m.ctrl.HourHeight())
	right := "h/l:day  j/k:week  t:today  +/-:zoom  m:month  r:reload  q:quit"
	if m.message != "" {
		right = m.message
	}

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 0 {
		pad = 0
	}
	return m.styles.Help.Render(left + strings.Repeat(" ", pad) + right)
}
