package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fitweekapp/fitweek/internal/calendar"
	"github.com/fitweekapp/fitweek/internal/cli/formatter"
	"github.com/fitweekapp/fitweek/internal/domain"
)

const weekViewBarWidth = 10

// weekLoadedMsg signals that a week plan has been (re)loaded.
type weekLoadedMsg struct {
	plan *domain.WeekPlan
	err  error
}

// mutatedMsg signals that a mutation finished; the session holds the result.
type mutatedMsg struct{ err error }

type weekViewKeyMap struct {
	PrevDay  key.Binding
	NextDay  key.Binding
	PrevItem key.Binding
	NextItem key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Toggle   key.Binding
	BumpUp   key.Binding
	BumpDown key.Binding
	DayDone  key.Binding
	Quit     key.Binding
}

func defaultWeekViewKeyMap() weekViewKeyMap {
	return weekViewKeyMap{
		PrevDay:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevItem: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev item")),
		NextItem: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next item")),
		PrevWeek: key.NewBinding(key.WithKeys("p", "["), key.WithHelp("p", "prev week")),
		NextWeek: key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n", "next week")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		BumpUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "progress +10")),
		BumpDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "progress -10")),
		DayDone:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "day done")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// weekViewModel is the interactive week browser: day columns on the left,
// items of the selected day on the right.
type weekViewModel struct {
	app  *App
	plan *domain.WeekPlan
	keys weekViewKeyMap

	dayCursor  int // 0..6
	itemCursor int

	width    int
	err      error
	quitting bool
}

func newWeekViewModel(app *App, plan *domain.WeekPlan) weekViewModel {
	return weekViewModel{
		app:  app,
		plan: plan,
		keys: defaultWeekViewKeyMap(),
	}
}

func (m weekViewModel) Init() tea.Cmd {
	return nil
}

// selectedDay returns the day under the cursor, or nil.
func (m *weekViewModel) selectedDay() *domain.DayPlan {
	if m.plan == nil || m.dayCursor < 0 || m.dayCursor >= len(m.plan.Days) {
		return nil
	}
	return &m.plan.Days[m.dayCursor]
}

// selectedItem returns the item under the cursor, or nil.
func (m *weekViewModel) selectedItem() *domain.WorkoutItem {
	day := m.selectedDay()
	if day == nil || m.itemCursor < 0 || m.itemCursor >= len(day.Items) {
		return nil
	}
	return &day.Items[m.itemCursor]
}

// clampItemCursor keeps the item cursor inside the selected day's item list.
func (m *weekViewModel) clampItemCursor() {
	day := m.selectedDay()
	if day == nil || len(day.Items) == 0 {
		m.itemCursor = 0
		return
	}
	if m.itemCursor >= len(day.Items) {
		m.itemCursor = len(day.Items) - 1
	}
	if m.itemCursor < 0 {
		m.itemCursor = 0
	}
}

func (m weekViewModel) loadWeek(weekKey string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		plan, err := app.Planner.LoadWeek(context.Background(), app.UID, weekKey, 0)
		return weekLoadedMsg{plan: plan, err: err}
	}
}

func (m weekViewModel) setItemProgress(dayISO, itemID string, progress float64) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		err := app.Planner.SetItemProgress(context.Background(), app.UID, dayISO, itemID, progress)
		return mutatedMsg{err: err}
	}
}

func (m weekViewModel) setDayProgress(dayISO string, progress float64) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		err := app.Planner.SetDayProgress(context.Background(), app.UID, dayISO, progress)
		return mutatedMsg{err: err}
	}
}

// shiftWeek returns the week key n weeks away from the currently shown week.
func (m *weekViewModel) shiftWeek(n int) (string, error) {
	start, err := calendar.ParseDate(m.plan.StartISO)
	if err != nil {
		return "", err
	}
	return calendar.WeekKeyOf(start.AddDate(0, 0, 7*n)), nil
}

func (m weekViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case weekLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.plan = msg.plan
		m.clampItemCursor()
		return m, nil

	case mutatedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		// The session holds the persisted plan; adopt it.
		if active := m.app.Planner.Active(); active != nil {
			m.plan = active
			m.clampItemCursor()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.PrevDay):
			if m.dayCursor > 0 {
				m.dayCursor--
				m.itemCursor = 0
			}
			return m, nil

		case key.Matches(msg, m.keys.NextDay):
			if m.plan != nil && m.dayCursor < len(m.plan.Days)-1 {
				m.dayCursor++
				m.itemCursor = 0
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevItem):
			if m.itemCursor > 0 {
				m.itemCursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.NextItem):
			if day := m.selectedDay(); day != nil && m.itemCursor < len(day.Items)-1 {
				m.itemCursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevWeek):
			weekKey, err := m.shiftWeek(-1)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.dayCursor, m.itemCursor = 0, 0
			return m, m.loadWeek(weekKey)

		case key.Matches(msg, m.keys.NextWeek):
			weekKey, err := m.shiftWeek(1)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.dayCursor, m.itemCursor = 0, 0
			return m, m.loadWeek(weekKey)

		case key.Matches(msg, m.keys.Toggle):
			day, it := m.selectedDay(), m.selectedItem()
			if day == nil || it == nil {
				return m, nil
			}
			target := 100.0
			if it.Progress == 100 {
				target = 0
			}
			return m, m.setItemProgress(day.DateISO, it.ID, target)

		case key.Matches(msg, m.keys.BumpUp):
			day, it := m.selectedDay(), m.selectedItem()
			if day == nil || it == nil {
				return m, nil
			}
			return m, m.setItemProgress(day.DateISO, it.ID, float64(it.Progress+10))

		case key.Matches(msg, m.keys.BumpDown):
			day, it := m.selectedDay(), m.selectedItem()
			if day == nil || it == nil {
				return m, nil
			}
			return m, m.setItemProgress(day.DateISO, it.ID, float64(it.Progress-10))

		case key.Matches(msg, m.keys.DayDone):
			day := m.selectedDay()
			if day == nil || len(day.Items) == 0 {
				return m, nil
			}
			return m, m.setDayProgress(day.DateISO, 100)
		}
	}

	return m, nil
}

func (m weekViewModel) View() string {
	if m.quitting {
		return ""
	}
	if m.plan == nil {
		return formatter.Dim("Loading...")
	}

	var b strings.Builder

	title := fmt.Sprintf("%s  %s - %s", m.plan.WeekKey, m.plan.StartISO, m.plan.EndISO)
	b.WriteString(formatter.Header(title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Week %s\n\n", formatter.RenderProgress(float64(domain.WeekProgress(m.plan))/100, weekViewBarWidth)))

	// Day strip.
	var dayCells []string
	for i := range m.plan.Days {
		d := &m.plan.Days[i]
		label := strings.ToUpper(calendar.WeekdayLabel(d.Weekday))
		cell := fmt.Sprintf("%s\n%s\n%s",
			label,
			d.DateISO[8:],
			formatter.RenderCompactBar(float64(domain.DayProgress(*d))/100, 5, len(d.Items) == 0))
		style := lipgloss.NewStyle().Padding(0, 1)
		if i == m.dayCursor {
			style = style.Border(lipgloss.RoundedBorder()).BorderForeground(formatter.ColorHeader)
		} else {
			style = style.Border(lipgloss.HiddenBorder())
		}
		dayCells = append(dayCells, style.Render(cell))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, dayCells...))
	b.WriteString("\n\n")

	// Items of the selected day.
	day := m.selectedDay()
	if day != nil {
		heading := formatter.Bold(day.DateISO)
		if day.Title != "" {
			heading += "  " + day.Title
		}
		b.WriteString(heading + "\n")

		if len(day.Items) == 0 {
			b.WriteString(formatter.Dim("  rest day") + "\n")
		}
		for i, it := range day.Items {
			cursor := "  "
			if i == m.itemCursor {
				cursor = formatter.StyleHeader.Render("> ")
			}
			line := fmt.Sprintf("%s%s  %s %3d%%", cursor, formatter.Bold(it.Name),
				formatter.RenderCompactBar(float64(it.Progress)/100, weekViewBarWidth, false), it.Progress)
			if it.Note != "" {
				line += "  " + formatter.Dim(it.Note)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	b.WriteString("\n" + m.helpLine())
	return b.String()
}

func (m weekViewModel) helpLine() string {
	bindings := []key.Binding{
		m.keys.PrevDay, m.keys.NextDay, m.keys.PrevItem, m.keys.NextItem,
		m.keys.PrevWeek, m.keys.NextWeek, m.keys.Toggle, m.keys.BumpUp,
		m.keys.DayDone, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return formatter.Dim(strings.Join(parts, " · "))
}
