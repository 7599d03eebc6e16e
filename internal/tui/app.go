package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/april2040/singularity-calendar/internal/calendar"
	"github.com/april2040/singularity-calendar/internal/coordinator"
)

// Coordinator is what the live view needs from the state owner.
type Coordinator interface {
	LoadTodayData(ctx context.Context, date time.Time, forceRefresh bool) calendar.Entry
	LoadHistoryBenchmark(ctx context.Context)
	RefreshAll(ctx context.Context)
	ClearData()
	Snapshot() coordinator.State
	Subscribe() (<-chan struct{}, func())
}

// App is a bubbletea model that re-renders whenever the coordinator's
// state changes.
type App struct {
	coord       Coordinator
	date        time.Time
	state       coordinator.State
	updates     <-chan struct{}
	unsubscribe func()
	spinner     spinner.Model

	width  int
	height int
}

func NewApp(c Coordinator, date time.Time) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	updates, cancel := c.Subscribe()
	return &App{
		coord:       c,
		date:        date,
		state:       c.Snapshot(),
		updates:     updates,
		unsubscribe: cancel,
		spinner:     sp,
		width:       80,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.waitForChange(), a.loadCmd())
}

func (a *App) waitForChange() tea.Cmd {
	updates := a.updates
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func (a *App) loadCmd() tea.Cmd {
	c := a.coord
	date := a.date
	return func() tea.Msg {
		ctx := context.Background()
		e := c.LoadTodayData(ctx, date, false)
		c.LoadHistoryBenchmark(ctx)
		return loadedMsg{entry: e}
	}
}

func (a *App) refreshCmd() tea.Cmd {
	c := a.coord
	return func() tea.Msg {
		c.RefreshAll(context.Background())
		return refreshDoneMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			a.unsubscribe()
			return a, tea.Quit
		case "r":
			a.date = time.Now()
			return a, a.refreshCmd()
		case "c":
			a.coord.ClearData()
			return a, nil
		case "l":
			return a, a.loadCmd()
		}
		return a, nil

	case stateChangedMsg:
		a.state = a.coord.Snapshot()
		return a, a.waitForChange()

	case loadedMsg, refreshDoneMsg:
		a.state = a.coord.Snapshot()
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) View() string {
	var b strings.Builder

	switch {
	case a.state.Today != nil:
		b.WriteString(place(a.width, RenderCard(*a.state.Today, a.state.History, min(a.width, 72))))
	case a.state.Loading:
		b.WriteString(place(a.width, a.spinner.View()+" 正在获取今日数据..."))
	default:
		b.WriteString(place(a.width, dateMetaStyle.Render("暂无数据，按 l 加载")))
	}
	b.WriteString("\n")

	if a.state.Err != "" {
		b.WriteString(place(a.width, errorStyle.Render(a.state.Err)))
		b.WriteString("\n")
	}

	b.WriteString(renderStatusBar(a.state.Source, a.state.LastUpdated, a.state.Loading, a.spinner.View(), a.width))
	return b.String()
}

// Run starts the live view and blocks until the user quits.
func Run(c Coordinator, date time.Time) error {
	app := NewApp(c, date)
	defer app.unsubscribe()
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
