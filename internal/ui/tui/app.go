package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/carlens/internal/infra/output"
	"github.com/aalvaropc/carlens/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenForm
	screenResult
)

type action int

const (
	actionQuery action = iota
	actionFormat
	actionBrands
	actionQuit
)

type menuItem struct {
	title  string
	desc   string
	action action
	op     usecase.Operation
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

var opTitles = map[usecase.Operation]menuItem{
	usecase.OpFilterPrice:  {title: "Filter by brand & price", desc: "Vehicles of one brand within a price range"},
	usecase.OpFilterDate:   {title: "Filter by brand & release date", desc: "Vehicles of one brand released within a date range"},
	usecase.OpSortDate:     {title: "Sort by release date", desc: "Newest brand release first"},
	usecase.OpSortPrice:    {title: "Sort by price", desc: "Most expensive first"},
	usecase.OpSortTypeCurr: {title: "Sort by type & currency", desc: "Grouped by type, each priced in its own currency"},
}

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	format string

	// form state
	formOp usecase.Operation
	inputs []textinput.Model
	focus  int

	// result state
	resultTitle string
	summary     string
	view        viewport.Model
	backTo      screen

	running bool
	toast   string

	width, height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	format := strings.ToLower(strings.TrimSpace(deps.Format))
	if format == "" {
		format = output.FormatTable
	}

	items := make([]list.Item, 0, len(usecase.Operations())+3)
	for _, op := range usecase.Operations() {
		it := opTitles[op]
		it.action = actionQuery
		it.op = op
		items = append(items, it)
	}
	items = append(items,
		formatItem(format),
		menuItem{title: "Brands", desc: "Show the loaded brand catalog", action: actionBrands},
		menuItem{title: "Quit", desc: "Exit carlens", action: actionQuit},
	)

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "carlens"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:  DefaultTheme(),
		deps:   deps,
		scr:    screenHome,
		menu:   l,
		format: format,
		view:   viewport.New(80, 20),
		width:  84,
		height: 30,
	}
}

func formatItem(format string) menuItem {
	return menuItem{
		title:  "Output format: " + format,
		desc:   "Cycle between " + strings.Join(output.Formats(), ", "),
		action: actionFormat,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.view.Width = max(msg.Width-8, 20)
		m.view.Height = max(msg.Height-12, 5)
		return m, nil

	case queryDoneMsg:
		return m.onQueryDone(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenForm:
			return m.updateForm(msg)
		case screenResult:
			return m.updateResult(msg)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok || m.running {
			return m, nil
		}
		m.toast = ""

		switch it.action {
		case actionQuit:
			return m, tea.Quit

		case actionFormat:
			m.format = nextFormat(m.format)
			cmd := m.menu.SetItem(m.menu.Index(), formatItem(m.format))
			return m, cmd

		case actionBrands:
			var body string
			if m.deps.Brands != nil {
				body = renderBrands(m.deps.Brands.All())
			} else {
				body = renderBrands(nil)
			}
			m = m.showResult("Brands", "", body, screenHome)
			return m, nil

		case actionQuery:
			if len(formFields(it.op)) == 0 {
				m.running = true
				m.backTo = screenHome
				return m, cmdRunQuery(m.deps, usecase.Query{Op: it.op})
			}
			m = m.openForm(it.op)
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) openForm(op usecase.Operation) model {
	fields := formFields(op)
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.placeholder
		in.CharLimit = 64
		in.Width = 30
		m.inputs[i] = in
	}
	m.formOp = op
	m.focus = 0
	m.inputs[0].Focus()
	m.scr = screenForm
	return m
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenHome
		m.toast = ""
		return m, nil

	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "enter":
		if m.focus < len(m.inputs)-1 {
			return m.moveFocus(1), nil
		}
		if m.running {
			return m, nil
		}
		q, err := buildQuery(m.formOp, m.formValues())
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		m.toast = ""
		m.running = true
		m.backTo = screenForm
		return m, cmdRunQuery(m.deps, q)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) moveFocus(delta int) model {
	n := len(m.inputs)
	if n == 0 {
		return m
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + n) % n
	m.inputs[m.focus].Focus()
	return m
}

func (m model) formValues() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Value()
	}
	return out
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.scr = screenHome
		return m, nil
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m model) onQueryDone(msg queryDoneMsg) model {
	m.running = false
	if msg.err != nil {
		m.toast = userMessage(msg.err)
		m.scr = m.backTo
		return m
	}

	body, err := renderVehicles(m.format, m.deps.Currency, msg.res.Vehicles)
	if err != nil {
		m.toast = userMessage(err)
		m.scr = m.backTo
		return m
	}

	m.toast = ""
	return m.showResult(opTitles[msg.op].title, resultSummary(msg.res, msg.id), body, screenHome)
}

func (m model) showResult(title, summary, body string, back screen) model {
	m.resultTitle = title
	m.summary = summary
	m.view.SetContent(body)
	m.view.GotoTop()
	m.backTo = back
	m.scr = screenResult
	return m
}

func nextFormat(cur string) string {
	all := output.Formats()
	for i, f := range all {
		if f == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("carlens") + "\n" +
		m.theme.Subtitle.Render("Vehicle catalog queries") + "\n" +
		m.theme.Help.Render(clampString("Workspace: "+m.deps.Root, max(m.width-6, 20))) + "\n"

	footer := ""
	if m.running {
		footer = m.theme.Help.Render("running…")
	}
	if m.toast != "" {
		footer = m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter select • / search • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + "\n" + footer)

	case screenForm:
		var b strings.Builder
		b.WriteString(m.theme.Title.Render(opTitles[m.formOp].title))
		b.WriteString("\n\n")
		for i, f := range formFields(m.formOp) {
			b.WriteString(m.theme.Label.Render(f.label))
			b.WriteString(" ")
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Help.Render("tab next • enter run • esc back"))
		return wrap.Render(header + "\n" + m.theme.Card.Render(b.String()) + "\n" + footer)

	case screenResult:
		title := m.theme.Title.Render(m.resultTitle)
		if m.summary != "" {
			title += "\n" + m.theme.Subtitle.Render(m.summary)
		}
		help := m.theme.Help.Render(fmt.Sprintf("format %s • ↑/↓ scroll • esc back", m.format))
		return wrap.Render(header + "\n" + title + "\n\n" + m.view.View() + "\n" + help + "\n" + footer)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
