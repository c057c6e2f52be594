package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
)

// taskItem adapts a task to bubbles/list.Item.
type taskItem struct {
	task model.Task
}

func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string { return "" }
func (i taskItem) FilterValue() string { return i.task.Title }

type tuiModel struct {
	list    list.Model
	changed bool
	all     []model.Task // full slice including hidden tasks, saved on quit
	width   int
	height  int

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	// Inline edit
	editing   bool
	editIndex int
	editErr   string

	// Undo support (single-level): id of the last trashed task
	canUndo   bool
	undoID    string
	undoIndex int
}

// taskDelegate renders each task as a single row.
type taskDelegate struct{}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	fmt.Fprintln(w, RenderRow(it.task, time.Now(), index == m.Index()))
}

// RunInteractive starts the Bubble Tea list and persists changes when the
// user quits. Trashed and archived tasks are hidden but kept in the file.
func RunInteractive(tasks []model.Task, jsonPath string) error {
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		if t.Deleted || t.Archived {
			continue
		}
		items = append(items, taskItem{task: t})
	}

	l := list.New(items, taskDelegate{}, 0, 0)

	done, pending := 0, 0
	for _, t := range tasks {
		if t.Deleted || t.Archived {
			continue
		}
		if t.IsCompleted() {
			done++
		} else {
			pending++
		}
	}
	l.Title = fmt.Sprintf("%s   %s %d  %s %d",
		TitleStyle.Render("Tasks"),
		SuccessStyle.Render("✔"), done,
		PendingStyle.Render("•"), pending,
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle
	l.Styles.HelpStyle = HelpStyle
	l.Styles.PaginationStyle = HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title"))
	trashBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "trash"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	extra := func() []key.Binding {
		return []key.Binding{toggleBind, addBind, editBind, trashBind, undoBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := tuiModel{
		list: l,
		all:  tasks,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New task title..."
	m.ti.CharLimit = 200

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, okModel := finalModel.(tuiModel)
	if !okModel {
		return nil
	}

	if fm.changed {
		if err := store.SaveTasks(fm.all, jsonPath); err != nil {
			return err
		}
		Ok("saved")
	}
	return nil
}

func (m tuiModel) Init() tea.Cmd { return nil }

// applyToTask mutates the authoritative slice entry matching id.
func (m *tuiModel) applyToTask(id string, fn func(*model.Task)) {
	for i := range m.all {
		if m.all[i].ID == id {
			fn(&m.all[i])
			return
		}
	}
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		listHeight := m.height - 4
		if m.adding || m.editing {
			listHeight = m.height - 6
		}
		m.list.SetSize(m.width-2, listHeight)
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				now := time.Now()
				task := model.Task{
					ID:         uuid.NewString(),
					SeqID:      store.NextSeqID(m.all),
					Title:      title,
					Status:     model.StatusPending,
					Priority:   model.PriorityNone,
					Source:     model.ManualSource(),
					Confidence: model.ConfidenceHigh,
					CreatedAt:  now,
					UpdatedAt:  now,
				}
				m.all = append(m.all, task)
				m.list.InsertItem(m.list.Index()+1, taskItem{task: task})
				m.changed = true
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// edit mode
	if m.editing {
		var cmd tea.Cmd
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.editErr = "Title cannot be empty"
					return m, nil
				}
				if m.editIndex >= 0 && m.editIndex < len(m.list.Items()) {
					if it, ok := m.list.Items()[m.editIndex].(taskItem); ok {
						now := time.Now()
						m.applyToTask(it.task.ID, func(t *model.Task) {
							t.Title = title
							t.UpdatedAt = now
						})
						it.task.Title = title
						m.list.SetItem(m.editIndex, it)
						m.changed = true
					}
				}
				m.editErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.editing = false
				return m, nil
			case "esc":
				m.editing = false
				m.editErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if it, ok := m.list.Items()[i].(taskItem); ok {
					now := time.Now()
					m.applyToTask(it.task.ID, func(t *model.Task) { t.ToggleCompletion(now) })
					it.task.ToggleCompletion(now)
					m.list.SetItem(i, it)
					m.changed = true
				}
			}
			return m, nil
		case "d":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if it, ok := m.list.Items()[i].(taskItem); ok {
					now := time.Now()
					m.applyToTask(it.task.ID, func(t *model.Task) { t.SetDeleted(now) })
					m.undoID = it.task.ID
					m.undoIndex = i
					m.canUndo = true
				}
				m.list.RemoveItem(i)
				m.changed = true
			}
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Placeholder = "New task title..."
			m.ti.Focus()
			return m, nil
		case "e":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if it, ok := m.list.Items()[i].(taskItem); ok {
					m.editing = true
					m.editIndex = i
					m.ti.SetValue(it.task.Title)
					m.ti.CursorEnd()
					m.ti.Placeholder = "Edit task title..."
					m.ti.Focus()
					return m, nil
				}
			}
			return m, nil
		case "u":
			if m.canUndo && m.undoID != "" {
				now := time.Now()
				m.applyToTask(m.undoID, func(t *model.Task) { t.ResetDeleted(now) })
				var restored *model.Task
				for i := range m.all {
					if m.all[i].ID == m.undoID {
						restored = &m.all[i]
						break
					}
				}
				if restored != nil {
					idx := m.undoIndex
					if idx < 0 {
						idx = 0
					}
					if idx > len(m.list.Items()) {
						idx = len(m.list.Items())
					}
					m.list.InsertItem(idx, taskItem{task: *restored})
					m.changed = true
				}
				m.canUndo = false
				m.undoID = ""
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m tuiModel) View() string {
	content := m.list.View()
	if m.adding || m.editing {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add new task"
		if m.editing {
			title = "Edit task title"
		}
		if m.addErr != "" && m.adding {
			title += "  " + ErrorStyle.Render(m.addErr)
		}
		if m.editErr != "" && m.editing {
			title += "  " + ErrorStyle.Render(m.editErr)
		}
		inputLine := title + "\n" + m.ti.View()
		content = content + "\n" + bar.Render(inputLine)
	}
	return content
}
