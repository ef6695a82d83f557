package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
)

// Item is one styled component instance shown in the preview.
type Item struct {
	Name     string
	Instance *style.Instance
	Content  string
}

type span struct {
	top    int
	bottom int
}

func (s span) contains(y int) bool {
	return y >= s.top && y < s.bottom
}

// Model is the Bubbletea state of the live preview. Every resize, pointer
// move and focus change re-resolves the affected instances.
type Model struct {
	resolver *style.Resolver[components.Theme]
	engine   components.Engine
	ctx      components.RenderContext
	log      *logger.Logger

	items    []Item
	resolved []style.Resolved
	blocks   []string
	spans    []span
	header   string

	hovered int
	focused int

	width  int
	height int

	keys     keyMap
	help     help.Model
	err      error
	quitting bool
}

// NewModel builds a preview of items resolved through resolver.
func NewModel(resolver *style.Resolver[components.Theme], engine components.Engine, ctx components.RenderContext, items []Item, log *logger.Logger) Model {
	m := Model{
		resolver: resolver,
		engine:   engine,
		ctx:      ctx.WithWidth(resolver.Width()),
		log:      log.With("component", "preview"),
		items:    items,
		hovered:  -1,
		focused:  -1,
		width:    resolver.Width(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.refresh()
	return m
}

// Init starts the Bubbletea program. The initial size arrives as a
// tea.WindowSizeMsg.
func (m Model) Init() tea.Cmd {
	return nil
}

// Hovered returns the index of the hovered item, or -1.
func (m Model) Hovered() int { return m.hovered }

// Focused returns the index of the focused item, or -1.
func (m Model) Focused() int { return m.focused }

// Resolved returns the latest resolution of item i.
func (m Model) Resolved(i int) style.Resolved { return m.resolved[i] }

// Err returns the first error of the latest render pass.
func (m Model) Err() error { return m.err }

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool { return m.quitting }

// refresh resolves and renders every item and records the screen rows each
// one occupies for pointer hit testing.
func (m *Model) refresh() {
	m.err = nil
	m.header = m.renderHeader()

	m.resolved = make([]style.Resolved, len(m.items))
	m.blocks = make([]string, len(m.items))
	m.spans = make([]span, len(m.items))

	top := lineCount(m.header)
	for i, item := range m.items {
		block := m.renderItem(i, item)
		m.blocks[i] = block
		height := lineCount(block)
		m.spans[i] = span{top: top, bottom: top + height}
		top += height
	}
}

func (m *Model) renderItem(i int, item Item) string {
	resolved, err := m.resolver.ResolveInstance(item.Instance)
	if err != nil {
		return m.failed(item, err)
	}
	m.resolved[i] = resolved

	content := item.Content
	if content == "" {
		content = item.Name
	}
	block, err := m.engine.Render(m.ctx, resolved, content)
	if err != nil {
		return m.failed(item, err)
	}
	return block
}

func (m *Model) failed(item Item, err error) string {
	if m.err == nil {
		m.err = err
	}
	m.log.WithFields(map[string]any{"item": item.Name}).Error(err, "render failed")
	return errorStyle.Render(item.Name + ": " + err.Error())
}

func (m Model) itemAt(y int) int {
	for i, s := range m.spans {
		if s.contains(y) {
			return i
		}
	}
	return -1
}

// focusable lists the items whose resolution asked for focus observation.
func (m Model) focusable() []int {
	idx := make([]int, 0, len(m.items))
	for i, r := range m.resolved {
		if r.Listeners.Focus {
			idx = append(idx, i)
		}
	}
	return idx
}
