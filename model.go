package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/skratchdot/open-golang/open"

	"github.com/noelruault/emd/internal/aws"
	"github.com/noelruault/emd/internal/blueprint"
	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/config"
	"github.com/noelruault/emd/internal/document"
	"github.com/noelruault/emd/internal/i18n"
	"github.com/noelruault/emd/internal/nav"
	"github.com/noelruault/emd/internal/render"
	"github.com/noelruault/emd/internal/store"
	"github.com/noelruault/emd/internal/ui/list"
)

const (
	loginTimeout = 15 * time.Second
	fetchTimeout = 60 * time.Second
	saveTimeout  = 60 * time.Second
)

// Provider is the AWS surface the UI and the export command depend on.
type Provider interface {
	List(ctx context.Context, region string, kind catalog.Kind) ([]catalog.AwsResource, error)
	Detail(ctx context.Context, region string, kind catalog.Kind, id string) (catalog.Detail, error)
	NetworkStep(ctx context.Context, region, vpcID string, step catalog.NetworkStep) (catalog.NetworkPartial, error)
	CallerIdentity(ctx context.Context, region string) (aws.Identity, error)
	Upload(ctx context.Context, region string, loc aws.S3Location, content string) (string, error)
}

type loginCheckedMsg struct {
	identity aws.Identity
	err      error
}

type listLoadedMsg struct {
	ticket nav.Ticket
	key    nav.ListKey
	items  []catalog.AwsResource
	err    error
}

type detailLoadedMsg struct {
	ticket nav.Ticket
	detail catalog.Detail
	err    error
}

type networkStepMsg struct {
	ticket  nav.Ticket
	step    catalog.NetworkStep
	partial catalog.NetworkPartial
	err     error
}

type blueprintResourceMsg struct {
	ticket nav.Ticket
	index  int
	detail catalog.Detail
	err    error
}

type documentSavedMsg struct {
	path  string
	local bool
	err   error
}

type fileOpenedMsg struct {
	err error
}

type model struct {
	cfg      config.Config
	logger   zerolog.Logger
	provider Provider
	store    *store.Store
	engine   *blueprint.Engine
	machine  *nav.Machine
	region   *config.RegionCell
	keys     keyMap

	lang   i18n.Language
	labels i18n.Labeler
	md     render.Markdown

	identity      aws.Identity
	loginChecking bool
	loginErr      error

	// blueprintMode is set while picking a resource to add to the open
	// blueprint; otherwise selecting a resource previews it on its own.
	blueprintMode bool

	cursors   map[nav.Screen]*list.Cursor
	nameInput textinput.Model
	spinner   spinner.Model
	preview   viewport.Model
	doc       *document.Document
	savedPath string

	width  int
	height int
}

func newModel(cfg config.Config, p Provider, st *store.Store, lang i18n.Language, logger zerolog.Logger) model {
	labels := i18n.New(lang)

	ti := textinput.New()
	ti.Placeholder = "my-service"
	ti.CharLimit = 64
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return model{
		cfg:           cfg,
		logger:        logger.With().Str("component", "ui").Logger(),
		provider:      p,
		store:         st,
		engine:        blueprint.NewEngine(st.LoadBlueprints(), st, logger),
		machine:       nav.NewMachine(labels),
		region:        config.NewRegionCell(cfg.Region),
		keys:          newKeyMap(),
		lang:          lang,
		labels:        labels,
		md:            render.New(lang),
		loginChecking: true,
		cursors:       make(map[nav.Screen]*list.Cursor),
		nameInput:     ti,
		spinner:       s,
		preview:       viewport.New(80, 20),
		width:         100,
		height:        40,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.checkLogin())
}

func (m model) cursor(s nav.Screen) *list.Cursor {
	c, ok := m.cursors[s]
	if !ok {
		c = &list.Cursor{}
		m.cursors[s] = c
	}
	return c
}

func (m *model) setLanguage(lang i18n.Language) {
	m.lang = lang
	m.labels = i18n.New(lang)
	m.md = render.New(lang)
	m.machine.SetLabeler(m.labels)
}

func (m model) assembler() document.Assembler {
	return document.NewAssembler(m.md, m.labels)
}

func (m model) checkLogin() tea.Cmd {
	region := m.region.Get()
	p := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loginTimeout)
		defer cancel()
		id, err := p.CallerIdentity(ctx, region)
		return loginCheckedMsg{identity: id, err: err}
	}
}

// start begins t on the machine and returns the command that fetches it.
// A rejected task leaves a status message and returns nil.
func (m *model) start(t nav.Task) tea.Cmd {
	ticket, ok := m.machine.BeginTask(t)
	if !ok {
		m.machine.SetStatus(m.labels.Get(i18n.TaskBusy))
		return nil
	}
	m.logger.Debug().Stringer("task", t).Uint64("ticket", uint64(ticket)).Msg("task started")
	return tea.Batch(m.dispatch(ticket, t), m.spinner.Tick)
}

// dispatch builds the provider call for t. List tasks carry the region they
// were started in; otherwise the region is read once here so a later region
// change cannot affect a call already issued.
func (m model) dispatch(ticket nav.Ticket, t nav.Task) tea.Cmd {
	region := m.region.Get()
	switch t := t.(type) {
	case nav.LoadList:
		return m.loadList(ticket, t.Key())
	case nav.RefreshList:
		return m.loadList(ticket, t.Key())
	case nav.LoadDetail:
		return m.loadDetail(ticket, region, t.Kind, t.ID)
	case nav.LoadMultiStepDetail:
		return m.loadNetworkStep(ticket, region, t.VpcID, t.Step)
	case nav.LoadBlueprintResources:
		return m.loadBlueprintResource(ticket, t.Index, t.Current())
	}
	return nil
}

func (m model) loadList(ticket nav.Ticket, key nav.ListKey) tea.Cmd {
	p := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		items, err := p.List(ctx, key.Region, key.Kind)
		return listLoadedMsg{ticket: ticket, key: key, items: items, err: err}
	}
}

func (m model) loadDetail(ticket nav.Ticket, region string, kind catalog.Kind, id string) tea.Cmd {
	p := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		d, err := p.Detail(ctx, region, kind, id)
		return detailLoadedMsg{ticket: ticket, detail: d, err: err}
	}
}

func (m model) loadNetworkStep(ticket nav.Ticket, region, vpcID string, step catalog.NetworkStep) tea.Cmd {
	p := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		partial, err := p.NetworkStep(ctx, region, vpcID, step)
		return networkStepMsg{ticket: ticket, step: step, partial: partial, err: err}
	}
}

// loadBlueprintResource fetches in the region the entry was added from.
func (m model) loadBlueprintResource(ticket nav.Ticket, index int, ref catalog.Ref) tea.Cmd {
	p := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		d, err := p.Detail(ctx, ref.Region, ref.Kind, ref.ID)
		return blueprintResourceMsg{ticket: ticket, index: index, detail: d, err: err}
	}
}

func (m model) saveDocument(doc document.Document) tea.Cmd {
	dest := m.cfg.OutputDir
	region := m.region.Get()
	p := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		path, err := writeDocument(ctx, p, region, dest, doc)
		return documentSavedMsg{path: path, local: !aws.IsS3URL(dest), err: err}
	}
}

func openFile(path string) tea.Cmd {
	return func() tea.Msg {
		return fileOpenedMsg{err: open.Run(path)}
	}
}
