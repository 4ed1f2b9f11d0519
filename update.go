package main

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noelruault/emd/internal/aws"
	"github.com/noelruault/emd/internal/blueprint"
	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/config"
	"github.com/noelruault/emd/internal/document"
	"github.com/noelruault/emd/internal/errs"
	"github.com/noelruault/emd/internal/i18n"
	"github.com/noelruault/emd/internal/nav"
	"github.com/noelruault/emd/internal/store"
	"github.com/noelruault/emd/internal/ui/list"
	"github.com/noelruault/emd/internal/ui/shared"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = max(msg.Width-6, 20)
		m.preview.Height = max(msg.Height-16, 5)
		return m, nil

	case spinner.TickMsg:
		if !m.machine.Loading() && !m.loginChecking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loginCheckedMsg:
		return m.handleLogin(msg)

	case listLoadedMsg:
		if !m.machine.CompleteList(msg.ticket, msg.key, msg.items, msg.err) {
			m.logger.Debug().Stringer("list", msg.key).Msg("stale list result ignored")
			return m, nil
		}
		m.cursor(nav.SelectScreen(msg.key.Kind)).Clamp(len(m.machine.List(msg.key.Region, msg.key.Kind)))
		return m, nil

	case detailLoadedMsg:
		if !m.machine.CompleteDetail(msg.ticket, msg.detail, msg.err) {
			return m, nil
		}
		// A failed or mismatched detail leaves the previous one in place.
		if msg.err != nil || msg.detail == nil || m.machine.Detail() != msg.detail {
			return m, nil
		}
		return m.showSingle()

	case networkStepMsg:
		return m.handleNetworkStep(msg)

	case blueprintResourceMsg:
		return m.handleBlueprintResource(msg)

	case documentSavedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("save document")
			m.machine.SetStatus(m.labels.Failed(i18n.SaveFailed, msg.err))
			return m, nil
		}
		if msg.local {
			m.savedPath = msg.path
		}
		m.machine.SetStatus(m.labels.Saved(msg.path))
		return m, nil

	case fileOpenedMsg:
		if msg.err != nil {
			m.machine.SetStatus(m.labels.Failed(i18n.Open, msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.machine.Screen() == nav.ScreenBlueprintNameInput {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.machine.Screen()
	if _, ok := screen.SelectKind(); ok {
		return m.updateResourceSelect(msg)
	}

	switch screen {
	case nav.ScreenLogin:
		return m.updateLogin(msg)
	case nav.ScreenBlueprintSelect:
		return m.updateBlueprintSelect(msg)
	case nav.ScreenBlueprintNameInput:
		return m.updateNameInput(msg)
	case nav.ScreenBlueprintDetail:
		return m.updateBlueprintDetail(msg)
	case nav.ScreenRegionSelect:
		return m.updateRegionSelect(msg)
	case nav.ScreenServiceSelect:
		return m.updateServiceSelect(msg)
	case nav.ScreenPreview, nav.ScreenBlueprintPreview:
		return m.updatePreview(msg)
	case nav.ScreenSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

// moveCursor handles up/down for a list of n rows on the active screen.
func (m model) moveCursor(msg tea.KeyMsg, n int) bool {
	c := m.cursor(m.machine.Screen())
	switch {
	case key.Matches(msg, m.keys.Up):
		c.Up()
	case key.Matches(msg, m.keys.Down):
		c.Down(n)
	default:
		return false
	}
	c.VP = list.Window(m.height)
	shared.EnsureVisible(c.Index, n, &c.VP)
	return true
}

func (m model) handleLogin(msg loginCheckedMsg) (tea.Model, tea.Cmd) {
	m.loginChecking = false
	if msg.err != nil {
		m.loginErr = msg.err
		m.logger.Warn().Err(msg.err).Stringer("failure", aws.Classify(msg.err)).Msg("login check failed")
		return m, nil
	}
	m.loginErr = nil
	m.identity = msg.identity
	m.logger.Info().Str("account", msg.identity.Account).Msg("login verified")
	m.machine.Enter(nav.ScreenBlueprintSelect)
	m.machine.SetStatus(m.labels.Get(i18n.LoginVerified))
	return m, nil
}

// loginFailure maps a failed identity check to the message shown on the
// login screen.
func (m model) loginFailure() string {
	switch aws.Classify(m.loginErr) {
	case aws.FailureAuth:
		return m.labels.Get(i18n.AuthCredentials)
	case aws.FailureNetwork:
		return m.labels.Get(i18n.AuthNetwork)
	default:
		return m.labels.Get(i18n.AuthUnknown)
	}
}

func (m model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Retry):
		if m.loginChecking {
			return m, nil
		}
		m.loginChecking = true
		m.loginErr = nil
		return m, tea.Batch(m.spinner.Tick, m.checkLogin())
	}
	return m, nil
}

func (m model) updateBlueprintSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.engine.Len() + 1
	if m.moveCursor(msg, rows) {
		return m, nil
	}
	c := m.cursor(nav.ScreenBlueprintSelect)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Enter):
		if c.Index == m.engine.Len() {
			return m.beginNameInput()
		}
		if err := m.engine.Open(c.Index); err != nil {
			m.machine.SetStatus(m.labels.Get(i18n.BlueprintNotFound))
			return m, nil
		}
		m.machine.Enter(nav.ScreenBlueprintDetail)
		m.cursor(nav.ScreenBlueprintDetail).Reset()
	case key.Matches(msg, m.keys.New):
		return m.beginNameInput()
	case key.Matches(msg, m.keys.Delete):
		// The "+ New" row is not a blueprint and cannot be selected.
		if !m.engine.Select(c.Index) {
			return m, nil
		}
		ok, err := m.engine.Delete(c.Index)
		if !ok {
			return m, nil
		}
		c.Index = m.engine.Selected()
		shared.EnsureVisible(c.Index, m.engine.Len()+1, &c.VP)
		m.machine.SetStatus(m.persistStatus(i18n.BlueprintDeleted, err))
	case key.Matches(msg, m.keys.Single):
		m.blueprintMode = false
		m.enterRegionSelect()
	case key.Matches(msg, m.keys.Settings):
		m.machine.Enter(nav.ScreenSettings)
	}
	return m, nil
}

// persistStatus reports ok, or the save failure when the change could not
// be written to disk. The in-memory change stands either way.
func (m model) persistStatus(ok i18n.Key, err error) string {
	if err != nil {
		m.logger.Error().Err(err).Msg("persist blueprints")
		return m.labels.Failed(i18n.BlueprintSaveFail, err)
	}
	return m.labels.Get(ok)
}

func (m model) beginNameInput() (tea.Model, tea.Cmd) {
	m.nameInput.Reset()
	m.machine.Enter(nav.ScreenBlueprintNameInput)
	return m, m.nameInput.Focus()
}

func (m model) updateNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.nameInput.Blur()
		m.machine.Enter(nav.ScreenBlueprintSelect)
		return m, nil
	case tea.KeyEnter:
		err := m.engine.Create(m.nameInput.Value())
		if errs.IsValidation(err) {
			m.machine.SetStatus(m.labels.Get(i18n.NameRequired))
			return m, nil
		}
		m.nameInput.Blur()
		m.machine.Enter(nav.ScreenBlueprintSelect)
		m.cursor(nav.ScreenBlueprintSelect).Index = m.engine.Selected()
		m.machine.SetStatus(m.persistStatus(i18n.BlueprintSaved, err))
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m model) updateBlueprintDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bp, ok := m.engine.Current()
	if !ok {
		m.machine.Enter(nav.ScreenBlueprintSelect)
		m.machine.SetStatus(m.labels.Get(i18n.BlueprintNotFound))
		return m, nil
	}
	n := len(bp.Resources)
	c := m.cursor(nav.ScreenBlueprintDetail)

	// Reorder before plain movement: K and J are not up/down here.
	switch {
	case key.Matches(msg, m.keys.MoveUp):
		if moved, err := m.engine.MoveUp(c.Index); moved {
			c.Up()
			if err != nil {
				m.machine.SetStatus(m.persistStatus(i18n.BlueprintSaved, err))
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.MoveDown):
		if moved, err := m.engine.MoveDown(c.Index); moved {
			c.Down(n)
			if err != nil {
				m.machine.SetStatus(m.persistStatus(i18n.BlueprintSaved, err))
			}
		}
		return m, nil
	}
	if m.moveCursor(msg, n) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.engine.Close()
		m.machine.Enter(nav.ScreenBlueprintSelect)
	case key.Matches(msg, m.keys.Add):
		m.blueprintMode = true
		m.enterRegionSelect()
	case key.Matches(msg, m.keys.Delete):
		removed, err := m.engine.RemoveResource(c.Index)
		if !removed {
			return m, nil
		}
		c.Clamp(n - 1)
		m.machine.SetStatus(m.persistStatus(i18n.ResourceDeleted, err))
	case key.Matches(msg, m.keys.Generate):
		if n == 0 {
			m.machine.SetStatus(m.labels.Get(i18n.PressAToAdd))
			return m, nil
		}
		return m, m.start(nav.LoadBlueprintResources{Index: 0, Refs: bp.Refs()})
	}
	return m, nil
}

func (m *model) enterRegionSelect() {
	m.machine.Enter(nav.ScreenRegionSelect)
	c := m.cursor(nav.ScreenRegionSelect)
	if i := config.RegionIndex(m.region.Get()); i >= 0 {
		c.Index = i
	}
}

func (m model) updateRegionSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(msg, len(config.Regions)) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.blueprintMode {
			m.machine.Enter(nav.ScreenBlueprintDetail)
		} else {
			m.machine.Enter(nav.ScreenBlueprintSelect)
		}
	case key.Matches(msg, m.keys.Enter):
		r := config.Regions[m.cursor(nav.ScreenRegionSelect).Index]
		m.region.Set(r.Code)
		m.logger.Debug().Str("region", r.Code).Msg("region changed")
		m.machine.Enter(nav.ScreenServiceSelect)
	}
	return m, nil
}

func (m model) updateServiceSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(msg, len(catalog.Kinds)) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.enterRegionSelect()
	case key.Matches(msg, m.keys.Enter):
		kind := catalog.Kinds[m.cursor(nav.ScreenServiceSelect).Index]
		m.machine.Enter(nav.SelectScreen(kind))
		m.cursor(nav.SelectScreen(kind)).Reset()
		return m, m.start(nav.LoadList{Region: m.region.Get(), Kind: kind})
	}
	return m, nil
}

func (m model) updateResourceSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind, _ := m.machine.Screen().SelectKind()
	region := m.region.Get()
	items := m.machine.List(region, kind)
	if m.moveCursor(msg, len(items)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.machine.Enter(nav.ScreenServiceSelect)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.start(nav.RefreshList{Region: region, Kind: kind})
	case key.Matches(msg, m.keys.Enter):
		if m.machine.Loading() || len(items) == 0 {
			return m, nil
		}
		item := items[m.cursor(m.machine.Screen()).Index]
		if m.blueprintMode {
			return m.addToBlueprint(region, kind, item)
		}
		if kind == catalog.KindNetwork {
			return m, m.start(nav.LoadMultiStepDetail{VpcID: item.ID, Step: catalog.StepVpcInfo})
		}
		return m, m.start(nav.LoadDetail{Kind: kind, ID: item.ID})
	}
	return m, nil
}

// addToBlueprint stores item with the region its list was fetched in.
func (m model) addToBlueprint(region string, kind catalog.Kind, item catalog.AwsResource) (tea.Model, tea.Cmd) {
	err := m.engine.AddResource(blueprint.Resource{
		ResourceType: kind,
		Region:       region,
		ResourceID:   item.ID,
		ResourceName: item.Name,
	})
	if errors.Is(err, errs.ErrNotFound) {
		m.machine.Enter(nav.ScreenBlueprintSelect)
		m.machine.SetStatus(m.labels.Get(i18n.BlueprintNotFound))
		return m, nil
	}
	m.machine.Enter(nav.ScreenBlueprintDetail)
	if bp, ok := m.engine.Current(); ok {
		m.cursor(nav.ScreenBlueprintDetail).Index = len(bp.Resources) - 1
	}
	m.machine.SetStatus(m.persistStatus(i18n.ResourceAdded, err))
	return m, nil
}

func (m model) handleNetworkStep(msg networkStepMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.machine.FailMultistep(msg.ticket, msg.step, msg.err) {
			m.logger.Warn().Err(msg.err).Stringer("step", msg.step).Msg("network detail failed")
		}
		return m, nil
	}
	next, done, err := m.machine.AdvanceMultistep(msg.ticket, msg.step, msg.partial)
	if err != nil {
		if !errors.Is(err, nav.ErrStale) {
			m.logger.Error().Err(err).Stringer("step", msg.step).Msg("network partial rejected")
		}
		return m, nil
	}
	if done {
		return m.showSingle()
	}
	return m, m.dispatch(msg.ticket, next)
}

func (m model) handleBlueprintResource(msg blueprintResourceMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn().Err(msg.err).Int("index", msg.index).Msg("blueprint resource failed")
	}
	next, done := m.machine.AdvanceBlueprint(msg.ticket, msg.index, msg.detail, msg.err)
	if next != nil {
		return m, m.dispatch(msg.ticket, next)
	}
	if !done {
		return m, nil
	}

	bp, ok := m.engine.Current()
	if !ok {
		m.machine.Enter(nav.ScreenBlueprintSelect)
		m.machine.SetStatus(m.labels.Get(i18n.BlueprintNotFound))
		return m, nil
	}
	doc := m.assembler().Blueprint(bp.Name, m.machine.BlueprintSections())
	m.showDocument(doc, nav.ScreenBlueprintPreview)
	if len(doc.Skipped) > 0 {
		m.machine.SetStatus(m.labels.SkippedResources(skippedIDs(doc.Skipped)))
	}
	return m, nil
}

func skippedIDs(refs []catalog.Ref) []string {
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	return ids
}

// showSingle previews the detail the machine currently holds.
func (m model) showSingle() (tea.Model, tea.Cmd) {
	doc, err := m.assembler().Single(m.machine.Detail())
	if err != nil {
		m.machine.SetStatus(m.labels.Failed(i18n.QueryFailed, err))
		return m, nil
	}
	m.showDocument(doc, nav.ScreenPreview)
	return m, nil
}

func (m *model) showDocument(doc document.Document, screen nav.Screen) {
	m.doc = &doc
	m.savedPath = ""
	m.preview.SetContent(doc.Content)
	m.preview.GotoTop()
	m.machine.Enter(screen)
}

func (m model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.machine.Screen() == nav.ScreenBlueprintPreview {
			m.machine.Enter(nav.ScreenBlueprintDetail)
			return m, nil
		}
		if kind, ok := m.machine.CurrentResourceType(); ok {
			m.machine.Enter(nav.SelectScreen(kind))
		} else {
			m.machine.Enter(nav.ScreenServiceSelect)
		}
		return m, nil
	case key.Matches(msg, m.keys.Save):
		if m.doc == nil {
			return m, nil
		}
		return m, m.saveDocument(*m.doc)
	case key.Matches(msg, m.keys.Open):
		if m.savedPath == "" {
			return m, nil
		}
		return m, openFile(m.savedPath)
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Settings):
		m.machine.Enter(nav.ScreenBlueprintSelect)
	case key.Matches(msg, m.keys.Toggle):
		m.setLanguage(m.lang.Toggle())
		if err := m.store.SaveSettings(store.Settings{Language: m.lang}); err != nil {
			m.logger.Error().Err(err).Msg("save settings")
			m.machine.SetStatus(m.labels.Failed(i18n.SaveFailed, err))
			return m, nil
		}
		m.machine.SetStatus(m.labels.Get(i18n.SettingsSaved))
	}
	return m, nil
}
