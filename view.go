package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/config"
	"github.com/noelruault/emd/internal/i18n"
	"github.com/noelruault/emd/internal/nav"
	"github.com/noelruault/emd/internal/ui/list"
	"github.com/noelruault/emd/internal/ui/shared"
)

var kindLabels = map[catalog.Kind]i18n.Key{
	catalog.KindEc2:           i18n.KindEc2Label,
	catalog.KindNetwork:       i18n.KindNetworkLabel,
	catalog.KindSecurityGroup: i18n.KindSGLabel,
	catalog.KindLoadBalancer:  i18n.KindLBLabel,
	catalog.KindEcr:           i18n.KindEcrLabel,
	catalog.KindAsg:           i18n.KindAsgLabel,
}

var stepLabels = map[catalog.NetworkStep]i18n.Key{
	catalog.StepVpcInfo:          i18n.VpcBasicInfo,
	catalog.StepSubnets:          i18n.Subnets,
	catalog.StepInternetGateways: i18n.InternetGW,
	catalog.StepNatGateways:      i18n.NatGW,
	catalog.StepRouteTables:      i18n.RouteTables,
	catalog.StepElasticIPs:       i18n.ElasticIP,
	catalog.StepDNSAttributes:    i18n.DNSSettings,
}

func (m model) kindLabel(kind catalog.Kind) string {
	if k, ok := kindLabels[kind]; ok {
		return m.labels.Get(k)
	}
	return kind.Label()
}

func (m model) View() string {
	var s string

	s += m.renderHeader() + "\n"

	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		Width(max(m.width-2, 40))

	var content string
	screen := m.machine.Screen()
	if kind, ok := screen.SelectKind(); ok {
		content = m.renderResourceSelect(kind)
	} else {
		switch screen {
		case nav.ScreenLogin:
			content = m.renderLogin()
		case nav.ScreenBlueprintSelect:
			content = m.renderBlueprintSelect()
		case nav.ScreenBlueprintNameInput:
			content = m.renderNameInput()
		case nav.ScreenBlueprintDetail:
			content = m.renderBlueprintDetail()
		case nav.ScreenRegionSelect:
			content = m.renderRegionSelect()
		case nav.ScreenServiceSelect:
			content = m.renderServiceSelect()
		case nav.ScreenPreview, nav.ScreenBlueprintPreview:
			content = m.renderPreview()
		case nav.ScreenSettings:
			content = m.renderSettings()
		}
	}
	s += contentStyle.Render(content)

	if status := m.machine.Status(); status != "" {
		s += "\n" + shared.StatusStyle.Render(status)
	}

	s += "\n" + m.renderBreadcrumb()
	return s
}

// renderHeader draws the context block on the left and the key legend on the
// right, k9s style.
func (m model) renderHeader() string {
	var left strings.Builder
	line := func(label, value string) {
		left.WriteString(shared.LabelStyle.Render(fmt.Sprintf("%-10s", label+":")))
		left.WriteString(shared.ValueStyle.Render(value) + "\n")
	}

	region := m.region.Get()
	if i := config.RegionIndex(region); i >= 0 {
		region = fmt.Sprintf("%s (%s)", region, config.Regions[i].Name(m.lang))
	}
	line(m.labels.Get(i18n.Region), region)
	profile := m.cfg.Profile
	if profile == "" {
		profile = "default"
	}
	line("Profile", profile)
	account := "-"
	if m.identity.Account != "" {
		account = m.identity.Account
	}
	line("Account", account)
	line(m.labels.Get(i18n.LanguageLabel), m.lang.Display())

	var right strings.Builder
	for _, h := range m.hints() {
		right.WriteString(shared.KeyStyle.Render(fmt.Sprintf("<%s>", h.keys)))
		right.WriteString(" " + shared.HintStyle.Render(m.labels.Get(h.label)) + "\n")
	}

	leftBox := lipgloss.NewStyle().Width(48).Render(strings.TrimRight(left.String(), "\n"))
	rightBox := lipgloss.NewStyle().PaddingLeft(4).Render(strings.TrimRight(right.String(), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
}

func (m model) hints() []hint {
	screen := m.machine.Screen()
	if _, ok := screen.SelectKind(); ok {
		sel := hint{"enter", i18n.Select}
		if m.blueprintMode {
			sel.label = i18n.AddToBP
		}
		return []hint{{"↑↓", i18n.MoveCursor}, sel, {"r", i18n.Refresh}, {"esc", i18n.Back}, {"q", i18n.Exit}}
	}

	switch screen {
	case nav.ScreenLogin:
		return []hint{{"r", i18n.Refresh}, {"q", i18n.Exit}}
	case nav.ScreenBlueprintSelect:
		return []hint{
			{"↑↓", i18n.MoveCursor}, {"enter", i18n.Select}, {"n", i18n.Add}, {"d", i18n.Delete},
			{"s", i18n.SingleMode}, {"tab", i18n.Settings}, {"q", i18n.Exit},
		}
	case nav.ScreenBlueprintNameInput:
		return []hint{{"enter", i18n.Confirm}, {"esc", i18n.Cancel}}
	case nav.ScreenBlueprintDetail:
		return []hint{
			{"a", i18n.Add}, {"d", i18n.Delete}, {"K/J", i18n.Reorder},
			{"g", i18n.Generate}, {"esc", i18n.Back},
		}
	case nav.ScreenRegionSelect, nav.ScreenServiceSelect:
		return []hint{{"↑↓", i18n.MoveCursor}, {"enter", i18n.Select}, {"esc", i18n.Back}}
	case nav.ScreenPreview, nav.ScreenBlueprintPreview:
		return []hint{{"↑↓", i18n.Scroll}, {"s", i18n.Save}, {"o", i18n.Open}, {"esc", i18n.Back}}
	case nav.ScreenSettings:
		return []hint{{"enter", i18n.Confirm}, {"esc", i18n.Back}}
	}
	return nil
}

func (m model) renderBreadcrumb() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("220")).
		Bold(true).
		Padding(0, 1)

	crumbs := []string{"<emd>"}
	if bp, ok := m.engine.Current(); ok {
		crumbs = append(crumbs, "<"+bp.Name+">")
	}
	screen := m.machine.Screen()
	switch {
	case screen == nav.ScreenPreview || screen == nav.ScreenBlueprintPreview:
		crumbs = append(crumbs, "<"+strings.ToLower(m.labels.Get(i18n.Preview))+">")
	case screen >= nav.ScreenRegionSelect && screen <= nav.ScreenAsgSelect:
		crumbs = append(crumbs, "<"+m.region.Get()+">")
		if kind, ok := screen.SelectKind(); ok {
			crumbs = append(crumbs, "<"+strings.ToLower(kind.String())+">")
		}
	}

	var parts []string
	for _, c := range crumbs {
		parts = append(parts, style.Render(c))
	}
	return strings.Join(parts, " ")
}

func (m model) renderLogin() string {
	var b strings.Builder
	b.WriteString(shared.TitleStyle.Render(m.labels.Get(i18n.Login)) + "\n\n")

	switch {
	case m.loginChecking:
		b.WriteString(m.spinner.View() + " " + m.labels.Get(i18n.LoginChecking))
	case m.loginErr != nil:
		b.WriteString(shared.ErrorStyle.Render(m.labels.Get(i18n.LoginRequired)) + "\n\n")
		b.WriteString(m.loginFailure() + "\n")
		b.WriteString(shared.HintStyle.Render(m.loginErr.Error()) + "\n\n")
		b.WriteString(m.labels.Get(i18n.ConfigureHint))
	}
	return b.String()
}

func (m model) renderBlueprintSelect() string {
	coll := m.engine.Collection()
	t := list.Table{
		Title:   m.labels.Get(i18n.Blueprint),
		Columns: []list.Column{{Title: "Name", Width: 32}, {Title: m.labels.Get(i18n.Resources)}},
	}
	for _, bp := range coll.Blueprints {
		t.Rows = append(t.Rows, []string{shared.Truncate(bp.Name, 32), fmt.Sprintf("%d", len(bp.Resources))})
	}
	t.Rows = append(t.Rows, []string{m.labels.Get(i18n.NewBlueprint), ""})
	return list.Render(t, *m.cursor(nav.ScreenBlueprintSelect))
}

func (m model) renderNameInput() string {
	return shared.LabelStyle.Render(m.labels.Get(i18n.EnterBPName)) + "\n\n" + m.nameInput.View()
}

func (m model) renderBlueprintDetail() string {
	bp, ok := m.engine.Current()
	if !ok {
		return shared.HintStyle.Render(m.labels.Get(i18n.BlueprintNotFound))
	}
	t := list.Table{
		Title: bp.Name,
		Columns: []list.Column{
			{Title: "#", Width: 4},
			{Title: m.labels.Get(i18n.Service), Width: 20},
			{Title: m.labels.Get(i18n.Region), Width: 16},
			{Title: m.labels.Get(i18n.MdName)},
		},
		Empty: m.labels.Get(i18n.PressAToAdd),
	}
	for i, r := range bp.Resources {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", i+1),
			m.kindLabel(r.ResourceType),
			r.Region,
			r.Display(),
		})
	}
	s := list.Render(t, *m.cursor(nav.ScreenBlueprintDetail))

	if task, ok := m.machine.Task().(nav.LoadBlueprintResources); ok && m.machine.Loading() {
		s += fmt.Sprintf("\n\n%s %s (%d/%d)", m.spinner.View(), m.labels.Get(i18n.LoadingBPResources), task.Index+1, len(task.Refs))
		s += "\n" + shared.HintStyle.Render(task.Current().Display())
	}
	return s
}

func (m model) renderRegionSelect() string {
	current := config.RegionIndex(m.region.Get())
	t := list.Table{
		Title:   m.labels.Get(i18n.Region),
		Columns: []list.Column{{Title: "Code", Width: 18}, {Title: "Name"}},
		Marked:  map[int]bool{current: true},
	}
	for _, r := range config.Regions {
		t.Rows = append(t.Rows, []string{r.Code, r.Name(m.lang)})
	}
	return list.Render(t, *m.cursor(nav.ScreenRegionSelect))
}

func (m model) renderServiceSelect() string {
	t := list.Table{
		Title:   m.labels.Get(i18n.Service),
		Columns: []list.Column{{Title: m.labels.Get(i18n.Service)}},
	}
	for _, k := range catalog.Kinds {
		t.Rows = append(t.Rows, []string{m.kindLabel(k)})
	}
	return list.Render(t, *m.cursor(nav.ScreenServiceSelect))
}

func (m model) renderResourceSelect(kind catalog.Kind) string {
	if task, ok := m.machine.Task().(nav.LoadMultiStepDetail); ok && m.machine.Loading() {
		return m.renderNetworkProgress(task)
	}

	extra := "AZ"
	if kind == catalog.KindNetwork {
		extra = "CIDR"
	}
	t := list.Table{
		Title: m.kindLabel(kind),
		Columns: []list.Column{
			{Title: m.labels.Get(i18n.MdName), Width: 32},
			{Title: m.labels.Get(i18n.MdState), Width: 14},
			{Title: extra, Width: 18},
			{Title: "ID"},
		},
		Empty: m.labels.Get(i18n.NoItemsForKindSuffix),
	}
	for _, r := range m.machine.List(m.region.Get(), kind) {
		detail := r.AZ
		if kind == catalog.KindNetwork {
			detail = r.CIDR
		}
		t.Rows = append(t.Rows, []string{shared.Truncate(r.Name, 32), shared.Truncate(r.State, 14), detail, r.ID})
	}
	s := list.Render(t, *m.cursor(nav.SelectScreen(kind)))

	if m.machine.Loading() {
		label := i18n.LoadingList
		if _, ok := m.machine.Task().(nav.RefreshList); ok {
			label = i18n.RefreshingList
		}
		if _, ok := m.machine.Task().(nav.LoadDetail); ok {
			label = i18n.LoadingDetail
		}
		s += "\n\n" + m.spinner.View() + " " + m.labels.Get(label) + "\n" + shared.HintStyle.Render(m.labels.Get(i18n.ProviderWaiting))
	}
	return s
}

func (m model) renderNetworkProgress(task nav.LoadMultiStepDetail) string {
	var b strings.Builder
	b.WriteString(shared.TitleStyle.Render(task.VpcID) + "\n\n")
	progress := m.machine.Progress()
	for step := catalog.StepVpcInfo; step.Valid(); step++ {
		label := m.labels.Get(stepLabels[step])
		switch {
		case progress.Done(step):
			b.WriteString(shared.SuccessStyle.Render("✓ ") + label + "\n")
		case step == task.Step:
			b.WriteString(m.spinner.View() + " " + label + "\n")
		default:
			b.WriteString(shared.HintStyle.Render("· "+label) + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("\n%d/%d  ", progress.Completed(), len(stepLabels)))
	b.WriteString(shared.HintStyle.Render(m.labels.CurrentLoading(m.labels.Get(stepLabels[task.Step]))))
	return b.String()
}

func (m model) renderPreview() string {
	title := m.labels.Get(i18n.Preview)
	if m.doc != nil {
		title = m.doc.Title
	}
	s := shared.TitleStyle.Render(title) + "\n\n" + m.preview.View()
	s += "\n" + shared.HintStyle.Render(fmt.Sprintf("%3.f%%", m.preview.ScrollPercent()*100))
	if m.savedPath != "" {
		s += "  " + shared.HintStyle.Render(m.savedPath)
	}
	return s
}

func (m model) renderSettings() string {
	t := list.Table{
		Title:   m.labels.Get(i18n.LanguageSetter),
		Columns: []list.Column{{Title: m.labels.Get(i18n.Item), Width: 16}, {Title: m.labels.Get(i18n.Value)}},
		Rows:    [][]string{{m.labels.Get(i18n.LanguageLabel), m.lang.Display()}},
	}
	return list.Render(t, *m.cursor(nav.ScreenSettings))
}
