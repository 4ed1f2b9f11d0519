// Package nav holds the navigation and loading state machine: which screen is
// active, which fetch is in flight, network sub-fetch progress and the
// fetched data the screens render.
package nav

import (
	"errors"
	"fmt"

	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/i18n"
)

// ErrStale is returned when a completion carries a ticket that no longer
// matches the in-flight task.
var ErrStale = errors.New("stale task result")

// Ticket identifies one started task. Enter and BeginTask invalidate every
// earlier ticket.
type Ticket uint64

// Machine is the single owner of navigation and loading state. It is not
// safe for concurrent use; the UI loop drives it.
type Machine struct {
	screen   Screen
	task     Task
	loading  bool
	ticket   Ticket
	progress LoadingProgress

	lists    map[ListKey][]catalog.AwsResource
	detail   catalog.Detail
	network  *catalog.NetworkAccumulator
	sections []catalog.Fetched

	status string
	labels i18n.Labeler
}

// NewMachine returns a machine on the login screen.
func NewMachine(labels i18n.Labeler) *Machine {
	return &Machine{
		screen: ScreenLogin,
		lists:  make(map[ListKey][]catalog.AwsResource),
		labels: labels,
	}
}

// SetLabeler switches the language used for status messages.
func (m *Machine) SetLabeler(l i18n.Labeler) { m.labels = l }

// Enter switches screens unconditionally. Any in-flight task is abandoned and
// its eventual result will be ignored.
func (m *Machine) Enter(s Screen) {
	m.screen = s
	m.task = nil
	m.loading = false
	m.network = nil
	m.progress.Reset()
	m.ticket++
}

// BeginTask starts t. It is rejected while another task is loading or when t
// is malformed.
func (m *Machine) BeginTask(t Task) (Ticket, bool) {
	if m.loading || t == nil {
		return 0, false
	}

	switch v := t.(type) {
	case LoadMultiStepDetail:
		if v.Step != catalog.StepVpcInfo {
			return 0, false
		}
		m.progress.Reset()
		m.network = catalog.NewNetworkAccumulator(v.VpcID)
	case LoadBlueprintResources:
		if v.Index != 0 || len(v.Refs) == 0 {
			return 0, false
		}
		m.sections = make([]catalog.Fetched, 0, len(v.Refs))
	}

	m.ticket++
	m.task = t
	m.loading = true
	return m.ticket, true
}

func (m *Machine) current(t Ticket) bool {
	return m.loading && t == m.ticket && m.task != nil
}

func (m *Machine) finish() {
	m.task = nil
	m.loading = false
}

// AdvanceMultistep records the partial for step. It returns the next step's
// task for the caller to dispatch, or done=true once the merged network
// detail has been published.
func (m *Machine) AdvanceMultistep(t Ticket, step catalog.NetworkStep, partial catalog.NetworkPartial) (Task, bool, error) {
	if !m.current(t) {
		return nil, false, ErrStale
	}
	task, ok := m.task.(LoadMultiStepDetail)
	if !ok || task.Step != step || m.network == nil {
		return nil, false, fmt.Errorf("advance %s: %w", step, ErrStale)
	}

	partial.Step = step
	if err := m.network.Apply(partial); err != nil {
		return nil, false, err
	}
	m.progress.Mark(step)

	next, more := step.Next()
	if more {
		nt := LoadMultiStepDetail{VpcID: task.VpcID, Step: next}
		m.task = nt
		return nt, false, nil
	}

	detail, _ := m.network.Result()
	m.detail = detail
	m.network = nil
	m.status = ""
	m.finish()
	return nil, true, nil
}

// FailMultistep aborts the network fetch. Flags of completed steps are kept
// so the view can show how far the load got; no partial detail is published.
func (m *Machine) FailMultistep(t Ticket, step catalog.NetworkStep, err error) bool {
	if !m.current(t) {
		return false
	}
	task, ok := m.task.(LoadMultiStepDetail)
	if !ok || task.Step != step {
		return false
	}
	m.network = nil
	m.status = m.labels.NetworkDetailUnavailable(task.VpcID)
	m.finish()
	return true
}

// CompleteList stores a fetched list under the region it was fetched in.
// On failure prior data for that region is kept.
func (m *Machine) CompleteList(t Ticket, key ListKey, items []catalog.AwsResource, err error) bool {
	if !m.current(t) {
		return false
	}
	var refresh bool
	switch task := m.task.(type) {
	case RefreshList:
		if task.Key() != key {
			return false
		}
		refresh = true
	case LoadList:
		if task.Key() != key {
			return false
		}
	default:
		return false
	}

	m.finish()
	if err != nil {
		m.status = m.labels.Failed(i18n.QueryFailed, err)
		return true
	}
	m.lists[key] = items
	switch {
	case len(items) == 0:
		m.status = m.labels.Get(i18n.NoResources)
	case refresh:
		m.status = m.labels.Get(i18n.RefreshComplete)
	default:
		m.status = ""
	}
	return true
}

// CompleteDetail publishes a single-step detail, replacing whatever detail
// was held before. On failure the prior detail is kept.
func (m *Machine) CompleteDetail(t Ticket, d catalog.Detail, err error) bool {
	if !m.current(t) {
		return false
	}
	task, ok := m.task.(LoadDetail)
	if !ok {
		return false
	}
	m.finish()
	if err != nil {
		m.status = m.labels.Failed(i18n.QueryFailed, err)
		return true
	}
	if d == nil || d.Kind() != task.Kind {
		m.status = m.labels.Failed(i18n.QueryFailed, fmt.Errorf("no %s detail for %s", task.Kind, task.ID))
		return true
	}
	m.detail = d
	m.status = ""
	return true
}

// AdvanceBlueprint records the outcome for entry index and returns the task
// for the next entry, or done=true after the last one. A stale or
// out-of-order call returns (nil, false) and changes nothing.
func (m *Machine) AdvanceBlueprint(t Ticket, index int, d catalog.Detail, err error) (Task, bool) {
	if !m.current(t) {
		return nil, false
	}
	task, ok := m.task.(LoadBlueprintResources)
	if !ok || task.Index != index {
		return nil, false
	}

	m.sections = append(m.sections, catalog.Fetched{Ref: task.Current(), Detail: d, Err: err})
	if index+1 < len(task.Refs) {
		nt := LoadBlueprintResources{Index: index + 1, Refs: task.Refs}
		m.task = nt
		return nt, false
	}
	m.finish()
	return nil, true
}

// SetStatus sets the status line.
func (m *Machine) SetStatus(s string) { m.status = s }

func (m *Machine) Screen() Screen { return m.screen }
func (m *Machine) Task() Task { return m.task }
func (m *Machine) Loading() bool { return m.loading }
func (m *Machine) Progress() LoadingProgress { return m.progress }
func (m *Machine) Detail() catalog.Detail { return m.detail }
func (m *Machine) Status() string { return m.status }
func (m *Machine) BlueprintSections() []catalog.Fetched { return m.sections }

// List returns the rows last fetched for kind in region.
func (m *Machine) List(region string, kind catalog.Kind) []catalog.AwsResource {
	return m.lists[ListKey{Region: region, Kind: kind}]
}

// CurrentResourceType returns the kind of the held detail, checked in the
// fixed order Ec2, Network, SecurityGroup, LoadBalancer, Ecr, Asg.
func (m *Machine) CurrentResourceType() (catalog.Kind, bool) {
	return catalog.SetOf(m.detail).CurrentKind()
}

// CurrentResourceInfo returns the id and name of the held detail.
func (m *Machine) CurrentResourceInfo() (id, name string, ok bool) {
	return catalog.SetOf(m.detail).CurrentInfo()
}
