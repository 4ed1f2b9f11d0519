package nav

import (
	"fmt"

	"github.com/noelruault/emd/internal/catalog"
)

// Task is the unit of asynchronous work the machine tracks. A nil Task means
// nothing is in flight.
type Task interface {
	fmt.Stringer
	isTask()
}

// ListKey addresses a resource list: lists are fetched per region.
type ListKey struct {
	Region string
	Kind   catalog.Kind
}

func (k ListKey) String() string { return k.Kind.String() + "@" + k.Region }

// RefreshList re-fetches a list the user is already looking at.
type RefreshList struct {
	Region string
	Kind   catalog.Kind
}

// LoadList fetches a resource list on entering its select screen.
type LoadList struct {
	Region string
	Kind   catalog.Kind
}

func (t RefreshList) Key() ListKey { return ListKey{Region: t.Region, Kind: t.Kind} }
func (t LoadList) Key() ListKey    { return ListKey{Region: t.Region, Kind: t.Kind} }

// LoadDetail fetches the detail of one single-step resource.
type LoadDetail struct {
	Kind catalog.Kind
	ID   string
}

// LoadMultiStepDetail is one step of the sequential network detail fetch.
type LoadMultiStepDetail struct {
	VpcID string
	Step  catalog.NetworkStep
}

// LoadBlueprintResources fetches the detail of Refs[Index] while assembling
// a blueprint document.
type LoadBlueprintResources struct {
	Index int
	Refs  []catalog.Ref
}

func (RefreshList) isTask()            {}
func (LoadList) isTask()               {}
func (LoadDetail) isTask()             {}
func (LoadMultiStepDetail) isTask()    {}
func (LoadBlueprintResources) isTask() {}

func (t RefreshList) String() string { return "RefreshList(" + t.Key().String() + ")" }
func (t LoadList) String() string    { return "LoadList(" + t.Key().String() + ")" }
func (t LoadDetail) String() string {
	return fmt.Sprintf("LoadDetail(%s, %s)", t.Kind, t.ID)
}
func (t LoadMultiStepDetail) String() string {
	return fmt.Sprintf("LoadMultiStepDetail(%s, %d)", t.VpcID, int(t.Step))
}
func (t LoadBlueprintResources) String() string {
	return fmt.Sprintf("LoadBlueprintResources(%d/%d)", t.Index, len(t.Refs))
}

// Current returns the ref this task is fetching.
func (t LoadBlueprintResources) Current() catalog.Ref {
	return t.Refs[t.Index]
}
