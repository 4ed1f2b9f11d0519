package catalog

// AwsResource is one row of a resource list.
type AwsResource struct {
	Name  string
	ID    string
	State string
	AZ    string
	CIDR  string
}

// Display returns "name (id)", or the bare id when the resource has no name.
func (r AwsResource) Display() string {
	if r.Name == "" {
		return r.ID
	}
	return r.Name + " (" + r.ID + ")"
}

// Ref addresses a single resource in a given region.
type Ref struct {
	Kind   Kind
	Region string
	ID     string
	Name   string
}

// Display mirrors AwsResource.Display for a reference.
func (r Ref) Display() string {
	return AwsResource{Name: r.Name, ID: r.ID}.Display()
}

// Tag represents a key-value pair for an AWS tag
type Tag struct {
	Key   string
	Value string
}

// Fetched is the outcome of fetching the detail behind one reference.
// A failed fetch carries Err and no Detail.
type Fetched struct {
	Ref    Ref
	Detail Detail
	Err    error
}

// OK reports whether the fetch produced a detail.
func (f Fetched) OK() bool {
	return f.Err == nil && f.Detail != nil
}
