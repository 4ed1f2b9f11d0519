// Package blueprint manages named, ordered collections of resource references
// that are exported together as one document.
package blueprint

import "github.com/noelruault/emd/internal/catalog"

// Resource is one entry of a blueprint. Duplicates are allowed.
type Resource struct {
	ResourceType catalog.Kind `json:"resource_type"`
	Region       string       `json:"region"`
	ResourceID   string       `json:"resource_id"`
	ResourceName string       `json:"resource_name"`
}

// Ref converts r to a catalog reference.
func (r Resource) Ref() catalog.Ref {
	return catalog.Ref{Kind: r.ResourceType, Region: r.Region, ID: r.ResourceID, Name: r.ResourceName}
}

// Display returns "name (id)" or the id alone.
func (r Resource) Display() string {
	return r.Ref().Display()
}

// Blueprint is a named ordered list of resources.
type Blueprint struct {
	Name      string     `json:"name"`
	Resources []Resource `json:"resources"`
}

// Refs returns the resources as catalog references, in stored order.
func (b Blueprint) Refs() []catalog.Ref {
	refs := make([]catalog.Ref, len(b.Resources))
	for i, r := range b.Resources {
		refs[i] = r.Ref()
	}
	return refs
}

func (b Blueprint) clone() Blueprint {
	out := Blueprint{Name: b.Name}
	if b.Resources != nil {
		out.Resources = append([]Resource(nil), b.Resources...)
	}
	return out
}

// Collection is the ordered, index-addressed set of blueprints.
type Collection struct {
	Blueprints []Blueprint `json:"blueprints"`
}

// Len returns the number of blueprints.
func (c Collection) Len() int { return len(c.Blueprints) }

// Find returns the index of the first blueprint named name, or -1.
func (c Collection) Find(name string) int {
	for i, b := range c.Blueprints {
		if b.Name == name {
			return i
		}
	}
	return -1
}

func (c Collection) clone() Collection {
	out := Collection{Blueprints: make([]Blueprint, len(c.Blueprints))}
	for i, b := range c.Blueprints {
		out.Blueprints[i] = b.clone()
	}
	return out
}
