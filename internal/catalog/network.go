package catalog

import "fmt"

// NetworkStep is one state of the sequential network detail fetch.
type NetworkStep int

const (
	StepVpcInfo NetworkStep = iota
	StepSubnets
	StepInternetGateways
	StepNatGateways
	StepRouteTables
	StepElasticIPs
	StepDNSAttributes
)

// NetworkStepCount is the number of sub-fetches in a network detail load.
const NetworkStepCount = int(StepDNSAttributes) + 1

var networkStepNames = [...]string{
	"vpc_info",
	"subnets",
	"igws",
	"nats",
	"route_tables",
	"eips",
	"dns_attrs",
}

func (s NetworkStep) String() string {
	if s.Valid() {
		return networkStepNames[s]
	}
	return fmt.Sprintf("NetworkStep(%d)", int(s))
}

// Valid reports whether s is within StepVpcInfo..StepDNSAttributes.
func (s NetworkStep) Valid() bool {
	return s >= StepVpcInfo && s <= StepDNSAttributes
}

// Last reports whether s is the terminal step.
func (s NetworkStep) Last() bool {
	return s == StepDNSAttributes
}

// Next returns the step after s. ok is false for the terminal step.
func (s NetworkStep) Next() (next NetworkStep, ok bool) {
	if !s.Valid() || s.Last() {
		return s, false
	}
	return s + 1, true
}

// VpcInfo is the result of StepVpcInfo.
type VpcInfo struct {
	Name  string
	ID    string
	CIDR  string
	State string
	Tags  []Tag
}

// DNSAttributes is the result of StepDNSAttributes.
type DNSAttributes struct {
	Support   bool
	Hostnames bool
}

// NetworkPartial carries the output of one sub-fetch. Only the field that
// matches Step is meaningful.
type NetworkPartial struct {
	Step             NetworkStep
	Info             *VpcInfo
	Subnets          []SubnetDetail
	InternetGateways []InternetGatewayDetail
	NatGateways      []NatDetail
	RouteTables      []RouteTableDetail
	ElasticIPs       []EipDetail
	DNS              *DNSAttributes
}

// NetworkAccumulator merges partials in strict step order.
type NetworkAccumulator struct {
	vpcID  string
	next   NetworkStep
	done   bool
	detail NetworkDetail
}

// NewNetworkAccumulator starts an accumulator expecting StepVpcInfo.
func NewNetworkAccumulator(vpcID string) *NetworkAccumulator {
	return &NetworkAccumulator{vpcID: vpcID, next: StepVpcInfo, detail: NetworkDetail{ID: vpcID}}
}

// Apply merges p. Out-of-order partials are rejected without mutation.
func (a *NetworkAccumulator) Apply(p NetworkPartial) error {
	if a.done {
		return fmt.Errorf("network detail for %s already complete", a.vpcID)
	}
	if p.Step != a.next {
		return fmt.Errorf("network detail for %s: got step %s, want %s", a.vpcID, p.Step, a.next)
	}

	switch p.Step {
	case StepVpcInfo:
		if p.Info != nil {
			a.detail.Name = p.Info.Name
			if p.Info.ID != "" {
				a.detail.ID = p.Info.ID
			}
			a.detail.CIDR = p.Info.CIDR
			a.detail.State = p.Info.State
			a.detail.Tags = p.Info.Tags
		}
	case StepSubnets:
		a.detail.Subnets = p.Subnets
	case StepInternetGateways:
		a.detail.InternetGateways = p.InternetGateways
	case StepNatGateways:
		a.detail.NatGateways = p.NatGateways
	case StepRouteTables:
		a.detail.RouteTables = p.RouteTables
	case StepElasticIPs:
		a.detail.ElasticIPs = p.ElasticIPs
	case StepDNSAttributes:
		if p.DNS != nil {
			a.detail.DNSSupport = p.DNS.Support
			a.detail.DNSHostnames = p.DNS.Hostnames
		}
	}

	if next, ok := p.Step.Next(); ok {
		a.next = next
	} else {
		a.done = true
	}
	return nil
}

// Result returns the merged detail once the terminal step has been applied.
func (a *NetworkAccumulator) Result() (*NetworkDetail, bool) {
	if !a.done {
		return nil, false
	}
	d := a.detail
	return &d, true
}
