package nav

import "github.com/noelruault/emd/internal/catalog"

// LoadingProgress records which network sub-fetches have completed.
type LoadingProgress struct {
	VpcInfo     bool
	Subnets     bool
	IGWs        bool
	NATs        bool
	RouteTables bool
	EIPs        bool
	DNSAttrs    bool
}

// Reset clears every flag.
func (p *LoadingProgress) Reset() {
	*p = LoadingProgress{}
}

// Mark sets the flag for step.
func (p *LoadingProgress) Mark(step catalog.NetworkStep) {
	if f := p.flag(step); f != nil {
		*f = true
	}
}

// Done reports whether step has completed.
func (p LoadingProgress) Done(step catalog.NetworkStep) bool {
	if f := p.flag(step); f != nil {
		return *f
	}
	return false
}

// Completed counts the completed steps.
func (p LoadingProgress) Completed() int {
	n := 0
	for s := catalog.StepVpcInfo; s.Valid(); s++ {
		if p.Done(s) {
			n++
		}
	}
	return n
}

func (p *LoadingProgress) flag(step catalog.NetworkStep) *bool {
	switch step {
	case catalog.StepVpcInfo:
		return &p.VpcInfo
	case catalog.StepSubnets:
		return &p.Subnets
	case catalog.StepInternetGateways:
		return &p.IGWs
	case catalog.StepNatGateways:
		return &p.NATs
	case catalog.StepRouteTables:
		return &p.RouteTables
	case catalog.StepElasticIPs:
		return &p.EIPs
	case catalog.StepDNSAttributes:
		return &p.DNSAttrs
	}
	return nil
}
