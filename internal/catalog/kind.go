// Package catalog holds the list and detail shapes for the six supported
// resource kinds. It carries data only; fetching and rendering live elsewhere.
package catalog

import "fmt"

// Kind identifies one of the supported resource categories.
type Kind int

const (
	KindEc2 Kind = iota
	KindNetwork
	KindSecurityGroup
	KindLoadBalancer
	KindEcr
	KindAsg
)

// Kinds lists every kind in service-menu order, which is also the detail
// priority order.
var Kinds = []Kind{KindEc2, KindNetwork, KindSecurityGroup, KindLoadBalancer, KindEcr, KindAsg}

var kindNames = map[Kind]string{
	KindEc2:           "Ec2",
	KindNetwork:       "Network",
	KindSecurityGroup: "SecurityGroup",
	KindLoadBalancer:  "LoadBalancer",
	KindEcr:           "Ecr",
	KindAsg:           "Asg",
}

var kindLabels = map[Kind]string{
	KindEc2:           "EC2",
	KindNetwork:       "Network",
	KindSecurityGroup: "Security Group",
	KindLoadBalancer:  "Load Balancer",
	KindEcr:           "ECR",
	KindAsg:           "ASG",
}

// String returns the persisted name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Label returns the service-menu label for the kind.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return k.String()
}

// Valid reports whether k is one of the six known kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind converts a persisted name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown resource kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown resource kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
