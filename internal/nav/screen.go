package nav

import (
	"fmt"

	"github.com/noelruault/emd/internal/catalog"
)

// Screen identifies the active view. Exactly one is active at a time.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenBlueprintSelect
	ScreenBlueprintDetail
	ScreenBlueprintNameInput
	ScreenBlueprintPreview
	ScreenRegionSelect
	ScreenServiceSelect
	ScreenEc2Select
	ScreenVpcSelect
	ScreenSecurityGroupSelect
	ScreenLoadBalancerSelect
	ScreenEcrSelect
	ScreenAsgSelect
	ScreenPreview
	ScreenSettings
)

var screenNames = [...]string{
	"Login",
	"BlueprintSelect",
	"BlueprintDetail",
	"BlueprintNameInput",
	"BlueprintPreview",
	"RegionSelect",
	"ServiceSelect",
	"Ec2Select",
	"VpcSelect",
	"SecurityGroupSelect",
	"LoadBalancerSelect",
	"EcrSelect",
	"AsgSelect",
	"Preview",
	"Settings",
}

func (s Screen) String() string {
	if s >= 0 && int(s) < len(screenNames) {
		return screenNames[s]
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

var selectScreens = map[catalog.Kind]Screen{
	catalog.KindEc2:           ScreenEc2Select,
	catalog.KindNetwork:       ScreenVpcSelect,
	catalog.KindSecurityGroup: ScreenSecurityGroupSelect,
	catalog.KindLoadBalancer:  ScreenLoadBalancerSelect,
	catalog.KindEcr:           ScreenEcrSelect,
	catalog.KindAsg:           ScreenAsgSelect,
}

// SelectScreen returns the list screen for kind.
func SelectScreen(kind catalog.Kind) Screen {
	return selectScreens[kind]
}

// SelectKind reports which resource kind a list screen shows.
func (s Screen) SelectKind() (catalog.Kind, bool) {
	for k, sc := range selectScreens {
		if sc == s {
			return k, true
		}
	}
	return 0, false
}
