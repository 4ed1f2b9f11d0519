package catalog

// Detail is the closed set of per-kind detail shapes. Exactly one concrete
// type exists per Kind.
type Detail interface {
	Kind() Kind
	// Identity returns the provider id and display name of the resource.
	Identity() (id, name string)
	isDetail()
}

// Ec2Detail contains comprehensive EC2 instance information
type Ec2Detail struct {
	Name           string
	InstanceID     string
	InstanceType   string
	AMI            string
	Platform       string
	Architecture   string
	KeyPair        string
	VpcID          string
	SubnetID       string
	AZ             string
	PublicIP       string
	PrivateIP      string
	SecurityGroups []string
	State          string
	EBSOptimized   bool
	Monitoring     string
	IAMRole        string
	IAMRoleDetail  *IAMRoleDetail
	LaunchTime     string
	Tags           []Tag
	Volumes        []VolumeDetail
	UserData       string
}

// VolumeDetail represents an attached EBS volume
type VolumeDetail struct {
	DeviceName          string
	VolumeID            string
	SizeGiB             int32
	VolumeType          string
	IOPS                int32
	Encrypted           bool
	DeleteOnTermination bool
}

// IAMRoleDetail describes the role behind an instance profile.
type IAMRoleDetail struct {
	Name             string
	ARN              string
	AssumeRolePolicy string
	AttachedPolicies []AttachedPolicy
	InlinePolicies   []InlinePolicy
}

type AttachedPolicy struct {
	Name string
	ARN  string
}

type InlinePolicy struct {
	Name     string
	Document string
}

// NetworkDetail is the merged result of the seven network sub-fetches.
type NetworkDetail struct {
	Name             string
	ID               string
	CIDR             string
	State            string
	Tags             []Tag
	Subnets          []SubnetDetail
	InternetGateways []InternetGatewayDetail
	NatGateways      []NatDetail
	RouteTables      []RouteTableDetail
	ElasticIPs       []EipDetail
	DNSSupport       bool
	DNSHostnames     bool
}

type SubnetDetail struct {
	Name      string
	ID        string
	CIDR      string
	AZ        string
	Public    bool
	Available int32
}

type InternetGatewayDetail struct {
	Name  string
	ID    string
	VpcID string
}

type NatDetail struct {
	Name             string
	ID               string
	State            string
	ConnectivityType string
	AvailabilityMode string
	PublicIP         string
	AllocationID     string
	SubnetID         string
	Tags             []Tag
}

type RouteTableDetail struct {
	Name         string
	ID           string
	Main         bool
	Routes       []RouteDetail
	Associations []string
}

type RouteDetail struct {
	Destination string
	Target      string
	State       string
}

type EipDetail struct {
	Name         string
	PublicIP     string
	AllocationID string
	InstanceID   string
	PrivateIP    string
}

// SecurityGroupDetail lists normalised inbound and outbound rules.
type SecurityGroupDetail struct {
	Name          string
	ID            string
	Description   string
	VpcID         string
	InboundRules  []SecurityRule
	OutboundRules []SecurityRule
}

type SecurityRule struct {
	Protocol    string
	PortRange   string
	SourceDest  string
	Description string
}

// LoadBalancerDetail covers ALB/NLB attributes, listeners and target groups.
type LoadBalancerDetail struct {
	Name              string
	ARN               string
	DNSName           string
	Type              string
	Scheme            string
	VpcID             string
	IPAddressType     string
	State             string
	AvailabilityZones []string
	SecurityGroups    []string
	Listeners         []ListenerDetail
	TargetGroups      []TargetGroupInfo
}

type ListenerDetail struct {
	Port          int32
	Protocol      string
	DefaultAction string
}

type TargetGroupInfo struct {
	Name                string
	ARN                 string
	Protocol            string
	Port                int32
	TargetType          string
	HealthCheckProtocol string
	HealthCheckPath     string
	HealthyThreshold    int32
	UnhealthyThreshold  int32
	Targets             []TargetInfo
}

type TargetInfo struct {
	ID     string
	Port   int32
	Health string
}

// EcrDetail describes a container image repository.
type EcrDetail struct {
	Name           string
	URI            string
	TagMutability  string
	EncryptionType string
	KMSKey         string
	CreatedAt      string
	ImageCount     int
}

// AsgDetail describes an auto scaling group.
type AsgDetail struct {
	Name                   string
	ARN                    string
	LaunchTemplateName     string
	LaunchTemplateID       string
	LaunchConfigName       string
	MinSize                int32
	MaxSize                int32
	DesiredCapacity        int32
	DefaultCooldown        int32
	AvailabilityZones      []string
	TargetGroupARNs        []string
	HealthCheckType        string
	HealthCheckGracePeriod int32
	Instances              []string
	CreatedTime            string
	ScalingPolicies        []ScalingPolicy
	Tags                   []Tag
}

type ScalingPolicy struct {
	Name              string
	PolicyType        string
	AdjustmentType    string
	ScalingAdjustment *int32
	Cooldown          *int32
}

func (*Ec2Detail) Kind() Kind           { return KindEc2 }
func (*NetworkDetail) Kind() Kind       { return KindNetwork }
func (*SecurityGroupDetail) Kind() Kind { return KindSecurityGroup }
func (*LoadBalancerDetail) Kind() Kind  { return KindLoadBalancer }
func (*EcrDetail) Kind() Kind           { return KindEcr }
func (*AsgDetail) Kind() Kind           { return KindAsg }

func (d *Ec2Detail) Identity() (string, string)           { return d.InstanceID, d.Name }
func (d *NetworkDetail) Identity() (string, string)       { return d.ID, d.Name }
func (d *SecurityGroupDetail) Identity() (string, string) { return d.ID, d.Name }
func (d *LoadBalancerDetail) Identity() (string, string)  { return d.ARN, d.Name }
func (d *EcrDetail) Identity() (string, string)           { return d.Name, d.Name }
func (d *AsgDetail) Identity() (string, string)           { return d.Name, d.Name }

func (*Ec2Detail) isDetail()           {}
func (*NetworkDetail) isDetail()       {}
func (*SecurityGroupDetail) isDetail() {}
func (*LoadBalancerDetail) isDetail()  {}
func (*EcrDetail) isDetail()           {}
func (*AsgDetail) isDetail()           {}

// DetailSet is a field-per-kind view of detail data. Callers that hold a
// single Detail get at most one populated field; the priority queries still
// resolve a fully populated set deterministically.
type DetailSet struct {
	Ec2           *Ec2Detail
	Network       *NetworkDetail
	SecurityGroup *SecurityGroupDetail
	LoadBalancer  *LoadBalancerDetail
	Ecr           *EcrDetail
	Asg           *AsgDetail
}

// SetOf places d in its matching field.
func SetOf(d Detail) DetailSet {
	var s DetailSet
	switch v := d.(type) {
	case *Ec2Detail:
		s.Ec2 = v
	case *NetworkDetail:
		s.Network = v
	case *SecurityGroupDetail:
		s.SecurityGroup = v
	case *LoadBalancerDetail:
		s.LoadBalancer = v
	case *EcrDetail:
		s.Ecr = v
	case *AsgDetail:
		s.Asg = v
	}
	return s
}

// Current returns the highest-priority populated detail in the order
// Ec2 > Network > SecurityGroup > LoadBalancer > Ecr > Asg.
func (s DetailSet) Current() Detail {
	if s.Ec2 != nil {
		return s.Ec2
	} else if s.Network != nil {
		return s.Network
	} else if s.SecurityGroup != nil {
		return s.SecurityGroup
	} else if s.LoadBalancer != nil {
		return s.LoadBalancer
	} else if s.Ecr != nil {
		return s.Ecr
	} else if s.Asg != nil {
		return s.Asg
	}
	return nil
}

// CurrentKind returns the kind of Current, if any.
func (s DetailSet) CurrentKind() (Kind, bool) {
	d := s.Current()
	if d == nil {
		return 0, false
	}
	return d.Kind(), true
}

// CurrentInfo returns the id and name of Current, if any.
func (s DetailSet) CurrentInfo() (id, name string, ok bool) {
	d := s.Current()
	if d == nil {
		return "", "", false
	}
	id, name = d.Identity()
	return id, name, true
}
