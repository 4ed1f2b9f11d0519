package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/i18n"
)

func int32p(v int32) *int32 { return &v }

func TestSecurityGroupName(t *testing.T) {
	assert.Equal(t, "NULL - sg-1", SecurityGroupName(&catalog.SecurityGroupDetail{ID: "sg-1"}))
	assert.Equal(t, "NULL - sg-1", SecurityGroupName(&catalog.SecurityGroupDetail{ID: "sg-1", Name: "sg-1"}))
	assert.Equal(t, "web - sg-1", SecurityGroupName(&catalog.SecurityGroupDetail{ID: "sg-1", Name: "web"}))
}

func TestSecurityGroupMarkdown(t *testing.T) {
	d := &catalog.SecurityGroupDetail{
		Name: "sg-web", ID: "sg-1234", Description: "web sg", VpcID: "vpc-1111",
		InboundRules:  []catalog.SecurityRule{{Protocol: "TCP", PortRange: "443", SourceDest: "0.0.0.0/0", Description: "https"}},
		OutboundRules: []catalog.SecurityRule{{Protocol: "All", PortRange: "All", SourceDest: "0.0.0.0/0", Description: "-"}},
	}
	md := New(i18n.English).Render(d)
	assert.Contains(t, md, "## Security Group (sg-web - sg-1234)")
	assert.Contains(t, md, "### Inbound Rules")
	assert.Contains(t, md, "### Outbound Rules")
	assert.Contains(t, md, "| TCP | 443 | 0.0.0.0/0 | https |")
	assert.Contains(t, md, "| Protocol | Port Range | Destination | Description |")
}

func TestEcrMarkdown(t *testing.T) {
	d := &catalog.EcrDetail{
		Name:           "repo-a",
		URI:            "123456789012.dkr.ecr.ap-northeast-2.amazonaws.com/repo-a",
		TagMutability:  "IMMUTABLE",
		EncryptionType: "AES256",
		CreatedAt:      "2026-02-13",
		ImageCount:     3,
	}
	md := New(i18n.English).Body(d)
	assert.Contains(t, md, "| Tag Mutability | Immutable |")
	assert.Contains(t, md, "AES-256")
	assert.Contains(t, md, "| Image Count | 3 |")

	d.EncryptionType = "KMS"
	d.KMSKey = "arn:aws:kms:ap-northeast-2:123456789012:key/abcd"
	md = New(i18n.Korean).Body(d)
	assert.Contains(t, md, "AWS KMS (arn:aws:kms:ap-northeast-2:123456789012:key/abcd)")
	assert.Contains(t, md, "| 항목 | 값 |")

	assert.Equal(t, "Mutable", MutabilityLabel("MUTABLE"))
	assert.Equal(t, "AWS KMS", EncryptionLabel("KMS", ""))
}

func TestAsgMarkdown(t *testing.T) {
	d := &catalog.AsgDetail{
		Name:                   "asg-web",
		LaunchTemplateName:     "lt-web",
		LaunchTemplateID:       "lt-0123",
		MinSize:                1,
		MaxSize:                4,
		DesiredCapacity:        2,
		DefaultCooldown:        300,
		HealthCheckType:        "ELB",
		HealthCheckGracePeriod: 60,
		AvailabilityZones:      []string{"ap-northeast-2a"},
		Instances:              []string{"i-1", "i-2"},
		TargetGroupARNs:        []string{"arn:aws:elasticloadbalancing:ap-northeast-2:1:targetgroup/tg-web/abc"},
		ScalingPolicies: []catalog.ScalingPolicy{
			{Name: "cpu", PolicyType: "TargetTrackingScaling"},
			{Name: "step", PolicyType: "SimpleScaling", AdjustmentType: "ChangeInCapacity", ScalingAdjustment: int32p(2), Cooldown: int32p(120)},
		},
		Tags: []catalog.Tag{{Key: "Name", Value: "asg-web"}, {Key: "env", Value: "prod"}},
	}
	md := New(i18n.English).Body(d)
	assert.Contains(t, md, "| Launch Template | lt-web (`lt-0123`) |")
	assert.NotContains(t, md, "Launch Configuration")
	assert.Contains(t, md, "| Default Cooldown | 300s |")
	assert.Contains(t, md, "- tg-web")
	assert.Contains(t, md, "| cpu | TargetTrackingScaling | - | - | - |")
	assert.Contains(t, md, "| step | SimpleScaling | ChangeInCapacity | 2 | 120s |")
	assert.Contains(t, md, "| env | prod |")
	assert.Equal(t, 1, strings.Count(md, "asg-web"))

	ko := New(i18n.Korean).Body(&catalog.AsgDetail{Name: "a", LaunchConfigName: "lc-1", DefaultCooldown: 300})
	assert.Contains(t, ko, "| 시작 구성 | lc-1 |")
	assert.Contains(t, ko, "300초")
	assert.NotContains(t, ko, "### ")
}

func TestTargetGroupName(t *testing.T) {
	assert.Equal(t, "tg-web", TargetGroupName("arn:aws:elasticloadbalancing:r:1:targetgroup/tg-web/abc"))
	assert.Equal(t, "plain", TargetGroupName("plain"))
}

func TestNetworkMarkdown(t *testing.T) {
	d := &catalog.NetworkDetail{
		Name: "main", ID: "vpc-1", CIDR: "10.0.0.0/16", State: "available", DNSSupport: true,
		Subnets:     []catalog.SubnetDetail{{Name: "pub-a", ID: "subnet-1", CIDR: "10.0.1.0/24", AZ: "a", Public: true}},
		NatGateways: []catalog.NatDetail{{ID: "nat-1", ConnectivityType: "public", AvailabilityMode: "zonal"}},
		RouteTables: []catalog.RouteTableDetail{{ID: "rtb-1", Main: true, Routes: []catalog.RouteDetail{{Destination: "0.0.0.0/0", Target: "igw-1", State: "active"}}, Associations: []string{"subnet-1"}}},
	}
	md := New(i18n.English).Render(d)
	assert.Contains(t, md, "## Network (main)")
	assert.Contains(t, md, "| DNS Support | Enabled |")
	assert.Contains(t, md, "| DNS Hostnames | Disabled |")
	assert.Contains(t, md, "### Subnets (1)")
	assert.Contains(t, md, "| Public |")
	assert.Contains(t, md, "| Zonal |")
	assert.Contains(t, md, "rtb-1 (Main)")
	assert.Contains(t, md, "| 0.0.0.0/0 | igw-1 | active |")
	assert.NotContains(t, md, "### Elastic IP")
}

func TestEc2Markdown(t *testing.T) {
	d := &catalog.Ec2Detail{
		Name: "web-1", InstanceID: "i-1", InstanceType: "t3.micro",
		SecurityGroups: []string{"sg-1", "sg-2"},
		Volumes:        []catalog.VolumeDetail{{DeviceName: "/dev/xvda", VolumeID: "vol-1", SizeGiB: 8, VolumeType: "gp3"}},
		UserData:       "#!/bin/bash\necho hi\n",
		IAMRoleDetail:  &catalog.IAMRoleDetail{Name: "web-role", AttachedPolicies: []catalog.AttachedPolicy{{Name: "ReadOnly", ARN: "arn:aws:iam::aws:policy/ReadOnly"}}},
	}
	md := New(i18n.English).Render(d)
	assert.Contains(t, md, "## EC2 Instance (web-1)")
	assert.Contains(t, md, "| Security Groups | sg-1, sg-2 |")
	assert.Contains(t, md, "| /dev/xvda | `vol-1` | 8 GiB | gp3 | - | No | No |")
	assert.Contains(t, md, "```bash\n#!/bin/bash\necho hi\n```")
	assert.Contains(t, md, "- ReadOnly (`arn:aws:iam::aws:policy/ReadOnly`)")
}

func TestCellEscaping(t *testing.T) {
	assert.Equal(t, "-", cell(""))
	assert.Equal(t, `a\|b`, cell("a|b"))
	assert.Equal(t, "a<br>b", cell("a\nb"))
}
