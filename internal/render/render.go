// Package render turns resource details into Markdown. Rendering is pure:
// the output depends only on the detail and the language.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/i18n"
)

// Markdown renders section titles and bodies in one language.
type Markdown struct {
	l i18n.Labeler
}

// New returns a renderer for lang.
func New(lang i18n.Language) Markdown {
	return Markdown{l: i18n.New(lang)}
}

// Labeler exposes the labels the renderer uses.
func (m Markdown) Labeler() i18n.Labeler { return m.l }

// Title returns the section heading text for d.
func (m Markdown) Title(d catalog.Detail) string {
	switch v := d.(type) {
	case *catalog.Ec2Detail:
		return fmt.Sprintf("%s (%s)", m.l.Get(i18n.KindEc2Label), orID(v.Name, v.InstanceID))
	case *catalog.NetworkDetail:
		return fmt.Sprintf("%s (%s)", m.l.Get(i18n.KindNetworkLabel), orID(v.Name, v.ID))
	case *catalog.SecurityGroupDetail:
		return fmt.Sprintf("%s (%s)", m.l.Get(i18n.KindSGLabel), SecurityGroupName(v))
	case *catalog.LoadBalancerDetail:
		return fmt.Sprintf("%s (%s)", m.l.Get(i18n.KindLBLabel), v.Name)
	case *catalog.EcrDetail:
		return fmt.Sprintf("%s (%s)", m.l.Get(i18n.KindEcrLabel), v.Name)
	case *catalog.AsgDetail:
		return fmt.Sprintf("%s (%s)", m.l.Get(i18n.KindAsgLabel), v.Name)
	}
	return ""
}

// Body returns the Markdown body for d, without the section heading.
func (m Markdown) Body(d catalog.Detail) string {
	var b strings.Builder
	switch v := d.(type) {
	case *catalog.Ec2Detail:
		m.ec2(&b, v)
	case *catalog.NetworkDetail:
		m.network(&b, v)
	case *catalog.SecurityGroupDetail:
		m.securityGroup(&b, v)
	case *catalog.LoadBalancerDetail:
		m.loadBalancer(&b, v)
	case *catalog.EcrDetail:
		m.ecr(&b, v)
	case *catalog.AsgDetail:
		m.asg(&b, v)
	}
	return b.String()
}

// Render returns a standalone "## title" section for d.
func (m Markdown) Render(d catalog.Detail) string {
	return "## " + m.Title(d) + "\n\n" + m.Body(d)
}

func (m Markdown) itemTable(b *strings.Builder) *table {
	return newTable(b, m.l.Get(i18n.Item), m.l.Get(i18n.Value))
}

func (m Markdown) yesNo(v bool) string {
	if v {
		return m.l.Get(i18n.MdYes)
	}
	return m.l.Get(i18n.MdNo)
}

func (m Markdown) enabled(v bool) string {
	if v {
		return m.l.Get(i18n.MdEnabled)
	}
	return m.l.Get(i18n.MdDisabled)
}

func (m Markdown) tags(b *strings.Builder, tags []catalog.Tag) {
	var rows []catalog.Tag
	for _, t := range tags {
		if t.Key != "Name" {
			rows = append(rows, t)
		}
	}
	if len(rows) == 0 {
		return
	}
	section(b, m.l.Get(i18n.AsgTags))
	t := newTable(b, m.l.Get(i18n.MdKey), m.l.Get(i18n.Value))
	for _, tag := range rows {
		t.row(tag.Key, tag.Value)
	}
}

func (m Markdown) ec2(b *strings.Builder, d *catalog.Ec2Detail) {
	t := m.itemTable(b)
	t.row(m.l.Get(i18n.MdName), d.Name)
	t.row("Instance ID", code(d.InstanceID))
	t.row(m.l.Get(i18n.MdState), d.State)
	t.row(m.l.Get(i18n.MdInstanceType), d.InstanceType)
	t.row("AMI", d.AMI)
	t.row(m.l.Get(i18n.MdPlatform), d.Platform)
	t.row(m.l.Get(i18n.MdArchitecture), d.Architecture)
	t.row(m.l.Get(i18n.MdKeyPair), d.KeyPair)
	t.row("VPC ID", d.VpcID)
	t.row("Subnet ID", d.SubnetID)
	t.row(m.l.Get(i18n.MdAZ), d.AZ)
	t.row(m.l.Get(i18n.MdPrivateIP), d.PrivateIP)
	t.row(m.l.Get(i18n.MdPublicIP), d.PublicIP)
	t.row(m.l.Get(i18n.MdSecurityGroups), join(d.SecurityGroups))
	t.row(m.l.Get(i18n.MdEBSOptimized), m.yesNo(d.EBSOptimized))
	t.row(m.l.Get(i18n.MdMonitoring), d.Monitoring)
	t.row(m.l.Get(i18n.MdIAMRole), d.IAMRole)
	t.row(m.l.Get(i18n.MdLaunchTime), d.LaunchTime)

	if len(d.Volumes) > 0 {
		section(b, m.l.Get(i18n.MdStorage))
		vt := newTable(b, m.l.Get(i18n.MdDevice), "Volume ID", m.l.Get(i18n.MdSize), m.l.Get(i18n.MdType), "IOPS", m.l.Get(i18n.MdEncrypted), m.l.Get(i18n.MdDeleteOnTerm))
		for _, v := range d.Volumes {
			iops := "-"
			if v.IOPS > 0 {
				iops = strconv.Itoa(int(v.IOPS))
			}
			vt.row(v.DeviceName, code(v.VolumeID), fmt.Sprintf("%d GiB", v.SizeGiB), v.VolumeType, iops, m.yesNo(v.Encrypted), m.yesNo(v.DeleteOnTermination))
		}
	}

	if r := d.IAMRoleDetail; r != nil {
		section(b, m.l.Get(i18n.MdIAMRole)+" ("+r.Name+")")
		rt := m.itemTable(b)
		rt.row(m.l.Get(i18n.MdName), r.Name)
		rt.row("ARN", code(r.ARN))
		if len(r.AttachedPolicies) > 0 {
			b.WriteString("\n**" + m.l.Get(i18n.MdAttachedPolicies) + "**\n\n")
			for _, p := range r.AttachedPolicies {
				fmt.Fprintf(b, "- %s (`%s`)\n", p.Name, p.ARN)
			}
		}
		for _, p := range r.InlinePolicies {
			fmt.Fprintf(b, "\n**%s: %s**\n\n```json\n%s\n```\n", m.l.Get(i18n.MdInlinePolicies), p.Name, p.Document)
		}
		if r.AssumeRolePolicy != "" {
			fmt.Fprintf(b, "\n**%s**\n\n```json\n%s\n```\n", m.l.Get(i18n.MdTrustPolicy), r.AssumeRolePolicy)
		}
	}

	if d.UserData != "" {
		section(b, m.l.Get(i18n.MdUserData))
		fmt.Fprintf(b, "```bash\n%s\n```\n", strings.TrimRight(d.UserData, "\n"))
	}

	m.tags(b, d.Tags)
}

func (m Markdown) network(b *strings.Builder, d *catalog.NetworkDetail) {
	t := m.itemTable(b)
	t.row(m.l.Get(i18n.MdName), d.Name)
	t.row("VPC ID", code(d.ID))
	t.row("CIDR", d.CIDR)
	t.row(m.l.Get(i18n.MdState), d.State)
	t.row(m.l.Get(i18n.MdDNSSupport), m.enabled(d.DNSSupport))
	t.row(m.l.Get(i18n.MdDNSHostnames), m.enabled(d.DNSHostnames))

	if len(d.Subnets) > 0 {
		section(b, m.l.CountOf(i18n.Subnets, len(d.Subnets)))
		st := newTable(b, m.l.Get(i18n.MdName), "ID", "CIDR", "AZ", m.l.Get(i18n.MdType))
		for _, s := range d.Subnets {
			kind := m.l.Get(i18n.MdPrivate)
			if s.Public {
				kind = m.l.Get(i18n.MdPublic)
			}
			st.row(s.Name, code(s.ID), s.CIDR, s.AZ, kind)
		}
	}

	if len(d.InternetGateways) > 0 {
		section(b, m.l.Get(i18n.InternetGW))
		it := newTable(b, m.l.Get(i18n.MdName), "ID", m.l.Get(i18n.MdAttachedVpc))
		for _, g := range d.InternetGateways {
			it.row(g.Name, code(g.ID), g.VpcID)
		}
	}

	if len(d.NatGateways) > 0 {
		section(b, m.l.Get(i18n.NatGW))
		nt := newTable(b, m.l.Get(i18n.MdName), "ID", m.l.Get(i18n.MdSubnet), m.l.Get(i18n.MdConnectivityType), m.l.Get(i18n.MdAvailabilityMode), m.l.Get(i18n.MdPublicIP), m.l.Get(i18n.MdEIPAllocationID), m.l.Get(i18n.MdState))
		for _, n := range d.NatGateways {
			nt.row(n.Name, code(n.ID), n.SubnetID, m.connectivity(n.ConnectivityType), m.availabilityMode(n.AvailabilityMode), n.PublicIP, n.AllocationID, n.State)
		}
	}

	if len(d.RouteTables) > 0 {
		section(b, m.l.Get(i18n.RouteTables))
		for _, rt := range d.RouteTables {
			title := orID(rt.Name, rt.ID)
			if rt.Main {
				title += " (" + m.l.Get(i18n.MdMainTable) + ")"
			}
			fmt.Fprintf(b, "**%s** `%s`\n\n", title, rt.ID)
			tt := newTable(b, m.l.Get(i18n.MdDestination), m.l.Get(i18n.MdTarget), m.l.Get(i18n.MdState))
			for _, r := range rt.Routes {
				tt.row(r.Destination, r.Target, r.State)
			}
			if len(rt.Associations) > 0 {
				fmt.Fprintf(b, "\n%s %s\n", m.l.Get(i18n.MdAssociatedSubnet), join(rt.Associations))
			}
			b.WriteString("\n")
		}
	}

	if len(d.ElasticIPs) > 0 {
		section(b, m.l.Get(i18n.ElasticIP))
		et := newTable(b, m.l.Get(i18n.MdName), m.l.Get(i18n.MdPublicIP), m.l.Get(i18n.MdEIPAllocationID), "Instance ID", m.l.Get(i18n.MdPrivateIP))
		for _, e := range d.ElasticIPs {
			et.row(e.Name, e.PublicIP, e.AllocationID, e.InstanceID, e.PrivateIP)
		}
	}

	m.tags(b, d.Tags)
}

func (m Markdown) connectivity(v string) string {
	switch strings.ToLower(v) {
	case "public":
		return m.l.Get(i18n.MdPublic)
	case "private":
		return m.l.Get(i18n.MdPrivate)
	}
	return v
}

func (m Markdown) availabilityMode(v string) string {
	switch strings.ToLower(v) {
	case "zonal":
		return m.l.Get(i18n.MdZonal)
	case "regional":
		return m.l.Get(i18n.MdRegional)
	}
	return v
}

// SecurityGroupName returns "name - id", or "NULL - id" when the group has
// no name distinct from its id.
func SecurityGroupName(d *catalog.SecurityGroupDetail) string {
	if d.Name == "" || d.Name == d.ID {
		return "NULL - " + d.ID
	}
	return d.Name + " - " + d.ID
}

func (m Markdown) securityGroup(b *strings.Builder, d *catalog.SecurityGroupDetail) {
	t := m.itemTable(b)
	t.row(m.l.Get(i18n.MdName), SecurityGroupName(d))
	t.row(m.l.Get(i18n.MdDescription), d.Description)
	t.row("VPC ID", d.VpcID)

	m.rules(b, i18n.MdInboundRules, i18n.MdSource, d.InboundRules)
	m.rules(b, i18n.MdOutboundRules, i18n.MdDestination, d.OutboundRules)
}

func (m Markdown) rules(b *strings.Builder, title, peer i18n.Key, rules []catalog.SecurityRule) {
	if len(rules) == 0 {
		return
	}
	section(b, m.l.Get(title))
	t := newTable(b, m.l.Get(i18n.MdProtocol), m.l.Get(i18n.MdPortRange), m.l.Get(peer), m.l.Get(i18n.MdDescription))
	for _, r := range rules {
		t.row(r.Protocol, r.PortRange, r.SourceDest, r.Description)
	}
}

func (m Markdown) loadBalancer(b *strings.Builder, d *catalog.LoadBalancerDetail) {
	t := m.itemTable(b)
	t.row(m.l.Get(i18n.MdName), d.Name)
	t.row(m.l.Get(i18n.MdDNSName), d.DNSName)
	t.row(m.l.Get(i18n.MdType), d.Type)
	t.row(m.l.Get(i18n.MdScheme), d.Scheme)
	t.row("VPC ID", d.VpcID)
	t.row(m.l.Get(i18n.MdIPAddressType), d.IPAddressType)
	t.row(m.l.Get(i18n.MdState), d.State)
	t.row(m.l.Get(i18n.MdAZs), join(d.AvailabilityZones))
	t.row(m.l.Get(i18n.MdSecurityGroups), join(d.SecurityGroups))

	if len(d.Listeners) > 0 {
		section(b, m.l.Get(i18n.MdListeners))
		lt := newTable(b, m.l.Get(i18n.MdProtocol), m.l.Get(i18n.MdPort), m.l.Get(i18n.MdDefaultAction))
		for _, l := range d.Listeners {
			lt.row(l.Protocol, strconv.Itoa(int(l.Port)), l.DefaultAction)
		}
	}

	if len(d.TargetGroups) > 0 {
		section(b, m.l.Get(i18n.MdTargetGroups))
		for _, tg := range d.TargetGroups {
			fmt.Fprintf(b, "**%s**\n\n", tg.Name)
			tt := m.itemTable(b)
			tt.row(m.l.Get(i18n.MdProtocol), tg.Protocol)
			tt.row(m.l.Get(i18n.MdPort), strconv.Itoa(int(tg.Port)))
			tt.row(m.l.Get(i18n.MdTargetType), tg.TargetType)
			tt.row(m.l.Get(i18n.MdHealthCheck), strings.TrimSpace(tg.HealthCheckProtocol+" "+tg.HealthCheckPath))
			tt.row(m.l.Get(i18n.MdHealthy)+" / "+m.l.Get(i18n.MdUnhealthy), fmt.Sprintf("%d / %d", tg.HealthyThreshold, tg.UnhealthyThreshold))
			if len(tg.Targets) > 0 {
				fmt.Fprintf(b, "\n%s\n\n", m.l.Get(i18n.MdTargets))
				for _, target := range tg.Targets {
					fmt.Fprintf(b, "- `%s`:%d (%s)\n", target.ID, target.Port, target.Health)
				}
			}
			b.WriteString("\n")
		}
	}
}

// MutabilityLabel maps the ECR tag mutability setting to a display label.
func MutabilityLabel(v string) string {
	if v == "IMMUTABLE" {
		return "Immutable"
	}
	return "Mutable"
}

// EncryptionLabel describes ECR repository encryption.
func EncryptionLabel(encryptionType, kmsKey string) string {
	if encryptionType != "KMS" {
		return "AES-256"
	}
	if kmsKey == "" {
		return "AWS KMS"
	}
	return "AWS KMS (" + kmsKey + ")"
}

func (m Markdown) ecr(b *strings.Builder, d *catalog.EcrDetail) {
	t := m.itemTable(b)
	t.row(m.l.Get(i18n.MdName), d.Name)
	t.row("URI", d.URI)
	t.row(m.l.Get(i18n.MdTagMutability), MutabilityLabel(d.TagMutability))
	t.row(m.l.Get(i18n.MdEncryption), EncryptionLabel(d.EncryptionType, d.KMSKey))
	t.row(m.l.Get(i18n.MdImageCount), strconv.Itoa(d.ImageCount))
	t.row(m.l.Get(i18n.MdCreatedAt), d.CreatedAt)
}

// TargetGroupName extracts the name segment from a target group ARN.
func TargetGroupName(arn string) string {
	parts := strings.Split(arn, "/")
	if len(parts) > 1 {
		return parts[1]
	}
	return arn
}

func (m Markdown) asg(b *strings.Builder, d *catalog.AsgDetail) {
	t := m.itemTable(b)
	t.row(m.l.Get(i18n.MdName), d.Name)
	switch {
	case d.LaunchTemplateName != "" && d.LaunchTemplateID != "":
		t.row(m.l.Get(i18n.AsgLaunchTemplate), fmt.Sprintf("%s (`%s`)", d.LaunchTemplateName, d.LaunchTemplateID))
	case d.LaunchTemplateName != "":
		t.row(m.l.Get(i18n.AsgLaunchTemplate), d.LaunchTemplateName)
	case d.LaunchConfigName != "":
		t.row(m.l.Get(i18n.AsgLaunchConfig), d.LaunchConfigName)
	}
	t.row(m.l.Get(i18n.AsgMinSize), strconv.Itoa(int(d.MinSize)))
	t.row(m.l.Get(i18n.AsgMaxSize), strconv.Itoa(int(d.MaxSize)))
	t.row(m.l.Get(i18n.AsgDesired), strconv.Itoa(int(d.DesiredCapacity)))
	t.row(m.l.Get(i18n.AsgDefaultCooldown), m.l.Seconds(d.DefaultCooldown))
	t.row(m.l.Get(i18n.AsgHealthCheckType), d.HealthCheckType)
	t.row(m.l.Get(i18n.AsgHealthCheckGrace), m.l.Seconds(d.HealthCheckGracePeriod))
	t.row(m.l.Get(i18n.MdCreatedAt), d.CreatedTime)

	if len(d.AvailabilityZones) > 0 {
		section(b, m.l.Get(i18n.MdAZs))
		for _, az := range d.AvailabilityZones {
			fmt.Fprintf(b, "- %s\n", az)
		}
	}

	if len(d.Instances) > 0 {
		section(b, m.l.CountOf(i18n.AsgInstances, len(d.Instances)))
		it := newTable(b, m.l.Get(i18n.AsgInstanceID))
		for _, id := range d.Instances {
			it.row(code(id))
		}
	}

	if len(d.TargetGroupARNs) > 0 {
		section(b, m.l.Get(i18n.MdTargetGroups))
		for _, arn := range d.TargetGroupARNs {
			fmt.Fprintf(b, "- %s\n", TargetGroupName(arn))
		}
	}

	if len(d.ScalingPolicies) > 0 {
		section(b, m.l.Get(i18n.AsgScalingPolicies))
		pt := newTable(b, m.l.Get(i18n.MdName), m.l.Get(i18n.MdType), m.l.Get(i18n.AsgAdjustmentType), m.l.Get(i18n.AsgAdjustmentValue), m.l.Get(i18n.AsgCooldown))
		for _, p := range d.ScalingPolicies {
			adj, cooldown := "-", "-"
			if p.ScalingAdjustment != nil {
				adj = strconv.Itoa(int(*p.ScalingAdjustment))
			}
			if p.Cooldown != nil {
				cooldown = m.l.Seconds(*p.Cooldown)
			}
			pt.row(p.Name, p.PolicyType, p.AdjustmentType, adj, cooldown)
		}
	}

	m.tags(b, d.Tags)
}

func orID(name, id string) string {
	if name == "" {
		return id
	}
	return name
}
