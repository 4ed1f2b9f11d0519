package aws

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/noelruault/emd/internal/catalog"
)

// ListSecurityGroups retrieves all security groups in the region
func (c *Client) ListSecurityGroups(ctx context.Context) ([]catalog.AwsResource, error) {
	var groups []catalog.AwsResource
	paginator := ec2.NewDescribeSecurityGroupsPaginator(c.EC2, &ec2.DescribeSecurityGroupsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe security groups: %w", err)
		}
		for _, sg := range page.SecurityGroups {
			groups = append(groups, catalog.AwsResource{
				Name: securityGroupName(sg),
				ID:   getString(sg.GroupId),
			})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups, nil
}

// securityGroupName prefers the Name tag over the group name.
func securityGroupName(sg types.SecurityGroup) string {
	if name := getNameTag(sg.Tags); name != "" {
		return name
	}
	return getString(sg.GroupName)
}

// GetSecurityGroupDetails retrieves the rules of one security group
func (c *Client) GetSecurityGroupDetails(ctx context.Context, groupID string) (*catalog.SecurityGroupDetail, error) {
	out, err := c.EC2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		GroupIds: []string{groupID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe security group: %w", err)
	}
	if len(out.SecurityGroups) == 0 {
		return nil, fmt.Errorf("security group %s not found", groupID)
	}

	sg := out.SecurityGroups[0]
	return &catalog.SecurityGroupDetail{
		Name:          securityGroupName(sg),
		ID:            getString(sg.GroupId),
		Description:   getString(sg.Description),
		VpcID:         getString(sg.VpcId),
		InboundRules:  securityRules(sg.IpPermissions),
		OutboundRules: securityRules(sg.IpPermissionsEgress),
	}, nil
}

// securityRules flattens permissions into one row per source or destination.
func securityRules(perms []types.IpPermission) []catalog.SecurityRule {
	var rules []catalog.SecurityRule
	for _, p := range perms {
		protocol := ruleProtocol(getString(p.IpProtocol))
		ports := rulePortRange(protocol, p.FromPort, p.ToPort)
		add := func(source string, desc *string) {
			d := getString(desc)
			if d == "" {
				d = "-"
			}
			rules = append(rules, catalog.SecurityRule{
				Protocol:    protocol,
				PortRange:   ports,
				SourceDest:  source,
				Description: d,
			})
		}

		for _, r := range p.IpRanges {
			add(getString(r.CidrIp), r.Description)
		}
		for _, r := range p.Ipv6Ranges {
			add(getString(r.CidrIpv6), r.Description)
		}
		for _, pair := range p.UserIdGroupPairs {
			add("sg: "+getString(pair.GroupId), pair.Description)
		}
		for _, pl := range p.PrefixListIds {
			add(getString(pl.PrefixListId), pl.Description)
		}
	}
	return rules
}

func ruleProtocol(proto string) string {
	if proto == "-1" {
		return "All"
	}
	return strings.ToUpper(proto)
}

func rulePortRange(protocol string, from, to *int32) string {
	if protocol == "All" || from == nil || to == nil {
		return "All"
	}
	if *from == *to {
		return fmt.Sprintf("%d", *from)
	}
	return fmt.Sprintf("%d-%d", *from, *to)
}
