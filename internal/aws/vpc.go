package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/noelruault/emd/internal/catalog"
)

func vpcFilter(name, vpcID string) []types.Filter {
	return []types.Filter{{Name: aws.String(name), Values: []string{vpcID}}}
}

// ListVpcs retrieves all VPCs in the region
func (c *Client) ListVpcs(ctx context.Context) ([]catalog.AwsResource, error) {
	var vpcs []catalog.AwsResource
	paginator := ec2.NewDescribeVpcsPaginator(c.EC2, &ec2.DescribeVpcsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe vpcs: %w", err)
		}
		for _, v := range page.Vpcs {
			vpcs = append(vpcs, catalog.AwsResource{
				Name:  getNameTag(v.Tags),
				ID:    getString(v.VpcId),
				State: string(v.State),
				CIDR:  getString(v.CidrBlock),
			})
		}
	}
	return vpcs, nil
}

// GetNetworkStep runs one sub-fetch of the network detail for vpcID.
func (c *Client) GetNetworkStep(ctx context.Context, vpcID string, step catalog.NetworkStep) (catalog.NetworkPartial, error) {
	p := catalog.NetworkPartial{Step: step}
	var err error
	switch step {
	case catalog.StepVpcInfo:
		p.Info, err = c.getVpcInfo(ctx, vpcID)
	case catalog.StepSubnets:
		p.Subnets, err = c.getSubnets(ctx, vpcID)
	case catalog.StepInternetGateways:
		p.InternetGateways, err = c.getInternetGateways(ctx, vpcID)
	case catalog.StepNatGateways:
		p.NatGateways, err = c.getNatGateways(ctx, vpcID)
	case catalog.StepRouteTables:
		p.RouteTables, err = c.getRouteTables(ctx, vpcID)
	case catalog.StepElasticIPs:
		p.ElasticIPs, err = c.getElasticIPs(ctx, vpcID)
	case catalog.StepDNSAttributes:
		p.DNS, err = c.getDNSAttributes(ctx, vpcID)
	default:
		err = fmt.Errorf("unknown network step %d", int(step))
	}
	return p, err
}

func (c *Client) getVpcInfo(ctx context.Context, vpcID string) (*catalog.VpcInfo, error) {
	out, err := c.EC2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{VpcIds: []string{vpcID}})
	if err != nil {
		return nil, fmt.Errorf("failed to describe vpc: %w", err)
	}
	if len(out.Vpcs) == 0 {
		return nil, fmt.Errorf("vpc %s not found", vpcID)
	}
	v := out.Vpcs[0]
	return &catalog.VpcInfo{
		Name:  getNameTag(v.Tags),
		ID:    getString(v.VpcId),
		CIDR:  getString(v.CidrBlock),
		State: string(v.State),
		Tags:  convertTags(v.Tags),
	}, nil
}

func (c *Client) getSubnets(ctx context.Context, vpcID string) ([]catalog.SubnetDetail, error) {
	var subnets []catalog.SubnetDetail
	paginator := ec2.NewDescribeSubnetsPaginator(c.EC2, &ec2.DescribeSubnetsInput{Filters: vpcFilter("vpc-id", vpcID)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe subnets: %w", err)
		}
		for _, s := range page.Subnets {
			subnets = append(subnets, catalog.SubnetDetail{
				Name:      getNameTag(s.Tags),
				ID:        getString(s.SubnetId),
				CIDR:      getString(s.CidrBlock),
				AZ:        getString(s.AvailabilityZone),
				Public:    getBool(s.MapPublicIpOnLaunch),
				Available: getInt32(s.AvailableIpAddressCount),
			})
		}
	}
	sort.SliceStable(subnets, func(i, j int) bool {
		if subnets[i].AZ != subnets[j].AZ {
			return subnets[i].AZ < subnets[j].AZ
		}
		return subnets[i].CIDR < subnets[j].CIDR
	})
	return subnets, nil
}

func (c *Client) getInternetGateways(ctx context.Context, vpcID string) ([]catalog.InternetGatewayDetail, error) {
	out, err := c.EC2.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{
		Filters: vpcFilter("attachment.vpc-id", vpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe internet gateways: %w", err)
	}
	var igws []catalog.InternetGatewayDetail
	for _, g := range out.InternetGateways {
		igw := catalog.InternetGatewayDetail{
			Name: getNameTag(g.Tags),
			ID:   getString(g.InternetGatewayId),
		}
		for _, a := range g.Attachments {
			if getString(a.VpcId) == vpcID {
				igw.VpcID = vpcID
			}
		}
		igws = append(igws, igw)
	}
	return igws, nil
}

func (c *Client) getNatGateways(ctx context.Context, vpcID string) ([]catalog.NatDetail, error) {
	var nats []catalog.NatDetail
	paginator := ec2.NewDescribeNatGatewaysPaginator(c.EC2, &ec2.DescribeNatGatewaysInput{Filter: vpcFilter("vpc-id", vpcID)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe nat gateways: %w", err)
		}
		for _, n := range page.NatGateways {
			if n.State == types.NatGatewayStateDeleted {
				continue
			}
			nat := catalog.NatDetail{
				Name:             getNameTag(n.Tags),
				ID:               getString(n.NatGatewayId),
				State:            string(n.State),
				ConnectivityType: string(n.ConnectivityType),
				SubnetID:         getString(n.SubnetId),
				Tags:             convertTags(n.Tags),
			}
			// Zonal gateways live in a subnet; regional ones do not.
			if nat.SubnetID != "" {
				nat.AvailabilityMode = "zonal"
			} else {
				nat.AvailabilityMode = "regional"
			}
			if len(n.NatGatewayAddresses) > 0 {
				nat.PublicIP = getString(n.NatGatewayAddresses[0].PublicIp)
				nat.AllocationID = getString(n.NatGatewayAddresses[0].AllocationId)
			}
			nats = append(nats, nat)
		}
	}
	return nats, nil
}

func (c *Client) getRouteTables(ctx context.Context, vpcID string) ([]catalog.RouteTableDetail, error) {
	var tables []catalog.RouteTableDetail
	paginator := ec2.NewDescribeRouteTablesPaginator(c.EC2, &ec2.DescribeRouteTablesInput{Filters: vpcFilter("vpc-id", vpcID)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe route tables: %w", err)
		}
		for _, rt := range page.RouteTables {
			table := catalog.RouteTableDetail{
				Name: getNameTag(rt.Tags),
				ID:   getString(rt.RouteTableId),
			}
			for _, a := range rt.Associations {
				if getBool(a.Main) {
					table.Main = true
				}
				if a.SubnetId != nil {
					table.Associations = append(table.Associations, *a.SubnetId)
				}
			}
			for _, r := range rt.Routes {
				table.Routes = append(table.Routes, convertRoute(r))
			}
			tables = append(tables, table)
		}
	}
	return tables, nil
}

func convertRoute(r types.Route) catalog.RouteDetail {
	dest := getString(r.DestinationCidrBlock)
	if dest == "" {
		dest = getString(r.DestinationIpv6CidrBlock)
	}
	if dest == "" {
		dest = getString(r.DestinationPrefixListId)
	}

	target := ""
	for _, t := range []*string{r.GatewayId, r.NatGatewayId, r.TransitGatewayId, r.VpcPeeringConnectionId, r.NetworkInterfaceId, r.InstanceId} {
		if t != nil && *t != "" {
			target = *t
			break
		}
	}
	return catalog.RouteDetail{Destination: dest, Target: target, State: string(r.State)}
}

// getElasticIPs lists addresses whose network interface sits in vpcID.
func (c *Client) getElasticIPs(ctx context.Context, vpcID string) ([]catalog.EipDetail, error) {
	out, err := c.EC2.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{
		Filters: []types.Filter{{Name: aws.String("domain"), Values: []string{"vpc"}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe addresses: %w", err)
	}

	var enis []string
	for _, a := range out.Addresses {
		if a.NetworkInterfaceId != nil {
			enis = append(enis, *a.NetworkInterfaceId)
		}
	}
	inVpc := make(map[string]bool)
	if len(enis) > 0 {
		niOut, err := c.EC2.DescribeNetworkInterfaces(ctx, &ec2.DescribeNetworkInterfacesInput{
			NetworkInterfaceIds: enis,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe network interfaces: %w", err)
		}
		for _, ni := range niOut.NetworkInterfaces {
			if getString(ni.VpcId) == vpcID {
				inVpc[getString(ni.NetworkInterfaceId)] = true
			}
		}
	}

	var eips []catalog.EipDetail
	for _, a := range out.Addresses {
		if !inVpc[getString(a.NetworkInterfaceId)] {
			continue
		}
		eips = append(eips, catalog.EipDetail{
			Name:         getNameTag(a.Tags),
			PublicIP:     getString(a.PublicIp),
			AllocationID: getString(a.AllocationId),
			InstanceID:   getString(a.InstanceId),
			PrivateIP:    getString(a.PrivateIpAddress),
		})
	}
	return eips, nil
}

func (c *Client) getDNSAttributes(ctx context.Context, vpcID string) (*catalog.DNSAttributes, error) {
	support, err := c.EC2.DescribeVpcAttribute(ctx, &ec2.DescribeVpcAttributeInput{
		VpcId:     aws.String(vpcID),
		Attribute: types.VpcAttributeNameEnableDnsSupport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe dns support: %w", err)
	}
	hostnames, err := c.EC2.DescribeVpcAttribute(ctx, &ec2.DescribeVpcAttributeInput{
		VpcId:     aws.String(vpcID),
		Attribute: types.VpcAttributeNameEnableDnsHostnames,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe dns hostnames: %w", err)
	}

	attrs := &catalog.DNSAttributes{}
	if support.EnableDnsSupport != nil {
		attrs.Support = getBool(support.EnableDnsSupport.Value)
	}
	if hostnames.EnableDnsHostnames != nil {
		attrs.Hostnames = getBool(hostnames.EnableDnsHostnames.Value)
	}
	return attrs, nil
}
