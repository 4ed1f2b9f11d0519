package aws

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbTypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/noelruault/emd/internal/catalog"
)

// ListLoadBalancers retrieves application and network load balancers.
// The ARN is the resource id.
func (c *Client) ListLoadBalancers(ctx context.Context) ([]catalog.AwsResource, error) {
	var lbs []catalog.AwsResource
	paginator := elbv2.NewDescribeLoadBalancersPaginator(c.ELB, &elbv2.DescribeLoadBalancersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe load balancers: %w", err)
		}
		for _, lb := range page.LoadBalancers {
			r := catalog.AwsResource{
				Name: getString(lb.LoadBalancerName),
				ID:   getString(lb.LoadBalancerArn),
			}
			if lb.State != nil {
				r.State = string(lb.State.Code)
			}
			lbs = append(lbs, r)
		}
	}
	sort.SliceStable(lbs, func(i, j int) bool { return lbs[i].Name < lbs[j].Name })
	return lbs, nil
}

// GetLoadBalancerDetails retrieves listeners, target groups and target health
func (c *Client) GetLoadBalancerDetails(ctx context.Context, arn string) (*catalog.LoadBalancerDetail, error) {
	out, err := c.ELB.DescribeLoadBalancers(ctx, &elbv2.DescribeLoadBalancersInput{
		LoadBalancerArns: []string{arn},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe load balancer: %w", err)
	}
	if len(out.LoadBalancers) == 0 {
		return nil, fmt.Errorf("load balancer %s not found", arn)
	}

	lb := out.LoadBalancers[0]
	detail := &catalog.LoadBalancerDetail{
		Name:           getString(lb.LoadBalancerName),
		ARN:            getString(lb.LoadBalancerArn),
		DNSName:        getString(lb.DNSName),
		Type:           string(lb.Type),
		Scheme:         string(lb.Scheme),
		VpcID:          getString(lb.VpcId),
		IPAddressType:  string(lb.IpAddressType),
		SecurityGroups: lb.SecurityGroups,
	}
	if lb.State != nil {
		detail.State = string(lb.State.Code)
	}
	for _, az := range lb.AvailabilityZones {
		detail.AvailabilityZones = append(detail.AvailabilityZones, getString(az.ZoneName))
	}

	tgNames := make(map[string]string)
	tgs, err := c.ELB.DescribeTargetGroups(ctx, &elbv2.DescribeTargetGroupsInput{
		LoadBalancerArn: aws.String(arn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe target groups: %w", err)
	}
	for _, tg := range tgs.TargetGroups {
		info := catalog.TargetGroupInfo{
			Name:                getString(tg.TargetGroupName),
			ARN:                 getString(tg.TargetGroupArn),
			Protocol:            string(tg.Protocol),
			Port:                getInt32(tg.Port),
			TargetType:          string(tg.TargetType),
			HealthCheckProtocol: string(tg.HealthCheckProtocol),
			HealthCheckPath:     getString(tg.HealthCheckPath),
			HealthyThreshold:    getInt32(tg.HealthyThresholdCount),
			UnhealthyThreshold:  getInt32(tg.UnhealthyThresholdCount),
		}
		tgNames[info.ARN] = info.Name

		health, err := c.ELB.DescribeTargetHealth(ctx, &elbv2.DescribeTargetHealthInput{
			TargetGroupArn: tg.TargetGroupArn,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe target health: %w", err)
		}
		for _, h := range health.TargetHealthDescriptions {
			target := catalog.TargetInfo{}
			if h.Target != nil {
				target.ID = getString(h.Target.Id)
				target.Port = getInt32(h.Target.Port)
			}
			if h.TargetHealth != nil {
				target.Health = string(h.TargetHealth.State)
			}
			info.Targets = append(info.Targets, target)
		}
		detail.TargetGroups = append(detail.TargetGroups, info)
	}

	listeners := elbv2.NewDescribeListenersPaginator(c.ELB, &elbv2.DescribeListenersInput{
		LoadBalancerArn: aws.String(arn),
	})
	for listeners.HasMorePages() {
		page, err := listeners.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe listeners: %w", err)
		}
		for _, l := range page.Listeners {
			detail.Listeners = append(detail.Listeners, catalog.ListenerDetail{
				Port:          getInt32(l.Port),
				Protocol:      string(l.Protocol),
				DefaultAction: describeActions(l.DefaultActions, tgNames),
			})
		}
	}
	sort.SliceStable(detail.Listeners, func(i, j int) bool { return detail.Listeners[i].Port < detail.Listeners[j].Port })

	return detail, nil
}

// describeActions renders listener actions as "forward: tg-name" style text.
func describeActions(actions []elbTypes.Action, tgNames map[string]string) string {
	var parts []string
	for _, a := range actions {
		s := string(a.Type)
		switch {
		case a.TargetGroupArn != nil:
			name := tgNames[*a.TargetGroupArn]
			if name == "" {
				name = *a.TargetGroupArn
			}
			s += ": " + name
		case a.RedirectConfig != nil:
			s += ": " + getString(a.RedirectConfig.Protocol) + ":" + getString(a.RedirectConfig.Port)
		case a.FixedResponseConfig != nil:
			s += ": " + getString(a.FixedResponseConfig.StatusCode)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
