package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgTypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/noelruault/emd/internal/catalog"
)

// ListAutoScalingGroups retrieves all auto scaling groups in the region
func (c *Client) ListAutoScalingGroups(ctx context.Context) ([]catalog.AwsResource, error) {
	var groups []catalog.AwsResource
	paginator := autoscaling.NewDescribeAutoScalingGroupsPaginator(c.AutoScaling, &autoscaling.DescribeAutoScalingGroupsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe auto scaling groups: %w", err)
		}
		for _, g := range page.AutoScalingGroups {
			name := getString(g.AutoScalingGroupName)
			groups = append(groups, catalog.AwsResource{
				Name:  name,
				ID:    name,
				State: fmt.Sprintf("%d/%d/%d", getInt32(g.MinSize), getInt32(g.DesiredCapacity), getInt32(g.MaxSize)),
			})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups, nil
}

// GetAutoScalingGroupDetails retrieves one group and its scaling policies
func (c *Client) GetAutoScalingGroupDetails(ctx context.Context, name string) (*catalog.AsgDetail, error) {
	out, err := c.AutoScaling.DescribeAutoScalingGroups(ctx, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{name},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe auto scaling group: %w", err)
	}
	if len(out.AutoScalingGroups) == 0 {
		return nil, fmt.Errorf("auto scaling group %s not found", name)
	}

	detail := convertAutoScalingGroup(out.AutoScalingGroups[0])

	paginator := autoscaling.NewDescribePoliciesPaginator(c.AutoScaling, &autoscaling.DescribePoliciesInput{
		AutoScalingGroupName: aws.String(name),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe scaling policies: %w", err)
		}
		for _, p := range page.ScalingPolicies {
			detail.ScalingPolicies = append(detail.ScalingPolicies, catalog.ScalingPolicy{
				Name:              getString(p.PolicyName),
				PolicyType:        getString(p.PolicyType),
				AdjustmentType:    getString(p.AdjustmentType),
				ScalingAdjustment: p.ScalingAdjustment,
				Cooldown:          p.Cooldown,
			})
		}
	}
	return detail, nil
}

func convertAutoScalingGroup(g asgTypes.AutoScalingGroup) *catalog.AsgDetail {
	d := &catalog.AsgDetail{
		Name:                   getString(g.AutoScalingGroupName),
		ARN:                    getString(g.AutoScalingGroupARN),
		LaunchConfigName:       getString(g.LaunchConfigurationName),
		MinSize:                getInt32(g.MinSize),
		MaxSize:                getInt32(g.MaxSize),
		DesiredCapacity:        getInt32(g.DesiredCapacity),
		DefaultCooldown:        getInt32(g.DefaultCooldown),
		AvailabilityZones:      g.AvailabilityZones,
		TargetGroupARNs:        g.TargetGroupARNs,
		HealthCheckType:        getString(g.HealthCheckType),
		HealthCheckGracePeriod: getInt32(g.HealthCheckGracePeriod),
	}

	lt := g.LaunchTemplate
	if lt == nil && g.MixedInstancesPolicy != nil && g.MixedInstancesPolicy.LaunchTemplate != nil {
		lt = g.MixedInstancesPolicy.LaunchTemplate.LaunchTemplateSpecification
	}
	if lt != nil {
		d.LaunchTemplateName = getString(lt.LaunchTemplateName)
		d.LaunchTemplateID = getString(lt.LaunchTemplateId)
	}

	for _, inst := range g.Instances {
		d.Instances = append(d.Instances, getString(inst.InstanceId))
	}
	if g.CreatedTime != nil {
		d.CreatedTime = g.CreatedTime.Format("2006-01-02 15:04:05")
	}
	for _, t := range g.Tags {
		d.Tags = append(d.Tags, catalog.Tag{Key: getString(t.Key), Value: getString(t.Value)})
	}
	return d
}
