package aws

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/noelruault/emd/internal/catalog"
)

// ListInstances retrieves all EC2 instances
func (c *Client) ListInstances(ctx context.Context) ([]catalog.AwsResource, error) {
	var instances []catalog.AwsResource
	paginator := ec2.NewDescribeInstancesPaginator(c.EC2, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				r := catalog.AwsResource{
					ID:   getString(inst.InstanceId),
					Name: getNameTag(inst.Tags),
				}
				if inst.State != nil {
					r.State = string(inst.State.Name)
				}
				if inst.Placement != nil {
					r.AZ = getString(inst.Placement.AvailabilityZone)
				}
				instances = append(instances, r)
			}
		}
	}

	sort.SliceStable(instances, func(i, j int) bool { return instances[i].Name < instances[j].Name })
	return instances, nil
}

// getNameTag extracts the Name tag from EC2 tags
func getNameTag(tags []types.Tag) string {
	for _, tag := range tags {
		if tag.Key != nil && *tag.Key == "Name" && tag.Value != nil {
			return *tag.Value
		}
	}
	return ""
}

func convertTags(tags []types.Tag) []catalog.Tag {
	var out []catalog.Tag
	for _, tag := range tags {
		out = append(out, catalog.Tag{Key: getString(tag.Key), Value: getString(tag.Value)})
	}
	return out
}

// getString safely dereferences a string pointer
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func getInt32(v *int32) int32 {
	if v == nil {
		return 0
	}
	return *v
}

func getBool(v *bool) bool {
	return v != nil && *v
}

// GetInstanceDetails retrieves detailed information for a specific EC2 instance
func (c *Client) GetInstanceDetails(ctx context.Context, instanceID string) (*catalog.Ec2Detail, error) {
	result, err := c.EC2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instance: %w", err)
	}

	if len(result.Reservations) == 0 || len(result.Reservations[0].Instances) == 0 {
		return nil, fmt.Errorf("instance %s not found", instanceID)
	}

	inst := result.Reservations[0].Instances[0]

	details := &catalog.Ec2Detail{
		Name:         getNameTag(inst.Tags),
		InstanceID:   getString(inst.InstanceId),
		InstanceType: string(inst.InstanceType),
		AMI:          getString(inst.ImageId),
		Platform:     getString(inst.PlatformDetails),
		Architecture: string(inst.Architecture),
		KeyPair:      getString(inst.KeyName),
		VpcID:        getString(inst.VpcId),
		SubnetID:     getString(inst.SubnetId),
		PublicIP:     getString(inst.PublicIpAddress),
		PrivateIP:    getString(inst.PrivateIpAddress),
		EBSOptimized: getBool(inst.EbsOptimized),
		Tags:         convertTags(inst.Tags),
	}
	if inst.State != nil {
		details.State = string(inst.State.Name)
	}
	if inst.Placement != nil {
		details.AZ = getString(inst.Placement.AvailabilityZone)
	}

	// Launch time
	if inst.LaunchTime != nil {
		details.LaunchTime = inst.LaunchTime.Format("2006-01-02 15:04:05")
	}

	// Monitoring
	if inst.Monitoring != nil {
		details.Monitoring = string(inst.Monitoring.State)
	}

	// Security Groups
	for _, sg := range inst.SecurityGroups {
		name := getString(sg.GroupName)
		id := getString(sg.GroupId)
		if name != "" {
			details.SecurityGroups = append(details.SecurityGroups, fmt.Sprintf("%s (%s)", name, id))
		} else {
			details.SecurityGroups = append(details.SecurityGroups, id)
		}
	}

	// Block Devices
	var volumeIDs []string
	for _, bd := range inst.BlockDeviceMappings {
		v := catalog.VolumeDetail{DeviceName: getString(bd.DeviceName)}
		if bd.Ebs != nil {
			v.VolumeID = getString(bd.Ebs.VolumeId)
			v.DeleteOnTermination = getBool(bd.Ebs.DeleteOnTermination)
			if v.VolumeID != "" {
				volumeIDs = append(volumeIDs, v.VolumeID)
			}
		}
		details.Volumes = append(details.Volumes, v)
	}
	if len(volumeIDs) > 0 {
		volResult, err := c.EC2.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{VolumeIds: volumeIDs})
		if err != nil {
			return nil, fmt.Errorf("failed to describe volumes: %w", err)
		}
		byID := make(map[string]types.Volume, len(volResult.Volumes))
		for _, vol := range volResult.Volumes {
			byID[getString(vol.VolumeId)] = vol
		}
		for i, v := range details.Volumes {
			vol, ok := byID[v.VolumeID]
			if !ok {
				continue
			}
			details.Volumes[i].SizeGiB = getInt32(vol.Size)
			details.Volumes[i].VolumeType = string(vol.VolumeType)
			details.Volumes[i].IOPS = getInt32(vol.Iops)
			details.Volumes[i].Encrypted = getBool(vol.Encrypted)
		}
	}

	// IAM Instance Profile. Without iam:GetInstanceProfile the profile name
	// stands in for the role.
	if inst.IamInstanceProfile != nil {
		arn := getString(inst.IamInstanceProfile.Arn)
		details.IAMRole = instanceProfileName(arn)
		role, err := c.GetInstanceProfileRole(ctx, details.IAMRole)
		if err != nil {
			c.logger.Warn().Err(err).Str("instance", instanceID).Msg("resolve instance role")
		}
		if err == nil && role != nil {
			details.IAMRole = role.Name
			details.IAMRoleDetail = role
		}
	}

	userData, err := c.EC2.DescribeInstanceAttribute(ctx, &ec2.DescribeInstanceAttributeInput{
		InstanceId: aws.String(instanceID),
		Attribute:  types.InstanceAttributeNameUserData,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe user data: %w", err)
	}
	if userData.UserData != nil && userData.UserData.Value != nil {
		if decoded, err := base64.StdEncoding.DecodeString(*userData.UserData.Value); err == nil {
			details.UserData = string(decoded)
		}
	}

	return details, nil
}
