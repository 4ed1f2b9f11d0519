package aws

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrTypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"

	"github.com/noelruault/emd/internal/catalog"
)

// withDefaultTimeout bounds ctx when the caller set no deadline.
func withDefaultTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// ListRepositories returns the ECR repositories of the region.
func (c *Client) ListRepositories(ctx context.Context) ([]catalog.AwsResource, error) {
	if c.ECR == nil {
		return nil, fmt.Errorf("ECR client not initialized")
	}
	ctx, cancel := withDefaultTimeout(ctx, 15*time.Second)
	defer cancel()

	var repos []catalog.AwsResource
	var nextToken *string
	for {
		out, err := c.ECR.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("describe repositories: %w", err)
		}
		for _, r := range out.Repositories {
			name := getString(r.RepositoryName)
			repos = append(repos, catalog.AwsResource{Name: name, ID: name})
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	sort.SliceStable(repos, func(i, j int) bool { return repos[i].Name < repos[j].Name })
	return repos, nil
}

// GetRepositoryDetails describes one repository and counts its images.
func (c *Client) GetRepositoryDetails(ctx context.Context, name string) (*catalog.EcrDetail, error) {
	if c.ECR == nil {
		return nil, fmt.Errorf("ECR client not initialized")
	}
	ctx, cancel := withDefaultTimeout(ctx, 15*time.Second)
	defer cancel()

	out, err := c.ECR.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{
		RepositoryNames: []string{name},
	})
	if err != nil {
		return nil, fmt.Errorf("describe repository: %w", err)
	}
	if len(out.Repositories) == 0 {
		return nil, fmt.Errorf("repository %s not found", name)
	}

	detail := convertRepository(out.Repositories[0])

	count, err := c.countImages(ctx, name)
	if err != nil {
		return nil, err
	}
	detail.ImageCount = count
	return detail, nil
}

func convertRepository(r ecrTypes.Repository) *catalog.EcrDetail {
	d := &catalog.EcrDetail{
		Name:          getString(r.RepositoryName),
		URI:           getString(r.RepositoryUri),
		TagMutability: string(r.ImageTagMutability),
		CreatedAt:     "-",
	}
	if r.CreatedAt != nil {
		d.CreatedAt = r.CreatedAt.Format("2006-01-02")
	}
	if r.EncryptionConfiguration != nil {
		d.EncryptionType = string(r.EncryptionConfiguration.EncryptionType)
		d.KMSKey = getString(r.EncryptionConfiguration.KmsKey)
	}
	return d
}

func (c *Client) countImages(ctx context.Context, repoName string) (int, error) {
	count := 0
	var nextToken *string
	for {
		out, err := c.ECR.ListImages(ctx, &ecr.ListImagesInput{
			RepositoryName: aws.String(repoName),
			NextToken:      nextToken,
		})
		if err != nil {
			return 0, fmt.Errorf("list images: %w", err)
		}
		count += len(out.ImageIds)
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return count, nil
}
