package aws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/noelruault/emd/internal/catalog"
)

// iamAPI is the part of the IAM client used to resolve instance roles.
type iamAPI interface {
	GetInstanceProfile(ctx context.Context, in *iam.GetInstanceProfileInput, optFns ...func(*iam.Options)) (*iam.GetInstanceProfileOutput, error)
	GetRolePolicy(ctx context.Context, in *iam.GetRolePolicyInput, optFns ...func(*iam.Options)) (*iam.GetRolePolicyOutput, error)
	iam.ListAttachedRolePoliciesAPIClient
	iam.ListRolePoliciesAPIClient
}

// instanceProfileName takes the last path segment of an instance profile ARN.
func instanceProfileName(arn string) string {
	if i := strings.LastIndex(arn, "/"); i >= 0 {
		return arn[i+1:]
	}
	return arn
}

// decodePolicy undoes the URL encoding IAM applies to policy documents and
// indents the JSON. Undecodable documents come back as they are.
func decodePolicy(doc string) string {
	decoded, err := url.QueryUnescape(doc)
	if err != nil {
		return doc
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(decoded), "", "  "); err != nil {
		return decoded
	}
	return buf.String()
}

// GetInstanceProfileRole resolves the first role of an instance profile
// with its attached and inline policies. A profile without roles yields nil.
// Policy listings are best-effort: a denied listing leaves that part empty
// and an inline policy whose document cannot be read is skipped.
func (c *Client) GetInstanceProfileRole(ctx context.Context, profileName string) (*catalog.IAMRoleDetail, error) {
	if profileName == "" {
		return nil, nil
	}
	out, err := c.IAM.GetInstanceProfile(ctx, &iam.GetInstanceProfileInput{
		InstanceProfileName: aws.String(profileName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get instance profile %s: %w", profileName, err)
	}
	if out.InstanceProfile == nil || len(out.InstanceProfile.Roles) == 0 {
		return nil, nil
	}

	role := out.InstanceProfile.Roles[0]
	detail := &catalog.IAMRoleDetail{
		Name:             getString(role.RoleName),
		ARN:              getString(role.Arn),
		AssumeRolePolicy: decodePolicy(getString(role.AssumeRolePolicyDocument)),
	}

	attached := iam.NewListAttachedRolePoliciesPaginator(c.IAM, &iam.ListAttachedRolePoliciesInput{RoleName: role.RoleName})
	for attached.HasMorePages() {
		page, err := attached.NextPage(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Str("role", detail.Name).Msg("list attached role policies")
			break
		}
		for _, p := range page.AttachedPolicies {
			detail.AttachedPolicies = append(detail.AttachedPolicies, catalog.AttachedPolicy{
				Name: getString(p.PolicyName),
				ARN:  getString(p.PolicyArn),
			})
		}
	}

	inline := iam.NewListRolePoliciesPaginator(c.IAM, &iam.ListRolePoliciesInput{RoleName: role.RoleName})
	for inline.HasMorePages() {
		page, err := inline.NextPage(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Str("role", detail.Name).Msg("list inline role policies")
			break
		}
		for _, name := range page.PolicyNames {
			doc, err := c.IAM.GetRolePolicy(ctx, &iam.GetRolePolicyInput{
				RoleName:   role.RoleName,
				PolicyName: aws.String(name),
			})
			if err != nil {
				c.logger.Warn().Err(err).Str("role", detail.Name).Str("policy", name).Msg("get inline role policy")
				continue
			}
			detail.InlinePolicies = append(detail.InlinePolicies, catalog.InlinePolicy{
				Name:     name,
				Document: decodePolicy(getString(doc.PolicyDocument)),
			})
		}
	}

	return detail, nil
}
