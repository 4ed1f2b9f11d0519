package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Identity is the caller identity behind the active credentials.
type Identity struct {
	Account string
	ARN     string
	UserID  string
}

func (i Identity) String() string {
	return fmt.Sprintf("%s (%s)", i.Account, i.ARN)
}

// GetCallerIdentity verifies the credentials with STS
func (c *Client) GetCallerIdentity(ctx context.Context) (Identity, error) {
	out, err := c.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, fmt.Errorf("get caller identity: %w", err)
	}
	return Identity{
		Account: getString(out.Account),
		ARN:     getString(out.Arn),
		UserID:  getString(out.UserId),
	}, nil
}
