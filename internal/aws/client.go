package aws

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"
)

// Client wraps AWS service clients for one region
type Client struct {
	EC2         *ec2.Client
	ECR         *ecr.Client
	ELB         *elbv2.Client
	AutoScaling *autoscaling.Client
	IAM         iamAPI
	STS         *sts.Client
	S3          *s3.Client
	Region      string

	logger zerolog.Logger
}

// NewClient creates a new AWS client for region. With an empty profile the
// static keys of the [default] shared profile are used directly when present,
// so a stale SSO session in the shared config does not shadow them.
func NewClient(ctx context.Context, region, profile string) (*Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	} else if creds, ok := defaultStaticCredentials(ctx); ok {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		EC2:         ec2.NewFromConfig(cfg),
		ECR:         ecr.NewFromConfig(cfg),
		ELB:         elbv2.NewFromConfig(cfg),
		AutoScaling: autoscaling.NewFromConfig(cfg),
		IAM:         iam.NewFromConfig(cfg),
		STS:         sts.NewFromConfig(cfg),
		S3:          s3.NewFromConfig(cfg),
		Region:      cfg.Region,
	}, nil
}

// defaultStaticCredentials returns the keys of the [default] shared profile,
// session token included. Profiles without static keys report false and
// leave credential resolution to the SDK's default chain.
func defaultStaticCredentials(ctx context.Context) (aws.Credentials, bool) {
	var opts []func(*config.LoadSharedConfigOptions)
	if path := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); path != "" {
		opts = append(opts, func(o *config.LoadSharedConfigOptions) { o.CredentialsFiles = []string{path} })
	}
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		opts = append(opts, func(o *config.LoadSharedConfigOptions) { o.ConfigFiles = []string{path} })
	}

	sc, err := config.LoadSharedConfigProfile(ctx, "default", opts...)
	if err != nil || !sc.Credentials.HasKeys() {
		return aws.Credentials{}, false
	}
	return sc.Credentials, true
}
