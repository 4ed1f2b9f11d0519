package aws

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/errs"
)

// Provider fetches resource lists and details for any region. Service
// clients are built lazily, once per region, and shared by every call.
type Provider struct {
	profile   string
	logger    zerolog.Logger
	newClient func(ctx context.Context, region, profile string) (*Client, error)

	mu      sync.Mutex
	clients map[string]*Client
}

// NewProvider creates a provider using the given shared config profile
// (empty for the default credential chain).
func NewProvider(profile string, logger zerolog.Logger) *Provider {
	return &Provider{
		profile:   profile,
		logger:    logger.With().Str("component", "aws").Logger(),
		newClient: NewClient,
		clients:   make(map[string]*Client),
	}
}

func (p *Provider) client(ctx context.Context, region string) (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.clients[region]; ok {
		return c, nil
	}
	c, err := p.newClient(ctx, region, p.profile)
	if err != nil {
		return nil, fmt.Errorf("load aws config for %s: %w", region, err)
	}
	c.logger = p.logger.With().Str("region", region).Logger()
	p.clients[region] = c
	return c, nil
}

// call logs the start and end of one provider operation.
func (p *Provider) call(region, op string, fn func() error) error {
	start := time.Now()
	p.logger.Debug().Str("region", region).Str("op", op).Msg("start")
	err := fn()
	var ev *zerolog.Event
	if err != nil {
		ev = p.logger.Warn().Err(err)
	} else {
		ev = p.logger.Debug()
	}
	ev.Str("region", region).Str("op", op).Dur("duration", time.Since(start)).Msg("end")
	return err
}

// List returns the resources of one kind in region.
func (p *Provider) List(ctx context.Context, region string, kind catalog.Kind) ([]catalog.AwsResource, error) {
	var items []catalog.AwsResource
	err := p.call(region, "list "+kind.String(), func() error {
		c, err := p.client(ctx, region)
		if err != nil {
			return err
		}
		switch kind {
		case catalog.KindEc2:
			items, err = c.ListInstances(ctx)
		case catalog.KindNetwork:
			items, err = c.ListVpcs(ctx)
		case catalog.KindSecurityGroup:
			items, err = c.ListSecurityGroups(ctx)
		case catalog.KindLoadBalancer:
			items, err = c.ListLoadBalancers(ctx)
		case catalog.KindEcr:
			items, err = c.ListRepositories(ctx)
		case catalog.KindAsg:
			items, err = c.ListAutoScalingGroups(ctx)
		default:
			err = fmt.Errorf("unsupported kind %s", kind)
		}
		return err
	})
	if err != nil {
		return nil, &errs.ProviderError{Op: "list", Kind: kind.String(), Err: err}
	}
	return items, nil
}

// Detail fetches the detail of one resource. Network details run every
// sub-fetch in order and fail as a whole when any of them fails.
func (p *Provider) Detail(ctx context.Context, region string, kind catalog.Kind, id string) (catalog.Detail, error) {
	if kind == catalog.KindNetwork {
		return p.networkDetail(ctx, region, id)
	}

	var d catalog.Detail
	err := p.call(region, "detail "+kind.String(), func() error {
		c, err := p.client(ctx, region)
		if err != nil {
			return err
		}
		switch kind {
		case catalog.KindEc2:
			var v *catalog.Ec2Detail
			v, err = c.GetInstanceDetails(ctx, id)
			d = v
		case catalog.KindSecurityGroup:
			var v *catalog.SecurityGroupDetail
			v, err = c.GetSecurityGroupDetails(ctx, id)
			d = v
		case catalog.KindLoadBalancer:
			var v *catalog.LoadBalancerDetail
			v, err = c.GetLoadBalancerDetails(ctx, id)
			d = v
		case catalog.KindEcr:
			var v *catalog.EcrDetail
			v, err = c.GetRepositoryDetails(ctx, id)
			d = v
		case catalog.KindAsg:
			var v *catalog.AsgDetail
			v, err = c.GetAutoScalingGroupDetails(ctx, id)
			d = v
		default:
			err = fmt.Errorf("unsupported kind %s", kind)
		}
		return err
	})
	if err != nil {
		return nil, &errs.ProviderError{Op: "detail", Kind: kind.String(), ID: id, Err: err}
	}
	return d, nil
}

func (p *Provider) networkDetail(ctx context.Context, region, vpcID string) (catalog.Detail, error) {
	acc := catalog.NewNetworkAccumulator(vpcID)
	for step := catalog.StepVpcInfo; ; {
		partial, err := p.NetworkStep(ctx, region, vpcID, step)
		if err != nil {
			return nil, err
		}
		if err := acc.Apply(partial); err != nil {
			return nil, &errs.ProviderError{Op: "detail", Kind: catalog.KindNetwork.String(), ID: vpcID, Err: err}
		}
		next, ok := step.Next()
		if !ok {
			break
		}
		step = next
	}
	d, _ := acc.Result()
	return d, nil
}

// NetworkStep runs one sub-fetch of a network detail.
func (p *Provider) NetworkStep(ctx context.Context, region, vpcID string, step catalog.NetworkStep) (catalog.NetworkPartial, error) {
	var partial catalog.NetworkPartial
	err := p.call(region, "network "+step.String(), func() error {
		c, err := p.client(ctx, region)
		if err != nil {
			return err
		}
		partial, err = c.GetNetworkStep(ctx, vpcID, step)
		return err
	})
	if err != nil {
		return catalog.NetworkPartial{Step: step}, &errs.ProviderError{
			Op:   "network " + step.String(),
			Kind: catalog.KindNetwork.String(),
			ID:   vpcID,
			Err:  err,
		}
	}
	return partial, nil
}

// CallerIdentity checks that the credentials resolve for region.
func (p *Provider) CallerIdentity(ctx context.Context, region string) (Identity, error) {
	var id Identity
	err := p.call(region, "caller identity", func() error {
		c, err := p.client(ctx, region)
		if err != nil {
			return err
		}
		id, err = c.GetCallerIdentity(ctx)
		return err
	})
	return id, err
}

// Upload writes content to an s3:// destination.
func (p *Provider) Upload(ctx context.Context, region string, loc S3Location, content string) (string, error) {
	var location string
	err := p.call(region, "upload", func() error {
		c, err := p.client(ctx, region)
		if err != nil {
			return err
		}
		location, err = c.UploadDocument(ctx, loc, content)
		return err
	})
	return location, err
}
