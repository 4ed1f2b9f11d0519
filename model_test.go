package main

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/noelruault/emd/internal/aws"
	"github.com/noelruault/emd/internal/blueprint"
	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/errs"
	"github.com/noelruault/emd/internal/i18n"
	"github.com/noelruault/emd/internal/nav"
	"github.com/noelruault/emd/internal/store"
)

var testInstances = []catalog.AwsResource{
	{Name: "web-1", ID: "i-1", State: "running", AZ: "ap-northeast-2a"},
	{Name: "web-2", ID: "i-2", State: "stopped", AZ: "ap-northeast-2c"},
}

func TestLoginSuccess(t *testing.T) {
	p := new(MockProvider)
	p.On("CallerIdentity", mock.Anything, testRegion).Return(aws.Identity{Account: "123456789012", ARN: "arn:aws:iam::123456789012:user/dev"}, nil)

	m, _ := newTestModel(t, p)
	require.Equal(t, nav.ScreenLogin, m.machine.Screen())

	m = drive(t, m, m.checkLogin())
	assert.Equal(t, nav.ScreenBlueprintSelect, m.machine.Screen())
	assert.Equal(t, "123456789012", m.identity.Account)
	assert.Equal(t, m.labels.Get(i18n.LoginVerified), m.machine.Status())
	assert.Contains(t, m.View(), "123456789012")
	p.AssertExpectations(t)
}

func TestLoginFailureIsClassified(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want i18n.Key
	}{
		{"expired token", &smithy.GenericAPIError{Code: "ExpiredToken", Message: "expired"}, i18n.AuthCredentials},
		{"dns", &net.DNSError{Err: "no such host", Name: "sts.amazonaws.com"}, i18n.AuthNetwork},
		{"other", errors.New("boom"), i18n.AuthUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, new(MockProvider))
			m = update(t, m, loginCheckedMsg{err: tt.err})

			assert.Equal(t, nav.ScreenLogin, m.machine.Screen())
			assert.False(t, m.loginChecking)
			assert.Equal(t, m.labels.Get(tt.want), m.loginFailure())
			assert.Contains(t, m.View(), m.labels.Get(i18n.ConfigureHint))
		})
	}
}

func TestLoginRetry(t *testing.T) {
	p := new(MockProvider)
	p.On("CallerIdentity", mock.Anything, testRegion).Return(aws.Identity{Account: "1"}, nil).Once()

	m, _ := newTestModel(t, p)
	m = update(t, m, loginCheckedMsg{err: errors.New("offline")})

	m, cmd := press(t, m, "r")
	require.NotNil(t, cmd)
	assert.True(t, m.loginChecking)

	m = drive(t, m, cmd)
	assert.Equal(t, nav.ScreenBlueprintSelect, m.machine.Screen())
	p.AssertExpectations(t)
}

func TestCreateBlueprint(t *testing.T) {
	m, st := loggedIn(t, new(MockProvider))

	m, _ = press(t, m, "n")
	require.Equal(t, nav.ScreenBlueprintNameInput, m.machine.Screen())

	m, _ = press(t, m, "p", "r", "o", "d", "enter")
	assert.Equal(t, nav.ScreenBlueprintSelect, m.machine.Screen())
	assert.Equal(t, m.labels.Get(i18n.BlueprintSaved), m.machine.Status())
	assert.Equal(t, 0, m.cursor(nav.ScreenBlueprintSelect).Index)

	stored := st.LoadBlueprints()
	require.Len(t, stored.Blueprints, 1)
	assert.Equal(t, "prod", stored.Blueprints[0].Name)
}

func TestCreateBlueprintRequiresName(t *testing.T) {
	m, st := loggedIn(t, new(MockProvider))

	m, _ = press(t, m, "n", " ", "enter")
	assert.Equal(t, nav.ScreenBlueprintNameInput, m.machine.Screen())
	assert.Equal(t, m.labels.Get(i18n.NameRequired), m.machine.Status())
	assert.Empty(t, st.LoadBlueprints().Blueprints)

	m, _ = press(t, m, "esc")
	assert.Equal(t, nav.ScreenBlueprintSelect, m.machine.Screen())
}

func TestNewBlueprintRowOpensNameInput(t *testing.T) {
	m, _ := loggedIn(t, new(MockProvider))
	// With no blueprints the only row is "+ New Blueprint".
	m, _ = press(t, m, "enter")
	assert.Equal(t, nav.ScreenBlueprintNameInput, m.machine.Screen())
}

func TestSingleModePreview(t *testing.T) {
	p := new(MockProvider)
	p.On("List", mock.Anything, testRegion, catalog.KindEc2).Return(testInstances, nil)
	p.On("Detail", mock.Anything, testRegion, catalog.KindEc2, "i-2").
		Return(&catalog.Ec2Detail{Name: "web-2", InstanceID: "i-2", State: "stopped"}, nil)

	m, _ := loggedIn(t, p)
	m, _ = press(t, m, "s")
	require.Equal(t, nav.ScreenRegionSelect, m.machine.Screen())
	assert.False(t, m.blueprintMode)

	m, _ = press(t, m, "enter")
	require.Equal(t, nav.ScreenServiceSelect, m.machine.Screen())
	assert.Equal(t, testRegion, m.region.Get())

	m, cmd := press(t, m, "enter")
	require.Equal(t, nav.ScreenEc2Select, m.machine.Screen())
	assert.True(t, m.machine.Loading())
	m = drive(t, m, cmd)
	assert.False(t, m.machine.Loading())
	assert.Len(t, m.machine.List(testRegion, catalog.KindEc2), 2)

	m, cmd = press(t, m, "down", "enter")
	m = drive(t, m, cmd)
	require.Equal(t, nav.ScreenPreview, m.machine.Screen())
	require.NotNil(t, m.doc)
	assert.Equal(t, "EC2 Instance (web-2)", m.doc.Title)
	assert.Equal(t, "Ec2_web-2.md", m.doc.Filename)

	m, _ = press(t, m, "esc")
	assert.Equal(t, nav.ScreenEc2Select, m.machine.Screen())
	p.AssertExpectations(t)
}

func TestSaveDocumentLocally(t *testing.T) {
	m, _ := loggedIn(t, new(MockProvider))
	m.showDocument(m.assembler().Blueprint("prod", nil), nav.ScreenBlueprintPreview)

	m, cmd := press(t, m, "s")
	require.NotNil(t, cmd)
	m = drive(t, m, cmd)

	path := filepath.Join(m.cfg.OutputDir, "prod.md")
	assert.Equal(t, path, m.savedPath)
	assert.Equal(t, m.labels.Saved(path), m.machine.Status())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# prod\n", string(data))
}

func TestNetworkDetailRunsStepsInOrder(t *testing.T) {
	p := new(MockProvider)
	p.On("List", mock.Anything, testRegion, catalog.KindNetwork).
		Return([]catalog.AwsResource{{Name: "main", ID: "vpc-1", CIDR: "10.0.0.0/16"}}, nil)

	var order []catalog.NetworkStep
	for step := catalog.StepVpcInfo; step.Valid(); step++ {
		partial := catalog.NetworkPartial{}
		switch step {
		case catalog.StepVpcInfo:
			partial.Info = &catalog.VpcInfo{Name: "main", ID: "vpc-1", CIDR: "10.0.0.0/16"}
		case catalog.StepSubnets:
			partial.Subnets = []catalog.SubnetDetail{{Name: "a", ID: "subnet-1", CIDR: "10.0.1.0/24"}}
		case catalog.StepDNSAttributes:
			partial.DNS = &catalog.DNSAttributes{Support: true}
		}
		s := step
		p.On("NetworkStep", mock.Anything, testRegion, "vpc-1", s).
			Run(func(mock.Arguments) { order = append(order, s) }).
			Return(partial, nil).Once()
	}

	m, _ := loggedIn(t, p)
	m, _ = press(t, m, "s", "enter", "down")
	m, cmd := press(t, m, "enter")
	require.Equal(t, nav.ScreenVpcSelect, m.machine.Screen())
	m = drive(t, m, cmd)

	m, cmd = press(t, m, "enter")
	m = drive(t, m, cmd)

	require.Equal(t, nav.ScreenPreview, m.machine.Screen())
	assert.Equal(t, []catalog.NetworkStep{
		catalog.StepVpcInfo, catalog.StepSubnets, catalog.StepInternetGateways, catalog.StepNatGateways,
		catalog.StepRouteTables, catalog.StepElasticIPs, catalog.StepDNSAttributes,
	}, order)

	d, ok := m.machine.Detail().(*catalog.NetworkDetail)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.0/16", d.CIDR)
	assert.Len(t, d.Subnets, 1)
	assert.True(t, d.DNSSupport)
	p.AssertExpectations(t)
}

func TestNetworkDetailFailureKeepsProgress(t *testing.T) {
	p := new(MockProvider)
	p.On("List", mock.Anything, testRegion, catalog.KindNetwork).
		Return([]catalog.AwsResource{{Name: "main", ID: "vpc-1"}}, nil)
	p.On("NetworkStep", mock.Anything, testRegion, "vpc-1", catalog.StepVpcInfo).Return(catalog.NetworkPartial{}, nil)
	p.On("NetworkStep", mock.Anything, testRegion, "vpc-1", catalog.StepSubnets).Return(catalog.NetworkPartial{}, nil)
	p.On("NetworkStep", mock.Anything, testRegion, "vpc-1", catalog.StepInternetGateways).
		Return(catalog.NetworkPartial{}, &errs.ProviderError{Op: "network igws", Kind: "Network", ID: "vpc-1", Err: errors.New("throttled")})

	m, _ := loggedIn(t, p)
	m, _ = press(t, m, "s", "enter", "down")
	m, cmd := press(t, m, "enter")
	m = drive(t, m, cmd)
	m, cmd = press(t, m, "enter")
	m = drive(t, m, cmd)

	assert.Equal(t, nav.ScreenVpcSelect, m.machine.Screen())
	assert.False(t, m.machine.Loading())
	assert.Nil(t, m.machine.Detail())
	assert.Equal(t, 2, m.machine.Progress().Completed())
	assert.Equal(t, m.labels.NetworkDetailUnavailable("vpc-1"), m.machine.Status())
	p.AssertNotCalled(t, "NetworkStep", mock.Anything, testRegion, "vpc-1", catalog.StepNatGateways)
}

func TestStaleListIsIgnored(t *testing.T) {
	p := new(MockProvider)
	p.On("List", mock.Anything, testRegion, catalog.KindEc2).Return(testInstances, nil)

	m, _ := loggedIn(t, p)
	m, _ = press(t, m, "s", "enter")
	m, cmd := press(t, m, "enter")
	require.True(t, m.machine.Loading())

	// Leave before the list arrives.
	m, _ = press(t, m, "esc")
	m = drive(t, m, cmd)

	assert.Equal(t, nav.ScreenServiceSelect, m.machine.Screen())
	assert.Empty(t, m.machine.List(testRegion, catalog.KindEc2))
}

func TestSecondTaskIsRejectedWhileLoading(t *testing.T) {
	m, _ := loggedIn(t, new(MockProvider))
	m, _ = press(t, m, "s", "enter")
	m, _ = press(t, m, "enter")
	require.True(t, m.machine.Loading())

	m, cmd := press(t, m, "r")
	assert.Nil(t, cmd)
	assert.Equal(t, m.labels.Get(i18n.TaskBusy), m.machine.Status())
	assert.Equal(t, nav.LoadList{Region: testRegion, Kind: catalog.KindEc2}, m.machine.Task())
}

func TestComposeAndGenerateBlueprint(t *testing.T) {
	p := new(MockProvider)
	p.On("List", mock.Anything, testRegion, catalog.KindEc2).Return(testInstances, nil)
	p.On("Detail", mock.Anything, testRegion, catalog.KindEc2, "i-1").
		Return(&catalog.Ec2Detail{Name: "web-1", InstanceID: "i-1"}, nil)
	p.On("Detail", mock.Anything, testRegion, catalog.KindEc2, "i-2").
		Return(nil, &errs.ProviderError{Op: "detail", Kind: "Ec2", ID: "i-2", Err: errors.New("gone")})

	m, st := loggedIn(t, p)
	m, _ = press(t, m, "n", "a", "p", "p", "enter")
	m, _ = press(t, m, "enter")
	require.Equal(t, nav.ScreenBlueprintDetail, m.machine.Screen())

	for _, down := range []bool{false, true} {
		m, _ = press(t, m, "a")
		require.Equal(t, nav.ScreenRegionSelect, m.machine.Screen())
		require.True(t, m.blueprintMode)
		m, _ = press(t, m, "enter")
		m, cmd := press(t, m, "enter")
		m = drive(t, m, cmd)
		if down {
			m, _ = press(t, m, "down")
		}
		m, _ = press(t, m, "enter")
		require.Equal(t, nav.ScreenBlueprintDetail, m.machine.Screen())
		assert.Equal(t, m.labels.Get(i18n.ResourceAdded), m.machine.Status())
	}

	stored := st.LoadBlueprints()
	require.Len(t, stored.Blueprints, 1)
	assert.Equal(t, []blueprint.Resource{
		{ResourceType: catalog.KindEc2, Region: testRegion, ResourceID: "i-1", ResourceName: "web-1"},
		{ResourceType: catalog.KindEc2, Region: testRegion, ResourceID: "i-2", ResourceName: "web-2"},
	}, stored.Blueprints[0].Resources)

	m, cmd := press(t, m, "g")
	require.NotNil(t, cmd)
	m = drive(t, m, cmd)

	require.Equal(t, nav.ScreenBlueprintPreview, m.machine.Screen())
	require.NotNil(t, m.doc)
	assert.Equal(t, "app", m.doc.Title)
	assert.Contains(t, m.doc.Content, "EC2 Instance (web-1)")
	require.Len(t, m.doc.Skipped, 1)
	assert.Equal(t, "i-2", m.doc.Skipped[0].ID)
	assert.Equal(t, m.labels.SkippedResources([]string{"i-2"}), m.machine.Status())

	m, _ = press(t, m, "esc")
	assert.Equal(t, nav.ScreenBlueprintDetail, m.machine.Screen())
	p.AssertExpectations(t)
}

func TestAddUsesRegionOfList(t *testing.T) {
	p := new(MockProvider)
	p.On("List", mock.Anything, testRegion, catalog.KindEc2).Return(testInstances, nil)
	p.On("List", mock.Anything, "ap-northeast-1", catalog.KindEc2).Return(nil, errors.New("denied")).Once()
	p.On("List", mock.Anything, "ap-northeast-1", catalog.KindEc2).
		Return([]catalog.AwsResource{{Name: "tokyo-1", ID: "i-9", State: "running"}}, nil).Once()

	m, st := loggedIn(t, p)
	m, _ = press(t, m, "n", "a", "p", "p", "enter", "enter", "a", "enter")
	m, cmd := press(t, m, "enter")
	m = drive(t, m, cmd)
	require.Equal(t, nav.ScreenEc2Select, m.machine.Screen())
	require.Contains(t, m.View(), "web-1")

	// Switch to Tokyo, where listing fails.
	m, _ = press(t, m, "esc", "esc", "down", "enter")
	require.Equal(t, "ap-northeast-1", m.region.Get())
	m, cmd = press(t, m, "enter")
	m = drive(t, m, cmd)
	require.Equal(t, nav.ScreenEc2Select, m.machine.Screen())
	assert.NotContains(t, m.View(), "web-1")

	m, _ = press(t, m, "enter")
	assert.Equal(t, nav.ScreenEc2Select, m.machine.Screen())
	assert.Empty(t, st.LoadBlueprints().Blueprints[0].Resources)

	m, cmd = press(t, m, "r")
	m = drive(t, m, cmd)
	m, _ = press(t, m, "enter")
	require.Equal(t, nav.ScreenBlueprintDetail, m.machine.Screen())
	assert.Equal(t, []blueprint.Resource{
		{ResourceType: catalog.KindEc2, Region: "ap-northeast-1", ResourceID: "i-9", ResourceName: "tokyo-1"},
	}, st.LoadBlueprints().Blueprints[0].Resources)
	p.AssertExpectations(t)
}

func TestGenerateEmptyBlueprint(t *testing.T) {
	m, _ := loggedIn(t, new(MockProvider))
	m, _ = press(t, m, "n", "x", "enter", "enter")
	require.Equal(t, nav.ScreenBlueprintDetail, m.machine.Screen())

	m, cmd := press(t, m, "g")
	assert.Nil(t, cmd)
	assert.False(t, m.machine.Loading())
	assert.Equal(t, m.labels.Get(i18n.PressAToAdd), m.machine.Status())
}

func TestReorderAndRemove(t *testing.T) {
	st := store.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, st.SaveBlueprints(blueprint.Collection{Blueprints: []blueprint.Blueprint{{
		Name: "prod",
		Resources: []blueprint.Resource{
			{ResourceType: catalog.KindEc2, Region: testRegion, ResourceID: "i-1"},
			{ResourceType: catalog.KindEcr, Region: testRegion, ResourceID: "repo"},
		},
	}}}))
	m := loggedInWith(t, new(MockProvider), st)

	m, _ = press(t, m, "enter")
	require.Equal(t, nav.ScreenBlueprintDetail, m.machine.Screen())

	m, _ = press(t, m, "J")
	assert.Equal(t, 1, m.cursor(nav.ScreenBlueprintDetail).Index)
	ids := func() []string {
		var out []string
		for _, r := range st.LoadBlueprints().Blueprints[0].Resources {
			out = append(out, r.ResourceID)
		}
		return out
	}
	assert.Equal(t, []string{"repo", "i-1"}, ids())

	// Already last: no change.
	m, _ = press(t, m, "J")
	assert.Equal(t, []string{"repo", "i-1"}, ids())

	m, _ = press(t, m, "d")
	assert.Equal(t, []string{"repo"}, ids())
	assert.Equal(t, 0, m.cursor(nav.ScreenBlueprintDetail).Index)
	assert.Equal(t, m.labels.Get(i18n.ResourceDeleted), m.machine.Status())

	m, _ = press(t, m, "esc")
	assert.Equal(t, nav.ScreenBlueprintSelect, m.machine.Screen())
	assert.False(t, m.engine.IsOpen())
}

func TestDeleteBlueprint(t *testing.T) {
	st := store.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, st.SaveBlueprints(blueprint.Collection{Blueprints: []blueprint.Blueprint{{Name: "a"}, {Name: "b"}}}))
	m := loggedInWith(t, new(MockProvider), st)

	m, _ = press(t, m, "down", "d")
	assert.Equal(t, m.labels.Get(i18n.BlueprintDeleted), m.machine.Status())
	require.Len(t, st.LoadBlueprints().Blueprints, 1)
	assert.Equal(t, "a", st.LoadBlueprints().Blueprints[0].Name)

	// The "+ New Blueprint" row cannot be deleted.
	m, _ = press(t, m, "down", "d")
	assert.Len(t, st.LoadBlueprints().Blueprints, 1)
}

func TestDeleteLastBlueprintMovesSelectionBack(t *testing.T) {
	st := store.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, st.SaveBlueprints(blueprint.Collection{Blueprints: []blueprint.Blueprint{{Name: "a"}, {Name: "b"}, {Name: "c"}}}))
	m := loggedInWith(t, new(MockProvider), st)

	m, _ = press(t, m, "down", "down", "d")
	assert.Equal(t, 1, m.cursor(nav.ScreenBlueprintSelect).Index)
	assert.Equal(t, 1, m.engine.Selected())
	assert.Equal(t, 2, m.engine.Len())

	m, _ = press(t, m, "enter")
	require.Equal(t, nav.ScreenBlueprintDetail, m.machine.Screen())
	bp, ok := m.engine.Current()
	require.True(t, ok)
	assert.Equal(t, "b", bp.Name)
}

func TestDeleteMiddleBlueprintKeepsRow(t *testing.T) {
	st := store.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, st.SaveBlueprints(blueprint.Collection{Blueprints: []blueprint.Blueprint{{Name: "a"}, {Name: "b"}, {Name: "c"}}}))
	m := loggedInWith(t, new(MockProvider), st)

	m, _ = press(t, m, "down", "d")
	assert.Equal(t, 1, m.cursor(nav.ScreenBlueprintSelect).Index)

	m, _ = press(t, m, "enter")
	bp, ok := m.engine.Current()
	require.True(t, ok)
	assert.Equal(t, "c", bp.Name)
}

func TestToggleLanguage(t *testing.T) {
	m, st := loggedIn(t, new(MockProvider))

	m, _ = press(t, m, "tab")
	require.Equal(t, nav.ScreenSettings, m.machine.Screen())

	m, _ = press(t, m, "enter")
	assert.Equal(t, i18n.Korean, m.lang)
	assert.Equal(t, i18n.Korean, m.md.Labeler().Lang)
	assert.Equal(t, "설정 저장 완료", m.machine.Status())
	assert.Equal(t, i18n.Korean, st.LoadSettings().Language)

	m, _ = press(t, m, "esc")
	assert.Equal(t, nav.ScreenBlueprintSelect, m.machine.Screen())
}
