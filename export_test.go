package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/noelruault/emd/internal/aws"
	"github.com/noelruault/emd/internal/blueprint"
	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/document"
	"github.com/noelruault/emd/internal/errs"
	"github.com/noelruault/emd/internal/i18n"
	"github.com/noelruault/emd/internal/store"
)

func TestAssembleBlueprint(t *testing.T) {
	p := new(MockProvider)
	p.On("Detail", mock.Anything, "us-east-1", catalog.KindEcr, "api").
		Return(&catalog.EcrDetail{Name: "api", URI: "123.dkr.ecr.us-east-1.amazonaws.com/api"}, nil)
	p.On("Detail", mock.Anything, "ap-northeast-2", catalog.KindSecurityGroup, "sg-1").
		Return(nil, &errs.ProviderError{Op: "detail", Kind: "SecurityGroup", ID: "sg-1", Err: errors.New("denied")})
	p.On("Detail", mock.Anything, "ap-northeast-2", catalog.KindAsg, "web").
		Return(&catalog.AsgDetail{Name: "web", MinSize: 1, MaxSize: 3, DesiredCapacity: 2}, nil)

	bp := blueprint.Blueprint{Name: "prod", Resources: []blueprint.Resource{
		{ResourceType: catalog.KindEcr, Region: "us-east-1", ResourceID: "api", ResourceName: "api"},
		{ResourceType: catalog.KindSecurityGroup, Region: "ap-northeast-2", ResourceID: "sg-1"},
		{ResourceType: catalog.KindAsg, Region: "ap-northeast-2", ResourceID: "web", ResourceName: "web"},
	}}

	doc, err := assembleBlueprint(context.Background(), p, bp, i18n.English)
	require.NoError(t, err)

	assert.Equal(t, "prod", doc.Title)
	assert.Equal(t, "prod.md", doc.Filename)
	require.Len(t, doc.Skipped, 1)
	assert.Equal(t, "sg-1", doc.Skipped[0].ID)

	ecr := bytes.Index([]byte(doc.Content), []byte("ECR Repository (api)"))
	asg := bytes.Index([]byte(doc.Content), []byte("Auto Scaling Group (web)"))
	require.Positive(t, ecr)
	require.Positive(t, asg)
	assert.Less(t, ecr, asg, "sections keep blueprint order")
	p.AssertExpectations(t)
}

func TestAssembleEmptyBlueprint(t *testing.T) {
	p := new(MockProvider)
	doc, err := assembleBlueprint(context.Background(), p, blueprint.Blueprint{Name: "empty"}, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "# empty\n", doc.Content)
	p.AssertNotCalled(t, "Detail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWriteDocumentLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	doc := document.Document{Title: "prod", Content: "# prod\n", Filename: "prod.md"}

	path, err := writeDocument(context.Background(), new(MockProvider), testRegion, dir, doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prod.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, string(data))
}

func TestWriteDocumentS3(t *testing.T) {
	p := new(MockProvider)
	doc := document.Document{Title: "prod", Content: "# prod\n", Filename: "prod.md"}
	loc := aws.S3Location{Bucket: "docs", Key: "emd/prod.md"}
	p.On("Upload", mock.Anything, testRegion, loc, doc.Content).Return("https://docs.s3.amazonaws.com/emd/prod.md", nil)

	path, err := writeDocument(context.Background(), p, testRegion, "s3://docs/emd/", doc)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.s3.amazonaws.com/emd/prod.md", path)
	p.AssertExpectations(t)
}

func TestWriteDocumentBadS3URL(t *testing.T) {
	p := new(MockProvider)
	_, err := writeDocument(context.Background(), p, testRegion, "s3:///prefix/", document.Document{Filename: "x.md"})
	require.Error(t, err)
	p.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportExport(t *testing.T) {
	var buf bytes.Buffer
	doc := document.Document{Skipped: []catalog.Ref{{Kind: catalog.KindEc2, ID: "i-9", Name: "old"}}}

	require.NoError(t, reportExport(&buf, i18n.New(i18n.English), "out/prod.md", doc))
	assert.Equal(t, "Skipped 1 resource(s): Ec2 old (i-9)\nSave complete: out/prod.md\n", buf.String())
}

func TestListBlueprints(t *testing.T) {
	var buf bytes.Buffer
	coll := blueprint.Collection{Blueprints: []blueprint.Blueprint{
		{Name: "prod", Resources: []blueprint.Resource{
			{ResourceType: catalog.KindEc2, ResourceID: "i-1"},
			{ResourceType: catalog.KindEc2, ResourceID: "i-2"},
			{ResourceType: catalog.KindEcr, ResourceID: "api"},
		}},
		{Name: "empty"},
	}}

	require.NoError(t, listBlueprints(&buf, coll))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "prod")
	assert.Contains(t, string(lines[0]), "  3  EC2, ECR")
	assert.Contains(t, string(lines[1]), "empty")
}

func TestBlueprintsCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMD_DATA_DIR", dir)
	st := store.New(dir, zerolog.Nop())
	require.NoError(t, st.SaveBlueprints(blueprint.Collection{Blueprints: []blueprint.Blueprint{{Name: "prod"}}}))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"blueprints"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "prod")
	assert.FileExists(t, filepath.Join(dir, "emd.log"))
}

func TestExportCommandUnknownBlueprint(t *testing.T) {
	t.Setenv("EMD_DATA_DIR", t.TempDir())

	cmd := newRootCmd()
	cmd.SetArgs([]string{"export", "missing"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSetupRejectsBadLanguage(t *testing.T) {
	t.Setenv("EMD_DATA_DIR", t.TempDir())

	_, err := setup(options{lang: "klingon"})
	require.Error(t, err)
}
