package main

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/noelruault/emd/internal/aws"
	"github.com/noelruault/emd/internal/catalog"
	"github.com/noelruault/emd/internal/config"
	"github.com/noelruault/emd/internal/i18n"
	"github.com/noelruault/emd/internal/store"
)

// MockProvider records provider calls made by the UI and export command.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) List(ctx context.Context, region string, kind catalog.Kind) ([]catalog.AwsResource, error) {
	args := m.Called(ctx, region, kind)
	items, _ := args.Get(0).([]catalog.AwsResource)
	return items, args.Error(1)
}

func (m *MockProvider) Detail(ctx context.Context, region string, kind catalog.Kind, id string) (catalog.Detail, error) {
	args := m.Called(ctx, region, kind, id)
	d, _ := args.Get(0).(catalog.Detail)
	return d, args.Error(1)
}

func (m *MockProvider) NetworkStep(ctx context.Context, region, vpcID string, step catalog.NetworkStep) (catalog.NetworkPartial, error) {
	args := m.Called(ctx, region, vpcID, step)
	p, _ := args.Get(0).(catalog.NetworkPartial)
	return p, args.Error(1)
}

func (m *MockProvider) CallerIdentity(ctx context.Context, region string) (aws.Identity, error) {
	args := m.Called(ctx, region)
	id, _ := args.Get(0).(aws.Identity)
	return id, args.Error(1)
}

func (m *MockProvider) Upload(ctx context.Context, region string, loc aws.S3Location, content string) (string, error) {
	args := m.Called(ctx, region, loc, content)
	return args.String(0), args.Error(1)
}

const testRegion = "ap-northeast-2"

func newTestModel(t *testing.T, p Provider) (model, *store.Store) {
	t.Helper()
	st := store.New(t.TempDir(), zerolog.Nop())
	return modelWithStore(t, p, st), st
}

func modelWithStore(t *testing.T, p Provider, st *store.Store) model {
	t.Helper()
	cfg := config.Config{Region: testRegion, OutputDir: t.TempDir()}
	return newModel(cfg, p, st, i18n.English, zerolog.Nop())
}

// loggedIn returns a model already past the login screen.
func loggedIn(t *testing.T, p Provider) (model, *store.Store) {
	t.Helper()
	st := store.New(t.TempDir(), zerolog.Nop())
	return loggedInWith(t, p, st), st
}

func loggedInWith(t *testing.T, p Provider, st *store.Store) model {
	t.Helper()
	return update(t, modelWithStore(t, p, st), loginCheckedMsg{identity: aws.Identity{Account: "123456789012"}})
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys in order and returns the command from the last one.
func press(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(model)
	}
	return m, cmd
}

// drive runs cmd and every command its messages produce until nothing is
// left, feeding each message back into the model. Spinner ticks are dropped.
func drive(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 100, "commands did not settle")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil, spinner.TickMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			next, nc := m.Update(msg)
			m = next.(model)
			queue = append(queue, nc)
		}
	}
	return m
}
