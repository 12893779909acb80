package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/shhac/amfconf/internal/app"
	"github.com/shhac/amfconf/internal/binder"
	"github.com/shhac/amfconf/internal/domain"
	apperrors "github.com/shhac/amfconf/internal/errors"
	"github.com/shhac/amfconf/internal/logging"
	"github.com/shhac/amfconf/internal/property"
	"github.com/shhac/amfconf/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app  *app.App
	repo *storage.MemoryRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)

	repo := storage.NewMemoryRepository()
	return &testEnv{
		app:  app.NewWithDeps(app.DefaultConfig(), logging.NewNopLogger(), repo),
		repo: repo,
	}
}

func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(e.app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func (e *testEnv) request(t *testing.T, name string) domain.AMFRequest {
	t.Helper()
	element, err := e.repo.LoadElement(name)
	require.NoError(t, err)
	return binder.Import(element.Properties)
}

func TestNewCmd(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "new", "login",
		"--host", "example.com",
		"--path", "/gateway",
		"--template", "<amf/>",
		"--response-var", "resp",
		"--arg", "id=7",
	)
	require.NoError(t, err)
	assert.Equal(t, "created login (6 chars)\n", out)

	want := domain.NewAMFRequest()
	want.Name = "login"
	want.Endpoint.Host = "example.com"
	want.Endpoint.Path = "/gateway"
	want.Endpoint.Arguments = []domain.Argument{{Name: "id", Value: "7"}}
	want.BodyTemplate = "<amf/>"
	want.ResponseVariable = "resp"
	assert.Equal(t, want, env.request(t, "login"))
}

func TestNewCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "unsupported encoding", args: []string{"new", "x", "--encoding", "AMF0"}, wantErr: apperrors.ErrUnsupportedEncoding},
		{name: "bad argument", args: []string{"new", "x", "--arg", "novalue"}, wantMsg: "expected name=value"},
		{name: "bad name", args: []string{"new", "../x"}, wantErr: apperrors.ErrInvalidName},
		{name: "missing template file", args: []string{"new", "x", "--template-file", "/does/not/exist"}, wantMsg: "read template file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.run(t, "", tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestNewCmd_RefusesOverwrite(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "new", "login", "--host", "a.example.com")
	require.NoError(t, err)

	_, err = env.run(t, "", "new", "login", "--host", "b.example.com")
	assert.ErrorContains(t, err, "already exists")

	_, err = env.run(t, "", "new", "login", "--host", "b.example.com", "--force")
	require.NoError(t, err)
	assert.Equal(t, "b.example.com", env.request(t, "login").Endpoint.Host)
}

func TestSetTemplateCmd(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "", "new", "login", "--host", "example.com", "--response-var", "resp")
	require.NoError(t, err)

	out, err := env.run(t, "<amf>\n</amf>", "set-template", "login", "--file", "-")
	require.NoError(t, err)
	assert.Equal(t, "updated login (12 chars)\n", out)

	req := env.request(t, "login")
	assert.Equal(t, "<amf>\n</amf>", req.BodyTemplate)
	assert.Equal(t, "resp", req.ResponseVariable, "other fields survive the edit")

	file := filepath.Join(t.TempDir(), "body.xml")
	require.NoError(t, os.WriteFile(file, []byte("<x/>"), 0644))
	_, err = env.run(t, "", "set-template", "login", "--file", file)
	require.NoError(t, err)
	assert.Equal(t, "<x/>", env.request(t, "login").BodyTemplate)
}

func TestSetTemplateCmd_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "<x/>", "set-template", "missing", "--file", "-")
	assert.ErrorIs(t, err, apperrors.ErrElementNotFound)
}

func TestSetEncodingCmd(t *testing.T) {
	env := newTestEnv(t)

	props := property.NewMap()
	props.Set(binder.KeyTestClass, binder.TestClass)
	props.Set(binder.KeyObjectEncoding, "AMF0")
	require.NoError(t, env.repo.SaveElement(domain.NewElement("legacy", props)))

	_, err := env.run(t, "", "set-encoding", "legacy", "AMF1")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedEncoding)
	assert.Equal(t, domain.ObjectEncoding("AMF0"), env.request(t, "legacy").ObjectEncoding)

	out, err := env.run(t, "", "set-encoding", "legacy", "AMF3")
	require.NoError(t, err)
	assert.Equal(t, "updated legacy encoding AMF3\n", out)
	assert.Equal(t, domain.EncodingAMF3, env.request(t, "legacy").ObjectEncoding)
}

func TestShowCmd(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "", "new", "login", "--host", "example.com", "--template", "<amf/>")
	require.NoError(t, err)

	out, err := env.run(t, "", "show", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "name: login")
	assert.Contains(t, out, "host: example.com")
	assert.Contains(t, out, "objectEncodingVersion: AMF3")
	assert.Contains(t, out, "templateSize:")
	assert.Contains(t, out, "(6 chars)")

	out, err = env.run(t, "", "show", "login", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"bodyTemplate": "<amf/>"`)

	out, err = env.run(t, "", "show", "login", "--format", "properties")
	require.NoError(t, err)
	assert.Contains(t, out, `AMFXML="<amf/>"`)
	assert.Contains(t, out, `objectEncodingVersion="AMF3"`)

	_, err = env.run(t, "", "show", "login", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestValidateCmd(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "", "new", "good", "--host", "example.com", "--path", "/gateway")
	require.NoError(t, err)
	_, err = env.run(t, "", "new", "bad", "--port", "99999")
	require.NoError(t, err, "storing never validates")

	out, err := env.run(t, "", "validate", "good")
	require.NoError(t, err)
	assert.Equal(t, "good: ok\n", out)

	out, err = env.run(t, "", "validate", "bad")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, out, "bad: host: must not be empty")
	assert.Contains(t, out, "bad: port:")
}

func TestDiffCmd(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "", "new", "a", "--host", "one.example.com")
	require.NoError(t, err)
	_, err = env.run(t, "", "new", "b", "--host", "two.example.com")
	require.NoError(t, err)

	out, err := env.run(t, "", "diff", "a", "b")
	require.NoError(t, err)
	assert.Contains(t, out, binder.KeyHost)
	assert.Contains(t, out, "one.example.com")
	assert.Contains(t, out, "two.example.com")
	assert.Contains(t, out, binder.KeyName)
	assert.NotContains(t, out, binder.KeyObjectEncoding)

	out, err = env.run(t, "", "diff", "a", "a")
	require.NoError(t, err)
	assert.Equal(t, "no differences\n", out)
}

func TestListAndDeleteCmd(t *testing.T) {
	env := newTestEnv(t)
	for _, name := range []string{"b", "a"} {
		_, err := env.run(t, "", "new", name)
		require.NoError(t, err)
	}

	out, err := env.run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	out, err = env.run(t, "", "delete", "a")
	require.NoError(t, err)
	assert.Equal(t, "deleted a\n", out)

	_, err = env.run(t, "", "delete", "a")
	assert.ErrorIs(t, err, apperrors.ErrElementNotFound)
}
