package reconcile_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"asset-reconciler/core/container"
	"asset-reconciler/core/database"
	"asset-reconciler/core/importer"
	core "asset-reconciler/core/reconcile"
	"asset-reconciler/feature/history"
	"asset-reconciler/feature/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var manifests = map[string]string{
	"/shots/sh010/bg.v001.yaml": "name: sh010_bg\nelements:\n  - {name: A, source: a1.png}\n  - {name: B, source: b1.png}\n  - {name: fx, kind: container}\n",
	"/shots/sh010/bg.v002.yaml": "name: sh010_bg\nelements:\n  - {name: A, source: a2.png}\n  - {name: B, source: b2.png}\n",
	"/shots/sh010/bg.v003.yaml": "name: sh010_bg\nelements:\n  - {name: A, source: a3.png}\n  - {name: D, source: d3.png}\n",
	"/shots/sh010/bg.v004.yaml": "name: sh010_bg\nelements:\n  - {name: A, source: a4.png}\n  - {name: fx, source: fx4.png}\n",
}

type testEnv struct {
	app     *fiber.App
	session *container.Session
}

func setup(t *testing.T, withJournal bool) *testEnv {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range manifests {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	var repo *history.Repository
	opts := []core.Option{core.WithLogger(zap.NewNop())}
	if withJournal {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		repo = history.NewRepository(db, zap.NewNop())
		require.NoError(t, repo.Migrate())
		opts = append(opts, core.WithRecorder(repo))
	}

	session := container.NewSession()
	r := core.New(session, importer.NewManifestImporter(&importer.FSSource{Fs: fs}), nil, opts...)
	feature := reconcile.NewFeature(reconcile.NewService(r, repo, zap.NewNop(), time.Second))

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return &testEnv{app: app, session: session}
}

func (e *testEnv) do(t *testing.T, method, url string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func (e *testEnv) load(t *testing.T) string {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/containers", map[string]string{"path": "/shots/sh010/bg.v001.yaml"})
	require.Equal(t, http.StatusCreated, status)
	return body["id"].(string)
}

func TestHandleLoadAndGet(t *testing.T) {
	env := setup(t, false)
	id := env.load(t)

	status, body := env.do(t, http.MethodGet, "/containers/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "sh010_bg", body["name"])
	assert.Len(t, body["elements"], 3)

	status, _ = env.do(t, http.MethodGet, "/containers/missing", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.do(t, http.MethodPost, "/containers", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = env.do(t, http.MethodPost, "/containers", map[string]string{"path": "/shots/sh010/bg.yaml"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "identity_mismatch", body["kind"])

	status, _ = env.do(t, http.MethodPost, "/containers", map[string]string{"path": "/shots/sh010/bg.v009.yaml"})
	assert.Equal(t, http.StatusBadGateway, status)

	assert.Len(t, env.session.List(), 1)
}

func TestHandleReconcile_SourceSwap(t *testing.T) {
	env := setup(t, false)
	id := env.load(t)

	status, body := env.do(t, http.MethodPost, "/containers/"+id+"/reconcile", map[string]any{"path": "/shots/sh010/bg.v002.yaml"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "committed", body["state"])
	assert.Equal(t, false, body["prompted"])

	c, err := env.session.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "/shots/sh010/a2.png", c.Elements[0].SourceRef)
	assert.Equal(t, "/shots/sh010/bg.v002.yaml", c.Path)
}

func TestHandleReconcile_NeedsConfirmation(t *testing.T) {
	env := setup(t, true)
	id := env.load(t)
	before, _ := env.session.Get(id)

	status, body := env.do(t, http.MethodPost, "/containers/"+id+"/reconcile", map[string]any{"path": "/shots/sh010/bg.v003.yaml"})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "rejected", body["kind"])
	outcome := body["outcome"].(map[string]any)
	assert.Equal(t, []any{"D"}, outcome["added"])
	assert.Equal(t, []any{"B"}, outcome["removed"])

	after, _ := env.session.Get(id)
	assert.Equal(t, before, after)

	status, body = env.do(t, http.MethodPost, "/containers/"+id+"/reconcile?confirm=true", map[string]any{"path": "/shots/sh010/bg.v003.yaml"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "committed", body["state"])

	after, _ = env.session.Get(id)
	assert.Equal(t, []string{"A", "fx", "D"}, after.Names())

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/containers/"+id+"/history?limit=10", nil))
	require.NoError(t, err)
	var records []history.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 2)
	assert.Equal(t, "committed", records[0].State)
	assert.Equal(t, "rejected", records[1].ErrorKind)
}

func TestHandleReconcile_Errors(t *testing.T) {
	env := setup(t, false)
	id := env.load(t)

	tests := []struct {
		name   string
		body   map[string]any
		status int
		kind   string
	}{
		{"missing path", map[string]any{}, http.StatusBadRequest, ""},
		{"same version", map[string]any{"path": "/shots/sh010/bg.v001.yaml"}, http.StatusUnprocessableEntity, "version_mismatch"},
		{"other asset", map[string]any{"path": "/shots/sh010/fg.v002.yaml"}, http.StatusUnprocessableEntity, "version_mismatch"},
		{"wrong extension", map[string]any{"path": "/shots/sh010/bg.v002.json"}, http.StatusUnprocessableEntity, "identity_mismatch"},
		{"missing file", map[string]any{"path": "/shots/sh010/bg.v008.yaml"}, http.StatusBadGateway, "import_error"},
		{"collision", map[string]any{"path": "/shots/sh010/bg.v004.yaml", "confirm": true}, http.StatusInternalServerError, "apply_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := env.session.Get(id)
			status, body := env.do(t, http.MethodPost, "/containers/"+id+"/reconcile", tt.body)
			assert.Equal(t, tt.status, status)
			if tt.kind != "" {
				assert.Equal(t, tt.kind, body["kind"])
			}
			after, _ := env.session.Get(id)
			assert.Equal(t, before, after)
		})
	}

	status, _ := env.do(t, http.MethodPost, "/containers/missing/reconcile", map[string]any{"path": "/shots/sh010/bg.v002.yaml"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandlePlan(t *testing.T) {
	env := setup(t, false)
	id := env.load(t)

	status, body := env.do(t, http.MethodPost, "/containers/"+id+"/plan", map[string]any{"path": "/shots/sh010/bg.v003.yaml"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "planned", body["state"])
	assert.Equal(t, []any{"D"}, body["added"])
	assert.Equal(t, []any{"A"}, body["matched"])

	c, _ := env.session.Get(id)
	assert.Equal(t, "/shots/sh010/bg.v001.yaml", c.Path)
}

func TestHandleHistory_NoJournal(t *testing.T) {
	env := setup(t, false)
	id := env.load(t)

	status, _ := env.do(t, http.MethodGet, "/containers/"+id+"/history", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandleList(t *testing.T) {
	env := setup(t, false)
	id := env.load(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/containers", nil))
	require.NoError(t, err)
	var list []container.Container
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, reconcile.StatusFor(io.EOF))
}
