package directory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"influencer-scout/core/catalog"
	"influencer-scout/core/ledger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestApp(store *catalog.FileStore, recorder *ledger.Recorder) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(store, recorder, zap.NewNop())).RegisterRoutes(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHandler_PlatformCatalog(t *testing.T) {
	store := catalog.NewFileStore(t.TempDir())
	require.NoError(t, store.Save("tiktok.json", catalog.New([]catalog.Influencer{{
		ID:        "tt_skin",
		Platform:  catalog.PlatformTikTok,
		Handle:    "skin",
		Followers: 10,
		Tier:      catalog.TierNano,
	}})))
	app := newTestApp(store, nil)

	t.Run("existing catalog", func(t *testing.T) {
		resp := get(t, app, "/catalogs/tiktok")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var cat catalog.Catalog
		decode(t, resp, &cat)
		assert.Equal(t, 1, cat.Count)
		assert.Equal(t, "tt_skin", cat.Influencers[0].ID)
	})

	t.Run("not generated yet", func(t *testing.T) {
		resp := get(t, app, "/catalogs/youtube")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unknown platform", func(t *testing.T) {
		resp := get(t, app, "/catalogs/myspace")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_UnifiedCatalog(t *testing.T) {
	store := catalog.NewFileStore(t.TempDir())
	app := newTestApp(store, nil)

	resp := get(t, app, "/influencers")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, store.Save(catalog.UnifiedFileName, catalog.New(nil)))
	resp = get(t, app, "/influencers")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_RecentRuns(t *testing.T) {
	store := catalog.NewFileStore(t.TempDir())

	t.Run("ledger disabled", func(t *testing.T) {
		resp := get(t, newTestApp(store, nil), "/runs")
		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	})

	t.Run("ledger enabled", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		gormDB, err := gorm.Open(mysql.New(mysql.Config{
			Conn:                      db,
			SkipInitializeWithVersion: true,
		}), &gorm.Config{})
		require.NoError(t, err)

		rows := sqlmock.NewRows([]string{"id", "command", "status"}).
			AddRow("run-1", "fetch", ledger.StatusSucceeded)
		mock.ExpectQuery("SELECT \\* FROM `runs`").WillReturnRows(rows)

		resp := get(t, newTestApp(store, ledger.NewRecorder(gormDB)), "/runs?limit=5")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Count int          `json:"count"`
			Runs  []ledger.Run `json:"runs"`
		}
		decode(t, resp, &body)
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, "run-1", body.Runs[0].ID)
	})
}
