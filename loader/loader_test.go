package loader

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"propdesk/database"
	"propdesk/model"

	json "github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabaseSeedsTemplatesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propdesk.db")

	db, err := InitDatabase(path)
	require.NoError(t, err)
	templates, err := database.GetAllTemplates(db)
	require.NoError(t, err)
	assert.Len(t, templates, len(starterTemplates))
	require.NoError(t, db.Close())

	db, err = InitDatabase(path)
	require.NoError(t, err)
	defer db.Close()
	templates, err = database.GetAllTemplates(db)
	require.NoError(t, err)
	assert.Len(t, templates, len(starterTemplates))
}

func TestInitDatabaseContinuesPropertyCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propdesk.db")
	db, err := InitDatabase(path)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO properties (property_code, name, address, status) VALUES ('PR00017', 'Imported', '2 Side St', 'active')`)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	ResequenceHandler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/system/resequence", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var code string
	require.NoError(t, database.WithTx(db, func(tx *sqlx.Tx) error {
		p := model.Property{Name: "Next", Address: "3 Side St", Status: model.PropertyStatusActive}
		if _, err := database.CreatePropertyInTx(tx, &p); err != nil {
			return err
		}
		code = p.PropertyCode
		return nil
	}))
	assert.Equal(t, "PR00018", code)
	require.NoError(t, db.Close())
}

func TestStatusHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propdesk.db")
	db, err := InitDatabase(path)
	require.NoError(t, err)
	defer db.Close()

	rec := httptest.NewRecorder()
	StatusHandler(path)(rec, httptest.NewRequest(http.MethodGet, "/api/system/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		SchemaVersion uint `json:"schemaVersion"`
		Dirty         bool `json:"dirty"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint(1), body.SchemaVersion)
	assert.False(t, body.Dirty)
}
