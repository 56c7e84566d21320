package compare

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xml-compare-api/core/database"
	"xml-compare-api/core/session"
	"xml-compare-api/core/xmldiff"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	rec, err := NewRecorder(db, zap.NewNop())
	require.NoError(t, err)
	return rec
}

func TestRecorder_RecordAndRecent(t *testing.T) {
	rec := newTestRecorder(t)

	rec.Record(RunKindXML, xmldiff.Result{
		Matched:         true,
		MatchRatio:      1.0,
		TotalElements:   2,
		MatchedElements: 2,
		Diffs:           []xmldiff.Diff{},
	}, 5*time.Millisecond)
	rec.Record(RunKindURL, xmldiff.Result{
		Matched:         false,
		MatchRatio:      0.5,
		TotalElements:   2,
		MatchedElements: 1,
		Diffs:           []xmldiff.Diff{{Path: "/a", Kind: xmldiff.ContentDifferent}},
	}, 10*time.Millisecond)

	runs, err := rec.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, RunKindURL, runs[0].Kind)
	assert.False(t, runs[0].Matched)
	assert.Equal(t, 1, runs[0].DiffCount)
	assert.Equal(t, RunKindXML, runs[1].Kind)
	assert.True(t, runs[1].Matched)

	limited, err := rec.Recent(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, RunKindURL, limited[0].Kind)
}

func TestRecorder_FailureDoesNotPropagate(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	rec := &Recorder{db: db, logger: zap.NewNop()}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comparison_runs`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// Must not panic or surface the insert failure.
	rec.Record(RunKindXML, xmldiff.Result{Matched: true, MatchRatio: 1.0}, time.Millisecond)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleHistory_WithRecorder(t *testing.T) {
	rec := newTestRecorder(t)
	rec.Record(RunKindXML, xmldiff.Result{Matched: true, MatchRatio: 1.0, TotalElements: 1, MatchedElements: 1}, time.Millisecond)

	svc := NewService(&fakeSource{}, session.NewStore(), &fakeAuth{}, rec, 4, zap.NewNop())
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/compare/history?limit=5", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var runs []Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	require.Len(t, runs, 1)
	assert.Equal(t, RunKindXML, runs[0].Kind)
	assert.True(t, runs[0].Matched)
}
