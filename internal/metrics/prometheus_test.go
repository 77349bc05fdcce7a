package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordJob(t *testing.T) {
	before := testutil.ToFloat64(JobRunsTotal.WithLabelValues("test-job", "success"))

	RecordJob("test-job", "success", 1.5)

	assert.Equal(t, before+1, testutil.ToFloat64(JobRunsTotal.WithLabelValues("test-job", "success")))
	assert.Greater(t, testutil.ToFloat64(LastSuccessfulLoad.WithLabelValues("test-job")), float64(0))
}

func TestRecordJob_FailureKeepsLastSuccess(t *testing.T) {
	RecordJob("failing-job", "error", 0.2)

	assert.Equal(t, float64(1), testutil.ToFloat64(JobRunsTotal.WithLabelValues("failing-job", "error")))
	assert.Zero(t, testutil.ToFloat64(LastSuccessfulLoad.WithLabelValues("failing-job")))
}

func TestRecordRows(t *testing.T) {
	RecordRows("rows-job", 10, 2, 8, 1)

	assert.Equal(t, float64(10), testutil.ToFloat64(RowsReadTotal.WithLabelValues("rows-job")))
	assert.Equal(t, float64(2), testutil.ToFloat64(RowsUnmatchedTotal.WithLabelValues("rows-job")))
	assert.Equal(t, float64(8), testutil.ToFloat64(RowsInsertedTotal.WithLabelValues("rows-job")))
	assert.Equal(t, float64(1), testutil.ToFloat64(IDsNullifiedTotal.WithLabelValues("rows-job")))
}

func TestRecordDBQuery(t *testing.T) {
	RecordDBQuery("copy", "test_table", "error", 0.01)

	assert.Equal(t, float64(1), testutil.ToFloat64(DBQueriesTotal.WithLabelValues("copy", "test_table", "error")))
}

func TestPush(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	UpdateTableRows("teams", 30)
	err := Push(srv.URL, "nbaload_teams", "run-123")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/metrics/job/nbaload_teams/run_id/run-123", gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestPush_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := Push(srv.URL, "nbaload_teams", "run-123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to push metrics")
}
