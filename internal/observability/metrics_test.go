package observability

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(GetFailures(ReasonKeyNotFound))
	RecordGetFailure(ReasonKeyNotFound)
	assert.Equal(t, before+1, testutil.ToFloat64(GetFailures(ReasonKeyNotFound)))

	okBefore := testutil.ToFloat64(BundleOps("gnss_log", "pack", "ok"))
	errBefore := testutil.ToFloat64(BundleOps("gnss_log", "pack", "error"))
	RecordBundleOp("gnss_log", "pack", nil)
	RecordBundleOp("gnss_log", "pack", errors.New("boom"))
	assert.Equal(t, okBefore+1, testutil.ToFloat64(BundleOps("gnss_log", "pack", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(BundleOps("gnss_log", "pack", "error")))

	RecordItemList("encode", 42)
}
