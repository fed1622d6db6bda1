package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine matches a sample line while tolerating the otel scope labels the exporter adds.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	assert.Regexp(t, name+`\{[^}]*`+labels+`[^}]*\} `+value, output)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusFor(nil))
	assert.Equal(t, StatusError, StatusFor(errors.New("decryption failed")))
}

func TestBusinessMetrics_Exported(t *testing.T) {
	provider, err := NewProvider("greensupia_test", WithRuntimeMetrics(false))
	require.NoError(t, err)
	defer func() { assert.NoError(t, provider.Shutdown(context.Background())) }()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "greensupia_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "crypto", "encrypt", StatusSuccess)
	bm.RecordOperation(ctx, "crypto", "encrypt", StatusSuccess)
	bm.RecordOperation(ctx, "crypto", "decrypt", StatusError)
	bm.RecordOperation(ctx, "crypto", "password_verify", StatusInvalid)
	bm.RecordOperation(ctx, "auth", "admin_login", StatusSuccess)

	bm.RecordDuration(ctx, "crypto", "encrypt", 80*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "crypto", "encrypt", 90*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "auth", "admin_login", 3*time.Second, StatusSuccess)

	output := scrape(t, provider)

	assertMetricLine(t, output, `greensupia_test_operations_total`,
		`domain="crypto".*operation="encrypt".*status="success"`, `2`)
	assertMetricLine(t, output, `greensupia_test_operations_total`,
		`domain="crypto".*operation="decrypt".*status="error"`, `1`)
	assertMetricLine(t, output, `greensupia_test_operations_total`,
		`domain="crypto".*operation="password_verify".*status="invalid"`, `1`)
	assertMetricLine(t, output, `greensupia_test_operation_duration_seconds_count`,
		`domain="crypto".*operation="encrypt".*status="success"`, `2`)
	assertMetricLine(t, output, `greensupia_test_operation_duration_seconds_bucket`,
		`domain="auth".*operation="admin_login".*le="5"`, `1`)
	assertMetricLine(t, output, `greensupia_test_operation_duration_seconds_bucket`,
		`domain="auth".*operation="admin_login".*le="2.5"`, `0`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()
	assert.IsType(t, &NoOpBusinessMetrics{}, noOp)

	assert.NotPanics(t, func() {
		noOp.RecordOperation(context.Background(), "crypto", "encrypt", StatusSuccess)
		noOp.RecordDuration(context.Background(), "auth", "admin_login", time.Second, StatusError)
	})
}
