package metrics

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// resetGlobalState resets the global metrics state between tests.
// This is necessary because we're testing a singleton pattern.
func resetGlobalState() {
	initMutex.Lock()
	defer initMutex.Unlock()
	instance = nil
	initialized = false
	initErr = nil
}

// TestDisabledConfig verifies that when metrics are disabled,
// no OTLP connection is attempted (P0 Fix #1).
func TestDisabledConfig(t *testing.T) {
	resetGlobalState()

	config := MetricsConfig{
		OTLPEndpoint:     "invalid-host:9999", // Would fail if connection attempted
		ExportIntervalMS: 1000,
		ServiceName:      "test-service",
		ServiceVersion:   "1.0.0",
		GlobalTags:       map[string]string{},
		Enabled:          false, // Disabled
	}

	err := InitMetricCreator(config)
	if err != nil {
		t.Fatalf("InitMetricCreator with Enabled=false should not error, got: %v", err)
	}

	// GetMetricCreator should return nil when disabled
	mc := GetMetricCreator()
	if mc != nil {
		t.Error("GetMetricCreator() should return nil when metrics are disabled")
	}
}

// TestRetryOnFailure verifies that initialization can be retried after
// initial failure (P0 Fix #2 - replacing sync.Once with mutex).
// This test verifies the key behavior: unlike sync.Once, the mutex-based
// implementation allows retry on failure instead of permanently caching errors.
func TestRetryOnFailure(t *testing.T) {
	resetGlobalState()

	// First, manually inject a failure scenario by calling InitMetricCreator
	// before we've properly initialized. We'll verify idempotent behavior.
	config := MetricsConfig{
		OTLPEndpoint:     "localhost:4317",
		ExportIntervalMS: 60000,
		ServiceName:      "test-service",
		ServiceVersion:   "1.0.0",
		GlobalTags:       map[string]string{},
		Enabled:          true,
	}

	// First call - may succeed or fail depending on whether collector is available
	err1 := InitMetricCreator(config)
	firstInstance := GetMetricCreator()

	// Second call with same config - this tests the key property
	err2 := InitMetricCreator(config)
	secondInstance := GetMetricCreator()

	// Key assertions for mutex-based retry logic:
	if err1 != nil && err2 != nil {
		// Both failed - verify we retried (didn't use sync.Once cached error)
		// With sync.Once, second call would return cached error without retry
		// We can't easily distinguish, but at least verify consistency
		if firstInstance != nil || secondInstance != nil {
			t.Error("Both inits failed but instance is not nil")
		}
		t.Logf("Both initializations failed (expected if no OTLP collector): %v", err1)
	} else if err1 == nil && err2 == nil {
		// Both succeeded - verify idempotency (same instance)
		if firstInstance == nil || secondInstance == nil {
			t.Error("Both inits succeeded but instance is nil")
		}
		if firstInstance != secondInstance {
			t.Error("Second init should return same instance (idempotent)")
		}
		defer firstInstance.Shutdown(context.Background())
	} else {
		// One succeeded, one failed - this shouldn't happen with proper mutex
		t.Errorf("Inconsistent initialization: first err=%v, second err=%v", err1, err2)
	}

	// Test that we can continue calling init multiple times
	for i := 0; i < 5; i++ {
		errN := InitMetricCreator(config)
		// All calls should return consistent results
		if (err1 == nil) != (errN == nil) {
			t.Errorf("Init call %d returned different result than first call", i)
		}
	}
}

// TestMetadataValidation verifies that attempting to record a metric with
// the same name but different metadata fails with a clear error (P0 Fix #3).
func TestMetadataValidation(t *testing.T) {
	resetGlobalState()

	// Note: This test doesn't actually connect to an OTLP collector.
	// The meter.Int64Counter() call succeeds locally, but won't export without a collector.
	// For testing metadata validation, we need a successful init, so we use localhost
	// which may or may not have a collector running (the test works either way).
	config := MetricsConfig{
		OTLPEndpoint:     "localhost:4317",
		ExportIntervalMS: 60000, // Long interval to avoid export attempts during test
		ServiceName:      "test-service",
		ServiceVersion:   "1.0.0",
		GlobalTags:       map[string]string{},
		Enabled:          true,
	}

	err := InitMetricCreator(config)
	if err != nil {
		// If localhost:4317 is not available, skip this test
		t.Skipf("Skipping TestMetadataValidation: could not initialize metrics: %v", err)
		return
	}
	defer func() {
		if mc := GetMetricCreator(); mc != nil {
			_ = mc.Shutdown(context.Background())
		}
	}()

	mc := GetMetricCreator()
	if mc == nil {
		t.Fatal("GetMetricCreator() returned nil after successful init")
	}

	ctx := context.Background()

	// First recording with specific metadata
	err = mc.RecordCounter(ctx, "test_metric", 1, "count", "Test counter", map[string]string{})
	if err != nil {
		t.Fatalf("First RecordCounter failed: %v", err)
	}

	// Second recording with DIFFERENT unit should fail
	err = mc.RecordCounter(ctx, "test_metric", 1, "requests", "Test counter", map[string]string{})
	if err == nil {
		t.Fatal("Expected error when recording metric with different unit")
	}
	if !strings.Contains(err.Error(), "already exists with different metadata") {
		t.Errorf("Expected metadata conflict error, got: %v", err)
	}

	// Third recording with DIFFERENT description should fail
	err = mc.RecordCounter(ctx, "test_metric", 1, "count", "Different description", map[string]string{})
	if err == nil {
		t.Fatal("Expected error when recording metric with different description")
	}
	if !strings.Contains(err.Error(), "already exists with different metadata") {
		t.Errorf("Expected metadata conflict error, got: %v", err)
	}

	// Fourth recording with SAME metadata should succeed
	err = mc.RecordCounter(ctx, "test_metric", 1, "count", "Test counter", map[string]string{})
	if err != nil {
		t.Errorf("Recording with same metadata should succeed, got error: %v", err)
	}
}

// TestMetadataValidationAcrossInstrumentTypes verifies that different
// instrument types (counter, histogram) can have the same name without conflict.
func TestMetadataValidationAcrossInstrumentTypes(t *testing.T) {
	resetGlobalState()

	config := MetricsConfig{
		OTLPEndpoint:     "localhost:4317",
		ExportIntervalMS: 60000,
		ServiceName:      "test-service",
		ServiceVersion:   "1.0.0",
		GlobalTags:       map[string]string{},
		Enabled:          true,
	}

	err := InitMetricCreator(config)
	if err != nil {
		t.Skipf("Skipping test: could not initialize metrics: %v", err)
		return
	}
	defer func() {
		if mc := GetMetricCreator(); mc != nil {
			_ = mc.Shutdown(context.Background())
		}
	}()

	mc := GetMetricCreator()
	ctx := context.Background()

	// Counter and histogram can have the same name (different caches)
	err = mc.RecordCounter(ctx, "shared_name", 1, "count", "Counter", map[string]string{})
	if err != nil {
		t.Fatalf("RecordCounter failed: %v", err)
	}

	err = mc.RecordHistogram(ctx, "shared_name", 1.5, "seconds", "Histogram", map[string]string{})
	if err != nil {
		t.Fatalf("RecordHistogram with same name should succeed: %v", err)
	}

	// But counter metadata must still be consistent
	err = mc.RecordCounter(ctx, "shared_name", 1, "requests", "Counter", map[string]string{})
	if err == nil {
		t.Error("Expected error when recording counter with different metadata")
	}
}

// TestConcurrentInit verifies thread safety of concurrent InitMetricCreator calls.
func TestConcurrentInit(t *testing.T) {
	resetGlobalState()

	config := MetricsConfig{
		OTLPEndpoint:     "localhost:4317",
		ExportIntervalMS: 60000,
		ServiceName:      "test-service",
		ServiceVersion:   "1.0.0",
		GlobalTags:       map[string]string{},
		Enabled:          true,
	}

	const numGoroutines = 10
	var wg sync.WaitGroup
	var successCount int32
	var errorCount int32

	// Launch multiple goroutines calling InitMetricCreator concurrently
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := InitMetricCreator(config)
			if err != nil {
				atomic.AddInt32(&errorCount, 1)
			} else {
				atomic.AddInt32(&successCount, 1)
			}
		}()
	}

	wg.Wait()

	// Either all succeed (if localhost:4317 is available) or all fail (if not)
	if successCount > 0 && errorCount > 0 {
		t.Errorf("Inconsistent initialization: %d successes, %d errors", successCount, errorCount)
	}

	// If successful, verify only one instance was created
	if successCount > 0 {
		mc := GetMetricCreator()
		if mc == nil {
			t.Error("GetMetricCreator() returned nil after successful concurrent init")
		}
		_ = mc.Shutdown(context.Background())
	}
}

// TestConcurrentRecording verifies thread safety of concurrent metric recording.
func TestConcurrentRecording(t *testing.T) {
	resetGlobalState()

	config := MetricsConfig{
		OTLPEndpoint:     "localhost:4317",
		ExportIntervalMS: 60000,
		ServiceName:      "test-service",
		ServiceVersion:   "1.0.0",
		GlobalTags:       map[string]string{},
		Enabled:          true,
	}

	err := InitMetricCreator(config)
	if err != nil {
		t.Skipf("Skipping test: could not initialize metrics: %v", err)
		return
	}
	defer func() {
		if mc := GetMetricCreator(); mc != nil {
			_ = mc.Shutdown(context.Background())
		}
	}()

	mc := GetMetricCreator()
	ctx := context.Background()

	const numGoroutines = 20
	const numRecordings = 100
	var wg sync.WaitGroup

	// Launch multiple goroutines recording metrics concurrently
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numRecordings; j++ {
				metricName := fmt.Sprintf("concurrent_metric_%d", id%3) // 3 unique metrics
				err := mc.RecordCounter(ctx, metricName, 1, "count", "Concurrent test", map[string]string{
					"goroutine": fmt.Sprintf("%d", id),
				})
				if err != nil {
					t.Errorf("RecordCounter failed in goroutine %d: %v", id, err)
				}
			}
		}(i)
	}

	wg.Wait()
}

// TestFlagConversion verifies that MetricsFlagPointers.ToMetricsConfig()
// produces correct configuration.
func TestFlagConversion(t *testing.T) {
	enable := true
	host := "collector.example.com"
	port := 4318
	intervalMS := 5000
	component := "test-component"
	version := "2.0.0"

	flagPtrs := &MetricsFlagPointers{
		enable:     &enable,
		host:       &host,
		port:       &port,
		intervalMS: &intervalMS,
		component:  &component,
		version:    &version,
	}

	config := flagPtrs.ToMetricsConfig()

	// Verify all fields are correctly converted
	if config.Enabled != enable {
		t.Errorf("Expected Enabled=%v, got %v", enable, config.Enabled)
	}
	expectedEndpoint := "collector.example.com:4318"
	if config.OTLPEndpoint != expectedEndpoint {
		t.Errorf("Expected OTLPEndpoint=%q, got %q", expectedEndpoint, config.OTLPEndpoint)
	}
	if config.ExportIntervalMS != intervalMS {
		t.Errorf("Expected ExportIntervalMS=%d, got %d", intervalMS, config.ExportIntervalMS)
	}
	if config.ServiceName != component {
		t.Errorf("Expected ServiceName=%q, got %q", component, config.ServiceName)
	}
	if config.ServiceVersion != version {
		t.Errorf("Expected ServiceVersion=%q, got %q", version, config.ServiceVersion)
	}
	if config.GlobalTags == nil {
		t.Error("Expected GlobalTags to be initialized, got nil")
	}
}

// TestNilMetricCreatorGracefulDegradation verifies that calling recording
// methods on a nil MetricCreator doesn't panic.
func TestNilMetricCreatorGracefulDegradation(t *testing.T) {
	resetGlobalState()

	// Don't initialize metrics
	mc := GetMetricCreator() // Should be nil
	if mc != nil {
		t.Fatal("Expected nil MetricCreator before initialization")
	}

	ctx := context.Background()

	// All recording methods should gracefully return nil when mc is nil
	var nilMC *MetricCreator

	err := nilMC.RecordCounter(ctx, "test", 1, "count", "desc", nil)
	if err != nil {
		t.Errorf("RecordCounter on nil should return nil, got: %v", err)
	}

	err = nilMC.RecordUpDownCounter(ctx, "test", 1, "count", "desc", nil)
	if err != nil {
		t.Errorf("RecordUpDownCounter on nil should return nil, got: %v", err)
	}

	err = nilMC.RecordHistogram(ctx, "test", 1.0, "seconds", "desc", nil)
	if err != nil {
		t.Errorf("RecordHistogram on nil should return nil, got: %v", err)
	}

	err = nilMC.Shutdown(ctx)
	if err != nil {
		t.Errorf("Shutdown on nil should return nil, got: %v", err)
	}
}

// TestInitAfterSuccessfulInit verifies that calling InitMetricCreator
// after successful initialization is idempotent.
func TestInitAfterSuccessfulInit(t *testing.T) {
	resetGlobalState()

	config := MetricsConfig{
		OTLPEndpoint:     "localhost:4317",
		ExportIntervalMS: 60000,
		ServiceName:      "test-service",
		ServiceVersion:   "1.0.0",
		GlobalTags:       map[string]string{},
		Enabled:          true,
	}

	err := InitMetricCreator(config)
	if err != nil {
		t.Skipf("Skipping test: could not initialize metrics: %v", err)
		return
	}
	defer func() {
		if mc := GetMetricCreator(); mc != nil {
			_ = mc.Shutdown(context.Background())
		}
	}()

	firstInstance := GetMetricCreator()
	if firstInstance == nil {
		t.Fatal("Expected non-nil instance after first init")
	}

	// Call init again - should be idempotent
	err = InitMetricCreator(config)
	if err != nil {
		t.Errorf("Second InitMetricCreator should succeed: %v", err)
	}

	secondInstance := GetMetricCreator()
	if secondInstance != firstInstance {
		t.Error("Expected same instance after second init (idempotent)")
	}
}

// TestGlobalTags verifies that global tags are included in all metrics.
func TestGlobalTags(t *testing.T) {
	resetGlobalState()

	config := MetricsConfig{
		OTLPEndpoint:     "localhost:4317",
		ExportIntervalMS: 60000,
		ServiceName:      "test-service",
		ServiceVersion:   "1.0.0",
		GlobalTags: map[string]string{
			"environment": "test",
			"cluster":     "local",
		},
		Enabled: true,
	}

	err := InitMetricCreator(config)
	if err != nil {
		t.Skipf("Skipping test: could not initialize metrics: %v", err)
		return
	}
	defer func() {
		if mc := GetMetricCreator(); mc != nil {
			_ = mc.Shutdown(context.Background())
		}
	}()

	mc := GetMetricCreator()
	ctx := context.Background()

	// Record metric with call-specific tags
	callTags := map[string]string{
		"endpoint": "/api/v1/test",
	}

	err = mc.RecordCounter(ctx, "test_metric", 1, "count", "Test", callTags)
	if err != nil {
		t.Fatalf("RecordCounter failed: %v", err)
	}

	// Verify global tags are stored (we can't directly inspect attributes sent to OTLP,
	// but we can verify the global tags are stored in the MetricCreator)
	if len(mc.globalTags) != 2 {
		t.Errorf("Expected 2 global tags, got %d", len(mc.globalTags))
	}
	if mc.globalTags["environment"] != "test" {
		t.Errorf("Expected environment=test, got %s", mc.globalTags["environment"])
	}
	if mc.globalTags["cluster"] != "local" {
		t.Errorf("Expected cluster=local, got %s", mc.globalTags["cluster"])
	}
}

// TestShutdown verifies that Shutdown flushes metrics and can be called multiple times.
func TestShutdown(t *testing.T) {
	resetGlobalState()

	config := MetricsConfig{
		OTLPEndpoint:     "localhost:4317",
		ExportIntervalMS: 60000,
		ServiceName:      "test-service",
		ServiceVersion:   "1.0.0",
		GlobalTags:       map[string]string{},
		Enabled:          true,
	}

	err := InitMetricCreator(config)
	if err != nil {
		t.Skipf("Skipping test: could not initialize metrics: %v", err)
		return
	}

	mc := GetMetricCreator()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Record a metric
	_ = mc.RecordCounter(ctx, "shutdown_test", 1, "count", "Test", nil)

	// First shutdown - may fail if no collector available, but should not panic
	err = mc.Shutdown(ctx)
	// Don't fail on timeout or connection refused - these are expected without a collector
	if err != nil && !strings.Contains(err.Error(), "deadline exceeded") &&
		!strings.Contains(err.Error(), "connection refused") &&
		!strings.Contains(err.Error(), "failed to upload metrics") {
		t.Errorf("Unexpected shutdown error: %v", err)
	}

	// Second shutdown should not panic even if already shut down
	// It may return an error about reader being shutdown, which is fine
	_ = mc.Shutdown(ctx)
}
