package featureflags

import (
	"context"
	"testing"
)

func TestEnvManager_Defaults(t *testing.T) {
	m := NewEnvManager("TEST_DEFAULTS_")
	ctx := context.Background()

	for _, flag := range All {
		if got := m.IsEnabled(ctx, flag); got != Defaults[flag] {
			t.Errorf("IsEnabled(%s) = %v, want default %v", flag, got, Defaults[flag])
		}
	}
}

func TestEnvManager_EnvironmentValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"enabled", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_FLAG_SCHEDULED_REFRESH", tt.value)
			m := NewEnvManager("TEST_FLAG_")

			if got := m.IsEnabled(context.Background(), ScheduledRefresh); got != tt.want {
				t.Errorf("IsEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnvManager_DisableDefaultOn(t *testing.T) {
	t.Setenv("TEST_OFF_METRICS_ENABLED", "false")
	m := NewEnvManager("TEST_OFF_")

	if m.IsEnabled(context.Background(), MetricsEnabled) {
		t.Error("MetricsEnabled should be disabled by environment")
	}
}

func TestEnvManager_DefaultPrefix(t *testing.T) {
	t.Setenv("OPENCOSTS_FEATURE_RATE_LIMIT_ENABLED", "true")
	m := NewEnvManager("")

	if !m.IsEnabled(context.Background(), RateLimitEnabled) {
		t.Error("RateLimitEnabled should be read with the default prefix")
	}
}

func TestEnvManager_OverrideWins(t *testing.T) {
	t.Setenv("TEST_OVR_SNAPSHOT_ENABLED", "true")
	m := NewEnvManager("TEST_OVR_")

	m.SetEnabled(SnapshotEnabled, false)

	if m.IsEnabled(context.Background(), SnapshotEnabled) {
		t.Error("override should take precedence over environment")
	}
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	m := NewEnvManager("TEST_ALL_")
	m.SetEnabled(ScheduledRefresh, true)

	flags := m.GetAllFlags()

	if len(flags) != len(All) {
		t.Fatalf("GetAllFlags() returned %d flags, want %d", len(flags), len(All))
	}
	if !flags[ScheduledRefresh] {
		t.Error("ScheduledRefresh should be enabled")
	}
}

func TestStaticManager(t *testing.T) {
	source := map[FeatureFlag]bool{MetricsEnabled: true}
	m := NewStaticManager(source)
	ctx := context.Background()

	source[MetricsEnabled] = false
	if !m.IsEnabled(ctx, MetricsEnabled) {
		t.Error("StaticManager should copy its input map")
	}
	if m.IsEnabled(ctx, RateLimitEnabled) {
		t.Error("unknown flags should be disabled")
	}

	m.SetEnabled(RateLimitEnabled, true)
	all := m.GetAllFlags()
	all[RateLimitEnabled] = false
	if !m.IsEnabled(ctx, RateLimitEnabled) {
		t.Error("GetAllFlags should return a copy")
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	if IsEnabled(ctx, MetricsEnabled) != Defaults[MetricsEnabled] {
		t.Error("FromContext without a manager should use Defaults")
	}

	m := NewStaticManager(map[FeatureFlag]bool{ScheduledRefresh: true})
	ctx = WithManager(ctx, m)

	if !IsEnabled(ctx, ScheduledRefresh) {
		t.Error("IsEnabled should consult the manager from context")
	}
	if FromContext(ctx) != Manager(m) {
		t.Error("FromContext should return the stored manager")
	}
}
