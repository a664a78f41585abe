package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kambari_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "databaseURL: postgres://localhost/kambari\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/kambari", cfg.DatabaseURL)
	assert.Equal(t, []string{"prayer_lead", "scripture_reader", "sharing_lead"}, cfg.Roles)
	assert.Equal(t, DefaultCooldownDays, cfg.CooldownDays)
	assert.Equal(t, DefaultHistoryMonths, cfg.HistoryMonths)
	require.NotNil(t, cfg.IntervalDays)
	assert.Equal(t, DefaultIntervalDays, *cfg.IntervalDays)
	assert.Equal(t, DefaultAnchorRule, cfg.SessionAnchorRule)
	assert.Equal(t, DefaultCountryCode, cfg.CountryCode)
	assert.Equal(t, DefaultAPIKeyEnvVar, cfg.GeminiAPIKeyEnv)
}

func TestLoadFromPath_FiveRoleVariant(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/kambari
roles:
  - worship_leader
  - prayer_leader
  - scripture_reader
  - discussion_leader
  - hospitality
cooldownDays: 21
excludedWeekdays:
  - Sunday
  - Monday
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Len(t, cfg.RoleList(), 5)
	assert.Equal(t, 21, cfg.CooldownDays)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday}, cfg.ExcludedWeekdayList())
}

func TestLoadFromPath_MissingDatabaseURL(t *testing.T) {
	path := writeConfig(t, "cooldownDays: 7\n")

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_BadWeekdayName(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/kambari
excludedWeekdays:
  - Funday
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_AllWeekdaysExcluded(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/kambari
excludedWeekdays: [Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday]
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cover all seven days")
}

func TestLoadFromPath_BadAnchorRule(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/kambari
sessionAnchorRule: "EVERY=FRIDAY"
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sessionAnchorRule")
}

func TestLoadFromPath_BadSenderAddress(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/kambari
gmailSender: not-an-address
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_ZeroIntervalAllowed(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost/kambari
intervalDays: 0
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.IntervalDays)
	assert.Equal(t, 0, *cfg.IntervalDays)
}

func TestLoadFromPath_FileMissing(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
