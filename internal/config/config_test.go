package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestLoadConfigAppliesTestDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: debug
jwt:
  secret: short
  expire_hours: 1
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Test.QuestionsPerTest)
	assert.Equal(t, 2, cfg.Test.QuestionsPerTopic)
	assert.InDelta(t, 0.7, cfg.Test.WeakTopicThreshold, 0.001)
	assert.Equal(t, "reports", cfg.Report.Dir)
}

func TestLoadConfigOverridesTestDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: debug
jwt:
  secret: short
  expire_hours: 1
test:
  questions_per_test: 10
  questions_per_topic: 3
  weak_topic_threshold: 0.5
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Test.QuestionsPerTest)
	assert.Equal(t, 3, cfg.Test.QuestionsPerTopic)
	assert.InDelta(t, 0.5, cfg.Test.WeakTopicThreshold, 0.001)
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: release
jwt:
  secret: short
  expire_hours: 1
`)

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
