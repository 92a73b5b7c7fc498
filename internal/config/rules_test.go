// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDecisionRules(t *testing.T) {
	p := writeRules(t, `
rules:
  nearby: device.range <= 50
  phones: device.deviceTypeId == 14
`)

	rules, err := LoadDecisionRules(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"nearby": "device.range <= 50",
		"phones": "device.deviceTypeId == 14",
	}, rules)
}

func TestLoadDecisionRules_EmptyPath(t *testing.T) {
	rules, err := LoadDecisionRules("")
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadDecisionRules_NoRulesKey(t *testing.T) {
	rules, err := LoadDecisionRules(writeRules(t, "other: 1\n"))
	require.NoError(t, err)
	assert.NotNil(t, rules)
	assert.Empty(t, rules)
}

func TestLoadDecisionRules_Errors(t *testing.T) {
	_, err := LoadDecisionRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadDecisionRules(writeRules(t, "rules: [a, b"))
	assert.ErrorIs(t, err, ErrInvalidDecisionConfigs)

	_, err = LoadDecisionRules(writeRules(t, "rules:\n  empty: \"\"\n"))
	assert.ErrorIs(t, err, ErrInvalidDecisionConfigs)
}
