// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "penguins.csv", cfg.DataFile)
	assert.Equal(t, []string{"", "NA", "NaN", "nan", "."}, cfg.MissingTokens)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "species", cfg.GroupField)
	assert.Equal(t, [2]string{"MALE", "FEMALE"}, cfg.SexLevels)
	assert.Equal(t, 0.05, cfg.Alpha)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("EDA_DATA_FILE", "birds.xlsx")
	t.Setenv("EDA_LOG_LEVEL", "debug")
	t.Setenv("EDA_SEX_LEVELS", "male, female")
	t.Setenv("EDA_ALPHA", "0.01")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "birds.xlsx", cfg.DataFile)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, [2]string{"male", "female"}, cfg.SexLevels)
	assert.Equal(t, 0.01, cfg.Alpha)
}

func TestFromEnvInvalid(t *testing.T) {
	for _, tt := range []struct{ key, value string }{
		{"EDA_LOG_LEVEL", "chatty"},
		{"EDA_SEX_LEVELS", "MALE"},
		{"EDA_SEX_LEVELS", "MALE, MALE"},
		{"EDA_SEX_LEVELS", "MALE, "},
		{"EDA_ALPHA", "1.5"},
	} {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EDA_GROUP_FIELD=island\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	// godotenv never overrides a set variable. t.Setenv arranges
	// the restore; the variable must then be unset for the load.
	t.Setenv("EDA_GROUP_FIELD", "")
	os.Unsetenv("EDA_GROUP_FIELD")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "island", cfg.GroupField)
}
