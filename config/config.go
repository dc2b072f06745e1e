// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads the analysis settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config holds the settings shared by the command-line tools.
type Config struct {
	// DataFile is the CSV or XLSX file to analyze.
	DataFile string
	// Sheet is the worksheet read from XLSX files.
	Sheet string
	// MissingTokens are cell contents read as missing values.
	MissingTokens []string

	// LogLevel is a logrus level name.
	LogLevel logrus.Level

	// Addr is the listen address of the HTTP API.
	Addr string

	// GroupField is the categorical field compared by ANOVA.
	GroupField string
	// SexField and SexLevels select the two groups compared by
	// the dimorphism tests.
	SexField  string
	SexLevels [2]string

	// Alpha is the significance level used in reports.
	Alpha float64
}

// Load reads an optional .env file from the working directory and
// then the EDA_* environment variables, falling back to defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "read .env")
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment alone.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DataFile:      getEnvOrDefault("EDA_DATA_FILE", "penguins.csv"),
		Sheet:         getEnvOrDefault("EDA_SHEET", ""),
		MissingTokens: strings.Split(getEnvOrDefault("EDA_MISSING_TOKENS", ",NA,NaN,nan,."), ","),
		Addr:          getEnvOrDefault("EDA_ADDR", ":8080"),
		GroupField:    getEnvOrDefault("EDA_GROUP_FIELD", "species"),
		SexField:      getEnvOrDefault("EDA_SEX_FIELD", "sex"),
	}

	level, err := logrus.ParseLevel(getEnvOrDefault("EDA_LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "EDA_LOG_LEVEL")
	}
	cfg.LogLevel = level

	levels := strings.Split(getEnvOrDefault("EDA_SEX_LEVELS", "MALE,FEMALE"), ",")
	for i := range levels {
		levels[i] = strings.TrimSpace(levels[i])
	}
	if len(levels) != 2 || levels[0] == "" || levels[1] == "" || levels[0] == levels[1] {
		return nil, errors.Errorf("EDA_SEX_LEVELS: want two distinct comma-separated levels, got %q", os.Getenv("EDA_SEX_LEVELS"))
	}
	cfg.SexLevels = [2]string{levels[0], levels[1]}

	cfg.Alpha, err = getEnvFloatOrDefault("EDA_ALPHA", 0.05)
	if err != nil {
		return nil, err
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return nil, errors.Errorf("EDA_ALPHA: %v not in (0, 1)", cfg.Alpha)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	return f, nil
}
