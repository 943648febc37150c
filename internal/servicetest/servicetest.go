// Package servicetest holds the scaffolding shared by the tests that run
// against a live Assistant instance. Credentials come from a Java-style
// properties file:
//
//	assistant.v2.username=...
//	assistant.v2.password=...
//	assistant.v2.assistant_id=...
//	assistant.v2.url=https://gateway.watsonplatform.net/assistant/api
//
// located through ASSISTANT_TEST_CONFIG or as config.properties in the
// working directory or one of its parents.
package servicetest

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap/zaptest"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

const (
	ConfigEnvVar      = "ASSISTANT_TEST_CONFIG"
	DefaultConfigFile = "config.properties"
	// Placeholder is the username shipped in the sample configuration.
	Placeholder = "SERVICE_USERNAME"
	VersionDate = "2018-07-10"
	Tolerance   = 2 * time.Second
)

// Env is the configuration of one live-service test.
type Env struct {
	Config     *core.ServiceConfig
	Properties *viper.Viper
	Prefix     string
}

// Get returns the property prefix.key, e.g. Get("assistant_id").
func (e *Env) Get(key string) string {
	return e.Properties.GetString(e.Prefix + "." + key)
}

// DefaultHeaders opts test traffic out of learning and marks it as test traffic.
func DefaultHeaders() http.Header {
	return http.Header{
		core.HeaderWatsonLearningOptOut: {"1"},
		core.HeaderWatsonTest:           {"1"},
	}
}

// LoadProperties reads a properties file.
func LoadProperties(path string) (*viper.Viper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values, err := decodeProperties(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	v := viper.New()
	if err := v.MergeConfigMap(values); err != nil {
		return nil, err
	}
	return v, nil
}

// ConfigPath resolves the properties file to load.
func ConfigPath() (string, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(DefaultConfigFile + " not found")
		}
		dir = parent
	}
}

// Setup loads the credentials stored under prefix (e.g. "assistant.v2") and
// skips the test when there are none.
func Setup(t testing.TB, prefix string) *Env {
	t.Helper()
	path, err := ConfigPath()
	if err != nil {
		t.Skipf("no live service configuration: %v", err)
	}
	props, err := LoadProperties(path)
	if err != nil {
		t.Skipf("no live service configuration: %v", err)
	}
	env := &Env{Properties: props, Prefix: prefix}
	username, apiKey := env.Get("username"), env.Get("apikey")
	if (username == "" || username == Placeholder) && apiKey == "" {
		t.Skip("config.properties doesn't have valid credentials.")
	}
	env.Config = &core.ServiceConfig{
		URL:            env.Get("url"),
		Version:        VersionDate,
		Username:       username,
		Password:       env.Get("password"),
		IAMApiKey:      apiKey,
		DefaultHeaders: DefaultHeaders(),
		Logger:         zaptest.NewLogger(t),
	}
	return env
}

// FuzzyBefore reports whether l is before r, allowing for clock skew.
func FuzzyBefore(l, r time.Time) bool {
	return l.Sub(r) < Tolerance
}

// FuzzyAfter reports whether l is after r, allowing for clock skew.
func FuzzyAfter(l, r time.Time) bool {
	return r.Sub(l) < Tolerance
}

// UniqueName returns prefix followed by a random suffix, for resources
// created by tests.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
