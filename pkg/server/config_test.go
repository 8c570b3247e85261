// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig()

		assert.Empty(t, cfg.Address)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.EqualValues(t, 100, cfg.RateLimit)
		assert.Equal(t, 200, cfg.RateLimitBurst)
		assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
		assert.Equal(t, 150*time.Second, cfg.WriteTimeout)
		assert.Equal(t, 180*time.Second, cfg.IdleTimeout)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
		assert.Empty(t, cfg.CORSOrigins)
	})

	t.Run("custom port from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")

		cfg := parseConfig()
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("invalid port from environment uses default", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg := parseConfig()
		assert.Equal(t, DefaultPort, cfg.Port)
	})

	t.Run("rate limit from environment", func(t *testing.T) {
		t.Setenv("RATE_LIMIT", "5")
		t.Setenv("RATE_LIMIT_BURST", "10")

		cfg := parseConfig()
		assert.EqualValues(t, 5, cfg.RateLimit)
		assert.Equal(t, 10, cfg.RateLimitBurst)
	})

	t.Run("non-positive values are ignored", func(t *testing.T) {
		t.Setenv("RATE_LIMIT", "0")
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-3")

		cfg := parseConfig()
		assert.EqualValues(t, 100, cfg.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("shutdown timeout from environment", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "7")

		cfg := parseConfig()
		assert.Equal(t, 7*time.Second, cfg.ShutdownTimeout)
	})
}

func TestPositiveInt(t *testing.T) {
	const key = "CC_TEST_POSITIVE_INT"
	os.Unsetenv(key)

	_, ok := positiveInt(key)
	assert.False(t, ok, "unset")

	t.Setenv(key, "42")
	n, ok := positiveInt(key)
	assert.True(t, ok)
	assert.Equal(t, 42, n)
}
