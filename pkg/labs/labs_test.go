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

package labs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ai102-labs/command-center/pkg/catalog"
	"github.com/ai102-labs/command-center/pkg/config"
	"github.com/ai102-labs/command-center/pkg/validator"
)

func newValidator(t *testing.T, cfg *config.Settings) *validator.Validator {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	v, err := validator.New(cat, Registry(NewServices(cfg)))
	require.NoError(t, err)
	return v
}

func statuses(r *validator.Report) map[string][]validator.Status {
	out := make(map[string][]validator.Status, len(r.Labs))
	for id, layers := range r.Labs {
		for _, l := range layers {
			out[id] = append(out[id], l.Status)
		}
	}
	return out
}

const (
	c  = validator.StatusConceptual
	p  = validator.StatusPass
	ni = validator.StatusNotImplemented
	im = validator.StatusImplemented
)

func TestRegistry_Stubs(t *testing.T) {
	report := newValidator(t, &config.Settings{}).ValidateAll(t.Context())

	want := map[string][]validator.Status{
		"01": {ni, c, ni},
		"02": {c, ni, ni, c, c, c},
		"03": {c, c, c, c},
		"04": {ni, c, ni},
		"05": {ni, c, im, ni},
		"06": {ni, c, c},
		"07": {ni, c, ni},
	}
	if diff := cmp.Diff(want, statuses(report)); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Demo(t *testing.T) {
	report := newValidator(t, &config.Settings{DemoMode: true}).ValidateAll(t.Context())

	want := map[string][]validator.Status{
		"01": {p, c, p},
		"02": {c, p, p, c, c, c},
		"03": {c, c, c, c},
		"04": {p, c, p},
		"05": {p, c, p, p},
		"06": {p, c, c},
		"07": {p, c, p},
	}
	if diff := cmp.Diff(want, statuses(report)); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}
