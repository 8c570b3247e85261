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

package validator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai102-labs/command-center/pkg/catalog"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
)

const rawSecret = "db password hunter2 leaked in stack trace"

// labX is a two-layer lab: one conceptual layer and one probed layer.
func labX(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Lab{
		ID:    "X",
		Title: "Test Lab",
		Layers: []catalog.LayerSpec{
			{Layer: 1, Name: "Concepts", Conceptual: true},
			{Layer: 2, Name: "Basic Search", Target: "search.search_documents"},
		},
	})
	require.NoError(t, err)
	return cat
}

func probeReturning(err error) Probe {
	return func(context.Context) error { return err }
}

// fullRegistry binds every probed layer of cat to probe.
func fullRegistry(cat *catalog.Catalog, probe Probe) Registry {
	reg := Registry{}
	for _, id := range cat.Labs() {
		layers, _ := cat.Layers(id)
		for _, l := range layers {
			if !l.Conceptual {
				reg[Key{Lab: id, Layer: l.Layer}] = probe
			}
		}
	}
	return reg
}

func newValidator(t *testing.T, cat *catalog.Catalog, reg Registry) *Validator {
	t.Helper()
	v, err := New(cat, reg, WithVersion("test"))
	require.NoError(t, err)
	return v
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, StatusPass},
		{"not implemented", cnserrors.NotImplemented("openai.chat_completion"), StatusNotImplemented},
		{"wrapped not implemented", fmt.Errorf("chat: %w", cnserrors.NotImplemented("openai.chat_completion")), StatusNotImplemented},
		{"unconfigured", cnserrors.Unconfigured("missing key"), StatusImplemented},
		{"structured wrap of unconfigured", cnserrors.Wrap(cnserrors.ErrCodeInternal, "translate", cnserrors.Unconfigured("missing key")), StatusImplemented},
		{"text match", errors.New("Search index not configured"), StatusImplemented},
		{"text match is case-insensitive", errors.New("Endpoint NOT CONFIGURED for region"), StatusImplemented},
		{"text without marker", errors.New("connection refused"), StatusError},
		{"other code", cnserrors.New(cnserrors.ErrCodeTimeout, "deadline"), StatusError},
		{"not implemented wins", cnserrors.Wrap(cnserrors.ErrCodeNotImplemented, "stub", cnserrors.Unconfigured("x")), StatusNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestNew(t *testing.T) {
	cat := labX(t)

	t.Run("nil catalog", func(t *testing.T) {
		_, err := New(nil, nil)
		require.Error(t, err)
	})

	t.Run("missing probe", func(t *testing.T) {
		_, err := New(cat, Registry{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "X/2")
		assert.Contains(t, err.Error(), "has no probe")
	})

	t.Run("nil probe counts as missing", func(t *testing.T) {
		_, err := New(cat, Registry{{Lab: "X", Layer: 2}: nil})
		require.Error(t, err)
	})

	t.Run("probe on conceptual layer", func(t *testing.T) {
		reg := Registry{
			{Lab: "X", Layer: 1}: probeReturning(nil),
			{Lab: "X", Layer: 2}: probeReturning(nil),
		}
		_, err := New(cat, reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "conceptual")
	})

	t.Run("probe on unknown layer", func(t *testing.T) {
		reg := Registry{
			{Lab: "X", Layer: 2}: probeReturning(nil),
			{Lab: "Y", Layer: 1}: probeReturning(nil),
		}
		_, err := New(cat, reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Y/1")
	})

	t.Run("registry is copied", func(t *testing.T) {
		reg := Registry{{Lab: "X", Layer: 2}: probeReturning(nil)}
		v, err := New(cat, reg, WithVersion("1.2.3"))
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", v.Version)

		reg[Key{Lab: "X", Layer: 2}] = probeReturning(errors.New("boom"))
		res := v.ValidateLab(context.Background(), "X")
		assert.Equal(t, StatusPass, res.Layers[1].Status)
	})

	t.Run("default catalog fully covered", func(t *testing.T) {
		def, err := catalog.Default()
		require.NoError(t, err)
		_, err = New(def, fullRegistry(def, probeReturning(nil)))
		require.NoError(t, err)
	})
}

func TestValidateLab_UnconfiguredScenario(t *testing.T) {
	v := newValidator(t, labX(t), Registry{
		{Lab: "X", Layer: 2}: probeReturning(errors.New("Search index not configured")),
	})

	got := v.ValidateLab(context.Background(), "X")

	want := LabResult{
		Lab: "X",
		Layers: []LayerResult{
			{Layer: 1, Name: "Concepts", Status: StatusConceptual, Message: MessageConceptual},
			{Layer: 2, Name: "Basic Search", Status: StatusImplemented, Message: MessageImplemented},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ValidateLab() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateLab_PassScenario(t *testing.T) {
	v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: probeReturning(nil)})

	got := v.ValidateLab(context.Background(), "X")
	require.Len(t, got.Layers, 2)
	assert.Equal(t, StatusPass, got.Layers[1].Status)
	assert.Equal(t, MessagePass, got.Layers[1].Message)
}

func TestValidateLab_UnknownLab(t *testing.T) {
	v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: probeReturning(nil)})

	got := v.ValidateLab(context.Background(), "does-not-exist")
	assert.False(t, got.Known())
	assert.Empty(t, got.Layers)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lab":"does-not-exist","error":"Unknown lab identifier."}`, string(b))
}

func TestValidateLab_KnownLabJSON(t *testing.T) {
	v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: probeReturning(nil)})

	b, err := json.Marshal(v.ValidateLab(context.Background(), "X"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Contains(t, raw, "layers")
	assert.NotContains(t, raw, "error")
}

func TestValidateLayer_ConceptualNeverProbed(t *testing.T) {
	v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: probeReturning(nil)})

	// Inject a probe that would fail loudly if the harness looked it up.
	v.registry[Key{Lab: "X", Layer: 1}] = func(context.Context) error {
		t.Fatal("conceptual layer must not be probed")
		return nil
	}

	got := v.ValidateLayer(context.Background(), "X", catalog.LayerSpec{Layer: 1, Name: "Concepts", Conceptual: true})
	assert.Equal(t, StatusConceptual, got.Status)
}

func TestValidateLayer_RawErrorNeverReturned(t *testing.T) {
	tests := []struct {
		name  string
		probe Probe
		want  Status
	}{
		{"plain error", probeReturning(errors.New(rawSecret)), StatusError},
		{"structured error", probeReturning(cnserrors.Wrap(cnserrors.ErrCodeInternal, rawSecret, errors.New(rawSecret))), StatusError},
		{"panic", func(context.Context) error { panic(rawSecret) }, StatusError},
		{"not configured", probeReturning(errors.New(rawSecret + " not configured")), StatusImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: tt.probe})
			res := v.ValidateLab(context.Background(), "X")
			require.Len(t, res.Layers, 2)

			assert.Equal(t, tt.want, res.Layers[1].Status)
			b, err := json.Marshal(res)
			require.NoError(t, err)
			assert.NotContains(t, string(b), "hunter2")
		})
	}
}

func TestValidateLab_TypedNilError(t *testing.T) {
	v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: func(context.Context) error {
		var se *cnserrors.StructuredError
		return se
	}})

	var res LabResult
	require.NotPanics(t, func() {
		res = v.ValidateLab(context.Background(), "X")
	})
	require.Len(t, res.Layers, 2)
	assert.Equal(t, StatusConceptual, res.Layers[0].Status)
	assert.Equal(t, StatusError, res.Layers[1].Status)
	assert.Equal(t, MessageError, res.Layers[1].Message)
}

func TestRun_ClassifyPanicIsError(t *testing.T) {
	status, err := run(context.Background(), probeReturning(panickyError{}))
	assert.Equal(t, StatusError, status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe panicked")
}

// panickyError panics when its text is read.
type panickyError struct{}

func (panickyError) Error() string { panic("broken Error method") }

func TestValidateLayer_ProbeRunsOnce(t *testing.T) {
	calls := 0
	v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: func(context.Context) error {
		calls++
		return errors.New("transient")
	}})

	v.ValidateLab(context.Background(), "X")
	assert.Equal(t, 1, calls)
}

func TestValidateLayer_MissingProbe(t *testing.T) {
	v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: probeReturning(nil)})
	delete(v.registry, Key{Lab: "X", Layer: 2})

	got := v.ValidateLayer(context.Background(), "X", catalog.LayerSpec{Layer: 2, Name: "Basic Search", Target: "search.search_documents"})
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, MessageError, got.Message)
}

func TestValidateLab_PreservesOrder(t *testing.T) {
	def, err := catalog.Default()
	require.NoError(t, err)

	reg := fullRegistry(def, probeReturning(nil))
	// Mix outcomes so that ordering cannot follow status.
	reg[Key{Lab: "05", Layer: 1}] = probeReturning(errors.New("boom"))
	reg[Key{Lab: "05", Layer: 3}] = probeReturning(cnserrors.Unconfigured("translator"))
	reg[Key{Lab: "05", Layer: 4}] = probeReturning(cnserrors.NotImplemented("language.speech_to_text"))
	v := newValidator(t, def, reg)

	res := v.ValidateLab(context.Background(), "05")

	var layers []int
	var statuses []Status
	for _, l := range res.Layers {
		layers = append(layers, l.Layer)
		statuses = append(statuses, l.Status)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, layers); diff != "" {
		t.Errorf("layer order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Status{StatusError, StatusConceptual, StatusImplemented, StatusNotImplemented}, statuses); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateLab_FailureDoesNotAffectNextLayer(t *testing.T) {
	cat, err := catalog.New(catalog.Lab{
		ID: "seq",
		Layers: []catalog.LayerSpec{
			{Layer: 1, Name: "first", Target: "a.first"},
			{Layer: 2, Name: "second", Target: "a.second"},
		},
	})
	require.NoError(t, err)

	var order []int
	v := newValidator(t, cat, Registry{
		{Lab: "seq", Layer: 1}: func(context.Context) error {
			order = append(order, 1)
			panic("first layer exploded")
		},
		{Lab: "seq", Layer: 2}: func(context.Context) error {
			order = append(order, 2)
			return nil
		},
	})

	res := v.ValidateLab(context.Background(), "seq")
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, StatusError, res.Layers[0].Status)
	assert.Equal(t, StatusPass, res.Layers[1].Status)
}

func TestValidateLab_CanceledContextStillRuns(t *testing.T) {
	v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: probeReturning(nil)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := v.ValidateLab(ctx, "X")
	assert.Equal(t, StatusPass, res.Layers[1].Status)
}

func TestValidateAll(t *testing.T) {
	def, err := catalog.Default()
	require.NoError(t, err)

	var visited []string
	reg := Registry{}
	for k := range fullRegistry(def, nil) {
		lab := k.Lab
		reg[k] = func(context.Context) error {
			visited = append(visited, lab)
			return cnserrors.NotImplemented(lab)
		}
	}
	v := newValidator(t, def, reg)

	report := v.ValidateAll(context.Background())

	assert.Equal(t, def.SortedLabs(), report.LabIDs())
	assert.NotContains(t, report.Labs, "does-not-exist")
	for i := 1; i < len(visited); i++ {
		assert.LessOrEqual(t, visited[i-1], visited[i], "labs must be visited in ascending order")
	}

	s := report.Summarize(0)
	assert.Equal(t, def.Len(), s.Labs)
	assert.Equal(t, 26, s.Layers)
	assert.Zero(t, s.Counts[StatusPass])
	assert.Equal(t, s.Layers, s.Counts[StatusConceptual]+s.Counts[StatusNotImplemented])

	b, err := json.Marshal(report)
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Len(t, raw, 1, "HTTP report only carries labs")
	assert.Contains(t, raw, "labs")
}

func TestNewReport(t *testing.T) {
	v := newValidator(t, labX(t), Registry{{Lab: "X", Layer: 2}: probeReturning(nil)})

	report := v.NewReport(context.Background())
	require.NotNil(t, report.Summary)
	assert.Equal(t, "ValidationReport", report.Kind.String())
	assert.Equal(t, "test", report.Metadata["version"])
	assert.Equal(t, 1, report.Summary.Counts[StatusPass])
	assert.Equal(t, 1, report.Summary.Counts[StatusConceptual])
	assert.Equal(t, 1, report.Summary.Labs)
	assert.Equal(t, 2, report.Summary.Layers)
	assert.GreaterOrEqual(t, report.Summary.Duration, time.Duration(0))

	plain := v.ValidateAll(context.Background())
	assert.Nil(t, plain.Summary, "summary is only computed for enveloped reports")

	rows := report.TableRows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"X", "2", "Basic Search", "pass", MessagePass}, rows[1])
}

func TestHandlers(t *testing.T) {
	v := newValidator(t, labX(t), Registry{
		{Lab: "X", Layer: 2}: probeReturning(errors.New("Search index not configured")),
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/validate", v.HandleValidateAll)
	mux.HandleFunc("/api/validate/{lab}", v.HandleValidateLab)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "single lab",
			method:     http.MethodGet,
			path:       "/api/validate/X",
			wantStatus: http.StatusOK,
			wantBody: `{"lab":"X","layers":[
				{"layer":1,"name":"Concepts","status":"conceptual","message":"Conceptual layer: no code to validate."},
				{"layer":2,"name":"Basic Search","status":"implemented","message":"Code is implemented but Azure credentials are not configured."}]}`,
		},
		{
			name:       "unknown lab",
			method:     http.MethodGet,
			path:       "/api/validate/does-not-exist",
			wantStatus: http.StatusOK,
			wantBody:   `{"lab":"does-not-exist","error":"Unknown lab identifier."}`,
		},
		{
			name:       "all labs",
			method:     http.MethodGet,
			path:       "/api/validate",
			wantStatus: http.StatusOK,
			wantBody: `{"labs":{"X":[
				{"layer":1,"name":"Concepts","status":"conceptual","message":"Conceptual layer: no code to validate."},
				{"layer":2,"name":"Basic Search","status":"implemented","message":"Code is implemented but Azure credentials are not configured."}]}}`,
		},
		{
			name:       "post not allowed",
			method:     http.MethodPost,
			path:       "/api/validate/X",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			if tt.wantStatus == http.StatusMethodNotAllowed {
				assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
				assert.True(t, strings.Contains(w.Body.String(), "METHOD_NOT_ALLOWED"))
			}
		})
	}
}
