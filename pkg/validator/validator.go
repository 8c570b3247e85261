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
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/ai102-labs/command-center/pkg/catalog"
	cnserrors "github.com/ai102-labs/command-center/pkg/errors"
	"github.com/ai102-labs/command-center/pkg/header"
)

// Probe invokes one capability function with its fixed test arguments.
type Probe func(ctx context.Context) error

// Key identifies a layer within the catalog.
type Key struct {
	Lab   string
	Layer int
}

// String returns the key as "lab/layer".
func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.Lab, k.Layer)
}

// Registry binds non-conceptual layers to their probes.
type Registry map[Key]Probe

// unconfiguredMarker is matched in error text for capabilities that do not
// return a typed error.
const unconfiguredMarker = "not configured"

// Validator runs layer probes against a catalog.
type Validator struct {
	// Version is the validator version (typically the binary version).
	Version string

	catalog  *catalog.Catalog
	registry Registry
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a Validator over cat using the probes in reg. It fails when a
// non-conceptual layer has no probe, or when a probe is bound to a conceptual
// or unknown layer. The registry is copied.
func New(cat *catalog.Catalog, reg Registry, opts ...Option) (*Validator, error) {
	if cat == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "catalog cannot be nil")
	}

	v := &Validator{
		catalog:  cat,
		registry: make(Registry, len(reg)),
	}
	for k, p := range reg {
		v.registry[k] = p
	}
	for _, opt := range opts {
		opt(v)
	}

	if err := v.checkCoverage(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "registry does not match catalog", err)
	}
	return v, nil
}

func (v *Validator) checkCoverage() error {
	var errs []error
	for _, id := range v.catalog.Labs() {
		layers, _ := v.catalog.Layers(id)
		for _, spec := range layers {
			key := Key{Lab: id, Layer: spec.Layer}
			probe, ok := v.registry[key]
			switch {
			case spec.Conceptual && ok:
				errs = append(errs, fmt.Errorf("layer %s is conceptual but has a probe", key))
			case !spec.Conceptual && probe == nil:
				errs = append(errs, fmt.Errorf("layer %s (%s) has no probe", key, spec.Target))
			}
		}
	}

	keys := make([]Key, 0, len(v.registry))
	for k := range v.registry {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Lab != keys[j].Lab {
			return keys[i].Lab < keys[j].Lab
		}
		return keys[i].Layer < keys[j].Layer
	})
	for _, k := range keys {
		if _, ok := v.catalog.Layer(k.Lab, k.Layer); !ok {
			errs = append(errs, fmt.Errorf("probe %s does not match any catalog layer", k))
		}
	}
	return errors.Join(errs...)
}

// Catalog returns the catalog the validator runs against.
func (v *Validator) Catalog() *catalog.Catalog {
	return v.catalog
}

// ValidateLayer validates a single layer of lab. Conceptual layers are never
// probed. The probe runs exactly once and its outcome is classified; a panic
// is reported as StatusError.
func (v *Validator) ValidateLayer(ctx context.Context, lab string, spec catalog.LayerSpec) LayerResult {
	res := LayerResult{Layer: spec.Layer, Name: spec.Name}

	if spec.Conceptual {
		res.Status, res.Message = StatusConceptual, MessageConceptual
		layerValidations.WithLabelValues(lab, string(res.Status)).Inc()
		return res
	}

	probe := v.registry[Key{Lab: lab, Layer: spec.Layer}]
	var err error
	if probe == nil {
		err = fmt.Errorf("no probe registered for %s/%d", lab, spec.Layer)
		res.Status = StatusError
	} else {
		res.Status, err = run(ctx, probe)
	}

	res.Message = messageFor(res.Status)
	layerValidations.WithLabelValues(lab, string(res.Status)).Inc()

	if err != nil {
		slog.Debug("layer probe failed",
			"lab", lab,
			"layer", spec.Layer,
			"target", spec.Target,
			"status", res.Status,
			"error", err)
	}
	return res
}

// ValidateLab validates every layer of lab in catalog order. An unknown lab
// yields a result carrying MessageUnknownLab and no layers.
func (v *Validator) ValidateLab(ctx context.Context, lab string) LabResult {
	layers, ok := v.catalog.Layers(lab)
	if !ok {
		return LabResult{Lab: lab, Error: MessageUnknownLab}
	}

	start := time.Now()
	res := LabResult{Lab: lab, Layers: make([]LayerResult, 0, len(layers))}
	for _, spec := range layers {
		res.Layers = append(res.Layers, v.ValidateLayer(ctx, lab, spec))
	}
	labDuration.WithLabelValues(lab).Observe(time.Since(start).Seconds())
	return res
}

// ValidateAll validates every lab in ascending id order.
func (v *Validator) ValidateAll(ctx context.Context) *Report {
	start := time.Now()

	ids := v.catalog.SortedLabs()
	report := &Report{Labs: make(map[string][]LayerResult, len(ids))}
	for _, id := range ids {
		report.Labs[id] = v.ValidateLab(ctx, id).Layers
	}

	slog.Debug("validation completed", "labs", len(ids), "duration", time.Since(start))
	return report
}

// NewReport returns an enveloped report for CLI output. The summary is
// computed once, over the whole run.
func (v *Validator) NewReport(ctx context.Context) *Report {
	start := time.Now()
	report := v.ValidateAll(ctx)
	report.Init(header.KindValidationReport, header.APIVersionV1, v.Version)
	s := report.Summarize(time.Since(start))
	report.Summary = &s
	return report
}

// run invokes probe and classifies its outcome. A panic in either step is
// reported as StatusError.
func run(ctx context.Context, probe Probe) (status Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			status, err = StatusError, fmt.Errorf("probe panicked: %v", r)
		}
	}()
	err = probe(ctx)
	return classify(err), err
}

// classify maps a probe outcome to a status. Typed codes win over the text
// match, and NOT_IMPLEMENTED wins over NOT_CONFIGURED.
func classify(err error) Status {
	switch {
	case err == nil:
		return StatusPass
	case cnserrors.HasCode(err, cnserrors.ErrCodeNotImplemented):
		return StatusNotImplemented
	case cnserrors.HasCode(err, cnserrors.ErrCodeUnconfigured):
		return StatusImplemented
	case strings.Contains(strings.ToLower(err.Error()), unconfiguredMarker):
		return StatusImplemented
	default:
		return StatusError
	}
}

func messageFor(s Status) string {
	switch s {
	case StatusConceptual:
		return MessageConceptual
	case StatusPass:
		return MessagePass
	case StatusNotImplemented:
		return MessageNotImplemented
	case StatusImplemented:
		return MessageImplemented
	default:
		return MessageError
	}
}
