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
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/ai102-labs/command-center/pkg/header"
)

// Status is the classified outcome of validating one layer.
type Status string

const (
	// StatusConceptual marks a layer with no code to run.
	StatusConceptual Status = "conceptual"

	// StatusPass means the probe completed without error.
	StatusPass Status = "pass"

	// StatusNotImplemented means the capability is still a stub.
	StatusNotImplemented Status = "not_implemented"

	// StatusImplemented means the capability is written but lacks credentials.
	StatusImplemented Status = "implemented"

	// StatusError means the probe failed in an unexpected way.
	StatusError Status = "error"
)

// Fixed messages returned with each status.
const (
	MessageConceptual     = "Conceptual layer: no code to validate."
	MessagePass           = "Function executed successfully."
	MessageNotImplemented = "Stub: not yet implemented."
	MessageImplemented    = "Code is implemented but Azure credentials are not configured."
	MessageError          = "Unexpected error occurred."
	MessageUnknownLab     = "Unknown lab identifier."
)

// Statuses returns all statuses in reporting order.
func Statuses() []Status {
	return []Status{StatusConceptual, StatusPass, StatusNotImplemented, StatusImplemented, StatusError}
}

// LayerResult is the outcome of validating one layer.
type LayerResult struct {
	Layer   int    `json:"layer" yaml:"layer"`
	Name    string `json:"name" yaml:"name"`
	Status  Status `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// LabResult is the outcome of validating one lab. For an unknown lab Error is
// set and Layers is empty; otherwise Layers follows catalog order.
type LabResult struct {
	Lab    string        `json:"lab" yaml:"lab"`
	Layers []LayerResult `json:"layers,omitempty" yaml:"layers,omitempty"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Known reports whether the lab exists in the catalog.
func (r LabResult) Known() bool {
	return r.Error == ""
}

// MarshalJSON emits {"lab","error"} for unknown labs and {"lab","layers"}
// otherwise, with layers always present as an array.
func (r LabResult) MarshalJSON() ([]byte, error) {
	if !r.Known() {
		return json.Marshal(struct {
			Lab   string `json:"lab"`
			Error string `json:"error"`
		}{r.Lab, r.Error})
	}

	layers := r.Layers
	if layers == nil {
		layers = []LayerResult{}
	}
	return json.Marshal(struct {
		Lab    string        `json:"lab"`
		Layers []LayerResult `json:"layers"`
	}{r.Lab, layers})
}

// TableHeader implements serializer.Tabular.
func (r LabResult) TableHeader() []string {
	return reportHeader()
}

// TableRows implements serializer.Tabular.
func (r LabResult) TableRows() [][]string {
	if !r.Known() {
		return [][]string{{r.Lab, "-", "-", string(StatusError), r.Error}}
	}
	return layerRows(r.Lab, r.Layers)
}

// Report is the outcome of validating every lab. The Header and Summary are
// only filled in for CLI output.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Labs    map[string][]LayerResult `json:"labs" yaml:"labs"`
	Summary *Summary                 `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Summary aggregates layer statuses across a report.
type Summary struct {
	Labs     int            `json:"labs" yaml:"labs"`
	Layers   int            `json:"layers" yaml:"layers"`
	Counts   map[Status]int `json:"counts" yaml:"counts"`
	Duration time.Duration  `json:"duration" yaml:"duration"`
}

// Summarize counts layer statuses in the report.
func (r *Report) Summarize(d time.Duration) Summary {
	s := Summary{
		Labs:     len(r.Labs),
		Counts:   make(map[Status]int, len(Statuses())),
		Duration: d,
	}
	for _, layers := range r.Labs {
		for _, l := range layers {
			s.Layers++
			s.Counts[l.Status]++
		}
	}
	return s
}

// LabIDs returns the report's lab ids in ascending order.
func (r *Report) LabIDs() []string {
	ids := make([]string, 0, len(r.Labs))
	for id := range r.Labs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TableHeader implements serializer.Tabular.
func (r *Report) TableHeader() []string {
	return reportHeader()
}

// TableRows implements serializer.Tabular.
func (r *Report) TableRows() [][]string {
	var rows [][]string
	for _, id := range r.LabIDs() {
		rows = append(rows, layerRows(id, r.Labs[id])...)
	}
	return rows
}

func reportHeader() []string {
	return []string{"LAB", "LAYER", "NAME", "STATUS", "MESSAGE"}
}

func layerRows(lab string, layers []LayerResult) [][]string {
	rows := make([][]string, 0, len(layers))
	for _, l := range layers {
		rows = append(rows, []string{lab, strconv.Itoa(l.Layer), l.Name, string(l.Status), l.Message})
	}
	return rows
}
