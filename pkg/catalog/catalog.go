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

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/labs.yaml
var labsYAML []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// LayerSpec describes one layer of a lab.
type LayerSpec struct {
	Layer      int    `json:"layer" yaml:"layer"`
	Name       string `json:"name" yaml:"name"`
	Conceptual bool   `json:"conceptual,omitempty" yaml:"conceptual,omitempty"`
	// Target is the service.function label of the capability the probe calls.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

// Lab is an ordered list of layers with display metadata.
type Lab struct {
	ID     string      `json:"id" yaml:"id"`
	Title  string      `json:"title,omitempty" yaml:"title,omitempty"`
	Module string      `json:"module,omitempty" yaml:"module,omitempty"`
	Layers []LayerSpec `json:"layers" yaml:"layers"`
}

// Document is the on-disk shape of a catalog file.
type Document struct {
	Labs []Lab `json:"labs" yaml:"labs"`
}

// Catalog is an immutable, integrity-checked set of labs.
type Catalog struct {
	labs  []Lab
	index map[string]int
}

// Default returns the catalog embedded in the binary. It is parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(labsYAML)
	})
	return defaultCat, defaultErr
}

// Parse decodes a YAML (or JSON) catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse lab catalog: %w", err)
	}
	return New(doc.Labs...)
}

// New validates labs and returns a catalog holding a private copy of them.
// All integrity problems are reported together.
func New(labs ...Lab) (*Catalog, error) {
	if err := check(labs); err != nil {
		return nil, err
	}

	c := &Catalog{
		labs:  make([]Lab, len(labs)),
		index: make(map[string]int, len(labs)),
	}
	for i, l := range labs {
		c.labs[i] = cloneLab(l)
		c.index[l.ID] = i
	}
	return c, nil
}

func check(labs []Lab) error {
	var errs []error
	seen := make(map[string]bool, len(labs))

	for i, l := range labs {
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("lab at position %d has an empty id", i+1))
		} else if seen[l.ID] {
			errs = append(errs, fmt.Errorf("lab %q is declared more than once", l.ID))
		}
		seen[l.ID] = true

		if len(l.Layers) == 0 {
			errs = append(errs, fmt.Errorf("lab %q has no layers", l.ID))
		}

		for pos, spec := range l.Layers {
			if spec.Layer != pos+1 {
				errs = append(errs, fmt.Errorf("lab %q: layer at position %d is numbered %d", l.ID, pos+1, spec.Layer))
			}
			if spec.Name == "" {
				errs = append(errs, fmt.Errorf("lab %q layer %d: name is empty", l.ID, spec.Layer))
			}
			switch {
			case spec.Conceptual && spec.Target != "":
				errs = append(errs, fmt.Errorf("lab %q layer %d: conceptual layer must not have a target", l.ID, spec.Layer))
			case !spec.Conceptual && spec.Target == "":
				errs = append(errs, fmt.Errorf("lab %q layer %d: non-conceptual layer needs a target", l.ID, spec.Layer))
			}
		}
	}

	return errors.Join(errs...)
}

func cloneLab(l Lab) Lab {
	l.Layers = slices.Clone(l.Layers)
	return l
}

// Len returns the number of labs.
func (c *Catalog) Len() int {
	return len(c.labs)
}

// Labs returns lab ids in declaration order.
func (c *Catalog) Labs() []string {
	ids := make([]string, len(c.labs))
	for i, l := range c.labs {
		ids[i] = l.ID
	}
	return ids
}

// SortedLabs returns lab ids in ascending lexicographic order.
func (c *Catalog) SortedLabs() []string {
	ids := c.Labs()
	sort.Strings(ids)
	return ids
}

// Lab returns a copy of the lab with the given id.
func (c *Catalog) Lab(id string) (Lab, bool) {
	i, ok := c.index[id]
	if !ok {
		return Lab{}, false
	}
	return cloneLab(c.labs[i]), true
}

// Layers returns a copy of the lab's layers in declaration order.
func (c *Catalog) Layers(id string) ([]LayerSpec, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(c.labs[i].Layers), true
}

// Layer returns one layer of a lab by number.
func (c *Catalog) Layer(id string, layer int) (LayerSpec, bool) {
	i, ok := c.index[id]
	if !ok || layer < 1 || layer > len(c.labs[i].Layers) {
		return LayerSpec{}, false
	}
	return c.labs[i].Layers[layer-1], true
}

// Document returns a copy of the catalog in its serializable form.
func (c *Catalog) Document() Document {
	doc := Document{Labs: make([]Lab, len(c.labs))}
	for i, l := range c.labs {
		doc.Labs[i] = cloneLab(l)
	}
	return doc
}

// TableHeader implements serializer.Tabular.
func (d Document) TableHeader() []string {
	return []string{"LAB", "TITLE", "LAYER", "NAME", "TARGET"}
}

// TableRows implements serializer.Tabular.
func (d Document) TableRows() [][]string {
	var rows [][]string
	for _, l := range d.Labs {
		for _, spec := range l.Layers {
			target := spec.Target
			if spec.Conceptual {
				target = "(conceptual)"
			}
			rows = append(rows, []string{l.ID, l.Title, strconv.Itoa(spec.Layer), spec.Name, target})
		}
	}
	return rows
}
