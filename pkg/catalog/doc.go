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

// Package catalog holds the static lab catalog: an ordered list of labs, each
// an ordered list of layers.
//
// A layer is either conceptual (nothing to execute) or names the capability
// function its validation probe calls. The catalog is parsed from an embedded
// YAML document, checked for integrity once at construction and never
// mutated afterwards, so a *Catalog can be shared freely between goroutines.
// Accessors return copies.
//
// Integrity rules enforced by New and Parse:
//   - lab ids are non-empty and unique
//   - every lab has at least one layer
//   - layer numbers start at 1 and equal their position in the lab
//   - every layer has a name
//   - a layer is conceptual or has a target, never both and never neither
//
// Usage:
//
//	cat, err := catalog.Default()
//	if err != nil {
//	    return err
//	}
//	for _, id := range cat.SortedLabs() {
//	    layers, _ := cat.Layers(id)
//	    fmt.Println(id, len(layers))
//	}
package catalog
