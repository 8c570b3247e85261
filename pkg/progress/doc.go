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

// Package progress records which lab layers a student has completed.
//
// Completion is stored in a local SQLite database (modernc.org/sqlite, no
// cgo). Marking a layer complete is idempotent and completed layers are
// always reported in ascending order.
//
//	store, err := progress.Open("data/progress.db")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	layers, err := store.Complete(ctx, "05", 3)
//
// The package also serves the /api/progress endpoints.
package progress
