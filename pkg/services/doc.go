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

// Package services holds the response types and HTTP helpers shared by the
// capability packages under pkg/services.
//
// Each capability group (openai, vision, language, search, documents,
// safety) exposes a Service whose methods mirror the functions students
// implement in the labs. Until a method is implemented it returns
// errors.NotImplemented; with demo mode enabled it returns canned responses
// from pkg/services/mock. Handlers translate failures through WriteError so
// that stubs surface as 501 and missing credentials as 503.
package services
