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

// Package config loads the process-wide application settings: the demo mode
// switch, credentials for each cloud AI service, CORS origins and the progress
// database location.
//
// Settings are read from the environment after an optional .env file has been
// applied. Variables already present in the environment win over the file.
//
//	settings, err := config.Load(".env")
//	if err != nil {
//	    return err
//	}
//	if settings.DemoMode {
//	    slog.Info("demo mode enabled")
//	}
package config
