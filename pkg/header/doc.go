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

// Package header provides common header types for vercheck data structures.
//
// The Header type follows Kubernetes-style resource conventions and is
// embedded in serialized results to provide consistent metadata and
// versioning information.
//
// # Usage
//
// Initialize a header on a result:
//
//	result := &checker.Result{}
//	result.Init(header.KindCheckResult, checker.APIVersion, toolVersion)
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "CheckResult",
//	  "apiVersion": "vercheck.nvidia.com/v1alpha1",
//	  "metadata": {
//	    "id": "8aa0f5ab-6b0e-4f40-9039-2b1f1f2d3a44",
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// Timestamps use RFC3339 format; the id is a fresh UUID per result so that
// individual evaluations remain distinguishable in aggregated logs.
package header
