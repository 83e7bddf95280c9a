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

// Package command defines the specification of the external command whose
// output is inspected for a version number.
//
// A Spec is constructed either from explicit parts:
//
//	spec, err := command.New("bash", "--version")
//
// or from the single-string form accepted on the command line:
//
//	spec, err := command.Parse("bash --version")
//
// Both constructors validate the shape of the command up front; a malformed
// specification is a configuration error and no process is ever started
// for it.
package command
