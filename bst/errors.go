// Copyright 2025 Naren Yellavula
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

package bst

import "errors"

var (
	// ErrNotFound is returned by lookups on a key that is not in the tree.
	ErrNotFound = errors.New("key not found")
	// ErrInvalidCount is returned when a top/bottom selection asks for a negative count.
	ErrInvalidCount = errors.New("count must not be negative")
	// ErrCountTooLarge is returned when a top/bottom selection asks for more than MaxCount slots.
	ErrCountTooLarge = errors.New("count exceeds the selection limit")
)
