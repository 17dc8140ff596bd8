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

// Package avl implements a height-balanced binary search tree.
//
// Every node caches its height (a leaf is 0, an absent child is -1) and
// after each Insert or Remove the ancestors of the changed position are
// rebalanced on the way back up, so the heights of the two subtrees of any
// node never differ by more than one. Insert, Remove and Contains are
// O(log n).
//
// Values are unique: inserting a value that is already present is a no-op
// that reports false.
//
// A Tree is not safe for concurrent use. Access it from a single goroutine
// or guard it with a sync.Mutex / sync.RWMutex.
package avl
