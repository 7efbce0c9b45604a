// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package viewx

// Board 一个只读列表视图，例如两个面板
type Board[T any] struct {
	Mount
	val    T
	loaded bool
}

// Store 结果被应用了返回 true
func (b *Board[T]) Store(t Ticket, val T) bool {
	return b.Apply(t, func() {
		b.val = val
		b.loaded = true
	})
}

// Load loaded 为 false 说明还没有任何一次加载成功
func (b *Board[T]) Load() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.val, b.loaded
}

// Reset 卸载并丢弃数据
func (b *Board[T]) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	var zero T
	b.val = zero
	b.loaded = false
	b.mounted = false
}
