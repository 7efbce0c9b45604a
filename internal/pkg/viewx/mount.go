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

import (
	"sync"
)

// Ticket 发起请求时拿到的凭证，结果回来时用它判断视图是否还在
type Ticket struct {
	gen uint64
}

// Mount 记录一个视图的挂载状态
// 每次 Open 都是一个新的 generation，之前发出的请求结果一律作废
type Mount struct {
	mu      sync.Mutex
	gen     uint64
	mounted bool
}

func (m *Mount) Open() Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.mounted = true
	return Ticket{gen: m.gen}
}

func (m *Mount) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mounted = false
}

func (m *Mount) Mounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted
}

// Ticket 为一次新的请求签发凭证，没有挂载的时候返回 false
func (m *Mount) Ticket() (Ticket, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Ticket{gen: m.gen}, m.mounted
}

// Valid 视图仍然挂载在同一个 generation 上
func (m *Mount) Valid(t Ticket) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted && t.gen == m.gen
}

// Apply 视图还在的时候，持锁执行 fn
// 同一个 generation 内不做排序，最后返回的结果覆盖之前的
func (m *Mount) Apply(t Ticket, fn func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.mounted || t.gen != m.gen {
		return false
	}
	fn()
	return true
}
