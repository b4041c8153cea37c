// Copyright 2025 Poiesic Systems
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


// Package mock provides test doubles for search source adapters.
package mock

import (
	"context"
	"sync"

	"github.com/poiesic/lancer/core"
)

// MockAdapter is a test double for sources.Adapter.
// It allows custom behavior injection via function fields.
type MockAdapter struct {
	// AdapterName is returned by Name. Default "mock".
	AdapterName string

	// SearchFunc is called by Search if set.
	// If nil, Results and Err are returned directly.
	SearchFunc func(ctx context.Context, query core.Query) ([]core.RawResult, error)

	// Results and Err are the canned response when SearchFunc is nil.
	Results []core.RawResult
	Err     error

	mu        sync.Mutex
	callCount int
}

// NewMockAdapter creates a mock adapter with the given name.
// Note: returns the concrete type to allow test assertions.
func NewMockAdapter(name string) *MockAdapter {
	return &MockAdapter{AdapterName: name}
}

// Name identifies the mock source.
func (m *MockAdapter) Name() string {
	if m.AdapterName == "" {
		return "mock"
	}
	return m.AdapterName
}

// Search returns the injected behavior or the canned results.
func (m *MockAdapter) Search(ctx context.Context, query core.Query) ([]core.RawResult, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

// CallCount returns the number of times Search was called.
func (m *MockAdapter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom behavior.
func (m *MockAdapter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.SearchFunc = nil
	m.Results = nil
	m.Err = nil
}
