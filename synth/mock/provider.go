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


// Package mock provides test doubles for synthesis providers.
package mock

import (
	"context"
	"sync"
)

// MockProvider is a test double for synth.Provider.
// It allows custom behavior injection via function fields.
type MockProvider struct {
	// ProviderName is returned by Name. Default "mock".
	ProviderName string

	// SynthesizeFunc is called by Synthesize if set.
	// If nil, Response and Err are returned directly.
	SynthesizeFunc func(ctx context.Context, prompt string) (string, error)

	// Response and Err are the canned reply when SynthesizeFunc is nil.
	Response string
	Err      error

	mu         sync.Mutex
	callCount  int
	lastPrompt string
}

// NewMockProvider creates a mock provider with the given name.
// Note: returns the concrete type to allow test assertions.
func NewMockProvider(name string) *MockProvider {
	return &MockProvider{ProviderName: name}
}

// Name identifies the mock provider.
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Synthesize returns the injected behavior or the canned response.
func (m *MockProvider) Synthesize(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastPrompt = prompt
	m.mu.Unlock()

	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, prompt)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// CallCount returns the number of times Synthesize was called.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastPrompt returns the prompt of the most recent Synthesize call.
func (m *MockProvider) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPrompt
}

// Reset clears the recorded calls and custom behavior.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastPrompt = ""
	m.SynthesizeFunc = nil
	m.Response = ""
	m.Err = nil
}
