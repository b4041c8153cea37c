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


// Package synth turns ranked search results into a grounded natural
// language answer with citations.
//
// A synthesizer holds an ordered chain of LLM providers and tries them
// sequentially until one succeeds. When every provider fails it falls
// back to a templated digest of the top results rather than returning
// an error: a degraded answer is always better than no answer.
package synth
