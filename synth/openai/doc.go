// Package openai implements a synthesis provider over any
// OpenAI-compatible chat completion API, including hosted gateways such
// as Groq and OpenRouter and local inference servers.
package openai
