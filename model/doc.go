// Package model abstracts the LLM providers behind a single interface so
// agents can run on OpenAI or Anthropic without branching. Sub-packages hold
// the provider adapters.
package model
