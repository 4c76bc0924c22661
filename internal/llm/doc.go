// Package llm provides the language model adapter for lot classification.
// It builds the taxonomy prompt, invokes the Groq chat-completions endpoint,
// and validates the free-text answer into a canonical category id, with
// retry logic, rate limiting, and response caching.
package llm
