// Package ai is the client for the remote text-generation proxy. A single
// JSON POST carries the prompt and the response carries the generated source
// text. The client never retries; failures are returned to the caller as an
// Outcome so the caller can choose a fallback.
package ai
