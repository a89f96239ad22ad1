// Package form holds the mutable answer records for the supported government
// forms. Each record is built from a closed, ordered field declaration that
// fixes the collection order, the required set and the frontend-facing key of
// every field. Records are mutex-guarded because the frontend data channel is
// a second writer alongside the conversational flow.
package form
