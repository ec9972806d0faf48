// Package search provides semantic search over processed citizen reports.
//
// The Searcher embeds the query text, retrieves the most similar report
// embeddings from storage, and boosts results whose comment contains every
// significant query word verbatim. Results are ranked by the combined score.
package search
