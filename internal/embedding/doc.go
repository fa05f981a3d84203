// Package embedding implements the statistical fallback side of the hybrid
// classifier: encoder clients that turn text into vectors (an HTTP model
// server or the OpenAI embeddings API), a TTL cache for encoded vectors, the
// centroid table, and the cosine-similarity fallback classifier itself.
package embedding
