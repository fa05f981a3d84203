// Package redis implements the Redis-backed centroid source.
//
// The training pipeline publishes per-emotion embedding centroids into a
// Redis hash; CentroidStore reads them at startup so the classifier can serve
// the embedding fallback without shipping centroid files with the binary.
package redis
