// Package database provides PostgreSQL connectivity and the knowledge base
// repository.
//
// Uses pgx for connection pooling and tern for schema migrations. The
// repository implements domain.KnowledgeSource so a curated ontology can be
// served from a shared database instead of JSON files on disk.
package database
