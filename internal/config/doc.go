// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), maps to Config struct via go-simpler/env
// struct tags. Validates that every selected source (knowledge base,
// centroids, encoder) has the settings it needs.
package config
