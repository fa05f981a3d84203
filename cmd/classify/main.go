package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/classify"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/embedding"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/knowledge"
)

// noFallback stands in for the embedding fallback when no encoder is configured.
// Texts the rules cannot decide then surface as errors instead of labels.
type noFallback struct{}

func (noFallback) Classify(context.Context, string) (domain.Emotion, float64, error) {
	return "", 0, fmt.Errorf("no encoder configured (use -encoder-url): %w", domain.ErrFallbackUnavailable)
}

func main() {
	var (
		framesPath    = flag.String("frames", "data/frames.json", "Path to the frames document")
		modifiersPath = flag.String("modifiers", "data/modifiers.json", "Path to the modifiers document")
		rolesPath     = flag.String("roles", "data/role_markers.json", "Path to the role markers document")
		centroidsPath = flag.String("centroids", "data/centroids.json", "Path to the centroid table")
		encoderURL    = flag.String("encoder-url", "", "Base URL of the embedding model server (optional)")
		timeout       = flag.Duration("timeout", 5*time.Second, "Encoder request timeout")
	)
	flag.Parse()

	source := knowledge.FileSource{
		FramesPath:      *framesPath,
		ModifiersPath:   *modifiersPath,
		RoleMarkersPath: *rolesPath,
	}
	tables, err := source.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load knowledge tables: %v", err)
	}
	kb, err := knowledge.New(tables)
	if err != nil {
		log.Fatalf("Invalid knowledge tables: %v", err)
	}

	var fallback classify.Fallback = noFallback{}
	if *encoderURL != "" {
		centroids, err := embedding.FileCentroidSource{Path: *centroidsPath}.Load(context.Background())
		if err != nil {
			log.Fatalf("Failed to load centroids: %v", err)
		}
		encoder := embedding.NewCachingEncoder(
			embedding.NewHTTPEncoder(*encoderURL, *timeout), 10*time.Minute, clockwork.NewRealClock())
		fallback, err = embedding.NewFallback(encoder, centroids)
		if err != nil {
			log.Fatalf("Invalid centroid table: %v", err)
		}
	}

	classifier := classify.New(kb, fallback)
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	run := func(text string) {
		result, err := classifier.Classify(context.Background(), text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		if err := enc.Encode(result); err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
	}

	if flag.NArg() > 0 {
		for _, text := range flag.Args() {
			run(text)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		run(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
}
