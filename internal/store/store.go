// Package store persists solve results in a PocketBase backend.
package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const collection = "solves"

// SolveRecord is one solved puzzle as stored in the "solves" collection.
// Puzzle and Solution hold the text rendering of the unsolved and solved
// grids.
type SolveRecord struct {
	Puzzle    string `json:"puzzle"`
	Solution  string `json:"solution"`
	Algorithm string `json:"algorithm"`
	Tries     uint   `json:"tries"`
}

// Store wraps an authenticated PocketBase client.
type Store struct {
	client *pocketbase.Client
}

// New builds a Store for the given base URL. Credentials are taken from
// the POCKETBASE_EMAIL and POCKETBASE_PASSWORD environment variables; a
// .env file is honored when present. An empty baseURL falls back to the
// POCKETBASE_URL environment variable.
func New(baseURL string) (*Store, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	if baseURL == "" {
		baseURL = os.Getenv("POCKETBASE_URL")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("store: no base URL configured")
	}

	client := pocketbase.NewClient(baseURL,
		pocketbase.WithSuperuserEmailPassword(
			os.Getenv("POCKETBASE_EMAIL"),
			os.Getenv("POCKETBASE_PASSWORD"),
		))
	if err := client.Authorize(); err != nil {
		return nil, fmt.Errorf("store: authorization failed: %w", err)
	}

	return &Store{client: client}, nil
}

// Upload stores a solve record and returns the created record's response.
func (s *Store) Upload(rec SolveRecord) (*pocketbase.ResponseCreate, error) {
	data := map[string]any{
		"puzzle":    rec.Puzzle,
		"solution":  rec.Solution,
		"algorithm": rec.Algorithm,
		"tries":     rec.Tries,
	}

	created, err := s.client.Create(collection, data)
	if err != nil {
		return nil, fmt.Errorf("store: failed to upload solve: %w", err)
	}
	return &created, nil
}

// Get loads a single solve record by id.
func (s *Store) Get(id string) (map[string]any, error) {
	record, err := s.client.One(collection, id)
	if err != nil {
		return nil, fmt.Errorf("store: failed to load solve %s: %w", id, err)
	}
	return record, nil
}

// List returns a page of solve records, optionally filtered by algorithm
// and sorted newest first.
func (s *Store) List(page, perPage int, algorithm string) (*pocketbase.ResponseList[map[string]any], error) {
	var filterRules []string
	if algorithm != "" {
		filterRules = append(filterRules, fmt.Sprintf("algorithm = %q", algorithm))
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: strings.Join(filterRules, " && "),
	}

	result, err := s.client.List(collection, params)
	if err != nil {
		return nil, fmt.Errorf("store: failed to list solves: %w", err)
	}
	return &result, nil
}

// Exists reports whether a solve record with the given id is stored.
func (s *Store) Exists(id string) (bool, error) {
	_, err := s.client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
