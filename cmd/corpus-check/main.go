// corpus-check validates the bundled legal corpus file and prints a
// short summary. Run it after editing data/legal_corpus.json.
package main

import (
	"encoding/json"
	"log"
	"os"

	"legalease-backend/models"
)

func main() {
	path := "data/legal_corpus.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read corpus file %s: %v", path, err)
	}

	var records []models.CorpusRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatalf("Corpus file is not valid JSON: %v", err)
	}

	seen := make(map[string]bool)
	problems := 0
	for i, rec := range records {
		if rec.ID == "" || rec.Section == "" || rec.Title == "" || rec.Text == "" {
			log.Printf("Record %d: missing required field (id=%q section=%q)", i, rec.ID, rec.Section)
			problems++
		}
		if seen[rec.ID] {
			log.Printf("Record %d: duplicate id %q", i, rec.ID)
			problems++
		}
		seen[rec.ID] = true
	}

	if problems > 0 {
		log.Fatalf("Corpus check failed: %d problem(s) in %d records", problems, len(records))
	}
	log.Printf("✓ Corpus OK: %d records", len(records))
}
