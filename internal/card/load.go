package card

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/cards.jsonl
var defaultCards []byte

//go:embed data/nobles.jsonl
var defaultNobles []byte

// Load reads one JSON card record per line. Blank lines and lines starting
// with '#' are skipped.
func Load(r io.Reader) ([]Card, error) {
	return readRecords(r, Card.Validate)
}

// LoadNobles reads one JSON noble record per line and numbers the tiles
// from 1 in file order when the record carries no id.
func LoadNobles(r io.Reader) ([]Noble, error) {
	nobles, err := readRecords(r, Noble.Validate)
	if err != nil {
		return nil, err
	}
	for i := range nobles {
		if nobles[i].ID == 0 {
			nobles[i].ID = i + 1
		}
	}
	return nobles, nil
}

// LoadFile reads card records from path.
func LoadFile(path string) ([]Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card file: %w", err)
	}
	defer f.Close()
	cards, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}

// LoadNoblesFile reads noble records from path.
func LoadNoblesFile(path string) ([]Noble, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open noble file: %w", err)
	}
	defer f.Close()
	nobles, err := LoadNobles(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nobles, nil
}

// Default returns the embedded 90-card base set.
func Default() ([]Card, error) {
	return Load(bytes.NewReader(defaultCards))
}

// DefaultNobles returns the embedded 10-tile noble set.
func DefaultNobles() ([]Noble, error) {
	return LoadNobles(bytes.NewReader(defaultNobles))
}

func readRecords[T any](r io.Reader, validate func(T) error) ([]T, error) {
	var out []T
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dec := json.NewDecoder(strings.NewReader(line))
		dec.DisallowUnknownFields()
		var rec T
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := validate(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return out, nil
}
