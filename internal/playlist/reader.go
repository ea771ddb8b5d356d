package playlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"segue/internal/match"
)

// ErrNoTracks reports a playlist file that produced no usable entries.
var ErrNoTracks = errors.New("playlist contains no tracks")

var (
	artistColumns = []string{"artist", "creator"}
	titleColumns  = []string{"title", "track", "song"}
	albumColumns  = []string{"album"}
)

// ReadFile parses a playlist file into ordered queries. Files ending in .csv
// are read header-first with flexible column names; everything else is treated
// as plain text with one "Artist - Title" entry per line. A CSV that cannot be
// parsed falls back to the text format.
func ReadFile(path string) ([]match.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}

	var queries []match.Query
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		queries, err = parseCSV(data)
		if err != nil {
			queries = parseText(data)
		}
	} else {
		queries = parseText(data)
	}

	if len(queries) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTracks)
	}
	return queries, nil
}

func parseCSV(data []byte) ([]match.Query, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	artistIdx := findColumn(header, artistColumns)
	titleIdx := findColumn(header, titleColumns)
	albumIdx := findColumn(header, albumColumns)
	if artistIdx < 0 || titleIdx < 0 {
		return nil, nil
	}

	var queries []match.Query
	for _, record := range records[1:] {
		query := match.Query{
			Artist: fieldAt(record, artistIdx),
			Title:  fieldAt(record, titleIdx),
			Album:  fieldAt(record, albumIdx),
		}
		// Rows without both artist and title carry nothing to match on.
		if query.Artist == "" || query.Title == "" {
			continue
		}
		queries = append(queries, query)
	}
	return queries, nil
}

func findColumn(header []string, names []string) int {
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(col))
		for _, name := range names {
			if col == name {
				return i
			}
		}
	}
	return -1
}

func fieldAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseText(data []byte) []match.Query {
	var queries []match.Query
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		artist, title, found := strings.Cut(line, " - ")
		if !found {
			continue
		}
		artist = strings.TrimSpace(artist)
		title = strings.TrimSpace(title)
		if artist == "" || title == "" {
			continue
		}
		queries = append(queries, match.Query{Artist: artist, Title: title})
	}
	return queries
}
