package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

type runExport struct {
	Meta        RunMetadata `json:"meta"`
	Populations []int       `json:"populations"`
}

// ExportJSON writes a run's metadata and population history as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, populations []int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{Meta: *meta, Populations: populations})
}

// ExportJSONStdout is ExportJSON to standard output.
func ExportJSONStdout(meta *RunMetadata, populations []int) error {
	return ExportJSON(os.Stdout, meta, populations)
}

// ExportCSV writes the population history with a header row.
func ExportCSV(w io.Writer, populations []int) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"generation", "population"}); err != nil {
		return err
	}
	for i, pop := range populations {
		if err := cw.Write([]string{strconv.Itoa(i), strconv.Itoa(pop)}); err != nil {
			return err
		}
	}
	return nil
}
