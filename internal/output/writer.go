package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/scpwiki/news-fetch/internal/domain"
	"github.com/scpwiki/news-fetch/internal/logger"
)

// csvHeader is the fixed column schema of the tabular artifact.
var csvHeader = []string{
	"url",
	"category",
	"rating",
	"vote_count",
	"upvote_count",
	"downvote_count",
	"created_at",
	"authors",
	"tags",
	"revisions",
}

// Writer persists a result set as a JSON document and a CSV file sharing a
// filename stem. Existing files are overwritten.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at the given output directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteAll writes pages-<startDate>.json and pages-<startDate>.csv under the
// output directory, creating it if needed.
func (w *Writer) WriteAll(startDate string, pages []domain.Page) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	prefix := "pages-" + startDate

	jsonPath := filepath.Join(w.dir, prefix+".json")
	logger.InfoObj("writing results", "output_file", jsonPath)
	if err := writeJSON(jsonPath, pages); err != nil {
		return err
	}

	csvPath := filepath.Join(w.dir, prefix+".csv")
	logger.InfoObj("writing results", "output_file", csvPath)
	return writeCSV(csvPath, pages)
}

func writeJSON(path string, pages []domain.Page) error {
	if pages == nil {
		pages = []domain.Page{}
	}

	data, err := json.Marshal(pages)
	if err != nil {
		return fmt.Errorf("encode pages json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeCSV(path string, pages []domain.Page) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, page := range pages {
		if err := cw.Write(pageRow(page)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// pageRow flattens one record into CSV cells. List fields are comma-joined
// into a single cell; a value containing its own comma therefore cannot be
// split back apart. Downstream consumers rely on this layout as is.
func pageRow(page domain.Page) []string {
	return []string{
		page.URL,
		page.Category,
		strconv.Itoa(page.Rating),
		strconv.Itoa(page.VoteCount),
		strconv.Itoa(page.UpvoteCount),
		strconv.Itoa(page.DownvoteCount),
		page.CreatedAt.Format(time.RFC3339),
		strings.Join(page.Authors, ","),
		strings.Join(page.Tags, ","),
		strconv.Itoa(page.Revisions),
	}
}
