package reader

//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mock_reader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const byteOrderMark = "\ufeff"

// Row maps a header name to the raw cell value of one data line.
type Row map[string]string

type Reader interface {
	Read(ctx context.Context) (<-chan Row, <-chan error)
}

type CSVReader struct {
	src    io.Reader
	sep    rune
	logger *zap.Logger
}

func NewCSVReader(src io.Reader, sep rune, logger *zap.Logger) *CSVReader {
	return &CSVReader{
		src:    src,
		sep:    sep,
		logger: logger,
	}
}

// Read streams one Row per data line. Lines may hold fewer or more cells than
// the header. The records channel is closed when the input is exhausted; a
// parse error is sent on the error channel and ends the stream.
func (r *CSVReader) Read(ctx context.Context) (<-chan Row, <-chan error) {
	recordsChan := make(chan Row)
	errChan := make(chan error, 1)

	go func() {
		defer close(recordsChan)
		defer close(errChan)

		reader := csv.NewReader(r.src)
		reader.Comma = r.sep
		reader.ReuseRecord = true
		reader.FieldsPerRecord = -1

		header, err := reader.Read()
		if errors.Is(err, io.EOF) {
			r.logger.Info("csv source is empty")
			return
		}
		if err != nil {
			errChan <- fmt.Errorf("file csv read error: %w", err)
			return
		}
		header = cloneHeader(header)

		rows := 0
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				r.logger.Info("csv source finished", zap.Int("rows", rows))
				return
			}
			if err != nil {
				errChan <- fmt.Errorf("file csv read error: %w", err)
				return
			}

			// Short lines only carry the columns they have; extra cells are dropped.
			n := min(len(header), len(record))
			row := make(Row, n)
			for i, name := range header[:n] {
				row[name] = record[i]
			}
			rows++

			select {
			case recordsChan <- row:
			case <-ctx.Done():
				return
			}
		}
	}()

	return recordsChan, errChan
}

func cloneHeader(header []string) []string {
	out := make([]string, len(header))
	copy(out, header)
	if len(out) > 0 {
		out[0] = strings.TrimPrefix(out[0], byteOrderMark)
	}
	return out
}

// ListFiles returns path itself when it is a file, or every csv file below it
// when it is a directory.
func ListFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("access path error: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(info.Name()), ".csv") {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list files in path error: %w", err)
	}

	return files, nil
}
