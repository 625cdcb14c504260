// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package ingest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/models"
)

// maxDocumentBytes caps one JSONL line. Export documents are small; a
// line this large means the file is not a JSONL export.
const maxDocumentBytes = 1 << 20

// Report summarizes one load or ingest pass.
type Report struct {
	// Total is the number of documents seen in the export.
	Total int `json:"total"`

	// Valid is the number of documents that passed schema validation.
	Valid int `json:"valid"`

	// Invalid is the number of documents skipped for schema violations
	// or malformed JSON.
	Invalid int `json:"invalid"`

	// Inserted is the number of records the store accepted. Zero until
	// the batch is committed; may be lower than Valid when the store
	// drops rows (blank drug after standardization).
	Inserted int `json:"inserted"`
}

// LoadRecords parses an extraction-pipeline export from r. The format is
// detected from the first non-space byte: a JSON array of documents, or
// JSONL with one document per line. Each document is validated against
// the embedded schema; invalid ones are logged, counted, and skipped.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func LoadRecords(r io.Reader, logger zerolog.Logger) ([]models.ExperienceRecord, *Report, error) {
	buffered := bufio.NewReader(r)

	first, err := firstNonSpace(buffered)
	if err != nil {
		if err == io.EOF {
			return nil, &Report{}, nil
		}
		return nil, nil, fmt.Errorf("read export: %w", err)
	}

	var docs [][]byte
	if first == '[' {
		docs, err = splitArray(buffered)
	} else {
		docs, err = splitLines(buffered)
	}
	if err != nil {
		return nil, nil, err
	}

	report := &Report{Total: len(docs)}
	records := make([]models.ExperienceRecord, 0, len(docs))
	for i, doc := range docs {
		if err := validateDocument(doc); err != nil {
			report.Invalid++
			logger.Warn().Err(err).Int("document", i).Msg("export document rejected")
			continue
		}

		var rec models.ExperienceRecord
		if err := json.Unmarshal(doc, &rec); err != nil {
			report.Invalid++
			logger.Warn().Err(err).Int("document", i).Msg("export document unmarshal failed")
			continue
		}
		report.Valid++
		records = append(records, rec)
	}
	return records, report, nil
}

// firstNonSpace peeks past leading whitespace without consuming it.
func firstNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			if err := r.UnreadByte(); err != nil {
				return 0, err
			}
			return b, nil
		}
	}
}

// splitArray decodes a JSON array into raw documents.
func splitArray(r io.Reader) ([][]byte, error) {
	var raw []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode export array: %w", err)
	}

	docs := make([][]byte, len(raw))
	for i, m := range raw {
		docs[i] = []byte(m)
	}
	return docs, nil
}

// splitLines reads JSONL, skipping blank lines. Malformed lines are kept
// as documents so validation can count them as invalid.
func splitLines(r io.Reader) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDocumentBytes)

	var docs [][]byte
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		doc := make([]byte, len(line))
		copy(doc, line)
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan export lines: %w", err)
	}
	return docs, nil
}
