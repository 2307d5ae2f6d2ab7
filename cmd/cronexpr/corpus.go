package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/reugn/go-quartz-cron/quartz"
)

// corpus is a document of expressions with known validity, either YAML:
//
//	valid:
//	  - "0 0 12 * * ?"
//	invalid:
//	  - "0 0 12 * * THU"
//
// or, for files ending in .json or .jsonc, JSON with comments and trailing
// commas allowed.
type corpus struct {
	Valid   []string `yaml:"valid" json:"valid"`
	Invalid []string `yaml:"invalid" json:"invalid"`
}

type mismatch struct {
	expression string
	wantValid  bool
	err        error
}

type corpusResult struct {
	checked    int
	mismatches []mismatch
}

func loadCorpus(path string) (*corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	var c corpus
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(&c)
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		err = decoder.Decode(&c)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding corpus %s: %w", path, err)
	}
	if len(c.Valid)+len(c.Invalid) == 0 {
		return nil, fmt.Errorf("corpus %s lists no expressions", path)
	}
	return &c, nil
}

// checkCorpus verifies every expression of the corpus file against the
// validity it is listed under.
func checkCorpus(parser *quartz.Parser, path string) (*corpusResult, error) {
	c, err := loadCorpus(path)
	if err != nil {
		return nil, err
	}

	result := &corpusResult{}
	for _, expression := range c.Valid {
		result.checked++
		if _, err := parser.Parse(expression); err != nil {
			result.mismatches = append(result.mismatches,
				mismatch{expression: expression, wantValid: true, err: err})
		}
	}
	for _, expression := range c.Invalid {
		result.checked++
		if parser.IsValid(expression) {
			result.mismatches = append(result.mismatches,
				mismatch{expression: expression, wantValid: false})
		}
	}
	return result, nil
}

func (r *corpusResult) write(w io.Writer) {
	for _, m := range r.mismatches {
		if m.wantValid {
			fmt.Fprintf(w, "expected valid: %s: %v\n", m.expression, m.err)
		} else {
			fmt.Fprintf(w, "expected invalid: %s\n", m.expression)
		}
	}
	fmt.Fprintf(w, "checked %d expressions, %d mismatches\n", r.checked, len(r.mismatches))
}
