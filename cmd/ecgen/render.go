package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ecgen/internal/config"
)

// render writes up to limit items of seq to w and reports how many it
// wrote. clone copies an item whose storage the sequence reuses; nil means
// items are values.
func render[T any](w io.Writer, format string, limit int, seq iter.Seq[T], clone func(T) T) (int, error) {
	if format == config.FormatText {
		n := 0
		for v := range seq {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return n, errors.Wrap(err, "write")
			}
			// stop before pulling an item that will not be printed
			if n++; n == limit {
				break
			}
		}
		return n, nil
	}

	items := make([]T, 0)
	for v := range seq {
		if clone != nil {
			v = clone(v)
		}
		if items = append(items, v); len(items) == limit {
			break
		}
	}

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return 0, errors.Wrap(err, "encode json")
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return 0, errors.Wrap(err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return 0, errors.Wrap(err, "encode yaml")
		}
	default:
		return 0, errors.Wrapf(config.ErrInvalidFormat, "%q", format)
	}
	return len(items), nil
}
