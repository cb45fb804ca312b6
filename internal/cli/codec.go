package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/zerofoolcoder/collectionsjs/collection"
	"github.com/zerofoolcoder/collectionsjs/internal/config"
)

// ErrEmptyInput no list was given
var ErrEmptyInput = errors.New("empty input")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func decodeNumbers(r io.Reader, format string) (*collection.Collection[float64], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	var numbers []float64
	switch format {
	case config.FormatJSON:
		err = json.Unmarshal(data, &numbers)
	case config.FormatYAML:
		err = yaml.Unmarshal(data, &numbers)
	default:
		err = config.ValidateFormat(format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return collection.New(numbers), nil
}

func encodeNumbers(w io.Writer, format string, c *collection.Collection[float64]) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case config.FormatJSON:
		data, err = json.Marshal(c)
		data = append(data, '\n')
	case config.FormatYAML:
		data, err = yaml.Marshal(c.All())
	default:
		err = config.ValidateFormat(format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}
