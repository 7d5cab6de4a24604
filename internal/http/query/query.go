// Package query разбирает параметры строки запроса в структуру
// по тегам `query`, приводя строки к типам полей.
package query

import (
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

// Decode заполняет out значениями из values. Для каждого ключа берётся
// первое значение, неизвестные ключи игнорируются.
func Decode(values url.Values, out any) error {
	const op = "query.Decode"

	raw := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		raw[key] = vals[0]
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "query",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
