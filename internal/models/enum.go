package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// unmarshalEnum разбирает строковое значение перечисления и отклоняет
// неизвестные теги. Пустая строка допускается и означает «не задано».
func unmarshalEnum[E ~string](data []byte, target *E, allowed []E) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw != "" && !slices.Contains(allowed, E(raw)) {
		return fmt.Errorf("unknown value %q", raw)
	}
	*target = E(raw)
	return nil
}
