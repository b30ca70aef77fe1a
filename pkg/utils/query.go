package utils

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SplitList junta valores repetidos e separados por vírgula, descartando vazios.
// years=2024&years=2025 e years=2024,2025 produzem o mesmo resultado.
func SplitList(values []string) []string {
	items := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				items = append(items, part)
			}
		}
	}
	return items
}

// ParseIntList converte a lista de parâmetros em inteiros
func ParseIntList(values []string) ([]int, error) {
	items := SplitList(values)
	numbers := make([]int, 0, len(items))
	for _, item := range items {
		number, err := strconv.Atoi(item)
		if err != nil {
			return nil, errors.Errorf("valor numérico inválido: %q", item)
		}
		numbers = append(numbers, number)
	}
	return numbers, nil
}

// ParseOptionalInt devolve zero quando o parâmetro está ausente
func ParseOptionalInt(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Errorf("valor numérico inválido: %q", value)
	}
	return number, nil
}
