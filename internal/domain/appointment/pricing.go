package appointment

import (
	"math"
	"strconv"
	"strings"
)

// ResolveFinalPrice decide o preço cobrado na conclusão.
// Entrada vazia mantém o preço original do agendamento; caso contrário o
// valor digitado é parseado (aceita vírgula decimal) e arredondado para
// 2 casas. Valores não parseáveis ou <= 0 falham com InvalidPriceError.
func ResolveFinalPrice(originalPrice float64, entered string) (float64, error) {
	entered = strings.TrimSpace(entered)
	if entered == "" {
		return originalPrice, nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(entered, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, &InvalidPriceError{Input: entered}
	}

	return math.Round(v*100) / 100, nil
}
