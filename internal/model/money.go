package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Money сумма в сентаво (1/100 реала). API отдаёт цену числом с дробной частью,
// храним целым, чтобы суммы выручки не накапливали ошибку округления.
type Money int64

// Reais создаёт Money из суммы в реалах
func Reais(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Cents возвращает сумму в сентаво
func (m Money) Cents() int64 {
	return int64(m)
}

// Float возвращает сумму в реалах
func (m Money) Float() float64 {
	return float64(m) / 100
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	// Некоторые эндпоинты отдают цену строкой
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode price: %w", err)
		}
		data = []byte(s)
	}

	amount, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("decode price %q: %w", string(data), err)
	}
	*m = Reais(amount)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Float(), 'f', 2, 64)), nil
}
