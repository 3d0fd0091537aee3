package formatting

import (
	"strconv"
	"strings"

	"github.com/Freeeeeet/studio_admin/internal/model"
)

// FormatPrice форматирует сумму в реалах: R$ 1.234,50
func FormatPrice(m model.Money) string {
	cents := m.Cents()
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "R$ " + groupThousands(cents/100) + "," + twoDigits(int(cents%100))
}

// FormatPriceShort форматирует цену без centavos, если они равны 0
func FormatPriceShort(m model.Money) string {
	if m.Cents()%100 == 0 {
		cents := m.Cents()
		sign := ""
		if cents < 0 {
			sign = "-"
			cents = -cents
		}
		return sign + "R$ " + groupThousands(cents/100)
	}
	return FormatPrice(m)
}

// groupThousands разделяет разряды точкой, как принято в pt-BR
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
