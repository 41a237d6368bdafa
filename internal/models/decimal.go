package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Decimal представляет десятичное число фиксированной точности,
// принимаемое из JSON как число или как строка ("1.000").
// Разбор намеренно отложен до валидации, чтобы ошибку формата можно
// было привязать к конкретному полю запроса.
type Decimal struct {
	raw string
}

// UnmarshalJSON сохраняет исходный литерал значения
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	d.raw = s
	return nil
}

// MarshalJSON выводит значение строкой, как его хранит база
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}

// String возвращает значение в виде, пригодном для записи в NUMERIC
func (d *Decimal) String() string {
	return d.raw
}

// Validate проверяет, что значение является десятичным числом и
// укладывается в ограничения точности NUMERIC(maxDigits, decimalPlaces).
// Возвращает список сообщений об ошибках, пустой при корректном значении.
func (d *Decimal) Validate(maxDigits, decimalPlaces int) []string {
	intPart, fracPart, ok := d.parts()
	if !ok {
		return []string{ErrMsgInvalidNumber}
	}

	// Ведущие нули значащими знаками не считаются
	wholeDigits := len(strings.TrimLeft(intPart, "0"))
	switch {
	case wholeDigits+len(fracPart) > maxDigits:
		return []string{fmt.Sprintf("Убедитесь, что в числе не больше %d знаков.", maxDigits)}
	case len(fracPart) > decimalPlaces:
		return []string{fmt.Sprintf("Убедитесь, что в числе не больше %d знаков после запятой.", decimalPlaces)}
	case wholeDigits > maxDigits-decimalPlaces:
		// Короткая дробная часть не освобождает от предела целой:
		// иначе значение не поместится в столбец
		return []string{fmt.Sprintf("Убедитесь, что в числе не больше %d знаков до запятой.", maxDigits-decimalPlaces)}
	}
	return nil
}

// Sign возвращает -1, 0 или 1 по знаку числа.
// Вызывается только после успешной Validate.
func (d *Decimal) Sign() int {
	intPart, fracPart, ok := d.parts()
	if !ok {
		return 0
	}
	if strings.Trim(intPart+fracPart, "0") == "" {
		return 0
	}
	if strings.HasPrefix(d.raw, "-") {
		return -1
	}
	return 1
}

// parts разбирает литерал на целую и дробную части цифр
func (d *Decimal) parts() (intPart, fracPart string, ok bool) {
	s := d.raw
	if s == "" {
		return "", "", false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	intPart, fracPart, dotted := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return "", "", false
	}
	if dotted && fracPart == "" {
		return "", "", false
	}
	for _, part := range []string{intPart, fracPart} {
		for _, c := range part {
			if c < '0' || c > '9' {
				return "", "", false
			}
		}
	}
	return intPart, fracPart, true
}
