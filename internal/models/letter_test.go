package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }

func decPtr(s string) *Decimal { return &Decimal{raw: s} }

// validLetterInput возвращает корректный полный набор полей письма
func validLetterInput() LetterInput {
	return LetterInput{
		ShipmentInput: ShipmentInput{
			SenderFullName:      strPtr("Иванов Иван Иванович"),
			RecipientFullName:   strPtr("Петров Петр Петрович"),
			OriginLocation:      strPtr("Москва"),
			DestinationLocation: strPtr("Екатеринбург"),
			OriginPostcode:      int64Ptr(100001),
			DestinationPostcode: int64Ptr(100002),
		},
		WeightKg: decPtr("1.000"),
	}
}

func TestLetterInputValidateSuccess(t *testing.T) {
	input := validLetterInput()

	errs := input.Validate(false)

	assert.Empty(t, errs)
}

func TestLetterInputValidateRequiredFields(t *testing.T) {
	input := LetterInput{}

	errs := input.Validate(false)

	for _, field := range []string{
		"sender_full_name", "recipient_full_name",
		"origin_location", "destination_location",
		"origin_postcode", "destination_postcode", "weight_kg",
	} {
		assert.Contains(t, errs, field, "поле %s должно быть обязательным", field)
		assert.Contains(t, errs[field], ErrMsgRequired)
	}
	// Тип письма имеет значение по умолчанию и не обязателен
	assert.NotContains(t, errs, "letter_type")
}

func TestLetterInputValidatePostcodeTooShort(t *testing.T) {
	input := validLetterInput()
	input.OriginPostcode = int64Ptr(99999)

	errs := input.Validate(false)

	assert.Contains(t, errs["origin_postcode"], ErrMsgPostcodeLength)
	// Перекрестная проверка не должна срабатывать при ошибке в самом поле
	assert.NotContains(t, errs, NonFieldErrorsKey)
}

func TestLetterInputValidatePostcodeMatch(t *testing.T) {
	input := validLetterInput()
	input.OriginPostcode = int64Ptr(620000)
	input.DestinationPostcode = int64Ptr(620000)

	errs := input.Validate(false)

	assert.Contains(t, errs[NonFieldErrorsKey], ErrMsgPostcodeMatch)
}

func TestLetterInputValidateLocationMatchCaseInsensitive(t *testing.T) {
	input := validLetterInput()
	input.OriginLocation = strPtr("Москва")
	input.DestinationLocation = strPtr("МОСКВА")

	errs := input.Validate(false)

	assert.Contains(t, errs[NonFieldErrorsKey], ErrMsgLocationMatch)
}

func TestLetterInputValidateCollectsAllErrors(t *testing.T) {
	input := validLetterInput()
	input.OriginPostcode = int64Ptr(1)
	input.WeightKg = decPtr("-1.0")
	input.LetterType = intPtr(99)

	errs := input.Validate(false)

	assert.Contains(t, errs["origin_postcode"], ErrMsgPostcodeLength)
	assert.Contains(t, errs["weight_kg"], ErrMsgWeightPositive)
	assert.Len(t, errs["letter_type"], 1)
}

func TestLetterInputValidateWeight(t *testing.T) {
	t.Run("Нулевой вес недопустим", func(t *testing.T) {
		input := validLetterInput()
		input.WeightKg = decPtr("0.000")

		errs := input.Validate(false)

		assert.Contains(t, errs["weight_kg"], ErrMsgWeightPositive)
	})

	t.Run("Минимальный вес допустим", func(t *testing.T) {
		input := validLetterInput()
		input.WeightKg = decPtr("0.001")

		errs := input.Validate(false)

		assert.Empty(t, errs)
	})

	t.Run("Слишком длинная целая часть", func(t *testing.T) {
		// 7 знаков всего, но больше 4 до запятой — в NUMERIC(7,3)
		// такое значение не поместится
		input := validLetterInput()
		input.WeightKg = decPtr("123456.1")

		errs := input.Validate(false)

		assert.Len(t, errs["weight_kg"], 1)
		assert.Contains(t, errs["weight_kg"][0], "до запятой")
	})

	t.Run("Нечисловое значение", func(t *testing.T) {
		input := validLetterInput()
		input.WeightKg = decPtr("тяжелое")

		errs := input.Validate(false)

		assert.Contains(t, errs["weight_kg"], ErrMsgInvalidNumber)
	})
}

func TestLetterInputValidatePartial(t *testing.T) {
	t.Run("Отсутствующие поля не считаются ошибкой", func(t *testing.T) {
		input := LetterInput{}
		input.OriginPostcode = int64Ptr(620000)

		errs := input.Validate(true)

		assert.Empty(t, errs)
	})

	t.Run("Перекрестная проверка пропускается без второго поля", func(t *testing.T) {
		// Даже если в базе destination_postcode совпадает с присланным
		// origin_postcode, сравнивать не с чем — проверка не выполняется
		input := LetterInput{}
		input.OriginPostcode = int64Ptr(620000)

		errs := input.Validate(true)

		assert.NotContains(t, errs, NonFieldErrorsKey)
	})

	t.Run("Присутствующие поля проверяются", func(t *testing.T) {
		input := LetterInput{}
		input.OriginPostcode = int64Ptr(5)

		errs := input.Validate(true)

		assert.Contains(t, errs["origin_postcode"], ErrMsgPostcodeLength)
	})
}

func TestLetterTypeLabel(t *testing.T) {
	assert.Equal(t, "письмо", LetterTypeLabel(LetterTypeRegular))
	assert.Equal(t, "заказное письмо", LetterTypeLabel(LetterTypeRegistered))
	assert.Equal(t, "ценное письмо", LetterTypeLabel(LetterTypeValuable))
	assert.Equal(t, "экспресс-письмо", LetterTypeLabel(LetterTypeExpress))
}

func TestNewLetterResponse(t *testing.T) {
	letter := Letter{
		ID:         "123e4567-e89b-12d3-a456-426614174000",
		LetterType: LetterTypeRegistered,
		WeightKg:   "1.000",
	}

	response := NewLetterResponse(&letter)

	// В представлении доступны и числовой код, и его название
	assert.Equal(t, LetterTypeRegistered, response.LetterType)
	assert.Equal(t, "заказное письмо", response.LetterTypeDisplay)
	assert.Equal(t, "1.000", response.WeightKg)
}

func TestShipmentListQueryOrderBy(t *testing.T) {
	tests := []struct {
		ordering string
		expected string
	}{
		{"", "created_at DESC"},
		{"created_at", "created_at ASC"},
		{"-created_at", "created_at DESC"},
		{"updated_at", "updated_at ASC"},
		{"-updated_at", "updated_at DESC"},
		{"sender_full_name", "sender_full_name ASC"},
		{"-sender_full_name", "sender_full_name DESC"},
		// Неизвестные значения игнорируются
		{"weight_kg", "created_at DESC"},
		{"id; DROP TABLE letter", "created_at DESC"},
	}

	for _, tt := range tests {
		q := ShipmentListQuery{Ordering: tt.ordering}
		assert.Equal(t, tt.expected, q.OrderBy())
	}
}
