package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout формат даты в API и БД (YYYY-MM-DD)
const dateLayout = "2006-01-02"

// DateString строковый тип для календарной даты без времени
// Используется на границе HTTP API для валидации и сериализации дат
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет, что строка соответствует формату YYYY-MM-DD
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("invalid date string format: expected YYYY-MM-DD, got %q", string(d))
	}
	return nil
}

// ToTime конвертирует DateString в time.Time (полночь UTC)
func (d DateString) ToTime() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string format: expected YYYY-MM-DD, got %q", string(d))
	}
	return t, nil
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// IsBefore возвращает true, если дата раньше other
// Строковое сравнение корректно для формата YYYY-MM-DD
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter возвращает true, если дата позже other
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// MarshalJSON реализует json.Marshaler
func (d DateString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// UnmarshalJSON реализует json.Unmarshaler с валидацией формата
func (d *DateString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewDateStringFromString(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
