package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для опциональных полей в запросах и фильтрах
func Ptr[T any](v T) *T {
	return &v
}

// Value возвращает значение по указателю или значение по умолчанию, если указатель nil
func Value[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
