package pricingservice

import "errors"

var (
	// ErrQuoteNotFound возвращается, когда прайсинг-движок не знает тип номера
	ErrQuoteNotFound = errors.New("price quote not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pricingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("pricingservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что PricingService недоступен и следует считать по базовой цене
	ErrServiceDegraded = errors.New("pricingservice unavailable: graceful degradation applied")
)
