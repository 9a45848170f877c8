package pricingservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client клиент для работы с PricingService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PricingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetQuote запрашивает расчет стоимости проживания
func (c *Client) GetQuote(ctx context.Context, roomTypeID int64, checkIn, checkOut string, units int) (*Quote, error) {
	query := url.Values{}
	query.Set("room_type_id", strconv.FormatInt(roomTypeID, 10))
	query.Set("check_in", checkIn)
	query.Set("check_out", checkOut)
	query.Set("units", strconv.Itoa(units))

	reqURL := fmt.Sprintf("%s/internal/pricing/quote?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid quote parameters", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrQuoteNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var quote Quote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &quote, nil
}

// GetQuoteWithGracefulDegradation запрашивает расчет стоимости с graceful degradation
// При недоступности PricingService возвращает ErrServiceDegraded, что позволяет
// вызывающему посчитать стоимость по базовой цене типа номера
func (c *Client) GetQuoteWithGracefulDegradation(ctx context.Context, roomTypeID int64, checkIn, checkOut string, units int) (*Quote, error) {
	c.log.Info("Fetching price quote for room_type=%d, %s..%s", roomTypeID, checkIn, checkOut)

	quote, err := c.GetQuote(ctx, roomTypeID, checkIn, checkOut, units)
	if err != nil {
		// Бизнес-ошибку пробрасываем дальше как есть
		if err == ErrQuoteNotFound {
			c.log.Info("No quote found for room_type=%d", roomTypeID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("PricingService unavailable, applying graceful degradation for room_type=%d: %v", roomTypeID, err)
		return nil, fmt.Errorf("%w: room_type=%d, error=%v", ErrServiceDegraded, roomTypeID, err)
	}

	c.log.Info("Successfully fetched quote for room_type=%d, total=%.2f %s", roomTypeID, quote.TotalPrice, quote.Currency)
	return quote, nil
}
