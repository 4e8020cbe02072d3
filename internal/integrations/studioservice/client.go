package studioservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со StudioService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StudioService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStudio получает студию с расписанием работы по ID
func (c *Client) GetStudio(ctx context.Context, studioID int64) (*Studio, error) {
	url := fmt.Sprintf("%s/internal/studios/%d", c.baseURL, studioID)

	var studio Studio
	if err := c.getJSON(ctx, url, &studio, ErrStudioNotFound); err != nil {
		return nil, err
	}

	return &studio, nil
}

// GetRoom получает комнату студии по ID
func (c *Client) GetRoom(ctx context.Context, studioID, roomID int64) (*Room, error) {
	url := fmt.Sprintf("%s/internal/studios/%d/rooms/%d", c.baseURL, studioID, roomID)

	var room Room
	if err := c.getJSON(ctx, url, &room, ErrRoomNotFound); err != nil {
		return nil, err
	}

	return &room, nil
}

// getJSON выполняет GET-запрос и декодирует ответ
// notFoundErr возвращается на 404 от сервиса
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
