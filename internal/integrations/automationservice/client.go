package automationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger interface de logging usada pelo cliente
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client cliente HTTP do serviço de automação.
// Os hooks são fire-and-continue: quem chama loga a falha e segue, a
// operação de negócio nunca falha por causa de notificação.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient cria um novo cliente do serviço de automação
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AppointmentCreated notifica a criação de um agendamento
func (c *Client) AppointmentCreated(ctx context.Context, appointmentID int64, appointmentType string) error {
	return c.post(ctx, "/internal/hooks/appointment-created", hookEvent{
		AppointmentID:   appointmentID,
		AppointmentType: appointmentType,
	})
}

// AppointmentFinalized notifica que um agendamento entrou em estado finalizado
func (c *Client) AppointmentFinalized(ctx context.Context, appointmentID int64, appointmentType string) error {
	return c.post(ctx, "/internal/hooks/appointment-finalized", hookEvent{
		AppointmentID:   appointmentID,
		AppointmentType: appointmentType,
	})
}

// AppointmentDeleted notifica a exclusão de um agendamento
func (c *Client) AppointmentDeleted(ctx context.Context, appointmentID int64) error {
	return c.post(ctx, "/internal/hooks/appointment-deleted", hookEvent{
		AppointmentID: appointmentID,
	})
}

func (c *Client) post(ctx context.Context, path string, event hookEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}
