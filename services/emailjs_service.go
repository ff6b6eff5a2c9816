package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// ErrEmailJSNotConfigured is returned before any network activity when
// the delivery credentials are incomplete.
var ErrEmailJSNotConfigured = errors.New("emailjs credentials not configured")

// EmailJSClient delivers lead payloads through the EmailJS send API.
type EmailJSClient struct {
	serviceID  string
	templateID string
	publicKey  string
	httpClient *http.Client
}

// NewEmailJSClient reads credentials from the environment. Missing
// credentials are not fatal at construction; Send reports them as a
// configuration error instead, so the rest of the site keeps working.
func NewEmailJSClient() *EmailJSClient {
	client := &EmailJSClient{
		serviceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		templateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		publicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	if !client.configured() {
		log.Println("⚠️ [emailjs] credentials incomplete, lead delivery disabled")
	}
	return client
}

func (c *EmailJSClient) configured() bool {
	return c.serviceID != "" && c.templateID != "" && c.publicKey != ""
}

// emailJSRequest is the send API body. template_params carries the
// flat lead payload keys.
type emailJSRequest struct {
	ServiceID      string      `json:"service_id"`
	TemplateID     string      `json:"template_id"`
	UserID         string      `json:"user_id"`
	TemplateParams interface{} `json:"template_params"`
}

// Send posts one lead to EmailJS. Configuration is checked first; an
// incomplete configuration returns ErrEmailJSNotConfigured without
// touching the network.
func (c *EmailJSClient) Send(ctx context.Context, params interface{}) error {
	if !c.configured() {
		return ErrEmailJSNotConfigured
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		log.Printf("[emailjs] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, emailJSEndpoint, bytes.NewBuffer(body))
	if err != nil {
		log.Printf("[emailjs] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[emailjs] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("[emailjs] send failed with status %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("emailjs returned status %d", resp.StatusCode)
	}

	log.Println("✅ [emailjs] lead delivered")
	return nil
}
