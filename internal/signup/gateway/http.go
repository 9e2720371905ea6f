// Package gateway implements the remote sign-up collaborator over HTTP.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"enroll/internal/signup"
	"enroll/internal/signup/service"
)

const defaultTimeout = 10 * time.Second

// Client speaks the sign-up wire contract. It performs no retries; the retry
// policy, like the timeout, belongs here and not in the orchestrator.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

// NewClient builds a gateway client for the given base URL. httpClient may be
// nil, in which case a client with a default timeout is used.
func NewClient(base string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{base: base, http: httpClient, logger: logger}
}

type signUpRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type signUpResponse struct {
	Token string `json:"token"`
}

type errorEnvelope struct {
	Message string            `json:"message"`
	Errors  []fieldDescriptor `json:"errors,omitempty"`
}

type fieldDescriptor struct {
	Field  string   `json:"field"`
	Errors []string `json:"errors"`
}

// SignUp posts the payload to the sign-up endpoint. A parseable error
// envelope comes back as *service.RemoteError; anything the transport fails
// to deliver comes back as a plain error.
func (c *Client) SignUp(ctx context.Context, payload signup.Payload) (signup.Token, error) {
	body := signUpRequest{Name: payload.Name}
	switch payload.Identity.Kind() {
	case signup.KindEmail:
		body.Email = payload.Identity.Value()
	case signup.KindPhone:
		body.PhoneNumber = payload.Identity.Value()
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return signup.Token{}, fmt.Errorf("encode sign-up request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/signup", bytes.NewReader(buf))
	if err != nil {
		return signup.Token{}, fmt.Errorf("build sign-up request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return signup.Token{}, fmt.Errorf("sign-up request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated {
		var out signUpResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return signup.Token{}, fmt.Errorf("decode sign-up response: %w", err)
		}
		return signup.Token{Value: out.Token}, nil
	}

	return signup.Token{}, c.decodeError(resp)
}

// decodeError turns a non-201 response into a structured remote error. A body
// that does not parse as the error envelope still answered over HTTP, so it
// degrades to a message-only rejection rather than a connectivity fault.
func (c *Client) decodeError(resp *http.Response) error {
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Message == "" {
		if c.logger != nil {
			c.logger.Warn("sign-up rejection had no parseable envelope", "status", resp.StatusCode)
		}
		return &service.RemoteError{Message: resp.Status}
	}

	remote := &service.RemoteError{Message: envelope.Message}
	for _, fd := range envelope.Errors {
		remote.Fields = append(remote.Fields, service.RemoteFieldError{
			Field:    fd.Field,
			Messages: fd.Errors,
		})
	}
	return remote
}
