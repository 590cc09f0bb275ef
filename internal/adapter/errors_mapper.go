package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen bounds how much of an error body ends up in the message.
const maxErrorBodyLen = 200

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen] + "..."
	}

	return fmt.Errorf("%w: %w: http %d: %s", ErrRequestFailure, ErrUnexpectedStatus, resp.StatusCode(), body)
}

func requestFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRequestFailure, op, err)
}
