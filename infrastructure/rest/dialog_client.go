// Package rest resolves dialogs against the chat REST API.
package rest

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"chat-sdk/errors"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	dialogPath  = "/chat/Dialog.json"
	tokenHeader = "QB-Token"
)

var _ contract.DialogLookup = (*DialogClient)(nil)

type DialogClient struct {
	log    *slog.Logger
	client *resty.Client
}

type dialogPage struct {
	Items []domain.DialogRecord `json:"items"`
}

// NewDialogClient targets endpoint with the session token on every request.
// Timeouts are driven by the caller's context, requestTimeout is a last resort bound.
func NewDialogClient(log *slog.Logger, endpoint, sessionToken string, requestTimeout time.Duration) *DialogClient {
	client := resty.New().
		SetBaseURL(endpoint).
		SetHeader(tokenHeader, sessionToken).
		SetHeader("Accept", "application/json").
		SetTimeout(requestTimeout)
	return &DialogClient{log: log, client: client}
}

func (c *DialogClient) FetchDialogByID(ctx context.Context, dialogID string) (domain.DialogRecord, error) {
	var page dialogPage
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("_id", dialogID).
		SetResult(&page).
		Get(dialogPath)
	if err != nil {
		return domain.DialogRecord{}, fmt.Errorf("dialog request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return domain.DialogRecord{}, fmt.Errorf("%w: %s", errors.ErrDialogNotFound, dialogID)
	}
	if resp.IsError() {
		return domain.DialogRecord{}, fmt.Errorf("dialog request returned %d: %s", resp.StatusCode(), resp.String())
	}
	if len(page.Items) == 0 {
		return domain.DialogRecord{}, fmt.Errorf("%w: %s", errors.ErrDialogNotFound, dialogID)
	}
	c.log.Debug("Dialog record received", "dialog_id", dialogID, "duration", resp.Time())
	return page.Items[0], nil
}
