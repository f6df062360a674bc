package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"pix-recovery/internal/config"
	"strconv"
	"time"
)

type YeverClient interface {
	ListOrders(ctx context.Context, status string, page, perPage int) ([]byte, error)
}

type yeverClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	token      string
}

func NewYeverClient(yeverCfg *config.Yever) YeverClient {
	return &yeverClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: yeverCfg.BaseApiURL,
		token:      yeverCfg.Token,
	}
}

func (c *yeverClientImpl) ListOrders(ctx context.Context, status string, page, perPage int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseApiURL+"/order/list", nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	q := req.URL.Query()
	if status != "" {
		q.Set("status", status)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	// only orders touched in the last week are worth recovering
	q.Set("updated_at_inicial", time.Now().AddDate(0, 0, -7).Format("2006-01-02"))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("yever error %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
