package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SupabaseBucket stores objects in a Supabase Storage bucket through its REST API.
type SupabaseBucket struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

type SupabaseConfig struct {
	URL        string
	ServiceKey string
	Bucket     string
	// HTTPClient defaults to a client with a 30s timeout.
	HTTPClient *http.Client
}

func NewSupabaseBucket(cfg SupabaseConfig) (*SupabaseBucket, error) {
	if cfg.URL == "" || cfg.ServiceKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("supabase storage: url, service key and bucket are required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &SupabaseBucket{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.ServiceKey,
		bucket:     cfg.Bucket,
		httpClient: httpClient,
	}, nil
}

// Put uploads data under key, replacing any object already there, and returns its public URL.
func (b *SupabaseBucket) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", b.baseURL, b.bucket, url.PathEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", b.apiKey)
	req.Header.Set("Authorization", "Bearer "+b.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", responseError(resp)
	}

	return b.PublicURL(key), nil
}

func (b *SupabaseBucket) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", b.baseURL, b.bucket, url.PathEscape(key))
}

func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return fmt.Errorf("supabase storage: %s", errResp.Message)
		}
		if errResp.Error != "" {
			return fmt.Errorf("supabase storage: %s", errResp.Error)
		}
	}

	return fmt.Errorf("supabase storage: status %d", resp.StatusCode)
}
