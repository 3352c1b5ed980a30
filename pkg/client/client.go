package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotAuthenticated is returned before sending a request that needs a token
// when the credential store holds none.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int      `json:"-"`
	Message    string   `json:"error"`
	Details    []string `json:"details,omitempty"`
	Detail     string   `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, "; ") + ")"
	}

	return msg
}

type Config struct {
	BaseURL     string
	Credentials CredentialStore
	// HTTPClient defaults to a client with a 30s timeout.
	HTTPClient *http.Client
}

// Client calls the protender REST API. Tokens are read from and written to
// the CredentialStore it was built with.
type Client struct {
	baseURL     string
	credentials CredentialStore
	httpClient  *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base url is required")
	}
	if cfg.Credentials == nil {
		return nil, errors.New("credential store is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		credentials: cfg.Credentials,
		httpClient:  httpClient,
	}, nil
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	auth        bool
}

func jsonRequest(method, path string, payload interface{}, auth bool) (*request, error) {
	r := &request{method: method, path: path, auth: auth}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		r.body = bytes.NewReader(data)
		r.contentType = "application/json"
	}

	return r, nil
}

func (c *Client) do(ctx context.Context, r *request, out interface{}) error {
	reqURL := c.baseURL + r.path
	if len(r.query) > 0 {
		reqURL += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, reqURL, r.body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.auth {
		token, err := c.credentials.Load()
		if err != nil {
			return fmt.Errorf("load credentials: %w", err)
		}
		if token == "" {
			return ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}, auth bool, out interface{}) error {
	r, err := jsonRequest(method, path, payload, auth)
	if err != nil {
		return err
	}

	return c.do(ctx, r, out)
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Search != "" {
		v.Set("search", o.Search)
	}

	return v
}

func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/ping", nil, false, nil)
}

// Register creates an account and stores the issued token.
func (c *Client) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	return c.authenticate(ctx, "/api/auth/register", email, password)
}

// Login stores the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	return c.authenticate(ctx, "/api/auth/login", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}

	var out AuthResult
	if err := c.doJSON(ctx, http.MethodPost, path, payload, false, &out); err != nil {
		return nil, err
	}
	if err := c.credentials.Save(out.Token); err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	return &out, nil
}

// Logout forgets the stored token. Tokens are stateless, so nothing is sent.
func (c *Client) Logout() error {
	return c.credentials.Clear()
}

func (c *Client) Me(ctx context.Context) (*CurrentUser, error) {
	var out CurrentUser
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, true, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ListCompanies(ctx context.Context, opts ListOptions) (*CompanyPage, error) {
	var out CompanyPage
	r := &request{method: http.MethodGet, path: "/api/companies", query: opts.values()}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) GetCompany(ctx context.Context, id string) (*CompanyDetails, error) {
	var out CompanyDetails
	if err := c.doJSON(ctx, http.MethodGet, "/api/companies/"+url.PathEscape(id), nil, false, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CreateCompany(ctx context.Context, input CompanyInput) (*Company, error) {
	var out struct {
		Company Company `json:"company"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/companies", input, true, &out); err != nil {
		return nil, err
	}

	return &out.Company, nil
}

func (c *Client) UpdateCompany(ctx context.Context, id string, input CompanyInput) (*Company, error) {
	var out struct {
		Company Company `json:"company"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/companies/"+url.PathEscape(id), input, true, &out); err != nil {
		return nil, err
	}

	return &out.Company, nil
}

// UploadLogo sends data as the multipart "logo" field.
func (c *Client) UploadLogo(ctx context.Context, companyId, filename, contentType string, data []byte) (*LogoResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="logo"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create logo part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write logo part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	r := &request{
		method:      http.MethodPost,
		path:        "/api/companies/" + url.PathEscape(companyId) + "/logo",
		body:        &body,
		contentType: writer.FormDataContentType(),
		auth:        true,
	}

	var out LogoResult
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) AddGoodsService(ctx context.Context, companyId string, input GoodsServiceInput) (*GoodsService, error) {
	var out struct {
		GoodsService GoodsService `json:"goods_service"`
	}
	path := "/api/companies/" + url.PathEscape(companyId) + "/goods-services"
	if err := c.doJSON(ctx, http.MethodPost, path, input, true, &out); err != nil {
		return nil, err
	}

	return &out.GoodsService, nil
}

func (c *Client) ListGoodsServices(ctx context.Context, companyId string) ([]GoodsService, error) {
	var out struct {
		GoodsServices []GoodsService `json:"goods_services"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/goods-services/company/"+url.PathEscape(companyId), nil, false, &out); err != nil {
		return nil, err
	}

	return out.GoodsServices, nil
}

func (c *Client) CreateGoodsService(ctx context.Context, input GoodsServiceInput) (*GoodsService, error) {
	var out struct {
		GoodsService GoodsService `json:"goods_service"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/goods-services", input, true, &out); err != nil {
		return nil, err
	}

	return &out.GoodsService, nil
}

func (c *Client) UpdateGoodsService(ctx context.Context, id string, input GoodsServiceInput) (*GoodsService, error) {
	var out struct {
		GoodsService GoodsService `json:"goods_service"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/goods-services/"+url.PathEscape(id), input, true, &out); err != nil {
		return nil, err
	}

	return &out.GoodsService, nil
}

func (c *Client) DeleteGoodsService(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/goods-services/"+url.PathEscape(id), nil, true, nil)
}

func (c *Client) ListTenders(ctx context.Context, opts ListOptions) (*TenderPage, error) {
	var out TenderPage
	r := &request{method: http.MethodGet, path: "/api/tenders", query: opts.values()}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) GetTender(ctx context.Context, id string) (*Tender, error) {
	var out struct {
		Tender Tender `json:"tender"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/tenders/"+url.PathEscape(id), nil, false, &out); err != nil {
		return nil, err
	}

	return &out.Tender, nil
}

func (c *Client) CreateTender(ctx context.Context, input TenderInput) (*Tender, error) {
	var out struct {
		Tender Tender `json:"tender"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/tenders", input, true, &out); err != nil {
		return nil, err
	}

	return &out.Tender, nil
}

func (c *Client) UpdateTender(ctx context.Context, id string, input TenderInput) (*Tender, error) {
	var out struct {
		Tender Tender `json:"tender"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/tenders/"+url.PathEscape(id), input, true, &out); err != nil {
		return nil, err
	}

	return &out.Tender, nil
}

func (c *Client) DeleteTender(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/tenders/"+url.PathEscape(id), nil, true, nil)
}

func (c *Client) ListCompanyTenders(ctx context.Context, companyId string) ([]Tender, error) {
	var out struct {
		Tenders []Tender `json:"tenders"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/tenders/company/"+url.PathEscape(companyId), nil, false, &out); err != nil {
		return nil, err
	}

	return out.Tenders, nil
}

func (c *Client) Apply(ctx context.Context, tenderId, proposal string) (*Application, error) {
	payload := map[string]string{"tenderId": tenderId, "proposal": proposal}

	var out struct {
		Application Application `json:"application"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/applications", payload, true, &out); err != nil {
		return nil, err
	}

	return &out.Application, nil
}

func (c *Client) ListTenderApplications(ctx context.Context, tenderId string) ([]Application, error) {
	return c.listApplications(ctx, "/api/applications/tender/"+url.PathEscape(tenderId))
}

func (c *Client) ListCompanyApplications(ctx context.Context, companyId string) ([]Application, error) {
	return c.listApplications(ctx, "/api/applications/company/"+url.PathEscape(companyId))
}

func (c *Client) listApplications(ctx context.Context, path string) ([]Application, error) {
	var out struct {
		Applications []Application `json:"applications"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, true, &out); err != nil {
		return nil, err
	}

	return out.Applications, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id, status string) (*Application, error) {
	var out struct {
		Application Application `json:"application"`
	}
	path := "/api/applications/" + url.PathEscape(id) + "/status"
	if err := c.doJSON(ctx, http.MethodPatch, path, map[string]string{"status": status}, true, &out); err != nil {
		return nil, err
	}

	return &out.Application, nil
}
