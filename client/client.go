// Package client is a Go client for the drugstore REST API.
package client

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"api_drugstore/internal/customers"
	"api_drugstore/internal/products"
	"api_drugstore/internal/sales"
	"api_drugstore/internal/sellers"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("drugstore api: %d %s", e.Status, e.Message)
}

type Client struct {
	rc *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

func (c *Client) Close() error {
	return c.rc.Close()
}

// do sends body to path and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any, headers map[string]string) error {
	apiErr := &APIError{}
	req := c.rc.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode()
		}
		return apiErr
	}
	return nil
}

func (c *Client) AddCustomer(ctx context.Context, req customers.AddCustomerRequest) (*customers.CustomerDTO, error) {
	var out customers.CustomerDTO
	if err := c.do(ctx, resty.MethodPost, "/customer/add", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddSeller(ctx context.Context, req sellers.AddSellerRequest) (*sellers.SellerDTO, error) {
	var out sellers.SellerDTO
	if err := c.do(ctx, resty.MethodPost, "/seller/add", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddProduct(ctx context.Context, req products.AddProductRequest) (*products.ProductDTO, error) {
	var out products.ProductDTO
	if err := c.do(ctx, resty.MethodPost, "/products/add", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddSale places an order. A non-empty idempotencyKey is sent as the
// Idempotency-Key header so a retry is not charged twice.
func (c *Client) AddSale(ctx context.Context, req sales.AddSaleRequest, idempotencyKey string) (*sales.SaleDTO, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}
	var out sales.SaleDTO
	if err := c.do(ctx, resty.MethodPost, "/sale/add", req, &out, headers); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SalesForCustomer(ctx context.Context, customerID int64) ([]sales.SaleDTO, error) {
	out := make([]sales.SaleDTO, 0)
	path := fmt.Sprintf("/sale/all-for-customer=%d", customerID)
	if err := c.do(ctx, resty.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}
