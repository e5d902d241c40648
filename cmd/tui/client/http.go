package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the fintrack HTTP API. The bearer token lives only in
// memory for the lifetime of the program.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

type Entry struct {
	ID              string  `json:"id"`
	Month           string  `json:"month"`
	StartingBalance float64 `json:"startingBalance"`
	Salary          float64 `json:"salary"`
	EMI             float64 `json:"emi"`
	Expenses        float64 `json:"expenses"`
	Savings         float64 `json:"savings"`
	TotalSaved      float64 `json:"totalSaved"`
	ClosingBalance  float64 `json:"closingBalance"`
}

type EntryRequest struct {
	Month           string  `json:"month"`
	StartingBalance float64 `json:"startingBalance"`
	Salary          float64 `json:"salary"`
	EMI             float64 `json:"emi"`
	Expenses        float64 `json:"expenses"`
	Savings         float64 `json:"savings"`
}

type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Signup(name, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(http.MethodPost, "/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateEntry(req EntryRequest) (*Entry, error) {
	var entry Entry
	if err := c.do(http.MethodPost, "/entries", req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) ListEntries() (*ListEntriesResponse, error) {
	var resp ListEntriesResponse
	if err := c.do(http.MethodGet, "/entries", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteEntry(id string) error {
	return c.do(http.MethodDelete, "/entries/"+id, nil, nil)
}
