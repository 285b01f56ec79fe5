// Package client is a typed HTTP client for the backend's dashboard
// endpoints. It fetches the independent dashboard figures concurrently
// and joins them into one aggregation-ready snapshot.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a whole dashboard snapshot, not a single request.
const DefaultTimeout = 10 * time.Second

// APIError is an error response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client talks to the backend.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the snapshot timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the transport, e.g. for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// New creates a client for the backend at baseURL. Transient failures
// are retried with backoff.
func New(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil

	c := &Client{
		baseURL: baseURL,
		http:    retryClient.StandardClient(),
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get fetches path and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)

		return APIError{Status: resp.StatusCode, Message: body.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding response of GET %s", path)
	}

	return nil
}

// MonthlySalary returns the user's monthly salary.
func (c *Client) MonthlySalary(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var body struct {
		MonthlySalary decimal.Decimal `json:"salario_mensal"`
	}

	err := c.get(ctx, fmt.Sprintf("/dashboard/salariomensal?user_id=%d", userID), &body)
	return body.MonthlySalary, err
}

// FixedBillSum returns the sum of the user's active fixed bills.
func (c *Client) FixedBillSum(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var body struct {
		Sum decimal.Decimal `json:"soma_contas_fixas"`
	}

	err := c.get(ctx, fmt.Sprintf("/dashboard/somacontasfixas?user_id=%d", userID), &body)
	return body.Sum, err
}

// InstallmentTotal is the remaining installment liability and the number
// of active plans.
type InstallmentTotal struct {
	Remaining decimal.Decimal `json:"total_parcelamentos"`
	Active    int             `json:"parcelamentos_ativos"`
}

// InstallmentRemaining returns the user's remaining installment
// liability.
func (c *Client) InstallmentRemaining(ctx context.Context, userID uint) (InstallmentTotal, error) {
	var body InstallmentTotal

	err := c.get(ctx, fmt.Sprintf("/dashboard/totalparcelamentos?user_id=%d", userID), &body)
	return body, err
}

// MonthTotal is the total and number of expenses in one month.
type MonthTotal struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"gastos"`
}

// MonthExpenseTotal returns the user's expense total for one month.
func (c *Client) MonthExpenseTotal(ctx context.Context, userID uint, month, year int) (MonthTotal, error) {
	var body MonthTotal

	err := c.get(ctx, fmt.Sprintf("/registro/total-gasto-mes/%d/%d/%d", userID, month, year), &body)
	return body, err
}

// CategoryTotals returns the user's per-category totals for one month.
// Every category is present.
func (c *Client) CategoryTotals(ctx context.Context, userID uint, month, year int) (map[string]decimal.Decimal, error) {
	var body struct {
		Totals map[string]decimal.Decimal `json:"total_por_categoria"`
	}

	err := c.get(ctx, fmt.Sprintf("/registro/total-gasto-categoria/%d/%d/%d", userID, month, year), &body)
	return body.Totals, err
}

// CategoryPercentages returns each category's share of one month's
// spending.
func (c *Client) CategoryPercentages(ctx context.Context, userID uint, month, year int) (map[string]decimal.Decimal, error) {
	var body struct {
		Percentages map[string]decimal.Decimal `json:"percentual_por_categoria"`
	}

	err := c.get(ctx, fmt.Sprintf("/registro/percentual-gasto-categoria/%d/%d/%d", userID, month, year), &body)
	return body.Percentages, err
}

// YearlySeries returns the user's monthly totals of one year as a
// twelve-element series, January first.
func (c *Client) YearlySeries(ctx context.Context, userID uint, year int) ([]decimal.Decimal, error) {
	var body struct {
		Totals map[string]decimal.Decimal `json:"total_por_mes"`
	}

	err := c.get(ctx, fmt.Sprintf("/registro/total-gasto-mes-ano/%d/%d", userID, year), &body)
	if err != nil {
		return nil, err
	}

	series := make([]decimal.Decimal, 12)
	for i := range series {
		series[i] = body.Totals[strconv.Itoa(i+1)]
	}

	return series, nil
}

// Result is the outcome of one snapshot fetch. Failed fetches carry
// their error here instead of failing the whole snapshot.
type Result[T any] struct {
	Value T
	Err   error
}

// Snapshot is the aggregation-ready dashboard data of one user for one
// month. Every figure is fetched independently; check each slot's Err
// before using its Value.
type Snapshot struct {
	Salary              Result[decimal.Decimal]
	FixedBillSum        Result[decimal.Decimal]
	Installments        Result[InstallmentTotal]
	MonthTotal          Result[MonthTotal]
	CategoryTotals      Result[map[string]decimal.Decimal]
	CategoryPercentages Result[map[string]decimal.Decimal]
	YearlySeries        Result[[]decimal.Decimal]
}

// DashboardSnapshot fetches all dashboard figures concurrently.
//
// One failing fetch never cancels its siblings; its error is captured in
// the corresponding Result slot. The whole snapshot is bounded by the
// client timeout, and cancelling ctx abandons the in-flight requests.
func (c *Client) DashboardSnapshot(ctx context.Context, userID uint, month, year int) Snapshot {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var snapshot Snapshot

	// Goroutines always return nil so that the group context stays alive
	// for the other fetches.
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snapshot.Salary.Value, snapshot.Salary.Err = c.MonthlySalary(ctx, userID)
		return nil
	})
	g.Go(func() error {
		snapshot.FixedBillSum.Value, snapshot.FixedBillSum.Err = c.FixedBillSum(ctx, userID)
		return nil
	})
	g.Go(func() error {
		snapshot.Installments.Value, snapshot.Installments.Err = c.InstallmentRemaining(ctx, userID)
		return nil
	})
	g.Go(func() error {
		snapshot.MonthTotal.Value, snapshot.MonthTotal.Err = c.MonthExpenseTotal(ctx, userID, month, year)
		return nil
	})
	g.Go(func() error {
		snapshot.CategoryTotals.Value, snapshot.CategoryTotals.Err = c.CategoryTotals(ctx, userID, month, year)
		return nil
	})
	g.Go(func() error {
		snapshot.CategoryPercentages.Value, snapshot.CategoryPercentages.Err = c.CategoryPercentages(ctx, userID, month, year)
		return nil
	})
	g.Go(func() error {
		snapshot.YearlySeries.Value, snapshot.YearlySeries.Err = c.YearlySeries(ctx, userID, year)
		return nil
	})

	_ = g.Wait()

	return snapshot
}
