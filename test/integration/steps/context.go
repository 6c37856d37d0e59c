// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/sales-performance/backend/config"
	"github.com/sales-performance/backend/internal/infra/dependency"
	"github.com/sales-performance/backend/internal/integration/persistence/model"
	"github.com/sales-performance/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Values captured from earlier responses, referenced as {name}
	saved map[string]string

	// Dependencies
	db    *mock.Db
	clock *mock.Time
	cfg   *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

var placeholder = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Set Gin to test mode
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			saved:          make(map[string]string),
			db:             mock.NewDb(&model.SaleModel{}),
			clock:          mock.NewTime(),
			cfg:            config.Load(),
		}
		tc.cfg.Server.Environment = "test"
		tc.cfg.Metrics.Enabled = true

		// Every scenario starts with an empty session
		if err := tc.db.ClearDB(); err != nil {
			return ctx, err
		}

		injector := dependency.NewInjectorWithClock(tc.cfg, tc.db.DbConn, tc.db.HealthCheck, tc.clock)
		tc.engine = injector.Router.Setup(tc.cfg.Server.Environment)
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	// Register step definitions
	registerSessionSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerSessionSteps registers steps that prepare the working session.
func registerSessionSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^today is "([^"]*)"$`, todayIs)
	ctx.Step(`^the following sales are recorded:$`, theFollowingSalesAreRecorded)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
}

// Step implementations

func todayIs(ctx context.Context, date string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ctx, fmt.Errorf("invalid date %q: %w", date, err)
	}
	tc.clock.SetCurrentTime(day.Add(12 * time.Hour))
	return SetTestContext(ctx, tc), nil
}

// theFollowingSalesAreRecorded posts one sale per table row. The header row
// names the JSON fields; numeric columns are sent as numbers.
func theFollowingSalesAreRecorded(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return ctx, fmt.Errorf("sales table needs a header and at least one row")
	}

	numeric := map[string]bool{
		"number_of_tours":  true,
		"sale_amount":      true,
		"fdi_given_points": true,
	}

	header := table.Rows[0].Cells
	for _, r := range table.Rows[1:] {
		var sb strings.Builder
		sb.WriteString("{")
		for i, cell := range r.Cells {
			if i > 0 {
				sb.WriteString(",")
			}
			name := header[i].Value
			if numeric[name] {
				fmt.Fprintf(&sb, "%q:%s", name, cell.Value)
			} else {
				fmt.Fprintf(&sb, "%q:%q", name, cell.Value)
			}
		}
		sb.WriteString("}")

		var err error
		ctx, err = sendRequest(ctx, http.MethodPost, "/api/v1/sales", sb.String())
		if err != nil {
			return ctx, err
		}
		if tc.response.StatusCode != http.StatusCreated {
			return ctx, fmt.Errorf("failed to record sale: status %d, body %s", tc.response.StatusCode, tc.responseBody)
		}
	}
	return ctx, nil
}

func iSaveTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return ctx, err
	}
	tc.saved[name] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, body.Content)
}

func sendRequest(ctx context.Context, method, endpoint, body string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	url := tc.server.URL + tc.expand(endpoint)
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(tc.expand(body))
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	// Add headers
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

// expand replaces {name} placeholders with saved values.
func (tc *TestContext) expand(s string) string {
	return placeholder.ReplaceAllStringFunc(s, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := tc.saved[name]; ok {
			return value
		}
		return match
	})
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if value := tc.response.Header.Get(header); !strings.Contains(value, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, value)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != tc.expand(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := lookupField(tc.responseBody, field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}
	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

// lookupField resolves a dotted path such as "totals.total_volume" or
// "sales.0.id" in a JSON document.
func lookupField(body []byte, path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response", path)
			}
			current = value
		case []interface{}:
			var index int
			if _, err := fmt.Sscanf(part, "%d", &index); err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field '%s' has no item %s", path, part)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}
	return current, nil
}
