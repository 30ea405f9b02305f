package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// registerDomainSteps registers business-level setup steps that drive
// the API directly: registration, product catalog and record seeding.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAs)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I have a product named "([^"]*)" of type "([^"]*)"$`, iHaveAProduct)
	ctx.Step(`^I recorded a sale of (\d+) "([^"]*)" at ([\d.]+) each on "([^"]*)"$`, iRecordedASale)
	ctx.Step(`^I recorded an expense "([^"]*)" of ([\d.]+) on "([^"]*)"$`, iRecordedAnExpense)
	ctx.Step(`^I recorded a production batch of (\d+) "([^"]*)" at ([\d.]+) each on "([^"]*)"$`, iRecordedAProductionBatch)
}

// postJSON sends an authenticated JSON request and decodes the response
// into out when the status matches.
func (tc *TestContext) postJSON(endpoint string, payload interface{}, wantStatus int, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := tc.doRequest("POST", endpoint, bytes.NewReader(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != wantStatus {
		return fmt.Errorf("setup request to %s expected status %d, got %d. Body: %s",
			endpoint, wantStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	if out != nil {
		if err := json.Unmarshal(tc.responseBody, out); err != nil {
			return fmt.Errorf("failed to decode setup response: %w", err)
		}
	}
	return nil
}

func iAmRegisteredAs(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var result struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	err := tc.postJSON("/api/v1/auth/register", map[string]string{
		"email":         email,
		"name":          "Test Owner",
		"business_name": "Test Bakery",
		"password":      password,
	}, 201, &result)
	if err != nil {
		return ctx, err
	}

	tc.accessToken = result.AccessToken
	tc.refreshToken = result.RefreshToken
	return SetTestContext(ctx, tc), nil
}

func iAmAuthenticated(ctx context.Context) (context.Context, error) {
	return iAmRegisteredAs(ctx, "owner@bakery.com", "Str0ngPass!")
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	tc.refreshToken = ""
	return SetTestContext(ctx, tc), nil
}

func iHaveAProduct(ctx context.Context, name, productType string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var result struct {
		ID string `json:"id"`
	}
	err := tc.postJSON("/api/v1/products", map[string]string{
		"name": name,
		"type": productType,
	}, 201, &result)
	if err != nil {
		return ctx, err
	}

	id, err := uuid.Parse(result.ID)
	if err != nil {
		return ctx, fmt.Errorf("invalid product id in response: %w", err)
	}
	tc.products[name] = id
	return SetTestContext(ctx, tc), nil
}

func iRecordedASale(ctx context.Context, quantity int, productName string, unitPrice float64, date string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	productID, ok := tc.products[productName]
	if !ok {
		return ctx, fmt.Errorf("product %q has not been seeded", productName)
	}

	err := tc.postJSON("/api/v1/sales", map[string]interface{}{
		"product_id": productID.String(),
		"quantity":   quantity,
		"unit_price": unitPrice,
		"date":       date,
	}, 201, nil)
	if err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iRecordedAnExpense(ctx context.Context, description string, amount float64, date string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	err := tc.postJSON("/api/v1/expenses", map[string]interface{}{
		"description": description,
		"amount":      amount,
		"date":        date,
	}, 201, nil)
	if err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iRecordedAProductionBatch(ctx context.Context, quantity int, productName string, unitCost float64, date string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	productID, ok := tc.products[productName]
	if !ok {
		return ctx, fmt.Errorf("product %q has not been seeded", productName)
	}

	err := tc.postJSON("/api/v1/production", map[string]interface{}{
		"product_id": productID.String(),
		"quantity":   quantity,
		"unit_cost":  unitCost,
		"date":       date,
	}, 201, nil)
	if err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}
