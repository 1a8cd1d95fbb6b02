package predict

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed contract.yaml
var contractDocument []byte

// Contract holds the request and response schemas of the prediction backend,
// loaded from the embedded OpenAPI document.
type Contract struct {
	request  *openapi3.Schema
	response *openapi3.Schema
	health   *openapi3.Schema
}

var (
	defaultContractOnce sync.Once
	defaultContract     *Contract
	defaultContractErr  error
)

// DefaultContract returns the embedded contract, loading it once.
func DefaultContract() (*Contract, error) {
	defaultContractOnce.Do(func() {
		defaultContract, defaultContractErr = LoadContract(context.Background(), contractDocument)
	})
	return defaultContract, defaultContractErr
}

// ContractDocument returns a copy of the embedded OpenAPI document.
func ContractDocument() []byte {
	return append([]byte(nil), contractDocument...)
}

// LoadContract parses and validates an OpenAPI document describing the
// /predict and /health operations.
func LoadContract(ctx context.Context, data []byte) (*Contract, error) {
	if len(data) == 0 {
		return nil, errors.New("predict: contract document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("predict: load contract: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("predict: validate contract: %w", err)
	}

	if doc.Paths == nil || doc.Paths.Value("/predict") == nil || doc.Paths.Value("/predict").Post == nil {
		return nil, errors.New("predict: contract does not define POST /predict")
	}

	contract := &Contract{}
	if contract.request, err = componentSchema(doc, "PredictRequest"); err != nil {
		return nil, err
	}
	if contract.response, err = componentSchema(doc, "PredictResponse"); err != nil {
		return nil, err
	}
	if contract.health, err = componentSchema(doc, "Health"); err != nil {
		return nil, err
	}
	return contract, nil
}

// CheckRequest validates an encoded request body.
func (c *Contract) CheckRequest(body []byte) error {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("predict: request is not JSON: %w", err)
	}
	if err := c.request.VisitJSON(value); err != nil {
		return fmt.Errorf("predict: request violates contract: %w", err)
	}
	return nil
}

// CheckResponse validates a decoded /predict response body.
func (c *Contract) CheckResponse(value any) error {
	if err := c.response.VisitJSON(value); err != nil {
		return fmt.Errorf("predict: response violates contract: %w", err)
	}
	return nil
}

// CheckHealth validates a decoded /health response body.
func (c *Contract) CheckHealth(value any) error {
	if err := c.health.VisitJSON(value); err != nil {
		return fmt.Errorf("predict: health response violates contract: %w", err)
	}
	return nil
}

func componentSchema(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	if doc.Components == nil {
		return nil, fmt.Errorf("predict: contract has no components")
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("predict: contract schema %q missing", name)
	}
	return ref.Value, nil
}
