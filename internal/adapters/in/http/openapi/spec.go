package openapi

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawDocument []byte

// GetSwagger loads and validates the embedded OpenAPI document. Every call returns a
// fresh copy that the caller may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}

	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return doc, nil
}

// swaggerDoc serves the document to the Swagger UI as JSON.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// RegisterSwaggerDoc publishes the document under swag.Name, where echo-swagger
// looks it up for /swagger/doc.json.
func RegisterSwaggerDoc() error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	}
	return nil
}
