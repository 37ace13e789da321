package structured

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBaseURL = "https://targetplan.schemas.local/"

// compiledSchemas holds the document schema and the per-target schema.
type compiledSchemas struct {
	document *jsonschema.Schema
	target   *jsonschema.Schema
}

func compileSchemas() (*compiledSchemas, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020

	compile := func(name string) (*jsonschema.Schema, error) {
		data, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", name, err)
		}
		url := schemaBaseURL + name
		if err := c.AddResource(url, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("schema %s load failed: %w", name, err)
		}
		compiled, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("schema %s compile failed: %w", name, err)
		}
		return compiled, nil
	}

	doc, err := compile("document.schema.json")
	if err != nil {
		return nil, err
	}
	tgt, err := compile("target.schema.json")
	if err != nil {
		return nil, err
	}
	return &compiledSchemas{document: doc, target: tgt}, nil
}

// schemas is compiled once; the embedded sources never change at runtime.
var schemas = func() *compiledSchemas {
	s, err := compileSchemas()
	if err != nil {
		panic(err)
	}
	return s
}()
