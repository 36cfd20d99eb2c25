package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFiles embed.FS

var (
	jobPostingSchema = mustSchema("schemas/job_posting.schema.json")
	atsReportSchema  = mustSchema("schemas/ats_report.schema.json")
)

func mustSchema(name string) *gojsonschema.Schema {
	raw, err := schemaFiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("content: read schema %s: %v", name, err))
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("content: compile schema %s: %v", name, err))
	}
	return schema
}

// validate checks a decoded JSON value against schema.
func validate(schema *gojsonschema.Schema, v any) error {
	res, err := schema.Validate(gojsonschema.NewGoLoader(v))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// decodeValid validates v against schema and decodes it into dst.
func decodeValid(schema *gojsonschema.Schema, v any, dst any) error {
	if err := validate(schema, v); err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
