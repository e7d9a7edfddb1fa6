package sheet

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"
)

// Schema describes the sheet document accepted by Load.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := r.Reflect(&Sheet{})
	s.Title = "GPA grade sheet"
	return s
}

// WriteSchema prints Schema as indented JSON.
func WriteSchema(w io.Writer) error {
	b, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
