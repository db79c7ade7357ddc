package entity

import (
	"strings"
)

// Model is the interaction model of a command.
type Model string

// Model constants, stored in their rendered lower-case form.
const (
	ModelSlash   Model = "slash"
	ModelHybrid  Model = "hybrid"
	ModelMessage Model = "message"
)

// ValidModels contains all valid model values in declaration order.
var ValidModels = []Model{ModelSlash, ModelHybrid, ModelMessage}

// modelLookup maps lower-cased input tokens to their model.
var modelLookup = map[string]Model{
	"slash":   ModelSlash,
	"hybrid":  ModelHybrid,
	"message": ModelMessage,
}

// ParseModel resolves a free-text token to a Model, ignoring ASCII case and
// surrounding whitespace.
func ParseModel(token string) (Model, error) {
	m, ok := modelLookup[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return "", &InvalidEnumValueError{
			Field:   "model",
			Value:   token,
			Allowed: modelNames(),
		}
	}
	return m, nil
}

// String returns the lower-case form used in the declaration header.
func (m Model) String() string { return strings.ToLower(string(m)) }

// UnmarshalText implements encoding.TextUnmarshaler so decoders share the
// same lookup as ParseModel.
func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func modelNames() []string {
	names := make([]string, len(ValidModels))
	for i, m := range ValidModels {
		names[i] = m.String()
	}
	return names
}
