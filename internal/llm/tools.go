package llm

// Schema is the JSON-schema subset used to describe tool parameters.
// Providers convert it to their own wire format.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Schema type names
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// ToolDef describes a callable tool to the model
type ToolDef struct {
	Name        string
	Description string
	Parameters  *Schema // nil for tools that take no arguments
}
