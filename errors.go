package bridge

import "fmt"

// SchemaError reports a malformed or incomplete input schema. Adapting the
// offending descriptor aborts; the remaining tools are unaffected.
type SchemaError struct {
	Tool   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Tool == "" {
		return fmt.Sprintf("invalid input schema: %s", e.Reason)
	}
	return fmt.Sprintf("tool %s: invalid input schema: %s", e.Tool, e.Reason)
}

// ArgumentError reports an ambiguous invocation convention. The remote tool
// is never called when this is returned.
type ArgumentError struct {
	Tool   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("tool %s: %s", e.Tool, e.Reason)
}

// EmptyResultError reports a tool call that returned no content items.
type EmptyResultError struct {
	Tool string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("tool %s returned an empty content", e.Tool)
}

// UnsupportedContentError reports a first content item the bridge cannot
// render as a string, such as an image or an embedded resource.
type UnsupportedContentError struct {
	Tool string
	Kind string
}

func (e *UnsupportedContentError) Error() string {
	return fmt.Sprintf("tool %s returned a non-text content: %q", e.Tool, e.Kind)
}
