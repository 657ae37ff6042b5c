package annotation

import _ "embed"

//go:embed assets/annotations.css
var stylesheet string

// Stylesheet returns the static label stylesheet (shadow and tooltip hover transitions)
// for the host styling system to merge in once at startup.
func Stylesheet() string { return stylesheet }
