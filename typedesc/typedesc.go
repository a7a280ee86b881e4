// Package typedesc renders a schema tree into the compact type description
// embedded in extraction prompts. Renderings are deterministic: identical
// trees always produce identical text, with attributes and options in
// declaration order, so prompts stay reproducible for caching and testing.
package typedesc

import (
	"fmt"

	kor "github.com/reoring/kor"
)

// Descriptor renders a node tree into an informal type grammar a language
// model can read.
type Descriptor interface {
	Describe(n kor.Node) (string, error)
}

// ByName returns the descriptor registered under the given style name:
// "typescript" (default, also selected by "") or "bullets".
func ByName(style string) (Descriptor, error) {
	switch style {
	case "", "typescript":
		return TypeScript(), nil
	case "bullets":
		return BulletPoints(), nil
	default:
		return nil, fmt.Errorf("kor: unknown descriptor style %q", style)
	}
}
