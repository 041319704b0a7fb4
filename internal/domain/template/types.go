// Where: internal/domain/template/types.go
// What: Dockerfile template definitions and token sets.
// Why: Each template ships with the exact token set it expects.
package template

import "strings"

// Placeholders recognized by the shipped templates.
const (
	TokenBaseImage       = "@base.image@"
	TokenCommandLine     = "@command.line@"
	TokenApplicationPort = "@application.port@"

	TokenGraalVMImage   = "@graalvm.image@"
	TokenNativeImageCmd = "@graalvm.nativeimage.cmd@"
	TokenBaseImageSetup = "@base.image.setup@"
)

// Kind selects which template and token set a build uses.
type Kind string

const (
	KindJVM    Kind = "jvm"
	KindNative Kind = "native"
)

// Definition ties a template file to the placeholders it carries.
type Definition struct {
	Kind         Kind
	File         string
	Placeholders []string
}

var definitions = map[Kind]Definition{
	KindJVM: {
		Kind:         KindJVM,
		File:         "templates/Dockerfile.template",
		Placeholders: []string{TokenBaseImage, TokenCommandLine, TokenApplicationPort},
	},
	KindNative: {
		Kind: KindNative,
		File: "templates/Dockerfile.native.template",
		Placeholders: []string{
			TokenGraalVMImage,
			TokenNativeImageCmd,
			TokenBaseImage,
			TokenBaseImageSetup,
			TokenApplicationPort,
		},
	},
}

// Lookup returns the definition for kind.
func Lookup(kind Kind) (Definition, bool) {
	def, ok := definitions[Kind(strings.ToLower(strings.TrimSpace(string(kind))))]
	return def, ok
}

// Token is one placeholder and its literal replacement.
type Token struct {
	Placeholder string
	Value       string
}

// TokenSet is an ordered list of substitutions.
type TokenSet []Token

// Placeholders lists the placeholders in order.
func (s TokenSet) Placeholders() []string {
	out := make([]string, 0, len(s))
	for _, token := range s {
		out = append(out, token.Placeholder)
	}
	return out
}

// Value returns the replacement for placeholder.
func (s TokenSet) Value(placeholder string) (string, bool) {
	for _, token := range s {
		if token.Placeholder == placeholder {
			return token.Value, true
		}
	}
	return "", false
}
