// Where: assets/templates_embed.go
// What: Embed the Dockerfile templates shipped with the CLI.
// Why: Render without depending on files next to the binary.
package assets

import "embed"

//go:embed templates/*.template
var TemplatesFS embed.FS
