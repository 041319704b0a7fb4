// Where: internal/infra/build/file_ops.go
// What: Build package adapters for shared filesystem operations.
// Why: Preserve local helper call sites while centralizing implementation in infra/fileops.
package build

import (
	"github.com/poruru-code/jarbox/internal/infra/fileops"
)

var (
	writeFile = fileops.WriteFile
	dirExists = fileops.DirExists
)
