// Package views HTML şablonlarını ikili dosyaya gömer.
package views

import "embed"

//go:embed layouts public panel errors
var FS embed.FS
