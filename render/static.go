package render

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static holds the browser page that draws views with abcjs.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic("Could not open static files: " + err.Error())
	}
	return sub
}
