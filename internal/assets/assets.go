// Package assets embeds the sprite art drawn by the terminal hosts and the
// images served to browsers.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/vovakirdan/peanut-runner/internal/core"
)

//go:embed sprites/*.txt
var spriteFS embed.FS

//go:embed images/*.svg
var imageFS embed.FS

// Sprite loads the terminal art for a named asset.
func Sprite(name string) (core.Sprite, error) {
	data, err := spriteFS.ReadFile(path.Join("sprites", name+".txt"))
	if err != nil {
		return core.Sprite{}, fmt.Errorf("sprite %s: %w", name, err)
	}
	s, err := core.ParseSprite(string(data))
	if err != nil {
		return core.Sprite{}, fmt.Errorf("sprite %s: %w", name, err)
	}
	return s, nil
}

// ImagePath returns the URL path of an asset image relative to the image root.
func ImagePath(name string) string {
	return name + ".svg"
}

// Images returns the browser images rooted at their directory.
func Images() fs.FS {
	sub, err := fs.Sub(imageFS, "images")
	if err != nil {
		panic(err) // Static path, cannot fail
	}
	return sub
}
