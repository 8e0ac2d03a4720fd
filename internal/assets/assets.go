// Package assets maps texture tags to the image files that back them.
package assets

import "path/filepath"

// Asset pairs a texture tag with an image file.
type Asset struct {
	Tag  string
	File string
}

// Manifest lists the textures a scene loads, in load order. Order matters:
// the texture registry assigns slot indices sequentially.
type Manifest []Asset

// Default returns the desk scene manifest.
func Default() Manifest {
	return Manifest{
		{Tag: "Frog", File: "glass.png"},
		{Tag: "Base", File: "keyboard.jpg"},
		{Tag: "Body", File: "body.jpg"},
		{Tag: "Screen", File: "screen.png"},
		{Tag: "Desk", File: "wood.jpg"},
		{Tag: "Can", File: "can_label.png"},
		{Tag: "Mouse", File: "mouse.jpg"},
		{Tag: "Headphone", File: "headphone.jpg"},
		{Tag: "Cushion", File: "cushion.jpg"},
		{Tag: "Buttons", File: "buttons.jpg"},
		{Tag: "Top", File: "can_top.jpg"},
		{Tag: "Wheel", File: "wheel.jpg"},
	}
}

// Resolve returns a copy of the manifest with every file joined against dir.
func (m Manifest) Resolve(dir string) Manifest {
	resolved := make(Manifest, len(m))
	for i, a := range m {
		resolved[i] = Asset{Tag: a.Tag, File: filepath.Join(dir, a.File)}
	}
	return resolved
}

// Find returns the entry for tag.
func (m Manifest) Find(tag string) (Asset, bool) {
	for _, a := range m {
		if a.Tag == tag {
			return a, true
		}
	}
	return Asset{}, false
}

// Tags returns every tag in manifest order.
func (m Manifest) Tags() []string {
	tags := make([]string, len(m))
	for i, a := range m {
		tags[i] = a.Tag
	}
	return tags
}
