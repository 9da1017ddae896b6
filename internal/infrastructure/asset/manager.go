// Package asset loads and caches textures and fonts by name.
package asset

import (
	"image"
	_ "image/png"
	"io/fs"

	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
	"github.com/younwookim/darkanmon/internal/infrastructure/logging"
)

// DefaultFont names the embedded Go Regular face.
const DefaultFont = "default"

type fontKey struct {
	name string
	size float64
}

// Manager resolves asset names against a filesystem and uploads them to a
// device. Every asset is loaded once; later lookups hit the cache. A
// missing or undecodable file is an error at load time.
type Manager struct {
	fsys   fs.FS
	device gfx.Device

	textures map[string]gfx.Texture
	fonts    map[fontKey]*Font
}

// NewManager returns a manager reading from fsys.
func NewManager(fsys fs.FS, device gfx.Device) *Manager {
	return &Manager{
		fsys:     fsys,
		device:   device,
		textures: make(map[string]gfx.Texture),
		fonts:    make(map[fontKey]*Font),
	}
}

// LoadImage decodes the image file name from fsys.
func LoadImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "asset: open %s", name)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "asset: decode %s", name)
	}
	return img, nil
}

// Image decodes name without uploading it.
func (m *Manager) Image(name string) (image.Image, error) {
	return LoadImage(m.fsys, name)
}

// Texture returns the texture for name, uploading it on first use.
func (m *Manager) Texture(name string) (gfx.Texture, error) {
	if tex, ok := m.textures[name]; ok {
		return tex, nil
	}
	img, err := m.Image(name)
	if err != nil {
		return nil, err
	}
	tex := m.device.NewTexture(img)
	m.textures[name] = tex
	logging.For("asset").Debug("texture loaded", "name", name, "size", img.Bounds().Size())
	return tex, nil
}

// DefaultMesh returns the shared unit quad.
func (m *Manager) DefaultMesh() *gfx.Mesh {
	return gfx.UnitQuad()
}

// Font returns the face name rasterized at size pixels. DefaultFont
// resolves to the embedded face, anything else is a TTF/OTF path.
func (m *Manager) Font(name string, size float64) (*Font, error) {
	key := fontKey{name: name, size: size}
	if f, ok := m.fonts[key]; ok {
		return f, nil
	}

	var src []byte
	if name == DefaultFont {
		src = goregular.TTF
	} else {
		data, err := fs.ReadFile(m.fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "asset: read font %s", name)
		}
		src = data
	}

	face, err := m.device.NewFont(src, size)
	if err != nil {
		return nil, errors.Wrapf(err, "asset: font %s", name)
	}
	f := &Font{Name: name, Size: size, face: face}
	m.fonts[key] = f
	logging.For("asset").Debug("font loaded", "name", name, "size", size)
	return f, nil
}

// Len returns the number of cached textures and fonts.
func (m *Manager) Len() int {
	return len(m.textures) + len(m.fonts)
}
