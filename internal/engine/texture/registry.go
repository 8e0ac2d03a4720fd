// Package texture loads image files into GPU textures and tracks which
// texture unit each one occupies. Textures are named by string tags; slot
// indices are assigned in load order and double as texture unit numbers.
package texture

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/calegray/deskscene/internal/assets"
	"github.com/calegray/deskscene/internal/logger"
)

// MaxSlots is the default number of texture units the registry occupies.
const MaxSlots = 16

// SlotNotFound is returned by FindSlot for tags with no loaded texture.
const SlotNotFound = -1

// ErrRegistryFull is returned when every slot is taken.
var ErrRegistryFull = errors.New("texture registry full")

// Slot records one loaded texture. Its index in the registry is the texture
// unit it binds to.
type Slot struct {
	Tag    string
	Handle uint32
}

// Registry owns the scene's GPU textures.
//
// Loading, lookup and release all happen on the rendering thread; the
// registry itself is not safe for concurrent use.
type Registry struct {
	dev      Device
	slots    []Slot
	capacity int
}

// NewRegistry returns an empty registry driving dev. A capacity of zero or
// less falls back to MaxSlots.
func NewRegistry(dev Device, capacity int) *Registry {
	if capacity <= 0 {
		capacity = MaxSlots
	}
	return &Registry{
		dev:      dev,
		slots:    make([]Slot, 0, capacity),
		capacity: capacity,
	}
}

// Load reads, decodes and uploads the image at path, registering it under
// tag in the next free slot.
func (r *Registry) Load(path, tag string) error {
	if len(r.slots) >= r.capacity {
		return fmt.Errorf("loading %s: %w", path, ErrRegistryFull)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading texture: %w", err)
	}
	img, err := Decode(data, path)
	if err != nil {
		return err
	}

	return r.add(img, tag, path)
}

// LoadAll loads every manifest entry. Decoding runs concurrently; uploads
// and slot assignment happen on the calling thread in manifest order, so
// slot indices stay deterministic. Entries that fail to read, decode or fit
// are logged and skipped. Returns the number of textures loaded.
func (r *Registry) LoadAll(manifest assets.Manifest) int {
	type result struct {
		img *image.RGBA
		err error
	}
	results := make([]result, len(manifest))

	var wg sync.WaitGroup
	for i, a := range manifest {
		wg.Add(1)
		go func(i int, a assets.Asset) {
			defer wg.Done()
			data, err := os.ReadFile(a.File)
			if err != nil {
				results[i].err = fmt.Errorf("reading texture: %w", err)
				return
			}
			results[i].img, results[i].err = Decode(data, a.File)
		}(i, a)
	}
	wg.Wait()

	loaded := 0
	for i, a := range manifest {
		if err := results[i].err; err != nil {
			logger.Warn("skipping texture", zap.String("tag", a.Tag), zap.Error(err))
			continue
		}
		if err := r.add(results[i].img, a.Tag, a.File); err != nil {
			logger.Warn("skipping texture", zap.String("tag", a.Tag), zap.Error(err))
			continue
		}
		loaded++
	}
	return loaded
}

func (r *Registry) add(img *image.RGBA, tag, path string) error {
	if len(r.slots) >= r.capacity {
		return fmt.Errorf("loading %s: %w", path, ErrRegistryFull)
	}

	handle, err := r.dev.CreateTexture(img)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", path, err)
	}

	r.slots = append(r.slots, Slot{Tag: tag, Handle: handle})
	logger.Debug("texture loaded",
		zap.String("tag", tag),
		zap.String("path", path),
		zap.Int("slot", len(r.slots)-1))
	return nil
}

// BindAll binds every loaded texture to the unit matching its slot index.
// Call once after loading, before the scene renders.
func (r *Registry) BindAll() {
	for i, s := range r.slots {
		r.dev.BindUnit(i, s.Handle)
	}
}

// FindSlot returns the texture unit registered under tag, or SlotNotFound.
// The first registration wins if a tag was registered twice.
func (r *Registry) FindSlot(tag string) int {
	for i, s := range r.slots {
		if s.Tag == tag {
			return i
		}
	}
	return SlotNotFound
}

// FindHandle returns the GPU handle registered under tag.
func (r *Registry) FindHandle(tag string) (uint32, bool) {
	for _, s := range r.slots {
		if s.Tag == tag {
			return s.Handle, true
		}
	}
	return 0, false
}

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	return len(r.slots)
}

// ReleaseAll deletes every GPU texture and empties the registry. The
// registry can load again afterwards.
func (r *Registry) ReleaseAll() {
	for _, s := range r.slots {
		r.dev.DeleteTexture(s.Handle)
	}
	r.slots = r.slots[:0]
}
