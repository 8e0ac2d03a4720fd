package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type recordingSink struct {
	vec3s  map[string]mgl32.Vec3
	floats map[string]float32
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		vec3s:  make(map[string]mgl32.Vec3),
		floats: make(map[string]float32),
	}
}

func (r *recordingSink) SetVec3(name string, v mgl32.Vec3) { r.vec3s[name] = v }
func (r *recordingSink) SetFloat(name string, v float32)   { r.floats[name] = v }

func TestApplyFillsEverySlot(t *testing.T) {
	sink := newRecordingSink()
	Apply(sink, DeskSources(), DeskAmbient())

	// 4 vec3 per slot plus the ambient color.
	if got, want := len(sink.vec3s), MaxSources*4+1; got != want {
		t.Errorf("vec3 writes = %d, want %d", got, want)
	}
	// 2 floats per slot plus the ambient intensity.
	if got, want := len(sink.floats), MaxSources*2+1; got != want {
		t.Errorf("float writes = %d, want %d", got, want)
	}

	if got, want := sink.vec3s["lightSources[0].position"], (mgl32.Vec3{10, 15, -5}); got != want {
		t.Errorf("lightSources[0].position = %v, want %v", got, want)
	}
	if got, want := sink.vec3s["lightSources[1].diffuseColor"], (mgl32.Vec3{0.7, 0.7, 0.8}); got != want {
		t.Errorf("lightSources[1].diffuseColor = %v, want %v", got, want)
	}
	if got, want := sink.floats["lightSources[0].focalStrength"], float32(64); got != want {
		t.Errorf("lightSources[0].focalStrength = %v, want %v", got, want)
	}
	if got, want := sink.vec3s["ambientLight.color"], (mgl32.Vec3{0.5, 0.5, 0.55}); got != want {
		t.Errorf("ambientLight.color = %v, want %v", got, want)
	}
	if got, want := sink.floats["ambientLight.intensity"], float32(1); got != want {
		t.Errorf("ambientLight.intensity = %v, want %v", got, want)
	}
}

func TestApplyZeroesUnusedSlots(t *testing.T) {
	sink := newRecordingSink()
	Apply(sink, DeskSources(), DeskAmbient())

	for _, name := range []string{
		"lightSources[2].diffuseColor",
		"lightSources[3].specularColor",
	} {
		got, ok := sink.vec3s[name]
		if !ok {
			t.Fatalf("%s was not written", name)
		}
		if got != (mgl32.Vec3{}) {
			t.Errorf("%s = %v, want zero", name, got)
		}
	}
}

func TestApplyDropsExcessSources(t *testing.T) {
	sink := newRecordingSink()
	six := make([]Source, 6)
	for i := range six {
		six[i].FocalStrength = float32(i + 1)
	}
	Apply(sink, six, Ambient{})

	if _, ok := sink.floats["lightSources[4].focalStrength"]; ok {
		t.Error("slot 4 written, rig must stop at MaxSources")
	}
	if got, want := sink.floats["lightSources[3].focalStrength"], float32(4); got != want {
		t.Errorf("lightSources[3].focalStrength = %v, want %v", got, want)
	}
}

func TestDeskRig(t *testing.T) {
	sources := DeskSources()
	if len(sources) != 2 {
		t.Fatalf("desk rig has %d sources, want 2", len(sources))
	}
	if sources[0].Position.Y() <= sources[1].Position.Y() {
		// Sanity on the layout: sunlight sits higher than the lamp.
		t.Errorf("sunlight y = %v, lamp y = %v; sunlight should be higher",
			sources[0].Position.Y(), sources[1].Position.Y())
	}
	if got, want := sources[1].SpecularIntensity, float32(0.5); got != want {
		t.Errorf("lamp specular intensity = %v, want %v", got, want)
	}
}
