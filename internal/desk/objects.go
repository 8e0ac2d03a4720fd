package desk

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/calegray/deskscene/internal/engine/mesh"
)

// Objects returns the desk scene in draw order.
func Objects() []Object {
	uv := mgl32.Vec2{1, 1}
	black := mgl32.Vec4{0, 0, 0, 1}
	blushPink := mgl32.Vec4{1, 0.8, 0.8, 1}
	padGray := mgl32.Vec4{0.1, 0.1, 0.1, 1}

	return []Object{
		// Desk
		{Name: "desk surface", Shape: mesh.Plane,
			Scale:    mgl32.Vec3{20, 1, 10},
			Position: mgl32.Vec3{0, 0, 0},
			Texture:  "Desk", UVScale: uv, Material: "wood"},
		{Name: "desk side left", Shape: mesh.Box,
			Scale:    mgl32.Vec3{1.3, 4.5, 16},
			Position: mgl32.Vec3{-20.7, 2, -2},
			Texture:  "Desk", UVScale: uv, Material: "wood"},
		{Name: "desk side right", Shape: mesh.Box,
			Scale:    mgl32.Vec3{1.3, 4.5, 16},
			Position: mgl32.Vec3{20.7, 2, -2},
			Texture:  "Desk", UVScale: uv, Material: "wood"},
		{Name: "desk backboard", Shape: mesh.Box,
			Scale:    mgl32.Vec3{1.3, 4.5, 42.6},
			Rotation: mgl32.Vec3{0, 90, 0},
			Position: mgl32.Vec3{-0.1, 2, -10.7},
			Texture:  "Desk", UVScale: uv, Material: "wood"},

		// Laptop
		{Name: "laptop base", Shape: mesh.Box,
			Scale:    mgl32.Vec3{12, 1, 6},
			Position: mgl32.Vec3{-1, 1.1, 0},
			Texture:  "Body", UVScale: uv},
		{Name: "laptop keyboard", Shape: mesh.Plane,
			Scale:    mgl32.Vec3{5.8, 1.3, 2.9},
			Position: mgl32.Vec3{-1, 1.69, 0},
			Texture:  "Base", UVScale: uv},
		{Name: "laptop lid", Shape: mesh.Box,
			Scale:    mgl32.Vec3{12, 8, 0.1},
			Rotation: mgl32.Vec3{-20, 0, 0},
			Position: mgl32.Vec3{-1, 4.5, -4.2},
			Texture:  "Body", UVScale: uv},
		{Name: "laptop screen", Shape: mesh.Box,
			Scale:    mgl32.Vec3{10.8, 6.5, 0.1},
			Rotation: mgl32.Vec3{-20, 0, 0},
			Position: mgl32.Vec3{-1, 5, -4.1},
			Texture:  "Screen", UVScale: uv},

		// Frog planter
		{Name: "planter body", Shape: mesh.Cylinder,
			Scale:    mgl32.Vec3{2.3, 2, 2},
			Position: mgl32.Vec3{11.5, 0, -4},
			Texture:  "Frog", UVScale: uv, Material: "glass"},
		{Name: "planter left eye", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{0.3, 0.3, 0.3},
			Position: mgl32.Vec3{10.5, 2, -2.42},
			Texture:  "Frog", UVScale: uv},
		{Name: "planter right eye", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{0.3, 0.3, 0.3},
			Position: mgl32.Vec3{12, 2, -2.26},
			Texture:  "Frog", UVScale: uv},
		{Name: "planter left pupil", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{0.15, 0.15, -0.1},
			Position: mgl32.Vec3{10.4, 2, -2.15},
			Color:    black},
		{Name: "planter right pupil", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{0.15, 0.15, -0.1},
			Position: mgl32.Vec3{12, 2, -2},
			Color:    black},
		{Name: "planter left blush", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{0.5, 0.5, 0.1},
			Rotation: mgl32.Vec3{0, -25, 0},
			Position: mgl32.Vec3{10, 1.4, -2.45},
			Color:    blushPink},
		{Name: "planter right blush", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{0.5, 0.5, 0.1},
			Rotation: mgl32.Vec3{0, 25, 0},
			Position: mgl32.Vec3{12.5, 1.4, -2.15},
			Color:    blushPink},

		// Drink can
		{Name: "can body", Shape: mesh.Cylinder,
			Scale:    mgl32.Vec3{1, 4, 1},
			Position: mgl32.Vec3{7, 0, 0},
			Texture:  "Can", UVScale: uv, Material: "aluminum"},
		{Name: "can top", Shape: mesh.Cylinder,
			Scale:    mgl32.Vec3{1, 0.1, 1},
			Position: mgl32.Vec3{7, 4, 0},
			Texture:  "Top", UVScale: uv, Material: "aluminum"},

		// Cat-ear headphones
		{Name: "headphone band", Shape: mesh.HalfTorus,
			Scale:    mgl32.Vec3{5, 5, 4.5},
			Rotation: mgl32.Vec3{345, 0, 0},
			Position: mgl32.Vec3{-13.5, 4.5, -7.5},
			Texture:  "Headphone", UVScale: uv, Material: "plastic"},
		{Name: "headphone left ear", Shape: mesh.Cone,
			Scale:    mgl32.Vec3{2.2, 3, 0.75},
			Rotation: mgl32.Vec3{0, 0, 45},
			Position: mgl32.Vec3{-17.5, 8.25, -8.5},
			Texture:  "Headphone", UVScale: uv, Material: "plastic"},
		{Name: "headphone left cup", Shape: mesh.HalfSphere,
			Scale:    mgl32.Vec3{2.5, 2.5, 2.5},
			Rotation: mgl32.Vec3{90, 0, 100},
			Position: mgl32.Vec3{-17.5, 2.8, -7.2},
			Texture:  "Headphone", UVScale: uv, Material: "plastic"},
		{Name: "headphone left cushion", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{2.3, 1.3, 2.3},
			Rotation: mgl32.Vec3{90, 0, 100},
			Position: mgl32.Vec3{-16.9, 2.5, -7.2},
			Texture:  "Cushion", UVScale: uv, Material: "cloth"},
		{Name: "headphone right ear", Shape: mesh.Cone,
			Scale:    mgl32.Vec3{2.2, 3, 0.75},
			Rotation: mgl32.Vec3{0, 0, -45},
			Position: mgl32.Vec3{-10.5, 8.5, -8.5},
			Texture:  "Headphone", UVScale: uv, Material: "plastic"},
		{Name: "headphone right cup", Shape: mesh.HalfSphere,
			Scale:    mgl32.Vec3{2.5, 2.5, 2.5},
			Rotation: mgl32.Vec3{90, 0, -100},
			Position: mgl32.Vec3{-9.5, 2.9, -7.2},
			Texture:  "Headphone", UVScale: uv, Material: "plastic"},
		{Name: "headphone right cushion", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{2.3, 1.3, 2.3},
			Rotation: mgl32.Vec3{90, 0, -100},
			Position: mgl32.Vec3{-10.2, 2.8, -7.2},
			Texture:  "Cushion", UVScale: uv, Material: "cloth"},

		// Mouse corner
		{Name: "mousepad", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{5.3, 0.2, 5},
			Position: mgl32.Vec3{13, 0.2, 4.5},
			Material: "cloth", Color: padGray},
		{Name: "wrist rest", Shape: mesh.Sphere,
			Scale:    mgl32.Vec3{2, 0.5, 2},
			Position: mgl32.Vec3{13, 0.5, 7.5},
			Material: "cloth", Color: padGray},
		{Name: "mouse body", Shape: mesh.HalfSphere,
			Scale:    mgl32.Vec3{2, 1.5, 3},
			Rotation: mgl32.Vec3{0, 50, 0},
			Position: mgl32.Vec3{13, 0.2, 2.8},
			Texture:  "Mouse", UVScale: uv, Material: "plastic"},
		{Name: "mouse buttons", Shape: mesh.Box,
			Scale:    mgl32.Vec3{2, 0.5, 0.01},
			Rotation: mgl32.Vec3{0, 135, 0},
			Position: mgl32.Vec3{11.95, 1.1, 4.2},
			Texture:  "Buttons", UVScale: uv, Material: "plastic"},
		{Name: "mouse wheel", Shape: mesh.HalfSphere,
			Scale:    mgl32.Vec3{0.2, 0.2, 0.5},
			Rotation: mgl32.Vec3{340, 45, 0},
			Position: mgl32.Vec3{12.15, 1.55, 2},
			Texture:  "Wheel", UVScale: mgl32.Vec2{2, 2}, Material: "plastic"},
	}
}
