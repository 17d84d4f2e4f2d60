package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/jyane/jgbc/gb"
)

// getKeys gets the state of keyboard, WASD for directions, J and H for A and B,
// G for start, F for select.
func getKeys(window *glfw.Window) [8]bool {
	var keys [8]bool
	keys[gb.ButtonRight] = window.GetKey(glfw.KeyD) == glfw.Press
	keys[gb.ButtonLeft] = window.GetKey(glfw.KeyA) == glfw.Press
	keys[gb.ButtonDown] = window.GetKey(glfw.KeyS) == glfw.Press
	keys[gb.ButtonUp] = window.GetKey(glfw.KeyW) == glfw.Press
	keys[gb.ButtonStart] = window.GetKey(glfw.KeyG) == glfw.Press
	keys[gb.ButtonSelect] = window.GetKey(glfw.KeyF) == glfw.Press
	keys[gb.ButtonB] = window.GetKey(glfw.KeyH) == glfw.Press
	keys[gb.ButtonA] = window.GetKey(glfw.KeyJ) == glfw.Press
	return keys
}

// shades are the four greens of the DMG screen, lightest first.
var shades = [4][3]float32{
	{0.61, 0.74, 0.06},
	{0.55, 0.67, 0.06},
	{0.19, 0.38, 0.19},
	{0.06, 0.22, 0.06},
}

// backdrop returns the color the whole screen shows when nothing is drawn
// on it: color 0 of the background palette, or the blank screen when the
// display is off.
func backdrop(console *gb.Console) [3]float32 {
	if !console.Bus.ReadBit(gb.LCDC, 7) {
		return shades[0]
	}
	return shades[console.Bus.Read(gb.BGP, gb.Internal)&0x03]
}
