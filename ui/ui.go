package ui

import (
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/jyane/jgbc/gb"
)

const frameRate = 60

func mainLoop(window *glfw.Window, console *gb.Console) {
	for range time.Tick(time.Second / frameRate) {
		if err := console.StepFrame(); err != nil {
			glog.Errorln("Console stopped: ", err)
			return
		}
		c := backdrop(console)
		gl.ClearColor(c[0], c[1], c[2], 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		window.SwapBuffers()
		glfw.PollEvents()
		console.SetButtons(getKeys(window))
		if window.ShouldClose() {
			return
		}
	}
}

// Start is the main entrypoint.
func Start(console *gb.Console, width int, height int) {
	err := glfw.Init()
	if err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(width, height, "JGBC", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	mainLoop(window, console)
}
