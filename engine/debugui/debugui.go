// Package debugui provides immediate-mode GUI integration for engine
// programs using Dear ImGui. Windows are registered on an Overlays resource
// and rendered by ImguiSystem once every system has run for the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// ImguiItem is a named Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// Overlays is a resource listing the windows to draw each frame.
type Overlays struct {
	Items  []ImguiItem
	Hidden bool
}

// Add registers a window. Items render in the order they were added.
func (o *Overlays) Add(name string, render func()) {
	o.Items = append(o.Items, ImguiItem{Name: name, Render: render})
}

// Remove drops every item with the given name and reports whether any
// existed.
func (o *Overlays) Remove(name string) bool {
	kept := o.Items[:0]
	for _, item := range o.Items {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	removed := len(kept) != len(o.Items)
	o.Items = kept
	return removed
}

// ImguiInputState tracks Dear ImGui's input capture state as a resource.
// Input systems check it so keys typed into a debug window do not reach the
// game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the Overlays render functions to the end of the frame
// and refreshes ImguiInputState.
type ImguiSystem struct {
	Overlays   engine.Resource[Overlays]
	InputState engine.Resource[ImguiInputState]
}

// NewImguiSystem makes sure both resources exist in world.
func NewImguiSystem(world *engine.World) *ImguiSystem {
	engine.NewResource(world, Overlays{})
	engine.NewResource(world, ImguiInputState{})
	return &ImguiSystem{}
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	overlays := i.Overlays.Get()
	if overlays == nil || overlays.Hidden {
		return
	}
	for _, item := range overlays.Items {
		frame.Commands.Defer(item.Render)
	}
}
