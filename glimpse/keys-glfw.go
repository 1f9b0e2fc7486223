package glimpse

import "github.com/go-gl/glfw/v3.3/glfw"

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyA: KeyA,
	glfw.KeyB: KeyB,
	glfw.KeyC: KeyC,
	glfw.KeyD: KeyD,
	glfw.KeyE: KeyE,
	glfw.KeyF: KeyF,
	glfw.KeyG: KeyG,
	glfw.KeyH: KeyH,
	glfw.KeyI: KeyI,
	glfw.KeyJ: KeyJ,
	glfw.KeyK: KeyK,
	glfw.KeyL: KeyL,
	glfw.KeyM: KeyM,
	glfw.KeyN: KeyN,
	glfw.KeyO: KeyO,
	glfw.KeyP: KeyP,
	glfw.KeyQ: KeyQ,
	glfw.KeyR: KeyR,
	glfw.KeyS: KeyS,
	glfw.KeyT: KeyT,
	glfw.KeyU: KeyU,
	glfw.KeyV: KeyV,
	glfw.KeyW: KeyW,
	glfw.KeyX: KeyX,
	glfw.KeyY: KeyY,
	glfw.KeyZ: KeyZ,
	glfw.Key0: Key0,
	glfw.Key1: Key1,
	glfw.Key2: Key2,
	glfw.Key3: Key3,
	glfw.Key4: Key4,
	glfw.Key5: Key5,
	glfw.Key6: Key6,
	glfw.Key7: Key7,
	glfw.Key8: Key8,
	glfw.Key9: Key9,
	glfw.KeySpace: KeySpace,
	glfw.KeyEnter: KeyEnter,
	glfw.KeyEscape: KeyEscape,
	glfw.KeyTab: KeyTab,
	glfw.KeyBackspace: KeyBackspace,
	glfw.KeyUp: KeyUp,
	glfw.KeyDown: KeyDown,
	glfw.KeyLeft: KeyLeft,
	glfw.KeyRight: KeyRight,
	glfw.KeyLeftShift: KeyLeftShift,
	glfw.KeyRightShift: KeyRightShift,
	glfw.KeyLeftControl: KeyLeftControl,
	glfw.KeyRightControl: KeyRightControl,
	glfw.KeyF1: KeyF1,
	glfw.KeyF2: KeyF2,
	glfw.KeyF3: KeyF3,
	glfw.KeyF4: KeyF4,
	glfw.KeyF5: KeyF5,
	glfw.KeyF6: KeyF6,
	glfw.KeyF7: KeyF7,
	glfw.KeyF8: KeyF8,
	glfw.KeyF9: KeyF9,
	glfw.KeyF10: KeyF10,
	glfw.KeyF11: KeyF11,
	glfw.KeyF12: KeyF12,
}
