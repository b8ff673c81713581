package systems

import (
	"github.com/automoto/gombli/components"
	"github.com/automoto/gombli/engine"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// Action is a logical control the sandbox responds to.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionThrow
	ActionSelectNext
	ActionSelectPrev
	ActionToggleDebug
	ActionRestart
	ActionNextLevel
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is the left stick travel ignored before it counts as a direction.
const AnalogDeadzone = 0.25

// Bindings maps every action to its keys and pad buttons.
var Bindings = map[Action]InputBinding{
	ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionThrow: {
		Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyControlLeft},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionSelectNext: {
		Keys:                   []ebiten.Key{ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	ActionSelectPrev: {
		Keys:                   []ebiten.Key{ebiten.KeyQ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
	},
	ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
	ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	ActionNextLevel: {
		Keys:                   []ebiten.Key{ebiten.KeyN, ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

// inputState double-buffers the polled actions so presses can be edge-detected.
type inputState struct {
	current  [ActionCount]bool
	previous [ActionCount]bool
}

var input inputState

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput samples keyboard, pad buttons and the left stick once per tick.
func PollInput() {
	input.previous = input.current
	input.current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.current[action] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.current[action] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -AnalogDeadzone {
			input.current[ActionMoveLeft] = true
		}
		if horizontal > AnalogDeadzone {
			input.current[ActionMoveRight] = true
		}
		if vertical < -AnalogDeadzone {
			input.current[ActionMoveUp] = true
		}
		if vertical > AnalogDeadzone {
			input.current[ActionMoveDown] = true
		}
	}
}

// Pressed reports whether the action is held this tick.
func Pressed(a Action) bool {
	return input.current[a]
}

// JustPressed reports whether the action went down this tick.
func JustPressed(a Action) bool {
	return input.current[a] && !input.previous[a]
}

func axis(neg, pos Action) float64 {
	v := 0.0
	if Pressed(neg) {
		v--
	}
	if Pressed(pos) {
		v++
	}
	return v
}

// UpdateInput polls the controls and writes them into the hero's intent.
// Must run BEFORE UpdateEngine in the system order.
func UpdateInput(ecs *ecs.ECS) {
	PollInput()

	heroEntry, ok := engine.Hero(ecs.World)
	if !ok {
		return
	}
	intent := components.Intent.Get(heroEntry)
	intent.Move = dmath.NewVec2(axis(ActionMoveLeft, ActionMoveRight), axis(ActionMoveUp, ActionMoveDown))
	intent.Jump = Pressed(ActionJump)
	intent.Throw = Pressed(ActionThrow)
	intent.SelectNext = JustPressed(ActionSelectNext)
	intent.SelectPrev = JustPressed(ActionSelectPrev)
}
