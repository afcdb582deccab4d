package game

import (
	"fmt"
	"image/color"
)

type ActionType int

const (
	ClaimEdge ActionType = iota
	Restart
	OpenSettings
	AdjustSetting
	ApplySettings
	OpenColorPicker
	CloseColorPicker
	NextColorEdit
	PrevColorEdit
	PickColor
	ToggleDebugMines
)

var actionNames = map[ActionType]string{
	ClaimEdge:        "claim",
	Restart:          "restart",
	OpenSettings:     "settings",
	AdjustSetting:    "adjust",
	ApplySettings:    "apply",
	OpenColorPicker:  "open-picker",
	CloseColorPicker: "close-picker",
	NextColorEdit:    "next-color",
	PrevColorEdit:    "prev-color",
	PickColor:        "pick-color",
	ToggleDebugMines: "toggle-mines",
}

func (actionType ActionType) String() string {
	if name, ok := actionNames[actionType]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(actionType))
}

// Action is a discrete input for the Controller. Only the fields relevant
// to Type are read.
type Action struct {
	Type ActionType

	Edge   Edge
	Field  SettingField
	Delta  int
	Player int
	Color  color.RGBA
}

func (action Action) String() string {
	switch action.Type {
	case ClaimEdge:
		return fmt.Sprintf("%s %v", action.Type, action.Edge)
	case AdjustSetting:
		return fmt.Sprintf("%s %v %+d", action.Type, action.Field, action.Delta)
	case PickColor:
		return fmt.Sprintf("%s %d %s", action.Type, action.Player, ColorName(action.Color))
	default:
		return action.Type.String()
	}
}

func Claim(edge Edge) Action {
	return Action{Type: ClaimEdge, Edge: edge}
}

func Adjust(field SettingField, delta int) Action {
	return Action{Type: AdjustSetting, Field: field, Delta: delta}
}

func Pick(player int, c color.RGBA) Action {
	return Action{Type: PickColor, Player: player, Color: c}
}

func Simple(actionType ActionType) Action {
	return Action{Type: actionType}
}
