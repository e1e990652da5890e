package discord

import (
	"encoding/json"

	"emperror.dev/errors"
)

// ComponentType is the type discriminator of a message component. Unknown
// wire values are preserved and round-trip unchanged.
type ComponentType int

const (
	ComponentTypeActionRow  ComponentType = 1
	ComponentTypeButton     ComponentType = 2
	ComponentTypeSelectMenu ComponentType = 3
)

// ButtonStyle is the visual style of a button component.
type ButtonStyle int

const (
	ButtonStylePrimary   ButtonStyle = 1
	ButtonStyleSecondary ButtonStyle = 2
	ButtonStyleSuccess   ButtonStyle = 3
	ButtonStyleDanger    ButtonStyle = 4
	// ButtonStyleLink navigates to a URL instead of firing an
	// interaction; link buttons carry no custom ID.
	ButtonStyleLink ButtonStyle = 5
)

// IsInteractive reports whether the style fires an interaction when
// clicked. Link buttons do not.
func (s ButtonStyle) IsInteractive() bool {
	switch s {
	case ButtonStylePrimary, ButtonStyleSecondary, ButtonStyleSuccess, ButtonStyleDanger:
		return true
	}
	return false
}

// Component is any entity in the message component hierarchy. Action rows
// are always top-level; buttons and select menus only ever appear inside a
// container.
type Component interface {
	ComponentType() ComponentType
}

// ActionRowComponent is the top-level container holding an ordered sequence
// of child components.
type ActionRowComponent struct {
	Components Components `json:"components"`
}

func (ActionRowComponent) ComponentType() ComponentType { return ComponentTypeActionRow }

// Len returns the number of child components.
func (c ActionRowComponent) Len() int { return len(c.Components) }

// Get returns the child at index i, or ErrIndexOutOfRange when i is outside
// [0, Len).
func (c ActionRowComponent) Get(i int) (Component, error) {
	if i < 0 || i >= len(c.Components) {
		return nil, errors.WithMessagef(ErrIndexOutOfRange, "component index %d with length %d", i, len(c.Components))
	}
	return c.Components[i], nil
}

// ButtonComponent is an interactive button. Only ever found inside an
// action row.
type ButtonComponent struct {
	Style    ButtonStyle `json:"style"`
	Label    string      `json:"label,omitzero"`
	Emoji    *Emoji      `json:"emoji,omitzero"`
	CustomID string      `json:"custom_id,omitzero"`
	URL      string      `json:"url,omitzero"`
	Disabled bool        `json:"disabled,omitzero"`
}

func (ButtonComponent) ComponentType() ComponentType { return ComponentTypeButton }

// SelectMenuOption is a single option of a select menu, up to 25 per menu.
type SelectMenuOption struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitzero"`
	Emoji       *Emoji `json:"emoji,omitzero"`
	Default     bool   `json:"default,omitzero"`
}

// SelectMenuComponent is a dropdown menu. Only ever found inside an action
// row.
type SelectMenuComponent struct {
	CustomID    string             `json:"custom_id"`
	Options     []SelectMenuOption `json:"options"`
	Placeholder string             `json:"placeholder,omitzero"`
	MinValues   int                `json:"min_values,omitzero"`
	MaxValues   int                `json:"max_values,omitzero"`
	Disabled    bool               `json:"disabled,omitzero"`
}

func (SelectMenuComponent) ComponentType() ComponentType { return ComponentTypeSelectMenu }

// UnknownComponent preserves components with a type this library does not
// know about. The protocol evolves outside version sync, so these must
// round-trip rather than fail.
type UnknownComponent struct {
	Type ComponentType
	Raw  json.RawMessage
}

func (c UnknownComponent) ComponentType() ComponentType { return c.Type }

// Components is a decoded component list. It owns the JSON codec because
// Component is an interface and needs the type discriminator to pick a
// concrete shape.
type Components []Component

func (c Components) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(c))
	for _, comp := range c {
		raw, err := marshalComponent(comp)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return json.Marshal(out)
}

func (c *Components) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(Components, 0, len(raws))
	for _, raw := range raws {
		comp, err := unmarshalComponent(raw)
		if err != nil {
			return err
		}
		out = append(out, comp)
	}
	*c = out
	return nil
}

func marshalComponent(comp Component) (json.RawMessage, error) {
	if u, ok := comp.(UnknownComponent); ok {
		return u.Raw, nil
	}

	body, err := json.Marshal(comp)
	if err != nil {
		return nil, err
	}

	// Splice the discriminator into the encoded object.
	head, err := json.Marshal(struct {
		Type ComponentType `json:"type"`
	}{comp.ComponentType()})
	if err != nil {
		return nil, err
	}
	if len(body) == 2 { // "{}"
		return head, nil
	}
	merged := append(head[:len(head)-1], ',')
	merged = append(merged, body[1:]...)
	return merged, nil
}

func unmarshalComponent(raw json.RawMessage) (Component, error) {
	var head struct {
		Type ComponentType `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case ComponentTypeActionRow:
		var row struct {
			Components Components `json:"components"`
		}
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, err
		}
		return ActionRowComponent{Components: row.Components}, nil
	case ComponentTypeButton:
		var button ButtonComponent
		if err := json.Unmarshal(raw, &button); err != nil {
			return nil, err
		}
		return button, nil
	case ComponentTypeSelectMenu:
		var menu SelectMenuComponent
		if err := json.Unmarshal(raw, &menu); err != nil {
			return nil, err
		}
		return menu, nil
	default:
		return UnknownComponent{Type: head.Type, Raw: append(json.RawMessage(nil), raw...)}, nil
	}
}
