package store

import (
	"github.com/DRSN-tech/storefront/pkg/e"
)

// Panel — сворачиваемая часть интерфейса витрины.
type Panel string

const (
	PanelCart Panel = "cart"
	PanelChat Panel = "chat"
	PanelMenu Panel = "menu"
)

// Panels хранит флаги открытия панелей.
type Panels struct {
	CartOpen bool
	ChatOpen bool
	MenuOpen bool
}

func ParsePanel(s string) (Panel, error) {
	switch p := Panel(s); p {
	case PanelCart, PanelChat, PanelMenu:
		return p, nil
	default:
		return "", e.Wrap(s, e.ErrUnknownPanel)
	}
}

func (p *Panels) set(panel Panel, open bool) bool {
	var flag *bool
	switch panel {
	case PanelCart:
		flag = &p.CartOpen
	case PanelChat:
		flag = &p.ChatOpen
	case PanelMenu:
		flag = &p.MenuOpen
	default:
		return false
	}

	if *flag == open {
		return false
	}
	*flag = open
	return true
}
