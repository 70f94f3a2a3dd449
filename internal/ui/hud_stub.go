//go:build !ebiten

package ui

import "cozy-spring/internal/core"

// Setter applies a parameter change requested from the HUD.
type Setter func(key, value string) error

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int, Setter) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, core.ParameterSnapshot, Status) {}
