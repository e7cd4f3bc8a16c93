package types

import (
	"fmt"
	"strconv"
	"strings"
)

// VaultTimeoutType enumerates the vault timeout choices.
type VaultTimeoutType int

const (
	VaultTimeoutImmediately VaultTimeoutType = iota
	VaultTimeoutOneMinute
	VaultTimeoutFiveMinutes
	VaultTimeoutThirtyMinutes
	VaultTimeoutOneHour
	VaultTimeoutFourHours
	VaultTimeoutOnAppRestart
	VaultTimeoutNever
	VaultTimeoutCustom
)

// VaultTimeout is how long the vault stays unlocked while idle.
type VaultTimeout struct {
	Type          VaultTimeoutType
	CustomMinutes int // only meaningful for VaultTimeoutCustom
}

// Preset vault timeouts.
var (
	Immediately   = VaultTimeout{Type: VaultTimeoutImmediately}
	OneMinute     = VaultTimeout{Type: VaultTimeoutOneMinute}
	FiveMinutes   = VaultTimeout{Type: VaultTimeoutFiveMinutes}
	ThirtyMinutes = VaultTimeout{Type: VaultTimeoutThirtyMinutes}
	OneHour       = VaultTimeout{Type: VaultTimeoutOneHour}
	FourHours     = VaultTimeout{Type: VaultTimeoutFourHours}
	OnAppRestart  = VaultTimeout{Type: VaultTimeoutOnAppRestart}
	Never         = VaultTimeout{Type: VaultTimeoutNever}
)

// CustomVaultTimeout returns a timeout of an arbitrary number of minutes.
func CustomVaultTimeout(minutes int) VaultTimeout {
	return VaultTimeout{Type: VaultTimeoutCustom, CustomMinutes: minutes}
}

var presetMinutes = map[VaultTimeoutType]int{
	VaultTimeoutImmediately:   0,
	VaultTimeoutOneMinute:     1,
	VaultTimeoutFiveMinutes:   5,
	VaultTimeoutThirtyMinutes: 30,
	VaultTimeoutOneHour:       60,
	VaultTimeoutFourHours:     240,
	VaultTimeoutOnAppRestart:  -1,
}

// Presets lists the preset timeouts that have a minute value.
var Presets = []VaultTimeout{
	Immediately, OneMinute, FiveMinutes, ThirtyMinutes, OneHour, FourHours, OnAppRestart,
}

// Minutes returns the persisted minute value; nil means Never.
func (v VaultTimeout) Minutes() *int {
	switch v.Type {
	case VaultTimeoutNever:
		return nil
	case VaultTimeoutCustom:
		m := v.CustomMinutes
		return &m
	default:
		m := presetMinutes[v.Type]
		return &m
	}
}

func (v VaultTimeout) String() string {
	switch v.Type {
	case VaultTimeoutImmediately:
		return "immediately"
	case VaultTimeoutOneMinute:
		return "1m"
	case VaultTimeoutFiveMinutes:
		return "5m"
	case VaultTimeoutThirtyMinutes:
		return "30m"
	case VaultTimeoutOneHour:
		return "1h"
	case VaultTimeoutFourHours:
		return "4h"
	case VaultTimeoutOnAppRestart:
		return "restart"
	case VaultTimeoutNever:
		return "never"
	default:
		return fmt.Sprintf("custom(%dm)", v.CustomMinutes)
	}
}

// ParseVaultTimeout accepts the String form of a preset, "never", or a plain
// number of minutes.
func ParseVaultTimeout(s string) (VaultTimeout, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "never" {
		return Never, nil
	}
	for _, p := range Presets {
		if p.String() == s {
			return p, nil
		}
	}
	minutes, err := strconv.Atoi(strings.TrimSuffix(s, "m"))
	if err != nil {
		return VaultTimeout{}, fmt.Errorf("invalid vault timeout %q", s)
	}
	for _, p := range Presets {
		if *p.Minutes() == minutes {
			return p, nil
		}
	}
	if minutes < 0 {
		return VaultTimeout{}, fmt.Errorf("invalid vault timeout %q", s)
	}
	return CustomVaultTimeout(minutes), nil
}

// VaultTimeoutAction is what happens when the vault timeout elapses.
type VaultTimeoutAction string

const (
	VaultTimeoutActionLock   VaultTimeoutAction = "lock"
	VaultTimeoutActionLogout VaultTimeoutAction = "logout"
)

// ParseVaultTimeoutAction validates s.
func ParseVaultTimeoutAction(s string) (VaultTimeoutAction, error) {
	switch a := VaultTimeoutAction(strings.ToLower(strings.TrimSpace(s))); a {
	case VaultTimeoutActionLock, VaultTimeoutActionLogout:
		return a, nil
	default:
		return "", fmt.Errorf("invalid vault timeout action %q", s)
	}
}
