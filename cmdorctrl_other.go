//go:build !darwin

package hotbind

import "hotbind/keycode"

// "CmdOrCtrl" is Control everywhere but macOS.
const cmdOrCtrl = keycode.ModControl
