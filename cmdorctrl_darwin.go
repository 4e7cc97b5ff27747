//go:build darwin

package hotbind

import "hotbind/keycode"

// "CmdOrCtrl" is Command on macOS.
const cmdOrCtrl = keycode.ModSuper
