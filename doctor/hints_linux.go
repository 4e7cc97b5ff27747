//go:build linux

package doctor

const (
	attachHint     = "no X display reachable; check DISPLAY (Wayland sessions need XWayland)"
	permissionHint = "another client may hold exclusive access to the X server"
	deliveryHint   = "another application may already grab this combination; try a different one"
)
