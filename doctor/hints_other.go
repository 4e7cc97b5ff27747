//go:build !linux && !darwin && !windows

package doctor

const (
	attachHint     = "global hotkeys are not supported on this platform"
	permissionHint = "global hotkeys are not supported on this platform"
	deliveryHint   = "global hotkeys are not supported on this platform"
)
