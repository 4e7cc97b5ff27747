//go:build windows

package doctor

const (
	attachHint     = "RegisterHotKey should always be reachable; this is unexpected"
	permissionHint = "an elevated application may be blocking hotkey registration for this session"
	deliveryHint   = "the combination may be reserved by Windows or claimed by an elevated foreground app"
)
