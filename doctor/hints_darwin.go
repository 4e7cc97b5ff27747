//go:build darwin

package doctor

const (
	attachHint     = "the Carbon event handler could not be installed"
	permissionHint = "grant the app Input Monitoring / Accessibility permission in System Settings"
	deliveryHint   = "Carbon delivers hotkey events through the main run loop; a process that never runs it receives nothing"
)
