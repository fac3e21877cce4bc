package ports

// Navigator triggers a client navigation to a destination path. The
// shell embedding this SDK decides what navigation means (a router
// push, a terminal hint, a no-op in tests).
type Navigator interface {
	NavigateTo(path string)
}
