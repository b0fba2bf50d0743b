package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of all versioned api routes.
	APIPath = RootPath + "api/v1"

	// ErrNilACFatalLogMsg is used if app or cfg var pointer is nil.
	ErrNilACFatalLogMsg = "app or cfg is nil"
)
