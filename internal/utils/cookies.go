package utils

// Cookie names shared between the middleware that reads them and the
// handlers that set them.
const (
	// SessionCookie carries the signed session token.
	SessionCookie = "mc_session"
	// FlashCookie carries a one-shot "category|message" pair shown on the
	// next rendered page.
	FlashCookie = "mc_flash"
)
