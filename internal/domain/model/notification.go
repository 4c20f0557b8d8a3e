package model

// Notification is a best-effort push message for the order's owner.
type Notification struct {
	UserID string
	Title  string
	Body   string
	URL    string
}
