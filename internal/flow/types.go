package flow

// Inbound is one already-parsed text message with a stable user identity.
// The transport layer produces it; the engine never sees platform structures.
type Inbound struct {
	UserID    int64
	Handle    string // raw username, may be empty
	FirstName string
	LastName  string
	Text      string
}

// Reply is one outgoing message. Keyboard is a grouped list of literal quick
// replies; empty with RemoveKeyboard unset means free text is expected next.
type Reply struct {
	Text           string
	Keyboard       [][]string
	RemoveKeyboard bool
	HTML           bool
}
