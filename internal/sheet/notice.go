package sheet

// Notice is published on the sheet broker. Changed events carry the
// command name, record events the new revision, and diagnostic events the
// error that was absorbed.
type Notice struct {
	Message  string
	Err      error
	Revision string
}

func (n Notice) String() string {
	if n.Err != nil {
		return n.Message + ": " + n.Err.Error()
	}
	return n.Message
}
