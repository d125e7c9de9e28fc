package domain

// Caller is the authenticated identity issuing a command.
type Caller struct {
	UserID string
	Role   CallerRole
	Source CallerSource
}

// IsWorkflow reports whether the command was issued by the workflow engine.
func (c Caller) IsWorkflow() bool { return c.Source == SourceWorkflow }

// IsAdmin reports whether the caller holds a CMO or HMT role.
func (c Caller) IsAdmin() bool { return c.Role.IsAdmin() }
