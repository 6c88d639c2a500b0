package domain

import "time"

// Account is the marketplace account view this subsystem touches. AgentCode
// is nil until the account is promoted to an agent; it is written exactly
// once by the sequence allocator and never changed afterwards.
type Account struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"display_name"`
	AgentCode   *int64    `json:"agent_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
