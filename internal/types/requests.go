package types

import "encoding/json"

// ------------------------------
// Wire Shapes
// ------------------------------

// EntryFunctionPayload is the canonical write-transaction request shape.
// Function is fully qualified ("<address>::<module>::<function>") and
// Arguments must match the remote signature's declared parameter order
// exactly; the wire format has no named-argument binding.
type EntryFunctionPayload struct {
	Type          string   `json:"type"`
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// ViewRequest is the read-only view-call request shape.
type ViewRequest struct {
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// SubmitRequest binds a payload to its sender for submission.
type SubmitRequest struct {
	Sender  string               `json:"sender"`
	Payload EntryFunctionPayload `json:"payload"`
}

// PendingTransaction acknowledges acceptance by the remote node. The hash
// can be polled for finality.
type PendingTransaction struct {
	Hash string `json:"hash"`
}

// Transaction is the committed (or failed) form reported by the node.
// VMStatus carries the abort reason verbatim when Success is false; it is
// treated as an opaque string.
type Transaction struct {
	Type     string `json:"type"`
	Hash     string `json:"hash"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
	Version  string `json:"version,omitempty"`
}

// ViewResponse is the raw, dynamically-typed view-call result. Each element
// corresponds to one return value of the remote function.
type ViewResponse []json.RawMessage

// EnqueueAck acknowledges acceptance of an async engagement job.
type EnqueueAck struct {
	ContentID string `json:"contentId"`
	Status    string `json:"status"`
}

// ------------------------------
// SDK Request Shapes
// ------------------------------

// CreateContentRequest carries the inputs for content_registry::create_content.
type CreateContentRequest struct {
	ID          string      `json:"id"`
	ContentHash string      `json:"contentHash"`
	ContentType ContentKind `json:"contentType"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
}

// CreateAgentRequest carries the inputs for agent_framework::create_agent.
type CreateAgentRequest struct {
	ID                  string            `json:"id"`
	AgentType           AgentKind         `json:"agentType"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Configuration       map[string]string `json:"configuration,omitempty"`
	WithResourceAccount bool              `json:"withResourceAccount"`
}

// ProfileRequest carries the inputs for creator_profiles::create_profile and
// ::update_profile. Writes are full-field overwrites.
type ProfileRequest struct {
	Name        string            `json:"name"`
	Bio         string            `json:"bio"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}

// TxnResult reports a finalized write.
type TxnResult struct {
	Hash        string `json:"hash"`
	Success     bool   `json:"success"`
	VMStatus    string `json:"vmStatus,omitempty"`
	Version     string `json:"version,omitempty"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}
