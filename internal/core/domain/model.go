package domain

type Role string

// RoleKing is the privileged catalog role. Only users holding it may
// curate videos, register sources or broadcast.
const RoleKing Role = "KING"

type Action string

const (
	Typing         Action = "typing"
	UploadingVideo Action = "upload_video"
)

// Command is the parsed view of one inbound chat command. It is built once
// per update and discarded after dispatch.
type Command struct {
	Name         string
	Args         string
	MessageID    int
	ChatID       int64
	SenderID     int64
	Username     string
	HasReply     bool
	ReplyCaption string
}

// VideoReference points at a single catalog video. Owner is the source
// username when it can be derived from the URL, empty otherwise.
type VideoReference struct {
	URL   string
	Owner string
}

type DeliveryStatus int

const (
	Delivered DeliveryStatus = iota
	// Empty means the fetcher produced no media. Not an error.
	Empty
	Failed
)

// DeliveryOutcome reports how an orchestrated download ended. Any temp file
// produced along the way is already removed by the time the caller sees it.
type DeliveryOutcome struct {
	Status DeliveryStatus
	Reason string
}

// SendOptions control how plain text messages are delivered.
type SendOptions struct {
	Silent    bool
	NoPreview bool
}
