package messenger

const (
	// MessagingTypeResponse marks a reply to a user-initiated message.
	MessagingTypeResponse = "RESPONSE"

	AttachmentTypeTemplate = "template"
	TemplateTypeGeneric    = "generic"
	ButtonTypePostback     = "postback"
)

// SendRequest is the body of a Send API call.
type SendRequest struct {
	Recipient     User   `json:"recipient"`
	MessagingType string `json:"messaging_type,omitempty"`
	Message       *Reply `json:"message"`
}

// NewSendRequest addresses reply to the given PSID.
func NewSendRequest(psid string, reply *Reply) *SendRequest {
	return &SendRequest{
		Recipient:     User{ID: psid},
		MessagingType: MessagingTypeResponse,
		Message:       reply,
	}
}

// Reply is the outbound message content: either plain text or a template attachment.
type Reply struct {
	Text       string           `json:"text,omitempty"`
	Attachment *ReplyAttachment `json:"attachment,omitempty"`
}

// TextReply builds a plain text reply.
func TextReply(text string) *Reply {
	return &Reply{Text: text}
}

// GenericTemplateReply builds a generic template reply with the given elements.
func GenericTemplateReply(elements ...Element) *Reply {
	return &Reply{
		Attachment: &ReplyAttachment{
			Type: AttachmentTypeTemplate,
			Payload: TemplatePayload{
				TemplateType: TemplateTypeGeneric,
				Elements:     elements,
			},
		},
	}
}

// ReplyAttachment wraps a structured template.
type ReplyAttachment struct {
	Type    string          `json:"type"`
	Payload TemplatePayload `json:"payload"`
}

// TemplatePayload is the payload of a template attachment.
type TemplatePayload struct {
	TemplateType string    `json:"template_type"`
	Elements     []Element `json:"elements"`
}

// Element is one card of a generic template.
type Element struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// Button is an interactive template button.
type Button struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Payload string `json:"payload,omitempty"`
}

// PostbackButton builds a button that posts payload back to the webhook.
func PostbackButton(title, payload string) Button {
	return Button{Type: ButtonTypePostback, Title: title, Payload: payload}
}

// SendResponse is the success body of the Send API.
type SendResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}

// GraphError is the error object returned by the Graph API.
type GraphError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	SubCode   int    `json:"error_subcode,omitempty"`
	FBTraceID string `json:"fbtrace_id"`
}

// GraphErrorResponse is the error body of the Graph API.
type GraphErrorResponse struct {
	Error GraphError `json:"error"`
}
