package responder

import (
	"fmt"

	"github.com/mercuriomkt/messenger-webhook/internal/messenger"
)

const (
	// PayloadConfirm is posted back by the "Sim" button.
	PayloadConfirm = "sim"
	// PayloadRetry is posted back by the "Não" button.
	PayloadRetry = "nao"

	textEchoFormat   = "Você me enviou a mensagem: \"%s\". Agora me envie uma imagem!"
	imageTitle       = "Essa é a imagem correta?"
	imageSubtitle    = "Aperte o botão para responder"
	confirmTitle     = "Sim"
	retryTitle       = "Não"
	ConfirmReplyText = "Ótimo, a funcionalidade está perfeita!"
	RetryReplyText   = "Ops, tente enviar uma imagem diferente"
)

// Responder builds replies for inbound messages and postbacks.
// A false second return value means nothing should be sent.
type Responder struct{}

// New creates a Responder.
func New() *Responder {
	return &Responder{}
}

// HandleMessage echoes text back, or asks the user to confirm a received image.
func (r *Responder) HandleMessage(msg *messenger.Message) (*messenger.Reply, bool) {
	if msg == nil || msg.IsEcho {
		return nil, false
	}
	switch msg.Kind() {
	case messenger.MessageKindText:
		return TextEchoReply(msg.Text), true
	case messenger.MessageKindAttachment:
		return ImageConfirmationReply(msg.Attachments[0].Payload.URL), true
	case messenger.MessageKindEmpty:
		return nil, false
	default:
		return nil, false
	}
}

// HandlePostback answers the confirmation buttons. Unknown payloads get no reply.
func (r *Responder) HandlePostback(pb *messenger.Postback) (*messenger.Reply, bool) {
	if pb == nil {
		return nil, false
	}
	switch pb.Payload {
	case PayloadConfirm:
		return messenger.TextReply(ConfirmReplyText), true
	case PayloadRetry:
		return messenger.TextReply(RetryReplyText), true
	default:
		return nil, false
	}
}

// TextEchoReply quotes the received text verbatim.
func TextEchoReply(text string) *messenger.Reply {
	return messenger.TextReply(fmt.Sprintf(textEchoFormat, text))
}

// ImageConfirmationReply shows the image with "Sim" and "Não" postback buttons.
func ImageConfirmationReply(imageURL string) *messenger.Reply {
	return messenger.GenericTemplateReply(messenger.Element{
		Title:    imageTitle,
		Subtitle: imageSubtitle,
		ImageURL: imageURL,
		Buttons: []messenger.Button{
			messenger.PostbackButton(confirmTitle, PayloadConfirm),
			messenger.PostbackButton(retryTitle, PayloadRetry),
		},
	})
}
