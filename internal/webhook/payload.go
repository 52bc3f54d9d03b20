package webhook

// Payload is the WhatsApp Cloud API delivery envelope. Only the nested
// text message path is interesting, everything else is ignored.
type Payload struct {
	Entry []Entry `json:"entry"`
}

type Entry struct {
	Changes []Change `json:"changes"`
}

type Change struct {
	Value Value `json:"value"`
}

type Value struct {
	Messages []Message `json:"messages"`
}

type Message struct {
	From string `json:"from"`
	Text Text   `json:"text"`
}

type Text struct {
	Body string `json:"body"`
}

// FirstMessage digs out the sender and text of the first message in the
// envelope. Status updates and other non-message deliveries return false.
func (p *Payload) FirstMessage() (sender, text string, ok bool) {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return "", "", false
	}
	messages := p.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return "", "", false
	}
	msg := messages[0]
	if msg.Text.Body == "" {
		return "", "", false
	}
	return msg.From, msg.Text.Body, true
}
