package runtime

import (
	"chat-sdk/contract"
	"chat-sdk/domain"
	"chat-sdk/domain/event"
	"log/slog"
	"time"
)

var _ contract.ViewProjector = (*FanoutProjector)(nil)

// FanoutProjector publishes view notifications on the channel drained by the
// fanout worker, so dispatcher lanes never wait on rendering.
type FanoutProjector struct {
	log            *slog.Logger
	views          chan event.ViewEvent
	publishTimeout time.Duration
}

func NewFanoutProjector(log *slog.Logger, views chan event.ViewEvent, publishTimeout time.Duration) *FanoutProjector {
	return &FanoutProjector{log: log, views: views, publishTimeout: publishTimeout}
}

func (p *FanoutProjector) DialogUpdated(dialog domain.Dialog) {
	p.publish(event.DialogUpdated{Dialog: dialog})
}

func (p *FanoutProjector) MessageAppended(dialogID string, message domain.Message) {
	p.publish(event.MessageAppended{DialogID: dialogID, Message: message})
}

func (p *FanoutProjector) UnreadCountChanged(dialogID string, count int) {
	p.publish(event.UnreadCountChanged{DialogID: dialogID, Count: count})
}

func (p *FanoutProjector) TypingChanged(dialogID, senderID string, isTyping bool) {
	p.publish(event.TypingChanged{DialogID: dialogID, SenderID: senderID, IsTyping: isTyping})
}

func (p *FanoutProjector) ConnectivityChanged(online bool) {
	p.publish(event.ConnectivityChanged{Online: online})
}

func (p *FanoutProjector) ReconnectFailed() {
	p.publish(event.ReconnectFailed{At: time.Now().UTC()})
}

func (p *FanoutProjector) publish(evt event.ViewEvent) {
	select {
	case p.views <- evt:
		return
	default:
	}
	timer := time.NewTimer(p.publishTimeout)
	defer timer.Stop()
	select {
	case p.views <- evt:
	case <-timer.C:
		p.log.Warn("View channel full, notification dropped", "event", evt.ViewName())
	}
}
