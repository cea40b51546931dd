package bus

import "context"

type Publisher interface {
	PublishOutbound(OutboundMessage)
}

type Subscriber interface {
	SubscribeOutbound(context.Context) (OutboundMessage, bool)
}

type Broker interface {
	Publisher
	Subscriber
	Close()
}
