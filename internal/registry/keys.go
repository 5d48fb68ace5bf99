package registry

import (
	"github.com/nfrund/cbt/internal/exam"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/pubsub"
	"github.com/nfrund/cbt/internal/rendering"
	"github.com/nfrund/cbt/internal/session"
)

// Core service keys shared between the server and feature modules.
const (
	SessionStoreKey Key[*session.Store]     = "session.store"
	NavGateKey      Key[*nav.Gate]          = "nav.gate"
	ExamGateKey     Key[*exam.Gate]         = "exam.gate"
	RendererKey     Key[rendering.Renderer] = "rendering.renderer"
	PublisherKey    Key[pubsub.Publisher]   = "pubsub.publisher"
	SubscriberKey   Key[pubsub.Subscriber]  = "pubsub.subscriber"
)
