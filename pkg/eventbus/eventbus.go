package eventbus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// TopicSpeed carries the ordinal of the fan speed after every change.
const TopicSpeed = "fan.speed"

type Config struct {
	IncomingBuffer    int
	SubscribeBuffer   int
	UnsubscribeBuffer int
	ChannelBuffer     int
	CacheTTL          time.Duration
}

var DefaultConfig = &Config{
	IncomingBuffer:    100,
	SubscribeBuffer:   10,
	UnsubscribeBuffer: 10,
	ChannelBuffer:     10,
	CacheTTL:          time.Minute,
}

var ErrFull = errors.New("publish channel full")

type Message struct {
	Topic string
	Data  float64
}

type Controller struct {
	cfg      *Config
	subs     map[string][]chan float64
	incoming chan Message
	sub      chan newSub
	unsub    chan chan float64
	cache    *ttlcache.Cache[string, float64]

	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
}

type newSub struct {
	topic string
	resp  chan float64
}

func New(cfg *Config) *Controller {
	if cfg == nil {
		cfg = DefaultConfig
	}
	c := &Controller{
		cfg:      cfg,
		subs:     make(map[string][]chan float64),
		incoming: make(chan Message, cfg.IncomingBuffer),
		sub:      make(chan newSub, cfg.SubscribeBuffer),
		unsub:    make(chan chan float64, cfg.UnsubscribeBuffer),
		cache:    ttlcache.New[string, float64](ttlcache.WithTTL[string, float64](cfg.CacheTTL)),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go c.run()
	return c
}

func (e *Controller) run() {
	defer close(e.done)
	for {
		select {
		case <-e.quit:
			e.cleanup()
			return
		case msg := <-e.incoming:
			e.handleMessage(msg)
		case sub := <-e.sub:
			e.handleSubscription(sub)
		case unsub := <-e.unsub:
			e.handleUnsubscription(unsub)
		}
	}
}

func (e *Controller) handleMessage(msg Message) {
	e.cache.Set(msg.Topic, msg.Data, ttlcache.DefaultTTL)
	for _, sub := range e.subs[msg.Topic] {
		select {
		case sub <- msg.Data:
		default:
			log.Printf("Channel full for topic %s", msg.Topic)
		}
	}
}

func (e *Controller) handleSubscription(sub newSub) {
	e.subs[sub.topic] = append(e.subs[sub.topic], sub.resp)

	// Send cached value if available
	if item := e.cache.Get(sub.topic); item != nil {
		select {
		case sub.resp <- item.Value():
		default:
			log.Printf("Cache hit but channel full for topic %s", sub.topic)
		}
	}
}

func (e *Controller) handleUnsubscription(unsub chan float64) {
	for topic, subs := range e.subs {
		for i, sub := range subs {
			if sub != unsub {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(e.subs, topic)
			} else {
				e.subs[topic] = subs
			}
			close(unsub)
			return
		}
	}
}

// Close stops the bus and closes every subscriber channel.
func (e *Controller) Close() {
	e.closeOnce.Do(func() {
		close(e.quit)
	})
	<-e.done
}

func (e *Controller) cleanup() {
	e.cache.DeleteAll()
	for topic, subs := range e.subs {
		for _, sub := range subs {
			close(sub)
		}
		delete(e.subs, topic)
	}
	// subscriptions that never reached the loop
	for {
		select {
		case sub := <-e.sub:
			close(sub.resp)
		default:
			return
		}
	}
}

func (e *Controller) Publish(topic string, data float64) error {
	select {
	case e.incoming <- Message{Topic: topic, Data: data}:
		return nil
	default:
		return errors.Join(ErrFull, errors.New(topic))
	}
}

// SubscribeFunc calls fn from a separate goroutine for every value published
// on topic until cancel is called.
func (e *Controller) SubscribeFunc(topic string, fn func(float64)) (cancel func()) {
	respChan := e.Subscribe(topic)
	go func() {
		for v := range respChan {
			fn(v)
		}
	}()
	return func() {
		e.Unsubscribe(respChan)
	}
}

func (e *Controller) Subscribe(topic string) chan float64 {
	respChan := make(chan float64, e.cfg.ChannelBuffer)
	e.sub <- newSub{topic: topic, resp: respChan}
	return respChan
}

func (e *Controller) Unsubscribe(channel chan float64) {
	e.unsub <- channel
}
