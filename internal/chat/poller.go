// Package chat polls community messages. "Real-time" chat is a plain timer
// loop against the messages endpoint; there is no push transport.
package chat

import (
	"context"
	"sync"
	"time"

	"github.com/ecotrack/ecotrack-cli/internal/api"
	"github.com/ecotrack/ecotrack-cli/internal/logger"
	"github.com/ecotrack/ecotrack-cli/internal/models"
)

// Update is one poll result. Err is set when the poll failed; the poller
// keeps running and the next tick retries.
type Update struct {
	CommunityID int
	Messages    []models.ChatMessage
	Err         error
}

// Poller periodically fetches messages for one community while started.
// Its lifecycle is tied to view visibility: the chat view starts it on
// enter and stops it on leave, so a backgrounded chat never ticks. Stop
// cancels the loop by clearing the held cancel handle.
type Poller struct {
	client   *api.Client
	interval time.Duration

	mu          sync.Mutex
	cancel      context.CancelFunc
	done        chan struct{}
	communityID int

	updates chan Update
}

// NewPoller creates a stopped poller.
func NewPoller(client *api.Client, interval time.Duration) *Poller {
	return &Poller{
		client:   client,
		interval: interval,
		updates:  make(chan Update, 1),
	}
}

// Updates delivers poll results. A slow consumer loses intermediate
// updates rather than stalling the loop; only the newest result matters.
func (p *Poller) Updates() <-chan Update { return p.updates }

// Done returns a channel that closes when the current session ends, so a
// receiver blocked on Updates can bail out instead of waiting forever. A
// stopped poller returns an already-closed channel.
func (p *Poller) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return p.done
}

// Running reports whether the poll loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Start begins polling the given community. Starting while already running
// restarts the loop against the new community.
func (p *Poller) Start(communityID int) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	if p.done != nil {
		close(p.done)
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.communityID = communityID
	// drop a result left over from the previous session so the new one
	// never starts with another community's messages
	select {
	case <-p.updates:
	default:
	}
	p.mu.Unlock()

	logger.Debug("chat poller started", "community", communityID)
	go p.loop(ctx, communityID)
}

// Stop halts polling. Safe to call when already stopped.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
		close(p.done)
		p.done = nil
		logger.Debug("chat poller stopped", "community", p.communityID)
	}
}

func (p *Poller) loop(ctx context.Context, communityID int) {
	// fetch immediately so the view is not empty for a full interval
	p.poll(ctx, communityID)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx, communityID)
		}
	}
}

func (p *Poller) poll(ctx context.Context, communityID int) {
	messages, err := p.client.FetchMessages(ctx, communityID, 1)
	if ctx.Err() != nil {
		// a result that arrives after Stop is dropped, not delivered
		return
	}

	update := Update{CommunityID: communityID, Messages: messages, Err: err}
	select {
	case p.updates <- update:
	default:
		// consumer still holds the previous update; replace it
		select {
		case <-p.updates:
		default:
		}
		select {
		case p.updates <- update:
		default:
		}
	}
}
