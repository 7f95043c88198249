package corrector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/linkmigrate/internal/config"
	"git.home.luguber.info/inful/linkmigrate/internal/filecontext"
	"git.home.luguber.info/inful/linkmigrate/internal/foundation/errors"
)

// HeaderRequestID carries the per-request id on NATS messages.
const HeaderRequestID = "Linkmigrate-Request-Id"

// Request is the JSON payload sent to the correction service.
type Request struct {
	RequestID string                  `json:"request_id"`
	Prompt    string                  `json:"prompt"`
	Content   string                  `json:"content"`
	Context   filecontext.FileContext `json:"context"`
}

// Reply is the JSON payload expected back. A non-empty Error means failure.
type Reply struct {
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// NATS sends correction requests to a service listening on a subject.
// The connection is opened on first use, so an unreachable server is a
// correction failure rather than a startup failure.
type NATS struct {
	cfg config.NATSConfig

	mu   sync.Mutex
	conn *nats.Conn
}

// NewNATS returns a NATS backend for cfg.
func NewNATS(cfg config.NATSConfig) *NATS {
	return &NATS{cfg: cfg}
}

func (n *NATS) Name() string { return string(config.BackendNATS) }

// Correct performs one request/reply round trip bounded by ctx.
func (n *NATS) Correct(ctx context.Context, content string, fc filecontext.FileContext) (string, error) {
	conn, err := n.connect()
	if err != nil {
		return "", err
	}

	prompt, err := BuildPrompt(content, fc)
	if err != nil {
		return "", errors.InternalError("failed to build prompt").WithCause(err).Build()
	}

	req := Request{RequestID: uuid.NewString(), Prompt: prompt, Content: content, Context: fc}
	msg, err := encodeRequest(n.cfg.Subject, req)
	if err != nil {
		return "", err
	}

	resp, err := conn.RequestMsgWithContext(ctx, msg)
	if err != nil {
		return "", errors.NetworkError("nats request failed").
			WithCause(err).
			WithContext("subject", n.cfg.Subject).
			WithContext("request_id", req.RequestID).
			Build()
	}

	slog.Debug("Received correction reply", "subject", n.cfg.Subject, "request_id", req.RequestID, "bytes", len(resp.Data))
	return decodeReply(resp.Data, content)
}

func (n *NATS) connect() (*nats.Conn, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn != nil && !n.conn.IsClosed() {
		return n.conn, nil
	}

	conn, err := nats.Connect(n.cfg.URL, nats.Name(n.cfg.Name), nats.NoReconnect())
	if err != nil {
		return nil, errors.NetworkError("failed to connect to NATS").
			WithCause(err).
			WithContext("url", n.cfg.URL).
			Build()
	}
	n.conn = conn
	return conn, nil
}

// Close drains and closes the connection, if one was opened.
func (n *NATS) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn == nil {
		return nil
	}
	err := n.conn.Drain()
	n.conn = nil
	return err
}

func encodeRequest(subject string, req Request) (*nats.Msg, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set(HeaderRequestID, req.RequestID)
	return msg, nil
}

func decodeReply(data []byte, original string) (string, error) {
	var reply Reply
	if err := json.Unmarshal(data, &reply); err != nil {
		return "", errors.CapabilityError("malformed correction reply").WithCause(err).Build()
	}
	if reply.Error != "" {
		return "", errors.CapabilityError("correction service reported an error").
			WithCause(fmt.Errorf("%s", reply.Error)).
			Build()
	}
	out := normalizeOutput(reply.Content, original)
	if strings.TrimSpace(out) == "" {
		return "", errors.CapabilityError("correction service returned no content").Build()
	}
	return out, nil
}
