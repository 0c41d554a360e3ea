package sqsqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"flare/internal/observability"
	"flare/internal/store"
)

const (
	EventPhoneRegistered = "phone.registered"

	// all registrations share one FIFO group, ordered by insert
	fifoGroupID = "phone_numbers"
)

var ErrThrottled = errors.New("sqs: publish throttled")

type SendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type RegisteredEvent struct {
	Type      string    `json:"type"`
	ID        int64     `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type Producer struct {
	SQS      SendMessageAPI
	QueueURL string

	// Limiter and Breaker are optional.
	Limiter *rate.Limiter
	Breaker *gobreaker.CircuitBreaker
	// Timeout bounds limiter wait plus the send. Zero means no extra bound.
	Timeout time.Duration
}

func NewProducer(client SendMessageAPI, queueURL string, rps float64, burst int, timeout time.Duration) *Producer {
	return &Producer{
		SQS:      client,
		QueueURL: queueURL,
		Limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		Breaker:  NewBreaker("sqs-events"),
		Timeout:  timeout,
	}
}

func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool { return c.ConsecutiveFailures >= 5 },
	})
}

func (p *Producer) PublishRegistered(ctx context.Context, rec store.PhoneRegistration) error {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(RegisteredEvent{
		Type:      EventPhoneRegistered,
		ID:        rec.ID,
		Phone:     rec.Phone,
		CreatedAt: rec.CreatedAt,
	})
	if err != nil {
		return err
	}
	in := &sqs.SendMessageInput{
		QueueUrl:    &p.QueueURL,
		MessageBody: str(string(body)),
	}
	if p.isFIFO() {
		in.MessageGroupId = str(fifoGroupID)
		in.MessageDeduplicationId = str(strconv.FormatInt(rec.ID, 10))
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			observability.EventsPublished.WithLabelValues("throttled").Inc()
			return fmt.Errorf("%w: %v", ErrThrottled, err)
		}
	}

	send := func() (interface{}, error) { return p.SQS.SendMessage(ctx, in) }
	if p.Breaker != nil {
		_, err = p.Breaker.Execute(send)
	} else {
		_, err = send()
	}

	switch {
	case err == nil:
		observability.EventsPublished.WithLabelValues("ok").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		observability.EventsPublished.WithLabelValues("breaker_open").Inc()
	default:
		observability.EventsPublished.WithLabelValues("error").Inc()
	}
	return err
}

func (p *Producer) isFIFO() bool { return strings.HasSuffix(p.QueueURL, ".fifo") }

func str(s string) *string { return &s }
