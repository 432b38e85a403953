package kafka

import (
	"context"
	"log/slog"

	"github.com/niksmo/sportshop/internal/core/domain"
	"github.com/niksmo/sportshop/internal/core/port"
	"github.com/niksmo/sportshop/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.PageViewEmitter = (*PageViewProducer)(nil)

// A PageViewProducer publishes section page views to the analytics
// topic.
type PageViewProducer struct {
	cl       ProducerClient
	encoder  Encoder
	opPrefix string
}

func NewPageViewProducer(opts ...ProducerOpt) (PageViewProducer, error) {
	const op = "NewPageViewProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return PageViewProducer{}, opErr(err, op)
		}
	}

	return PageViewProducer{
		cl:       options.cl,
		encoder:  options.encoder,
		opPrefix: "PageViewProducer",
	}, nil
}

func (p PageViewProducer) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p PageViewProducer) EmitPageView(
	ctx context.Context, v domain.PageView,
) error {
	const op = "EmitPageView"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(v)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	res := p.cl.ProduceSync(ctx, &r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p PageViewProducer) createRecord(
	v domain.PageView,
) (kgo.Record, error) {
	const op = "createRecord"

	s := p.toSchema(v)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return kgo.Record{}, opErr(err, p.opPrefix, op)
	}
	msgKey := []byte(s.Section)
	return kgo.Record{Key: msgKey, Value: b}, nil
}

func (PageViewProducer) toSchema(v domain.PageView) (s schema.PageViewV1) {
	s.Section = v.Section
	s.Category = v.Category
	s.Items = v.Items
	s.ViewedAt = v.ViewedAt
	return
}
