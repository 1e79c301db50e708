package asset

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Batch is an ordered list or a keyed group of requests loaded as one call.
type Batch struct {
	keys  []string
	reqs  []Request
	keyed bool
}

// List creates an ordered batch. List() is a valid, empty batch.
func List(reqs ...Request) *Batch {
	return &Batch{reqs: append([]Request{}, reqs...)}
}

// Keyed creates a keyed batch. It returns nil for a nil map.
func Keyed(group map[string]Request) *Batch {
	if group == nil {
		return nil
	}
	b := &Batch{keyed: true}
	b.keys = make([]string, 0, len(group))
	for k := range group {
		b.keys = append(b.keys, k)
	}
	sort.Strings(b.keys)
	b.reqs = make([]Request, len(b.keys))
	for i, k := range b.keys {
		b.reqs[i] = group[k]
	}
	return b
}

// NewBatch builds a batch from any slice, array or string-keyed map.
// Anything else, nil included, yields ErrMissingInput.
func NewBatch(requests any) (*Batch, error) {
	switch v := requests.(type) {
	case nil:
		return nil, ErrMissingInput
	case *Batch:
		if v == nil {
			return nil, ErrMissingInput
		}
		return v, nil
	case []Request:
		if v == nil {
			return nil, ErrMissingInput
		}
		return List(v...), nil
	case map[string]Request:
		if v == nil {
			return nil, ErrMissingInput
		}
		return Keyed(v), nil
	}

	rv := reflect.ValueOf(requests)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, ErrMissingInput
		}
		reqs := make([]Request, rv.Len())
		for i := range reqs {
			reqs[i] = rv.Index(i).Interface()
		}
		return List(reqs...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
			return nil, ErrMissingInput
		}
		group := make(map[string]Request, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			group[iter.Key().String()] = iter.Value().Interface()
		}
		return Keyed(group), nil
	default:
		return nil, ErrMissingInput
	}
}

// Len returns the number of requests.
func (b *Batch) Len() int { return len(b.reqs) }

// Keyed reports whether the batch is a keyed group.
func (b *Batch) Keyed() bool { return b.keyed }

// ProgressEvent is emitted once per completed item.
// Count takes each value in 1..Total once; events arrive in completion order.
type ProgressEvent struct {
	// Target is the original request item.
	Target Request
	// Key is the group key of Target; empty for lists.
	Key string
	// Index is the position of Target in a list, or in the sorted keys of a group.
	Index    int
	Total    int
	Count    int
	Progress float64
	Value    Asset
	// Err is set for failed items of best-effort batches.
	Err error
}

// ProgressFunc receives progress events. Calls are never concurrent.
type ProgressFunc func(ev ProgressEvent)

// BatchOption configures All and Any.
type BatchOption func(*batchConfig)

type batchConfig struct {
	sinks   []ProgressFunc
	chans   []chan<- ProgressEvent
	invalid bool
}

// WithProgress registers fn to receive progress events.
// A nil fn makes the call fail with ErrInvalidProgressCallback.
func WithProgress(fn ProgressFunc) BatchOption {
	return func(c *batchConfig) {
		if fn == nil {
			c.invalid = true
			return
		}
		c.sinks = append(c.sinks, fn)
	}
}

// WithProgressChan sends progress events to ch. Sends block, so ch must be
// buffered for Total events or drained concurrently; a send pending when the
// batch context ends is dropped.
// A nil ch makes the call fail with ErrInvalidProgressCallback.
func WithProgressChan(ch chan<- ProgressEvent) BatchOption {
	return func(c *batchConfig) {
		if ch == nil {
			c.invalid = true
			return
		}
		c.chans = append(c.chans, ch)
	}
}

// Results holds batch output in the shape of the input.
type Results struct {
	keys   []string
	values []Asset
	errs   []error
	keyed  bool
}

func newResults(b *Batch) *Results {
	return &Results{
		keys:   b.keys,
		values: make([]Asset, len(b.reqs)),
		errs:   make([]error, len(b.reqs)),
		keyed:  b.keyed,
	}
}

// Len returns the number of slots.
func (r *Results) Len() int { return len(r.values) }

// Keyed reports whether the input was a keyed group.
func (r *Results) Keyed() bool { return r.keyed }

// Keys returns the group keys in sorted order, or nil for lists.
func (r *Results) Keys() []string {
	if !r.keyed {
		return nil
	}
	return append([]string{}, r.keys...)
}

// Slice returns the values in slot order. For lists this is input order.
func (r *Results) Slice() []Asset {
	return append([]Asset{}, r.values...)
}

// Map returns the values by key. It returns nil for lists.
func (r *Results) Map() map[string]Asset {
	if !r.keyed {
		return nil
	}
	out := make(map[string]Asset, len(r.keys))
	for i, k := range r.keys {
		out[k] = r.values[i]
	}
	return out
}

// Value returns Slice() for lists and Map() for keyed groups.
func (r *Results) Value() any {
	if r.keyed {
		return r.Map()
	}
	return r.Slice()
}

// At returns the value in slot i.
func (r *Results) At(i int) Asset { return r.values[i] }

// Get returns the value stored under key.
func (r *Results) Get(key string) Asset {
	if i := r.indexOf(key); i >= 0 {
		return r.values[i]
	}
	return nil
}

// Err returns the error captured for slot i by Any.
func (r *Results) Err(i int) error { return r.errs[i] }

// ErrKey returns the error captured for key by Any.
func (r *Results) ErrKey(key string) error {
	if i := r.indexOf(key); i >= 0 {
		return r.errs[i]
	}
	return nil
}

// Failed returns the number of slots that captured an error.
func (r *Results) Failed() int {
	n := 0
	for _, err := range r.errs {
		if err != nil {
			n++
		}
	}
	return n
}

// MarshalJSON encodes a JSON array for lists and an object for groups.
func (r *Results) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value())
}

func (r *Results) indexOf(key string) int {
	if !r.keyed {
		return -1
	}
	i := sort.SearchStrings(r.keys, key)
	if i < len(r.keys) && r.keys[i] == key {
		return i
	}
	return -1
}

// emitter serializes count assignment and event delivery.
type emitter struct {
	mu      sync.Mutex
	ctx     context.Context
	batch   *Batch
	sinks   []ProgressFunc
	chans   []chan<- ProgressEvent
	count   int
	stopped bool
}

func newEmitter(ctx context.Context, b *Batch, cfg batchConfig) *emitter {
	return &emitter{ctx: ctx, batch: b, sinks: cfg.sinks, chans: cfg.chans}
}

func (e *emitter) emit(i int, value Asset, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.count++
	if len(e.sinks) == 0 && len(e.chans) == 0 {
		return
	}
	total := len(e.batch.reqs)
	ev := ProgressEvent{
		Target:   e.batch.reqs[i],
		Index:    i,
		Total:    total,
		Count:    e.count,
		Progress: float64(e.count) / float64(total),
		Value:    value,
		Err:      err,
	}
	if e.batch.keyed {
		ev.Key = e.batch.keys[i]
	}
	for _, sink := range e.sinks {
		sink(ev)
	}
	// Sends happen under mu: a channel nobody drains stalls every item of the
	// batch until ctx ends.
	for _, ch := range e.chans {
		select {
		case ch <- ev:
		case <-e.ctx.Done():
		}
	}
}

func (e *emitter) stop() {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
}

// All loads every request concurrently and fails fast.
//
// The first failing item's error is returned as soon as it is observed and no
// partial result is delivered. Items still in flight are not cancelled; their
// results and progress events are discarded.
func (l *Loader) All(ctx context.Context, b *Batch, opts ...BatchOption) (*Results, error) {
	cfg, err := l.prepare(b, opts)
	if err != nil {
		return nil, err
	}

	res := newResults(b)
	total := b.Len()
	if total == 0 {
		return res, nil
	}

	type outcome struct {
		index int
		value Asset
		err   error
	}

	em := newEmitter(ctx, b, cfg)
	// Buffered so that abandoned items can always finish.
	done := make(chan outcome, total)
	for i, req := range b.reqs {
		go func() {
			v, err := l.Load(ctx, req)
			if err == nil {
				em.emit(i, v, nil)
			}
			done <- outcome{index: i, value: v, err: err}
		}()
	}

	for range total {
		select {
		case o := <-done:
			if o.err != nil {
				em.stop()
				l.logger.Warn("Asset batch aborted",
					zap.Int("total", total),
					zap.Int("index", o.index),
					zap.Error(o.err))
				return nil, o.err
			}
			res.values[o.index] = o.value
		case <-ctx.Done():
			em.stop()
			return nil, ctx.Err()
		}
	}

	l.logger.Debug("Asset batch loaded", zap.String("mode", "all"), zap.Int("total", total))
	return res, nil
}

// Any loads every request concurrently and never fails because of an item.
//
// A failed item leaves nil in its slot; its error is available from
// Results.Err and on its progress event. Only invalid input fails the call.
func (l *Loader) Any(ctx context.Context, b *Batch, opts ...BatchOption) (*Results, error) {
	cfg, err := l.prepare(b, opts)
	if err != nil {
		return nil, err
	}

	res := newResults(b)
	em := newEmitter(ctx, b, cfg)

	var wg sync.WaitGroup
	for i, req := range b.reqs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := l.Load(ctx, req)
			if err != nil {
				v = nil
			}
			res.values[i], res.errs[i] = v, err
			em.emit(i, v, err)
		}()
	}
	wg.Wait()

	if failed := res.Failed(); failed > 0 {
		l.logger.Debug("Asset batch loaded with failures",
			zap.String("mode", "any"),
			zap.Int("total", res.Len()),
			zap.Int("failed", failed))
	} else {
		l.logger.Debug("Asset batch loaded", zap.String("mode", "any"), zap.Int("total", res.Len()))
	}
	return res, nil
}

// GoAll runs All in the background. The Future resolves to Results.Value().
func (l *Loader) GoAll(ctx context.Context, b *Batch, opts ...BatchOption) *Future {
	return Async(func() (Asset, error) {
		res, err := l.All(ctx, b, opts...)
		if err != nil {
			return nil, err
		}
		return res.Value(), nil
	})
}

// GoAny runs Any in the background. The Future resolves to Results.Value().
func (l *Loader) GoAny(ctx context.Context, b *Batch, opts ...BatchOption) *Future {
	return Async(func() (Asset, error) {
		res, err := l.Any(ctx, b, opts...)
		if err != nil {
			return nil, err
		}
		return res.Value(), nil
	})
}

func (l *Loader) prepare(b *Batch, opts []BatchOption) (batchConfig, error) {
	var cfg batchConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.invalid {
		return cfg, ErrInvalidProgressCallback
	}
	if b == nil {
		return cfg, ErrMissingInput
	}
	return cfg, nil
}
