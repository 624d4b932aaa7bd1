// Package shapectl keeps a generated shape in sync with its parameters.
//
// A [Controller] owns a set of generation parameters and the shape generated
// from them. Setters only record changes; the work is done when the
// controller is flushed, typically once per tick of the surrounding update
// loop, so that any number of changes within one tick cause a single
// regeneration. After regenerating, the controller exports the shape to its
// export targets and notifies its subscribers.
package shapectl

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"honnef.co/go/polygen"
)

// State is the state of a [Controller].
type State int

const (
	// Clean means that the outputs reflect the current parameters.
	Clean State = iota
	// RegeneratePending means that the shape has to be generated and
	// exported on the next flush.
	RegeneratePending
	// ExportPending means that the current shape has to be exported on the
	// next flush.
	ExportPending
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case RegeneratePending:
		return "regenerate pending"
	case ExportPending:
		return "export pending"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrDisposed is returned by controllers that have been disposed of.
var ErrDisposed = errors.New("controller has been disposed")

// Event is sent to subscribers after every export step.
type Event struct {
	Controller uuid.UUID
	Shape      polygen.Shape
	// Partition is the convex decomposition of Shape. It is nil unless it
	// has been computed, which is always the case when exporting hulls.
	Partition polygen.Partition
	Type      polygen.ShapeType
	// Generation is the number of successful regenerations so far.
	Generation uint64
	// Exported reports whether the export targets were written to.
	Exported bool
}

// Options configure a [Controller].
type Options struct {
	// Context is the execution context, which selects the export behavior
	// flag that has to be set for exports to happen.
	Context ExecContext
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Resolver resolves export target paths. Without a resolver, every
	// export target is unresolved.
	Resolver Resolver
	// Params are the initial parameters. The zero value means
	// DefaultParams().
	Params *Params
}

type subscription struct {
	id uuid.UUID
	fn func(Event)
}

// Controller generates a shape from parameters and exports it.
//
// A controller is not safe for concurrent use. Setters, flushes and reads
// must all happen on the same goroutine, or be synchronized externally.
type Controller struct {
	id       uuid.UUID
	log      *slog.Logger
	ctx      ExecContext
	resolver Resolver

	params         Params
	exportBehavior ExportBehavior
	exportAsHulls  bool
	targets        []string
	autoDispose    bool

	state      State
	disposed   bool
	generation uint64

	shape     polygen.Shape
	typ       polygen.ShapeType
	partition polygen.Partition
	// partitionErr is the error of the last decomposition of shape, if
	// partitionDone.
	partitionErr  error
	partitionDone bool

	subs []subscription
}

// New returns a controller in the RegeneratePending state, so that the first
// flush generates the shape.
func New(opts Options) *Controller {
	c := &Controller{
		id:             uuid.New(),
		log:            opts.Logger,
		ctx:            opts.Context,
		resolver:       opts.Resolver,
		exportBehavior: ExportEditor,
		state:          RegeneratePending,
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	c.log = c.log.With("controller", c.id)
	if opts.Params != nil {
		c.params = opts.Params.clone()
	} else {
		c.params = DefaultParams()
	}
	c.typ = c.params.Type()
	return c
}

func (c *Controller) ID() uuid.UUID       { return c.id }
func (c *Controller) State() State        { return c.state }
func (c *Controller) Disposed() bool      { return c.disposed }
func (c *Controller) Context() ExecContext { return c.ctx }

// Generation returns the number of successful regenerations.
func (c *Controller) Generation() uint64 { return c.generation }

// Shape returns the most recently generated shape. A failed regeneration
// keeps the previous shape.
func (c *Controller) Shape() polygen.Shape { return c.shape }

// Type returns the type of the most recently generated shape.
func (c *Controller) Type() polygen.ShapeType { return c.typ }

// Params returns a copy of the current parameters.
func (c *Controller) Params() Params { return c.params.clone() }

func (c *Controller) ExportBehavior() ExportBehavior { return c.exportBehavior }
func (c *Controller) ExportAsHulls() bool            { return c.exportAsHulls }
func (c *Controller) ExportTargets() []string        { return slices.Clone(c.targets) }
func (c *Controller) AutoDispose() bool              { return c.autoDispose }

// Partition returns the convex decomposition of the current shape, computing
// it if necessary. Shapes that aren't polygons have an empty partition.
func (c *Controller) Partition() (polygen.Partition, error) {
	if !c.partitionDone {
		c.partition, c.partitionErr = decompose(c.shape, c.typ)
		c.partitionDone = true
	}
	return c.partition.Clone(), c.partitionErr
}

func decompose(s polygen.Shape, typ polygen.ShapeType) (polygen.Partition, error) {
	if typ != polygen.Polygon || s.Len() == 0 {
		return polygen.Partition{}, nil
	}
	return polygen.Decompose(s)
}

// CanExport reports whether exports write to the export targets when running
// in ctx.
func (c *Controller) CanExport(ctx ExecContext) bool {
	f := ctx.flag()
	return f != 0 && c.exportBehavior.Has(f)
}

// Subscribe registers fn to be called after every export step, whether or
// not the export targets were written to. The returned function removes the
// subscription.
func (c *Controller) Subscribe(fn func(Event)) (cancel func()) {
	id := uuid.New()
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		c.subs = slices.DeleteFunc(c.subs, func(s subscription) bool { return s.id == id })
	}
}

func (c *Controller) markRegenerate() {
	if c.disposed {
		return
	}
	c.state = RegeneratePending
}

func (c *Controller) markExport() {
	if c.disposed {
		return
	}
	if c.state == Clean {
		c.state = ExportPending
	}
}

// QueueRegenerate schedules a regeneration for the next flush.
func (c *Controller) QueueRegenerate() { c.markRegenerate() }

// QueueExport schedules an export for the next flush. It has no effect if a
// regeneration is already pending, as regenerating implies exporting.
func (c *Controller) QueueExport() { c.markExport() }

// Tick flushes pending work. It is meant to be called once per tick of the
// surrounding update loop.
func (c *Controller) Tick() error { return c.Flush() }

// Flush performs pending work immediately: it regenerates and exports in the
// RegeneratePending state, exports in the ExportPending state, and does
// nothing in the Clean state. The controller is Clean afterwards, even if
// regenerating failed.
func (c *Controller) Flush() error {
	if c.disposed {
		return ErrDisposed
	}
	switch c.state {
	case RegeneratePending:
		return c.regenerate()
	case ExportPending:
		return c.export()
	default:
		return nil
	}
}

// Regenerate generates and exports the shape immediately, regardless of the
// state.
func (c *Controller) Regenerate() error {
	if c.disposed {
		return ErrDisposed
	}
	return c.regenerate()
}

// Export exports the shape immediately. If a regeneration is pending, the
// shape is regenerated first.
func (c *Controller) Export() error {
	if c.disposed {
		return ErrDisposed
	}
	if c.state == RegeneratePending {
		return c.regenerate()
	}
	return c.export()
}

func (c *Controller) regenerate() error {
	shape, typ, err := c.params.Build()
	var part polygen.Partition
	if err == nil && c.exportAsHulls {
		part, err = decompose(shape, typ)
	}
	if err != nil {
		c.state = Clean
		c.log.Error("shape generation failed", "err", err)
		return err
	}

	c.generation++
	c.shape, c.typ = shape, typ
	c.partition, c.partitionErr, c.partitionDone = part, nil, c.exportAsHulls
	c.log.Debug("regenerated shape",
		"generation", c.generation,
		"points", shape.Len(),
		"type", typ,
		"perimeter", shape.Perimeter(),
		"centroid", shape.Centroid())
	return c.export()
}

func (c *Controller) export() error {
	c.state = Clean
	ev := Event{
		Controller: c.id,
		Shape:      c.shape,
		Type:       c.typ,
		Generation: c.generation,
	}

	var errs []error
	if c.CanExport(c.ctx) {
		errs = c.writeTargets()
		ev.Exported = true
	}
	if c.partitionDone && c.partitionErr == nil {
		ev.Partition = c.partition.Clone()
	}

	for _, s := range slices.Clone(c.subs) {
		s.fn(ev)
	}

	err := errors.Join(errs...)
	if ev.Exported && err == nil && c.autoDispose && c.ctx == Runtime {
		c.log.Debug("disposing after first runtime export")
		c.Dispose()
	}
	return err
}

func (c *Controller) writeTargets() []error {
	var part polygen.Partition
	if c.exportAsHulls {
		var err error
		part, err = c.Partition()
		if err != nil {
			c.log.Error("cannot decompose shape for export", "err", err)
			return []error{err}
		}
	}

	var errs []error
	for _, path := range c.targets {
		if err := c.writeTarget(path, part); err != nil {
			c.log.Warn("export failed", "target", path, "err", err)
			errs = append(errs, &TargetError{Path: path, Err: err})
		}
	}
	return errs
}

func (c *Controller) writeTarget(path string, part polygen.Partition) error {
	if c.resolver == nil {
		return &polygen.Error{Kind: polygen.ExportTargetUnresolved, Op: "Export", Err: errors.New("no resolver")}
	}
	t, err := c.resolver.Resolve(path)
	if err != nil {
		return &polygen.Error{Kind: polygen.ExportTargetUnresolved, Op: "Export", Err: err}
	}
	if c.exportAsHulls {
		return t.SetHulls(part)
	}
	return t.SetShape(c.shape)
}

// Dispose releases all subscriptions. Flushing a disposed controller returns
// ErrDisposed, and setters have no effect.
func (c *Controller) Dispose() {
	c.disposed = true
	c.subs = nil
}
