package shapectl

import (
	"slices"

	"honnef.co/go/polygen"
)

// Setters record the new value and mark the controller for regeneration or
// export. They never do any work themselves.

func (c *Controller) setParam(fn func(p *Params)) {
	if c.disposed {
		return
	}
	fn(&c.params)
	c.markRegenerate()
}

func (c *Controller) setExport(fn func()) {
	if c.disposed {
		return
	}
	fn()
	c.markExport()
}

// SetParams replaces all parameters.
func (c *Controller) SetParams(p Params) {
	c.setParam(func(dst *Params) { *dst = p.clone() })
}

func (c *Controller) SetVerticesCount(n int) {
	c.setParam(func(p *Params) { p.VerticesCount = n })
}

// SetSizes sets the vertex distances. The controller keeps a copy of sizes.
func (c *Controller) SetSizes(sizes ...float64) {
	c.setParam(func(p *Params) { p.Sizes = slices.Clone(sizes) })
}

func (c *Controller) SetRingRatio(r float64) {
	c.setParam(func(p *Params) { p.RingRatio = r })
}

func (c *Controller) SetCornerSize(s float64) {
	c.setParam(func(p *Params) { p.CornerSize = s })
}

func (c *Controller) SetCornerDetail(d int) {
	c.setParam(func(p *Params) { p.CornerDetail = d })
}

func (c *Controller) SetCornerRange(r polygen.CornerRange) {
	c.setParam(func(p *Params) { p.CornerRange = r })
}

// SetArcStart moves the start of the arc, keeping its angle.
func (c *Controller) SetArcStart(rad float64) {
	c.setParam(func(p *Params) { p.ArcStart = rad })
}

func (c *Controller) SetArcAngle(rad float64) {
	c.setParam(func(p *Params) { p.ArcAngle = rad })
}

// SetArcEnd moves the end of the arc by changing its angle.
func (c *Controller) SetArcEnd(rad float64) {
	c.setParam(func(p *Params) { p.ArcAngle = rad - p.ArcStart })
}

func (c *Controller) SetArcStartDegrees(deg float64) { c.SetArcStart(polygen.Radians(deg)) }
func (c *Controller) SetArcAngleDegrees(deg float64) { c.SetArcAngle(polygen.Radians(deg)) }
func (c *Controller) SetArcEndDegrees(deg float64)   { c.SetArcEnd(polygen.Radians(deg)) }

func (c *Controller) SetClosingMethod(m polygen.ClosingMethod) {
	c.setParam(func(p *Params) { p.ClosingMethod = m })
}

func (c *Controller) SetRoundArcEnds(b bool) {
	c.setParam(func(p *Params) { p.RoundArcEnds = b })
}

// SetOffset sets all components of the offset transform at once.
func (c *Controller) SetOffset(position polygen.Vec2, rotation float64, scale polygen.Vec2, skew float64) {
	c.setParam(func(p *Params) {
		p.OffsetPosition = position
		p.OffsetRotation = rotation
		p.OffsetScale = scale
		p.OffsetSkew = skew
	})
}

func (c *Controller) SetOffsetPosition(v polygen.Vec2) {
	c.setParam(func(p *Params) { p.OffsetPosition = v })
}

func (c *Controller) SetOffsetRotation(rad float64) {
	c.setParam(func(p *Params) { p.OffsetRotation = rad })
}

func (c *Controller) SetOffsetScale(v polygen.Vec2) {
	c.setParam(func(p *Params) { p.OffsetScale = v })
}

func (c *Controller) SetOffsetSkew(rad float64) {
	c.setParam(func(p *Params) { p.OffsetSkew = rad })
}

func (c *Controller) SetOffsetRotationDegrees(deg float64) { c.SetOffsetRotation(polygen.Radians(deg)) }
func (c *Controller) SetOffsetSkewDegrees(deg float64)     { c.SetOffsetSkew(polygen.Radians(deg)) }

// SetInserts sets the shapes spliced into the generated shape.
func (c *Controller) SetInserts(ins ...Insert) {
	c.setParam(func(p *Params) {
		p.Inserts = ins
		*p = p.clone()
	})
}

func (c *Controller) SetExportBehavior(b ExportBehavior) {
	c.setExport(func() { c.exportBehavior = b })
}

// SetExportAsHulls selects whether the convex decomposition is exported
// instead of the shape.
func (c *Controller) SetExportAsHulls(b bool) {
	c.setExport(func() { c.exportAsHulls = b })
}

// SetExportTargets sets the paths of the export targets. Paths are resolved
// on every export.
func (c *Controller) SetExportTargets(paths ...string) {
	c.setExport(func() { c.targets = slices.Clone(paths) })
}

// SetAutoDispose makes the controller dispose of itself after its first
// successful export at runtime.
func (c *Controller) SetAutoDispose(b bool) {
	c.setExport(func() { c.autoDispose = b })
}

// Apply replaces the parameters and export settings with those in cfg. The
// controller is left unchanged if cfg is invalid.
func (c *Controller) Apply(cfg Config) error {
	if c.disposed {
		return ErrDisposed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.SetParams(cfg.Params())
	c.exportBehavior = cfg.Export.Behavior
	c.exportAsHulls = cfg.Export.AsHulls
	c.targets = slices.Clone(cfg.Export.Targets)
	c.autoDispose = cfg.Export.AutoDispose
	return nil
}
