// Package record provides a renderer that records draw operations instead
// of painting them. Tests and the command-line tools inspect and serialize
// the recording.
package record

import (
	"math"

	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/text"
)

// Op is one recorded operation, in window coordinates.
type Op struct {
	Op     string     `yaml:"op"`
	Bounds [4]float64 `yaml:"bounds,flow"`
	Text   string     `yaml:"text,omitempty"`
	Color  string     `yaml:"color,omitempty"`
	Border string     `yaml:"border,omitempty"`
	// Layer is the nesting depth of layers the op was drawn in.
	Layer int `yaml:"layer,omitempty"`
}

// Rect returns the op bounds.
func (o Op) Rect() geometry.Rectangle {
	return geometry.Rectangle{X: o.Bounds[0], Y: o.Bounds[1], Width: o.Bounds[2], Height: o.Bounds[3]}
}

// Recorder is a graphics.Renderer that records operations. Operations
// entirely outside the current layer are dropped.
type Recorder struct {
	measurer text.Measurer
	ops      []Op
	offset   geometry.Vector
	clips    []geometry.Rectangle
}

// New returns a recorder measuring text with m. A nil m measures monospace.
func New(m text.Measurer) *Recorder {
	if m == nil {
		m = text.Monospace{}
	}
	return &Recorder{measurer: m}
}

func bounds(r geometry.Rectangle) [4]float64 {
	round := func(v float64) float64 { return math.Round(v*100) / 100 }
	return [4]float64{round(r.X), round(r.Y), round(r.Width), round(r.Height)}
}

// visible translates r to window coordinates and reports whether any of it
// lies inside the current clip.
func (r *Recorder) visible(rect geometry.Rectangle) (geometry.Rectangle, bool) {
	rect = rect.Translate(r.offset)
	if len(r.clips) == 0 {
		return rect, true
	}
	_, ok := rect.Intersection(r.clips[len(r.clips)-1])
	return rect, ok || rect.IsEmpty()
}

func (r *Recorder) FillQuad(q graphics.Quad, background graphics.Color) {
	rect, ok := r.visible(q.Bounds)
	if !ok {
		return
	}
	op := Op{Op: "quad", Bounds: bounds(rect), Color: background.Hex(), Layer: len(r.clips)}
	if q.Border.Width > 0 {
		op.Border = q.Border.Color.Hex()
	}
	r.ops = append(r.ops, op)
}

func (r *Recorder) FillText(t graphics.Text, position geometry.Point, color graphics.Color, _ geometry.Rectangle) {
	rect, ok := r.visible(geometry.RectangleAt(position, t.Bounds))
	if !ok {
		return
	}
	r.ops = append(r.ops, Op{Op: "text", Bounds: bounds(rect), Text: t.Content, Color: color.Hex(), Layer: len(r.clips)})
}

func (r *Recorder) DrawImage(img graphics.Image, b geometry.Rectangle) {
	rect, ok := r.visible(b)
	if !ok {
		return
	}
	r.ops = append(r.ops, Op{Op: "image", Bounds: bounds(rect), Text: img.Handle, Layer: len(r.clips)})
}

func (r *Recorder) WithLayer(b geometry.Rectangle, draw func()) {
	clip := b.Translate(r.offset)
	if len(r.clips) > 0 {
		clip, _ = clip.Intersection(r.clips[len(r.clips)-1])
	}
	r.ops = append(r.ops, Op{Op: "layer", Bounds: bounds(clip), Layer: len(r.clips)})
	r.clips = append(r.clips, clip)
	defer func() { r.clips = r.clips[:len(r.clips)-1] }()
	draw()
}

func (r *Recorder) WithTranslation(v geometry.Vector, draw func()) {
	r.offset = r.offset.Add(v)
	defer func() { r.offset = r.offset.Add(v.Neg()) }()
	draw()
}

func (r *Recorder) MeasureText(content string, size float64) geometry.Size {
	return r.measurer.Measure(content, size)
}

// Ops returns the recorded operations.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Texts returns the content of every recorded text op in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Op == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Find returns the first op satisfying match.
func (r *Recorder) Find(match func(Op) bool) (Op, bool) {
	for _, op := range r.ops {
		if match(op) {
			return op, true
		}
	}
	return Op{}, false
}

// Reset drops the recording.
func (r *Recorder) Reset() {
	r.ops = nil
	r.offset = geometry.Vector{}
	r.clips = nil
}
