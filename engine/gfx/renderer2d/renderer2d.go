package renderer2d

import (
	"fmt"

	"github.com/hubastard/grove/engine/colors"
)

// Max textures per batch (common GL limit is 16)
const MaxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const (
	VertexStride = 9
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// Attribute offsets in floats, matching the quad shader's locations 0..3.
const (
	OffsetPos      = 0
	OffsetColor    = 2
	OffsetUV       = 6
	OffsetTexIndex = 8
)

// Texture is a backend texture handle. Handles are compared by identity.
type Texture interface {
	Size() (w, h int)
}

// Batch is one draw call worth of geometry. Slices are only valid during Submit.
type Batch struct {
	Vertices []float32
	Indices  []uint32
	Textures []Texture // slot i is sampled by texIndex i
	Quads    int
}

// Submitter uploads and draws a batch. The GL backend is one; tests use a fake.
type Submitter interface {
	Submit(vp [16]float32, b Batch) error
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Renderer2D batches axis-aligned quads in pixel space (origin top-left).
type Renderer2D struct {
	sub    Submitter
	white  Texture // slot 0
	texArr [MaxTexSlots]Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	vp    [16]float32
	stats Statistics
	err   error
}

// New creates a batcher. white must be a 1x1 opaque white texture; solid
// quads sample it so that every quad goes through one shader path.
func New(sub Submitter, white Texture, maxQuads int) *Renderer2D {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	return &Renderer2D{
		sub:      sub,
		white:    white,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*VertexStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
	}
}

// MaxQuads is the largest batch Submit will ever receive.
func (rd *Renderer2D) MaxQuads() int { return rd.maxQuads }

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.err = nil
	rd.resetBatch()
}

// EndScene flushes the last batch and reports the first submit error of the scene.
func (rd *Renderer2D) EndScene() error {
	rd.flush()
	return rd.err
}

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawQuad draws a solid quad with its top-left at (x,y).
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, color colors.Color) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(x, y, w, h, color, rd.texSlot(rd.white), 0, 0, 1, 1)
}

// DrawTexturedQuad draws the whole texture tinted by tint.
func (rd *Renderer2D) DrawTexturedQuad(x, y, w, h float32, tex Texture, tint colors.Color) {
	rd.DrawTexturedQuadUV(x, y, w, h, tex, tint, 0, 0, 1, 1)
}

// DrawTexturedQuadUV draws a UV sub-rect (u0,v0 top-left -> u1,v1 bottom-right).
func (rd *Renderer2D) DrawTexturedQuadUV(x, y, w, h float32, tex Texture, tint colors.Color, u0, v0, u1, v1 float32) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(x, y, w, h, tint, slot, u0, v0, u1, v1)
}

// DrawSubTexQuad draws a quad using a SubTexture2D.
func (rd *Renderer2D) DrawSubTexQuad(x, y, w, h float32, sub SubTexture2D, tint colors.Color) {
	rd.DrawTexturedQuadUV(x, y, w, h, sub.Texture, tint, sub.U0, sub.V0, sub.U1, sub.V1)
}

// DrawOutline draws a rectangle border of thickness t inside (x,y,w,h).
func (rd *Renderer2D) DrawOutline(x, y, w, h, t float32, color colors.Color) {
	if t <= 0 || w <= 0 || h <= 0 {
		return
	}
	t = min(t, w/2, h/2)
	rd.DrawQuad(x, y, w, t, color)
	rd.DrawQuad(x, y+h-t, w, t, color)
	rd.DrawQuad(x, y+t, t, h-2*t, color)
	rd.DrawQuad(x+w-t, y+t, t, h-2*t, color)
}

// --- internals ---

func (rd *Renderer2D) texSlot(t Texture) float32 {
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	if rd.texCnt >= MaxTexSlots {
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.texCnt)
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) drawQuadInternal(x, y, w, h float32, color colors.Color, texIndex float32, u0, v0, u1, v1 float32) {
	// corners TL, TR, BL, BR
	corners := [4][4]float32{
		{x, y, u0, v0},
		{x + w, y, u1, v0},
		{x, y + h, u0, v1},
		{x + w, y + h, u1, v1},
	}
	start := uint32(len(rd.verts) / VertexStride)
	for _, p := range corners {
		rd.verts = append(rd.verts,
			p[0], p[1],
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			texIndex,
		)
	}
	rd.inds = append(rd.inds,
		start+0, start+2, start+1,
		start+1, start+2, start+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}
	err := rd.sub.Submit(rd.vp, Batch{
		Vertices: rd.verts,
		Indices:  rd.inds,
		Textures: rd.texArr[:rd.texCnt],
		Quads:    rd.quadCount,
	})
	if err != nil && rd.err == nil {
		rd.err = fmt.Errorf("submit batch %d: %w", rd.stats.DrawCalls, err)
	}
	rd.stats.DrawCalls++
	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
	clear(rd.texArr[:])
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}
