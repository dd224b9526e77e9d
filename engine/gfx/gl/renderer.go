package glbackend

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove/engine/assets"
	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/gfx/renderer2d"
	"github.com/hubastard/grove/engine/scene"
	"github.com/hubastard/grove/engine/text"
	"github.com/hubastard/grove/engine/ui"
)

//go:embed shaders/quad.vert
var vertexSource string

//go:embed shaders/quad.frag
var fragmentSource string

const maxQuads = 4096

type glTexture struct {
	id   uint32
	w, h int
}

func (t *glTexture) Size() (int, int) { return t.w, t.h }

// RendererGL draws the UI draw list with one batched quad shader.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	uVP     int32

	cam   *scene.PixelCamera2D
	r2d   *renderer2d.Renderer2D
	list  *renderer2d.DrawList
	style renderer2d.Style

	white  *glTexture
	font   *text.Atlas
	images map[image.Image]*glTexture
}

func NewRendererGL(win core.Window, cfg core.Config) (core.Renderer, error) {
	font, err := text.Load(cfg.FontPath, float32(cfg.FontSize))
	if err != nil {
		return nil, err
	}
	w, h := win.Size()
	r := &RendererGL{
		win:    win,
		font:   font,
		cam:    scene.NewPixelCamera2D(w, h),
		images: make(map[image.Image]*glTexture),
	}
	if err := r.Init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource+"\x00", fragmentSource+"\x00")
	if err != nil {
		return err
	}
	gl.UseProgram(r.program)
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	var slots [renderer2d.MaxTexSlots]int32
	for i := range slots {
		slots[i] = int32(i)
	}
	gl.Uniform1iv(gl.GetUniformLocation(r.program, gl.Str("uTex\x00")), int32(len(slots)), &slots[0])
	gl.UseProgram(0)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuads*4*renderer2d.VertexStride*4, nil, gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, maxQuads*6*4, nil, gl.DYNAMIC_DRAW)

	const stride = renderer2d.VertexStride * 4 // bytes
	attrib := func(loc uint32, size int32, offset int) {
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, size, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(offset*4)))
	}
	attrib(0, 2, renderer2d.OffsetPos)
	attrib(1, 4, renderer2d.OffsetColor)
	attrib(2, 2, renderer2d.OffsetUV)
	attrib(3, 1, renderer2d.OffsetTexIndex)

	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(white.Pix, []byte{255, 255, 255, 255})
	r.white = uploadTexture(white, gl.NEAREST)

	r.r2d = renderer2d.New(r, r.white, maxQuads)
	r.list = renderer2d.NewDrawList(r.r2d)
	r.style = renderer2d.Style{
		Palette: colors.DefaultPalette(),
		Border:  1,
		Font:    r.font,
		FontTex: uploadTexture(r.font.Image, gl.NEAREST),
		Image:   r.imageTexture,
	}
	return nil
}

func (r *RendererGL) Shutdown() {
	for img, t := range r.images {
		gl.DeleteTextures(1, &t.id)
		delete(r.images, img)
	}
	if t, ok := r.style.FontTex.(*glTexture); ok {
		gl.DeleteTextures(1, &t.id)
	}
	if r.white != nil {
		gl.DeleteTextures(1, &r.white.id)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.font.Close()
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Render draws cmds in window coordinates, the same space the pointer uses.
func (r *RendererGL) Render(cmds []ui.DrawCommand) error {
	w, h := r.win.Size()
	r.cam.SetViewportPixels(w, h)
	r.r2d.BeginScene(r.cam.VP())
	r.list.Draw(cmds, r.style)
	return r.r2d.EndScene()
}

// Stats reports the batching counters of the last frame.
func (r *RendererGL) Stats() renderer2d.Statistics { return r.r2d.Stats() }

var errForeignTexture = errors.New("texture not created by the gl backend")

// Submit implements renderer2d.Submitter.
func (r *RendererGL) Submit(vp [16]float32, b renderer2d.Batch) error {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uVP, 1, false, &vp[0])
	for i, t := range b.Textures {
		gt, ok := t.(*glTexture)
		if !ok {
			return errForeignTexture
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, gt.id)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(b.Vertices)*4, gl.Ptr(b.Vertices))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(b.Indices)*4, gl.Ptr(b.Indices))
	gl.DrawElements(gl.TRIANGLES, int32(len(b.Indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// imageTexture uploads an image payload the first time it is drawn.
func (r *RendererGL) imageTexture(payload any) (renderer2d.Texture, bool) {
	img, ok := payload.(image.Image)
	if !ok {
		return nil, false
	}
	if t, ok := r.images[img]; ok {
		return t, true
	}
	t := uploadTexture(assets.ToRGBA(img), gl.LINEAR)
	r.images[img] = t
	return t, true
}

func uploadTexture(img *image.RGBA, filter int32) *glTexture {
	b := img.Bounds()
	t := &glTexture{w: b.Dx(), h: b.Dy()}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(t.w), int32(t.h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
