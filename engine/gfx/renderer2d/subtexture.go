package renderer2d

import "image"

// SubTexture2D describes a UV sub-rect of a full texture.
type SubTexture2D struct {
	Texture Texture
	U0, V0  float32 // top-left
	U1, V1  float32 // bottom-right
}

// FromPixels builds a subtexture from a pixel rect within tex.
func FromPixels(tex Texture, r image.Rectangle) SubTexture2D {
	w, h := tex.Size()
	return SubTexture2D{
		Texture: tex,
		U0:      float32(r.Min.X) / float32(w),
		V0:      float32(r.Min.Y) / float32(h),
		U1:      float32(r.Max.X) / float32(w),
		V1:      float32(r.Max.Y) / float32(h),
	}
}
