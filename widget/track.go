// SPDX-License-Identifier: Unlicense OR MIT

package widget

// Track describes the geometry of the strip a slider thumb travels
// along: the track length and the thumb size along the drag axis,
// both in pixels. The zero value reports no usable length.
type Track struct {
	Length float32
	Thumb  float32
}

// Usable returns the length available for thumb travel, the track
// length minus the thumb size.
func (t Track) Usable() float32 {
	if u := t.Length - t.Thumb; u > 0 {
		return u
	}
	return 0
}

// Offset maps a value to a thumb offset in pixels from the track
// start. An unmeasured track maps every value to offset 0.
func (t Track) Offset(r Range, value float32) float32 {
	u := t.Usable()
	if u <= 0 || r.Span() <= 0 {
		return 0
	}
	return (r.Clamp(value) - r.min) / r.Span() * u
}

// Value maps a thumb offset in pixels to a quantized value. Offsets
// beyond the track ends map to the nearest bound; an unmeasured
// track maps every offset to the range minimum.
func (t Track) Value(r Range, offset float32) float32 {
	u := t.Usable()
	if u <= 0 || r.Span() <= 0 {
		return r.Quantize(r.min)
	}
	if offset < 0 {
		offset = 0
	} else if offset > u {
		offset = u
	}
	return r.Quantize(r.min + offset/u*r.Span())
}
