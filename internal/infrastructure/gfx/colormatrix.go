package gfx

// ColorMatrix is a row-major 4x5 matrix applied to straight-alpha RGBA:
// out = M * (r, g, b, a, 1).
type ColorMatrix [20]float32

// IdentityColorMatrix leaves colors unchanged.
func IdentityColorMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix scales RGB by b, leaving alpha alone.
func BrightnessMatrix(b float32) ColorMatrix {
	return ColorMatrix{
		b, 0, 0, 0, 0,
		0, b, 0, 0, 0,
		0, 0, b, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Apply transforms one straight-alpha color, clamping to [0,1].
func (m ColorMatrix) Apply(r, g, b, a float32) (float32, float32, float32, float32) {
	row := func(i int) float32 {
		v := m[i]*r + m[i+1]*g + m[i+2]*b + m[i+3]*a + m[i+4]
		return min(max(v, 0), 1)
	}
	return row(0), row(5), row(10), row(15)
}
