package atlas

// Texcoord is the integer pixel rectangle within a page where one entry's
// live content resides. Coordinates are relative to the level-0 page of edge
// length Size; MinX/MinY are inclusive, MaxX/MaxY exclusive.
type Texcoord struct {
	Page int
	MinX int
	MinY int
	MaxX int
	MaxY int
	Size int
}

// ToF32 returns the rectangle normalized to [0, 1] in float32 precision.
func (t Texcoord) ToF32() Texcoord32 {
	size := float32(t.Size)
	return Texcoord32{
		Page: t.Page,
		MinX: float32(t.MinX) / size,
		MinY: float32(t.MinY) / size,
		MaxX: float32(t.MaxX) / size,
		MaxY: float32(t.MaxY) / size,
	}
}

// ToF64 returns the rectangle normalized to [0, 1] in float64 precision.
func (t Texcoord) ToF64() Texcoord64 {
	size := float64(t.Size)
	return Texcoord64{
		Page: t.Page,
		MinX: float64(t.MinX) / size,
		MinY: float64(t.MinY) / size,
		MaxX: float64(t.MaxX) / size,
		MaxY: float64(t.MaxY) / size,
	}
}

// Texcoord32 is a sampling rectangle normalized to [0, 1] in float32.
type Texcoord32 struct {
	Page int
	MinX float32
	MinY float32
	MaxX float32
	MaxY float32
}

// Texcoord64 is a sampling rectangle normalized to [0, 1] in float64.
type Texcoord64 struct {
	Page int
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}
