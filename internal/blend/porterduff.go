// Package blend implements Porter-Duff compositing (spec.md §4.7) over
// premultiplied-alpha pixels, plus the region walk global operators need.
//
// The per-pixel blend formulas and their mulDiv255/addDiv255 rounding
// helpers are grounded essentially verbatim on
// gogpu-gg/internal/blend/porter_duff.go (Modulate dropped — it has no
// entry in spec's operator table, and separable/non-separable CSS blend
// modes dropped entirely as out of spec's scope).
package blend

// Op identifies a Porter-Duff compositing operator.
type Op uint8

const (
	Clear Op = iota
	Copy     // source
	Destination
	SourceOver
	DestinationOver
	SourceIn
	DestinationIn
	SourceOut
	DestinationOut
	SourceAtop
	DestinationAtop
	Xor
	Lighter // Plus
)

// IsGlobal reports whether op can change pixels where the source has no
// coverage at all (destination-only pixels) and therefore needs the
// union-region walk in region.go rather than a per-source-pixel loop.
// Copy, SourceIn, SourceOut, DestinationIn and DestinationAtop all clear
// the destination where the source alpha is zero. Clear is handled as a
// local operator: it erases only the pixels the source geometry covers.
func (op Op) IsGlobal() bool {
	switch op {
	case Copy, SourceIn, SourceOut, DestinationIn, DestinationAtop:
		return true
	default:
		return false
	}
}

// Func is a premultiplied-alpha blend function, all channels 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// Lookup returns the blend function for op, defaulting to SourceOver.
func Lookup(op Op) Func {
	switch op {
	case Clear:
		return blendClear
	case Copy:
		return blendCopy
	case Destination:
		return blendDestination
	case SourceOver:
		return blendSourceOver
	case DestinationOver:
		return blendDestinationOver
	case SourceIn:
		return blendSourceIn
	case DestinationIn:
		return blendDestinationIn
	case SourceOut:
		return blendSourceOut
	case DestinationOut:
		return blendDestinationOut
	case SourceAtop:
		return blendSourceAtop
	case DestinationAtop:
		return blendDestinationAtop
	case Xor:
		return blendXor
	case Lighter:
		return blendLighter
	default:
		return blendSourceOver
	}
}

func blendClear(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func blendCopy(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func blendDestination(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return addDiv255(sr, mulDiv255(dr, invSa)),
		addDiv255(sg, mulDiv255(dg, invSa)),
		addDiv255(sb, mulDiv255(db, invSa)),
		addDiv255(sa, mulDiv255(da, invSa))
}

func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return addDiv255(mulDiv255(sr, invDa), dr),
		addDiv255(mulDiv255(sg, invDa), dg),
		addDiv255(mulDiv255(sb, invDa), db),
		addDiv255(mulDiv255(sa, invDa), da)
}

func blendSourceIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func blendDestinationIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

func blendSourceOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

func blendDestinationOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

func blendSourceAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return addDiv255(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addDiv255(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addDiv255(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

func blendDestinationAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return addDiv255(mulDiv255(sr, invDa), mulDiv255(dr, sa)),
		addDiv255(mulDiv255(sg, invDa), mulDiv255(dg, sa)),
		addDiv255(mulDiv255(sb, invDa), mulDiv255(db, sa)),
		sa
}

func blendXor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	invSa := 255 - sa
	return addDiv255(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addDiv255(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addDiv255(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addDiv255(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

func blendLighter(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return addDiv255(sr, dr), addDiv255(sg, dg), addDiv255(sb, db), addDiv255(sa, da)
}

// mulDiv255 multiplies two 0-255 channel values and divides by 255 with
// correct rounding (+127 before truncation).
func mulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// addDiv255 adds two channel values, clamped to 255.
func addDiv255(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
