package formula

// ID is the wire-format code identifying a formula variant in a
// formula_ids buffer.
type ID uint32

const (
	IDNone ID = iota
	IDMandelbulbPower2
	IDMandelbulbPower8
	IDAmazingBox
	IDAmazingSurf
	IDQuaternionJulia
	IDTricorn
	IDBulbox
	IDFoldingIntPow
	IDRealPower
	IDAexionC
)

// FromID constructs the formula named by id, or Empty if id is
// unrecognized. iters is only consulted by variants whose shape
// depends on an integer parameter (FoldingIntPow's power).
func FromID(id ID, iters uint32) Formula {
	switch id {
	case IDMandelbulbPower2:
		return MandelbulbPower2()
	case IDMandelbulbPower8:
		return MandelbulbPower8()
	case IDAmazingBox:
		return NewAmazingBox()
	case IDAmazingSurf:
		return NewAmazingSurf()
	case IDBulbox:
		return NewBulbox()
	case IDQuaternionJulia:
		return NewQuaternionJulia()
	case IDTricorn:
		return NewTricorn()
	case IDFoldingIntPow:
		return NewFoldingIntPow(int(iters))
	case IDRealPower:
		return RealPower(8.0)
	case IDAexionC:
		return NewAexionC()
	default:
		return Empty{}
	}
}
