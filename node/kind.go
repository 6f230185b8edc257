package node

type DispatcherEnum int

const (
	DispatcherUnknown   DispatcherEnum = iota // opaque: funcs, chans, unsafe pointers, complex numbers
	DispatcherNull                            // nil, nil pointers and nil interfaces
	DispatcherPrimitive                       // anything primitive.FromReflectType recognizes
	DispatcherInterface                       // Fielder implementations
	DispatcherSlice                           // slices and arrays
	DispatcherMap
	DispatcherStruct // structs and pointers to structs

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)

// IsContainer reports whether values of this kind have addressable members.
func (d DispatcherEnum) IsContainer() bool {
	switch d {
	default:
		return false
	case DispatcherInterface, DispatcherSlice, DispatcherMap, DispatcherStruct:
		return true
	}
}

// IsRecord reports whether values of this kind are records with named members.
func (d DispatcherEnum) IsRecord() bool {
	return d == DispatcherInterface || d == DispatcherStruct
}
