package accessor

import (
	"github.com/ohler55/ojg/oj"

	"data-accessor/kind"
)

// DataAccessor binds data to an Accessor. Set rebinds the held data to the
// new root.
type DataAccessor struct {
	accessor *Accessor
	data     any
}

// Bind returns a DataAccessor holding data.
func (a *Accessor) Bind(data any) *DataAccessor {
	return &DataAccessor{accessor: a, data: data}
}

func (d *DataAccessor) Get(path string, def any) any {
	return d.accessor.Get(d.data, path, def)
}

func (d *DataAccessor) GetAs(path string, def any, target kind.Type) (any, error) {
	return d.accessor.GetAs(d.data, path, def, target)
}

func (d *DataAccessor) Has(path string) bool {
	return d.accessor.Has(d.data, path)
}

// Set stores value at path and returns the new data. On error the held
// data is left as it was.
func (d *DataAccessor) Set(path string, value any) (any, error) {
	data, err := d.accessor.Set(d.data, path, value)
	if err != nil {
		return nil, err
	}

	d.data = data

	return data, nil
}

// Data returns the held data.
func (d *DataAccessor) Data() any {
	return d.data
}

// Clone returns an accessor over the same data. Since Set never modifies
// data in place, later sets on either one are not seen by the other.
func (d *DataAccessor) Clone() *DataAccessor {
	clone := *d
	return &clone
}

// MarshalJSON encodes the held data.
func (d *DataAccessor) MarshalJSON() ([]byte, error) {
	return oj.Marshal(d.data)
}
