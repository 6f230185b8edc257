package options

type CategoryEnum int

const (
	CategoryEnumName   CategoryEnum = 1 << iota // enum -> string: symbolic name of a primitive enum (String method or string value)
	CategoryReadable                            // bool, nil -> string: "true", "false", "null" instead of "1", "", ""
	CategoryError                               // error -> object, array, string: type, message and code of an error
	CategoryStringable                          // fmt.Stringer -> string: self-described textual representation
	CategoryRecursive                           // container -> array, object: children are coerced with the same chain

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

// Has reports whether every category of other is selected in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}
