package accessor_test

type Object struct {
	Public    string  `json:"public"`
	Nested    *Object `json:"nested,omitempty"`
	protected string
}

func newObject() *Object {
	return &Object{Public: "public", protected: "protected"}
}

type objectVal struct {
	StringVal string  `json:"string-val-3"`
	NullVal   *string `json:"null-val-3"`
}

func newSubject() map[string]any {
	return map[string]any{
		"string-val": "A string",
		"null-val":   nil,
		"assoc-array-val": map[string]any{
			"string-val-2": "Another string",
			"null-val-2":   nil,
		},
		"num-array-val": []string{"a", "b", "c"},
		"object-val":    &objectVal{StringVal: "Yet another string"},
	}
}

type codeError struct {
	msg  string
	code int
}

func (e *codeError) Error() string { return e.msg }
func (e *codeError) Code() int     { return e.code }
