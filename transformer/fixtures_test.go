package transformer_test

type testObject struct {
	Public  string
	private string
}

func newTestObject() testObject {
	return testObject{Public: "public", private: "private"}
}

type stringable struct{}

func (stringable) String() string { return "Stringable test class" }

type answer int

const (
	answerNo answer = iota
	answerYes
)

func (a answer) String() string {
	if a == answerYes {
		return "Yes"
	}
	return "No"
}

type backed string

const (
	backedYes backed = "Jajemen"
	backedNo  backed = "No"
)

type codeError struct {
	msg   string
	code  int
	cause error
}

func (e *codeError) Error() string { return e.msg }
func (e *codeError) Code() int     { return e.code }
func (e *codeError) Unwrap() error { return e.cause }
