package jerr

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Decode
	InvalidDescription
	DuplicateClass
	UndefinedSupertype
	UndefinedBound
	DuplicateParameter
)

type JError interface {
	Error() string
	Code() ErrCode

	withStack([]byte) JError
	getStack() []byte
}

func FormatWithCode(e JError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E JError](err E) JError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From  error
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) JError {
	e.stack = stack
	return e
}

type NewDecode struct {
	From  error
	stack []byte
}

func (e NewDecode) Error() string {
	return fmt.Sprintf("could not decode model description: %v", e.From)
}
func (e NewDecode) Code() ErrCode    { return Decode }
func (e NewDecode) getStack() []byte { return e.stack }
func (e NewDecode) withStack(stack []byte) JError {
	e.stack = stack
	return e
}

type NewInvalidDescription struct {
	Detail string
	stack  []byte
}

func (e NewInvalidDescription) Error() string {
	return fmt.Sprintf("invalid model description: %s", e.Detail)
}
func (e NewInvalidDescription) Code() ErrCode    { return InvalidDescription }
func (e NewInvalidDescription) getStack() []byte { return e.stack }
func (e NewInvalidDescription) withStack(stack []byte) JError {
	e.stack = stack
	return e
}

type NewDuplicateClass struct {
	Name  string
	stack []byte
}

func (e NewDuplicateClass) Error() string {
	return fmt.Sprintf("class '%s' is declared more than once", e.Name)
}
func (e NewDuplicateClass) Code() ErrCode    { return DuplicateClass }
func (e NewDuplicateClass) getStack() []byte { return e.stack }
func (e NewDuplicateClass) withStack(stack []byte) JError {
	e.stack = stack
	return e
}

type NewUndefinedSupertype struct {
	Class string
	Name  string
	stack []byte
}

func (e NewUndefinedSupertype) Error() string {
	return fmt.Sprintf("supertype '%s' of class '%s' is not declared", e.Name, e.Class)
}
func (e NewUndefinedSupertype) Code() ErrCode    { return UndefinedSupertype }
func (e NewUndefinedSupertype) getStack() []byte { return e.stack }
func (e NewUndefinedSupertype) withStack(stack []byte) JError {
	e.stack = stack
	return e
}

type NewUndefinedBound struct {
	Class     string
	Parameter string
	Name      string
	stack     []byte
}

func (e NewUndefinedBound) Error() string {
	return fmt.Sprintf("bound '%s' of parameter '%s' in class '%s' names neither a sibling parameter nor a declared class",
		e.Name, e.Parameter, e.Class)
}
func (e NewUndefinedBound) Code() ErrCode    { return UndefinedBound }
func (e NewUndefinedBound) getStack() []byte { return e.stack }
func (e NewUndefinedBound) withStack(stack []byte) JError {
	e.stack = stack
	return e
}

type NewDuplicateParameter struct {
	Class string
	Name  string
	stack []byte
}

func (e NewDuplicateParameter) Error() string {
	return fmt.Sprintf("class '%s' declares parameter '%s' more than once", e.Class, e.Name)
}
func (e NewDuplicateParameter) Code() ErrCode    { return DuplicateParameter }
func (e NewDuplicateParameter) getStack() []byte { return e.stack }
func (e NewDuplicateParameter) withStack(stack []byte) JError {
	e.stack = stack
	return e
}
