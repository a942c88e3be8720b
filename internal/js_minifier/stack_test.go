package js_minifier

import (
	"testing"

	"github.com/minforge/jsmin/internal/test"
)

func TestStateStack(t *testing.T) {
	stack := NewStateStack(2)

	_, ok := stack.Pop()
	test.AssertEqual(t, ok, false)
	_, ok = stack.Peek()
	test.AssertEqual(t, ok, false)

	test.AssertEqual(t, stack.Push(SStatement.in(false)), true)
	test.AssertEqual(t, stack.Push(SExpression.in(true)), true)
	test.AssertEqual(t, stack.Push(SClass.in(false)), false)
	test.AssertEqual(t, stack.Len(), 2)

	// Template bookkeeping ignores the limit
	stack.forcePush(STemplateStringTail.in(false))
	test.AssertEqual(t, stack.Len(), 3)

	top, _ := stack.Pop()
	test.AssertEqual(t, top, STemplateStringTail.in(false))
	top, _ = stack.Peek()
	test.AssertEqual(t, top, SExpression.in(true))
	top, _ = stack.Pop()
	test.AssertEqual(t, top, SExpression.in(true))
	top, _ = stack.Pop()
	test.AssertEqual(t, top, SStatement.in(false))
	test.AssertEqual(t, stack.Len(), 0)
}

func TestDefaultStackLimit(t *testing.T) {
	stack := NewStateStack(0)
	for i := 0; i < DefaultStackLimit; i++ {
		if !stack.Push(SStatement.in(false)) {
			t.Fatalf("Push %d was dropped", i)
		}
	}
	test.AssertEqual(t, stack.Push(SStatement.in(false)), false)
}
