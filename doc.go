// Package gobble is a parser combinator library.
//
// Parsers are built by combining smaller parsers into larger ones, and are only run when Execute
// is called on a concrete input. Failed alternatives backtrack automatically, and every failure
// carries the line and column it occurred at.
//
// The primitives are:
//
//   - `Dot` Any single element.
//   - `Chars("abc")`, `Range('a', 'z')`, `CharFunc(name, fn)` One element from a class.
//   - `Literal("text", normalizers...)` Exactly the given text.
//   - `Location`, `Index` The current position, consuming nothing.
//   - `Succeed(v)`, `Fail[T]("message")` Always succeed or always fail.
//
// And the combinators:
//
//   - `Either(a, b)` Ordered choice, "(a / b)".
//   - `Then(a, b)`, `FollowedBy(a, b)` Sequencing, keeping the value of b or a respectively.
//   - `Optional(a, fallback)` a, or fallback if a fails.
//   - `Star(a)`, `Plus(a)` Zero-or-more and one-or-more.
//   - `Bind`, `Map`, `Catch` General composition.
//   - `Sequence(name, func(s *Seq) (T, error))` Run several parsers in turn with Run.
//
// Here's a parser for a comma separated list of integers.
//
//	digits := gobble.Plus(gobble.Range('0', '9'))
//	number := gobble.Map(digits, func(ds []rune) int {
//		n, _ := strconv.Atoi(string(ds))
//		return n
//	})
//	list := gobble.Sequence("list", func(s *gobble.Seq) ([]int, error) {
//		first, err := gobble.Run(s, number)
//		if err != nil {
//			return nil, err
//		}
//		rest, err := gobble.Run(s, gobble.Star(gobble.Then(gobble.Chars(","), number)))
//		return append([]int{first}, rest...), err
//	})
//	values, err := list.Execute("1,2,3")
package gobble
