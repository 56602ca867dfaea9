// Package toggler flips wiki-style references between link and embed form.
//
// A reference is written [[target]] and becomes an embed when prefixed with
// '!', as in ![[target]]. The package finds references in a document, picks
// the ones a command should act on from the cursor and selection, and
// rewrites them without disturbing the offsets of references it has yet to
// touch.
//
// Documents are accessed through the Editor interface, so the same commands
// drive any host text surface. Buffer is an in-memory implementation.
//
// Example:
//
//	buf := toggler.NewBuffer("Some text [[Note A]] more text")
//	buf.SetCursor(toggler.Position{Line: 0, Ch: 15})
//	res := toggler.New().ToggleCurrent(buf)
//	fmt.Println(buf.GetValue(), res.Toggled())
//	// Output: Some text ![[Note A]] more text 1
//
// Offsets in Position, Token and Replacement are byte offsets into a line.
package toggler
