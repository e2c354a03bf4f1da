// Package input turns terminal events into editor commands.
//
// The editor is modeless: every printable character is inserted, and a
// small fixed set of special keys moves the cursor or edits the line
// structure. Ctrl+C and interrupt events both map to Quit, which saves
// the document and exits.
//
// # Usage
//
//	tr := input.NewTranslator(renderer.TextAreaSize)
//	for {
//		cmd, ok := tr.Translate(b.PollEvent())
//		if !ok {
//			continue
//		}
//		res := eng.Apply(cmd)
//		...
//	}
package input
