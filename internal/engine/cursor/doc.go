// Package cursor provides the on-screen cursor state.
//
// A Cursor holds screen-space coordinates inside the text area and the
// preferred ("sticky") column. The buffer position it denotes is derived by
// adding the viewport offsets; the cursor itself never stores buffer
// coordinates, so it cannot drift out of sync with scrolling.
//
// The preferred column records the last deliberate horizontal position.
// Vertical moves land on min(preferred, line length), so moving through a
// short line and back restores the original column.
//
// Thread Safety:
//
// Cursor is an immutable value type and safe for concurrent use.
package cursor
