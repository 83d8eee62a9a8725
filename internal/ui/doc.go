// Package ui contains the Bubble Tea program that hosts the demo scene and
// its settings menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each tea.Msg through a
//     typed handler registry.
//   - Key presses are checked against the host controls first (quit, overlay
//     toggle, help, copy). Anything else is translated by internal/keymap
//     into a menu.Key and handed to menu.Menu.OnKeyEvent, which owns cursor
//     movement, value edits and level changes.
//   - The model never mutates menu items directly; it only reads them back
//     when rendering.
//
// Rendering:
//   - View asks the menu to draw itself into a menu.DrawSink and lays the
//     rows out bottom-up, index 0 on the lowest line, clipped by a per-level
//     internal/ui/state.Viewport.
//   - When the active level belongs to a color item a swatch panel is drawn
//     beside the menu.
//   - The scene canvas fills whatever height the overlay leaves.
package ui
