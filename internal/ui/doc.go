// Package ui contains the Bubble Tea program that hosts a helium app.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, the toast expiry tick).
//   - A key press is first translated into key codes and fed through the hotkey
//     registry as a press followed by a release. When no hotkey fires, the
//     host's own bindings move the cursor, activate the focused widget, cycle
//     the dock or open the action palette.
//   - While a text field holds input.TextFocus, keys go to that field and only
//     modifier hotkeys can fire.
//
// Drawing:
//   - The menu and the dock are immediate mode: every update runs a draw pass
//     over a surface.Frame and keeps the resulting text. Activation runs one
//     extra pass so the stored view reflects the click.
//   - View stacks that body with pending toasts and the bubbles help footer,
//     clamped to the terminal size.
//
// An action may ask the host to stop through helium.RequestExit; Update checks
// for that after every message and returns tea.Quit.
package ui
