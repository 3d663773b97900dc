// Package ui runs the menu on top of a Bubble Tea program. Program satisfies
// terminal.Device so the application loop can drive it like any other
// terminal driver.
//
// Message flow:
//   - Program.Enter starts the Bubble Tea program with the alternate screen
//     enabled and waits until Model.Init has been processed, so a program
//     that fails to start is reported by Enter.
//   - Key messages are translated into terminal.Key values and queued for
//     Program.ReadKey. Window size changes are queued as well so the loop
//     redraws at the new width.
//   - Program.Present hands the frame to the model through a frameMsg; View
//     renders the last frame it received.
//   - Program.Leave asks the program to quit and waits for it to restore the
//     terminal.
//
// The Bubble Tea event loop runs on its own goroutine, but the menu state is
// never touched there: the model only relays keys and frames.
package ui
