// Package ui contains the Bubble Tea program that powers the dual-pane
// browser. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own key handling, text input,
// rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry so every
//     message kind is handled by a focused function: key presses dispatch on
//     the current mode (browse or edit), search results merge into the edit
//     session, window sizes update the layout, and the tick heartbeat re-arms
//     itself so a frame is drawn every interval even with no input.
//
// State ownership:
//   - Pane and edit-session state live in internal/ui/state, free of any
//     Bubble Tea types, so the transition semantics are unit-testable on
//     their own. The suggestion cursor there intentionally has no upper
//     bound; only consumers clamp it.
//   - Search execution is wrapped by internal/ui/command, letting each
//     keystroke's query run asynchronously via a tea.Cmd with trace logging.
//     Requests carry a sequence number but results are merged in completion
//     order with no staleness check, so a slow stale reply can overwrite
//     newer suggestions.
//
// Commits are the one synchronous side effect: pressing enter in edit mode
// lists the typed directory inline before returning to browse mode.
package ui
