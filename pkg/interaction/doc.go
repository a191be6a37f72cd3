// Package interaction drives the hover choreography of a card panel.
//
// A [Controller] is a two-state machine (Idle, Hovering) fed by pointer
// Enter and Leave events. Entering a card:
//
//   - hides the current staple pair and punches two holes per staple
//   - starts wobbling the logo element, re-randomized every 0.5 to 1.5 s
//   - tilts the panel once and counter-transforms every keep-upright child
//
// Leaving undoes the transforms, cancels the wobble and pins a fresh staple
// pair. Holes accumulate for the life of the controller.
//
// Elements are addressed through the [Element] interface, which reads and
// writes a [Stack] of rotate/scale transforms. Time comes from a [Clock] so
// tests can use [ManualClock] and advance it explicitly.
//
// A Controller serializes its methods and the wobble callback with an internal
// mutex, so the timer goroutine of [SystemClock] never races Enter or Leave and
// a stale tick never touches the logo after Leave has reset it.
package interaction
