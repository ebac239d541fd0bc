// Package render formats plans for people and programs.
//
// # Formats
//
//   - [WriteText]: one "(name, tolerance)" line per position
//   - [WriteTable]: a styled table with positions and gaps
//   - [WriteJSON]: a [Document] with a plan id, shortfalls and placeholders
//   - [ToDOT] and [RenderSVG]: a Graphviz timeline linking consecutive
//     occurrences of each meal, with the gap on each link
//
// [Write] dispatches on a format name and is what the CLI and the HTTP
// server use.
package render
