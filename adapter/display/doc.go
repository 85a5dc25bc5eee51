// Package display renders a Graph into the flat display-graph projection
// consumed by front ends: a nodes/links list with deterministic color and
// symbol assignment, optional coordinate rescaling to a bounding canvas, and
// a human-readable constraint string per generalization set (spec.md §6
// "Display format", "Color / symbol table").
package display
