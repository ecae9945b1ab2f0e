// Package prismsim provides a cycle-accurate simulation harness for the
// PRISM programmable shift/condition peripheral and the external serial
// devices it talks to.
//
// The root package implements the clocked pin bus and the session scheduler.
// Device emulators live in package devlib, the peripheral model and its
// register protocols in package periph, and microprogram tables in package
// chroma.
//
package prismsim
